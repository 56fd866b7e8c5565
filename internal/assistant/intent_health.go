package assistant

import (
	"context"
	"fmt"

	"github.com/colonyops/pal/internal/core/health"
)

// metricKeywords maps utterance keywords to health metrics, in match
// priority order. Water is first so that "drank 2 liters of water" never
// resolves through an ambiguous later row.
var metricKeywords = []struct {
	keywords []string
	metric   health.Metric
}{
	{[]string{"water", " ml", "liter", "litre", "hydrat"}, health.MetricWaterIntake},
	{[]string{"sleep", "slept"}, health.MetricSleep},
	{[]string{"step", "walked"}, health.MetricSteps},
	{[]string{"calorie", "kcal"}, health.MetricCalories},
	{[]string{"weight", "weigh", " kg", "pound", " lb"}, health.MetricWeight},
	{[]string{"heart rate", "bpm", "pulse"}, health.MetricHeartRate},
	{[]string{"mood", "feeling"}, health.MetricMood},
	{[]string{"energy"}, health.MetricEnergy},
	{[]string{"blood pressure", " bp "}, health.MetricBloodPressure},
}

var metricEmoji = map[health.Metric]string{
	health.MetricSteps:         "🚶",
	health.MetricSleep:         "😴",
	health.MetricWaterIntake:   "💧",
	health.MetricCalories:      "🔥",
	health.MetricWeight:        "⚖️",
	health.MetricHeartRate:     "❤️",
	health.MetricMood:          "🙂",
	health.MetricEnergy:        "⚡",
	health.MetricBloodPressure: "🩺",
}

// logHealthIntent records a health entry when the utterance names a metric
// and carries a number. A metric keyword next to a number is enough, even
// without a logging verb ("8 hours of sleep").
func (e *Engine) logHealthIntent(ctx context.Context, input string) *Reply {
	metric, ok := matchMetric(input)
	if !ok {
		return nil
	}

	value, ok := ExtractNumber(input)
	if !ok {
		return nil
	}

	value, unit := normalizeMetric(metric, value, input)

	entry := health.Entry{Metric: metric, Value: value, Unit: unit}
	if err := e.stores.Health.Create(ctx, &entry); err != nil {
		e.log.Error().Err(err).Msg("failed to log health entry")
		return textReply("I couldn't save that. Please try again.")
	}

	var text string
	switch metric {
	case health.MetricMood, health.MetricEnergy:
		text = fmt.Sprintf("%s Logged %s at %s/10", metricEmoji[metric], metric.Label(), fmtValue(value))
	case health.MetricSteps:
		text = fmt.Sprintf("%s Logged %s steps", metricEmoji[metric], fmtValue(value))
	default:
		text = fmt.Sprintf("%s Logged %s %s of %s", metricEmoji[metric], fmtValue(value), unit, metric.Label())
	}

	return &Reply{
		Kind:   KindHealthLogged,
		Text:   text,
		Metric: metric,
		Value:  value,
	}
}

func matchMetric(input string) (health.Metric, bool) {
	for _, row := range metricKeywords {
		if containsAny(input, row.keywords...) {
			return row.metric, true
		}
	}
	return "", false
}

// normalizeMetric converts the extracted value to the metric's canonical
// unit based on the units named in the utterance.
func normalizeMetric(metric health.Metric, value float64, input string) (float64, string) {
	switch metric {
	case health.MetricWaterIntake:
		switch {
		case containsAny(input, "liter", "litre"):
			value *= mlPerLiter
		case containsAny(input, "cup", "glass"):
			value *= mlPerCup
		}
		return value, "ml"
	case health.MetricWeight:
		if containsAny(input, "pound", " lb") {
			value *= kgPerPound
		}
		return value, "kg"
	case health.MetricMood, health.MetricEnergy:
		return clamp(value, 1, 10), "/10"
	}
	return value, metric.DefaultUnit()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
