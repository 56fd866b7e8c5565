package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/colonyops/pal/internal/core/health"
)

func (e *Engine) healthReply(ctx context.Context) *Reply {
	entries, err := e.stores.Health.List(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("failed to list health entries")
		return textReply("I couldn't look up your health data. Please try again.")
	}
	if len(entries) == 0 {
		return textReply("No health data logged yet. Try \"log 8 hours of sleep\" or \"drank 2 liters of water\".")
	}

	// Entries are most-recent-first, so the first entry seen per metric is
	// its latest value.
	latest := make(map[health.Metric]health.Entry)
	for _, entry := range entries {
		if _, seen := latest[entry.Metric]; !seen {
			latest[entry.Metric] = entry
		}
	}

	var b strings.Builder
	b.WriteString("❤️ Health check-in:")
	for _, metric := range health.Metrics {
		entry, ok := latest[metric]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n%s %s: %s %s", metricEmoji[metric], metric.Label(), fmtValue(entry.Value), entry.Unit)
		switch {
		case metric == health.MetricSteps && entry.Value >= 10000:
			b.WriteString(" 🎯")
		case metric == health.MetricSleep && entry.Value >= 7:
			b.WriteString(" ✅")
		case metric == health.MetricSleep:
			b.WriteString(" 💤")
		}
	}

	weekAgo := e.now().AddDate(0, 0, -7)
	if recent, err := e.stores.Health.ListSince(ctx, weekAgo); err == nil {
		word := "entries"
		if len(recent) == 1 {
			word = "entry"
		}
		fmt.Fprintf(&b, "\n%d %s logged this week", len(recent), word)
	}

	return &Reply{Kind: KindHealthSummary, Text: b.String(), Count: len(entries)}
}
