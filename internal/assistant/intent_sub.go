package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/colonyops/pal/internal/core/subscription"
)

var createSubTriggers = []string{
	"add subscription", "new subscription", "subscribe to", "create subscription",
}

func (e *Engine) createSubscriptionIntent(ctx context.Context, input string) *Reply {
	trigger, ok := hasAnyTrigger(input, createSubTriggers)
	if !ok {
		return nil
	}

	content := ExtractContent(input, trigger)
	if content == "" {
		return nil
	}

	var amount float64
	if v, ok := ExtractDollarAmount(content); ok {
		amount = v
		content = dollarRe.ReplaceAllString(content, "")
	} else if v, ok := ExtractNumber(content); ok {
		amount = v
		content = numberRe.ReplaceAllString(content, "")
	}

	cycle := subscription.CycleMonthly
	switch {
	case strings.Contains(input, "year"):
		cycle = subscription.CycleYearly
	case strings.Contains(input, "week"):
		cycle = subscription.CycleWeekly
	}

	name := cleanSubscriptionName(content)
	if name == "" {
		return nil
	}

	sub := subscription.Subscription{Name: name, Amount: amount, Cycle: cycle}
	if err := e.stores.Subscriptions.Create(ctx, &sub); err != nil {
		e.log.Error().Err(err).Msg("failed to create subscription")
		return textReply("I couldn't save that subscription. Please try again.")
	}

	text := fmt.Sprintf("💳 Subscription added: %s", sub.Name)
	if amount > 0 {
		text += fmt.Sprintf(" at $%s per %s", fmtValue(amount), cycle.Noun())
	}
	return textReply(text)
}

// cleanSubscriptionName strips pricing leftovers ("for", "at", "per month")
// once the amount has been removed from the phrase.
func cleanSubscriptionName(s string) string {
	for _, word := range []string{"per month", "per year", "per week", "a month", "a year", "a week", "monthly", "yearly", "weekly"} {
		s = strings.ReplaceAll(s, word, "")
	}

	fields := strings.Fields(s)
	for len(fields) > 0 {
		last := fields[len(fields)-1]
		if last != "for" && last != "at" {
			break
		}
		fields = fields[:len(fields)-1]
	}

	return strings.Join(fields, " ")
}
