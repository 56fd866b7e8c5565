package assistant

import (
	"context"
	"fmt"
	"strings"
)

func (e *Engine) subscriptionsReply(ctx context.Context) *Reply {
	subs, err := e.stores.Subscriptions.ListActive(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("failed to list subscriptions")
		return textReply("I couldn't look up your subscriptions. Please try again.")
	}
	if len(subs) == 0 {
		return textReply("No subscriptions tracked yet. Try \"add subscription netflix $15.99\".")
	}

	var monthly float64
	for _, s := range subs {
		monthly += s.MonthlyCost()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "💳 %s active, about %s/month total:",
		plural(len(subs), "subscription"), fmtMoney(monthly))

	shown := subs
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, s := range shown {
		fmt.Fprintf(&b, "\n• %s: $%s per %s", s.Name, fmtValue(s.Amount), s.Cycle.Noun())
	}
	if rest := len(subs) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "\n…and %d more", rest)
	}

	return &Reply{Kind: KindStats, Text: b.String(), Count: len(subs)}
}
