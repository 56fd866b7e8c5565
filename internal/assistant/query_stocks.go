package assistant

import (
	"context"
	"fmt"
	"strings"
)

func (e *Engine) stocksReply(ctx context.Context) *Reply {
	holdings, err := e.stores.Portfolio.List(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("failed to list holdings")
		return textReply("I couldn't look up your portfolio. Please try again.")
	}
	if len(holdings) == 0 {
		return textReply("Your portfolio is empty. Add holdings from the stocks screen to track them here.")
	}

	var basis float64
	for _, h := range holdings {
		basis += h.CostBasis()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📈 %s, %s invested:", plural(len(holdings), "holding"), fmtMoney(basis))

	shown := holdings
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, h := range shown {
		fmt.Fprintf(&b, "\n• %s: %s shares at $%s", strings.ToUpper(h.Symbol), fmtValue(h.Quantity), fmtValue(h.AvgCost))
	}
	if rest := len(holdings) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "\n…and %d more", rest)
	}

	return &Reply{Kind: KindStats, Text: b.String(), Count: len(holdings)}
}
