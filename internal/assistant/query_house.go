package assistant

import (
	"context"
	"fmt"
	"strings"
)

func (e *Engine) houseReply(ctx context.Context) *Reply {
	houses, err := e.stores.Houses.List(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("failed to list houses")
		return textReply("I couldn't look up your properties. Please try again.")
	}
	if len(houses) == 0 {
		return textReply("No properties tracked yet. Add one from the house screen to keep utilities in one place.")
	}

	if len(houses) > 3 {
		houses = houses[:3]
	}

	var b strings.Builder
	b.WriteString("🏡 Your properties:")
	for _, h := range houses {
		fmt.Fprintf(&b, "\n• %s", h.Address)
		utilities := h.Utilities
		if len(utilities) > 3 {
			utilities = utilities[:3]
		}
		for _, u := range utilities {
			fmt.Fprintf(&b, "\n  – %s: %s", titleCase(u.Service), u.Provider)
		}
	}

	return textReplyWithCount(b.String(), len(houses))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func textReplyWithCount(text string, count int) *Reply {
	return &Reply{Kind: KindText, Text: text, Count: count}
}
