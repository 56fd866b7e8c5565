package assistant

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/colonyops/pal/internal/core/finance"
)

func (e *Engine) financeReply(ctx context.Context) *Reply {
	from, to := finance.PeriodMonthly.Bounds(e.now())

	txns, err := e.stores.Transactions.ListRange(ctx, from, to)
	if err != nil {
		e.log.Error().Err(err).Msg("failed to list transactions")
		return textReply("I couldn't look up your finances. Please try again.")
	}
	if len(txns) == 0 {
		return textReply("No transactions recorded this month yet. Log income and expenses to see a summary here.")
	}

	var income, expense float64
	byCategory := make(map[string]float64)
	for _, t := range txns {
		switch t.Kind {
		case finance.KindIncome:
			income += t.Amount
		case finance.KindExpense:
			expense += t.Amount
			byCategory[t.Category] += t.Amount
		}
	}
	balance := income - expense

	var b strings.Builder
	b.WriteString("💰 This month:")
	fmt.Fprintf(&b, "\n• Income: %s", fmtMoney(income))
	fmt.Fprintf(&b, "\n• Expenses: %s", fmtMoney(expense))
	fmt.Fprintf(&b, "\n• Balance: %s", fmtMoney(balance))

	if top := topCategories(byCategory, 3); len(top) > 0 {
		b.WriteString("\nTop spending:")
		for _, c := range top {
			fmt.Fprintf(&b, "\n• %s: %s", c.name, fmtMoney(c.total))
		}
	}

	return &Reply{Kind: KindFinanceSummary, Text: b.String(), Balance: balance}
}

type categoryTotal struct {
	name  string
	total float64
}

// topCategories returns the n largest spending categories, ties broken by
// name so the output is stable.
func topCategories(byCategory map[string]float64, n int) []categoryTotal {
	cats := make([]categoryTotal, 0, len(byCategory))
	for name, total := range byCategory {
		cats = append(cats, categoryTotal{name, total})
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].total != cats[j].total {
			return cats[i].total > cats[j].total
		}
		return cats[i].name < cats[j].name
	})
	if len(cats) > n {
		cats = cats[:n]
	}
	return cats
}

func (e *Engine) budgetReply(ctx context.Context) *Reply {
	budgets, err := e.stores.Budgets.ListActive(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("failed to list budgets")
		return textReply("I couldn't look up your budgets. Please try again.")
	}
	if len(budgets) == 0 {
		return textReply("You haven't set up any budgets yet. Create one from the finance screen to track spending.")
	}

	now := e.now()
	if len(budgets) > 5 {
		budgets = budgets[:5]
	}

	var b strings.Builder
	b.WriteString("📊 Budgets:")
	for _, budget := range budgets {
		from, to := budget.Period.Bounds(now)
		txns, err := e.stores.Transactions.ListRange(ctx, from, to)
		if err != nil {
			e.log.Error().Err(err).Msg("failed to list transactions for budget")
			return textReply("I couldn't look up your budgets. Please try again.")
		}

		var spent float64
		for _, t := range txns {
			if t.Kind == finance.KindExpense && strings.EqualFold(t.Category, budget.Category) {
				spent += t.Amount
			}
		}

		used := 0
		if budget.Limit > 0 {
			used = int(math.Round(spent / budget.Limit * 100))
		}
		icon := "🟢"
		switch {
		case used >= 100:
			icon = "🔴"
		case used >= 80:
			icon = "🟡"
		}
		if used > 100 {
			used = 100
		}

		fmt.Fprintf(&b, "\n%s %s: %s of %s (%d%%)",
			icon, budget.Category, fmtMoney(spent), fmtMoney(budget.Limit), used)
	}

	return &Reply{Kind: KindStats, Text: b.String(), Count: len(budgets)}
}
