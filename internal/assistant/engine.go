package assistant

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/colonyops/pal/internal/core/calendar"
	"github.com/colonyops/pal/internal/core/chat"
	"github.com/colonyops/pal/internal/core/finance"
	"github.com/colonyops/pal/internal/core/health"
	"github.com/colonyops/pal/internal/core/house"
	"github.com/colonyops/pal/internal/core/note"
	"github.com/colonyops/pal/internal/core/portfolio"
	"github.com/colonyops/pal/internal/core/subscription"
	"github.com/colonyops/pal/internal/core/task"
)

// Stores bundles every data dependency the engine reads or writes.
type Stores struct {
	Tasks         task.Store
	Notes         note.Store
	Transactions  finance.TransactionStore
	Budgets       finance.BudgetStore
	Health        health.Store
	Subscriptions subscription.Store
	Portfolio     portfolio.Store
	Houses        house.Store
	Transcript    chat.Store
}

// Engine classifies utterances and produces replies. One Engine serves one
// conversation: the event reference tracker is session state, replaced
// wholesale by every calendar listing and read by the open intent.
type Engine struct {
	stores Stores
	cal    calendar.Service
	nav    Navigator
	log    zerolog.Logger
	now    func() time.Time

	// lastEvents mirrors the calendar events most recently rendered to the
	// user, in display order. Stale references are not accessible.
	lastEvents []calendar.Event

	intents []intentEntry
}

type intentEntry struct {
	name    string
	handler func(ctx context.Context, input string) *Reply
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithNavigator attaches the navigation sink for open/navigate intents.
func WithNavigator(nav Navigator) Option {
	return func(e *Engine) { e.nav = nav }
}

// SetNavigator swaps the navigation sink. The chat view attaches itself once
// it is running.
func (e *Engine) SetNavigator(nav Navigator) { e.nav = nav }

// New creates an Engine. The intent order is significant: mutation intents
// carry imperative verbs and must be tried before the generic keyword
// queries, otherwise "log 8 hours of sleep" would route to the health query
// instead of the health mutation.
func New(stores Stores, cal calendar.Service, log zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{
		stores: stores,
		cal:    cal,
		log:    log.With().Str("component", "assistant").Logger(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.intents = []intentEntry{
		{"open", e.openIntent},
		{"create-task", e.createTaskIntent},
		{"create-note", e.createNoteIntent},
		{"complete-task", e.completeTaskIntent},
		{"log-health", e.logHealthIntent},
		{"create-subscription", e.createSubscriptionIntent},
	}

	return e
}

// HandleUtterance is the engine's single entry point: it persists the user
// message, classifies the utterance, persists the reply, and triggers any
// navigation side effect. Collaborator failures never escape as errors; they
// degrade to text replies.
func (e *Engine) HandleUtterance(ctx context.Context, text string) Reply {
	trimmed := strings.TrimSpace(text)

	if err := e.stores.Transcript.Append(ctx, &chat.Message{
		Role:    chat.RoleUser,
		Content: trimmed,
	}); err != nil {
		e.log.Warn().Err(err).Msg("failed to persist user message")
	}

	reply := e.classify(ctx, strings.ToLower(trimmed))

	if err := e.stores.Transcript.Append(ctx, &chat.Message{
		Role:    chat.RoleAssistant,
		Content: reply.Text,
		Kind:    string(reply.Kind),
	}); err != nil {
		e.log.Warn().Err(err).Msg("failed to persist assistant message")
	}

	if reply.Navigate != nil && e.nav != nil {
		e.nav.Navigate(*reply.Navigate)
	}

	return reply
}

// classify folds over the ordered intent list, stopping at the first
// non-nil reply, then falls back to the read-only query router.
func (e *Engine) classify(ctx context.Context, input string) Reply {
	for _, intent := range e.intents {
		if reply := intent.handler(ctx, input); reply != nil {
			e.log.Debug().Str("intent", intent.name).Msg("utterance matched")
			return *reply
		}
	}

	return *e.queryReply(ctx, input)
}

// queryReply routes to read-only responders by keyword, in fixed order.
func (e *Engine) queryReply(ctx context.Context, input string) *Reply {
	switch {
	case containsAny(input, "task", "due", "todo"):
		return e.tasksReply(ctx, input)
	case containsAny(input, "note", "summarize", "written"):
		return e.notesReply(ctx)
	case containsAny(input, "subscription", "recurring", "netflix", "spotify"):
		return e.subscriptionsReply(ctx)
	case containsAny(input, "calendar", "event", "schedule", "appointment", "meeting", "today"):
		return e.calendarReply(ctx, input)
	case strings.Contains(input, "budget"):
		return e.budgetReply(ctx)
	case containsAny(input, "spend", "money", "finance", "expense", "income"):
		return e.financeReply(ctx)
	case containsAny(input, "stock", "portfolio", "invest", "shares", "ticker"):
		return e.stocksReply(ctx)
	case containsAny(input, "house", "utility", "electric", "gas bill", "water bill", "property"):
		return e.houseReply(ctx)
	case containsAny(input, "health", "sleep", "step", "weight", "water", "calorie"):
		return e.healthReply(ctx)
	case containsAny(input, "can you", "help", "what can"):
		return e.capabilitiesReply()
	}

	return textReply("I'm not sure how to help with that yet. Try \"help\" to see what I can do.")
}

func containsAny(input string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(input, kw) {
			return true
		}
	}
	return false
}

// hasAnyTrigger returns the first trigger phrase found in input, if any.
func hasAnyTrigger(input string, triggers []string) (string, bool) {
	for _, t := range triggers {
		if strings.Contains(input, t) {
			return t, true
		}
	}
	return "", false
}

// fmtMoney renders a currency value as whole dollars.
func fmtMoney(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

// fmtValue renders a metric value without trailing zeros.
func fmtValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// pct returns round(part/total*100), with 0 for an empty denominator.
func pct(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func plural(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}
