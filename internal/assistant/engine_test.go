package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/pal/internal/core/calendar"
	"github.com/colonyops/pal/internal/core/finance"
	"github.com/colonyops/pal/internal/core/health"
	"github.com/colonyops/pal/internal/core/house"
	"github.com/colonyops/pal/internal/core/note"
	"github.com/colonyops/pal/internal/core/portfolio"
	"github.com/colonyops/pal/internal/core/subscription"
	"github.com/colonyops/pal/internal/core/task"
	"github.com/colonyops/pal/internal/data/db"
	"github.com/colonyops/pal/internal/data/stores"
)

// Monday, March 10 2025, 09:00 UTC.
var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type fakeCalendar struct {
	authorized bool
	events     []calendar.Event
	err        error
}

func (f *fakeCalendar) Authorized() bool { return f.authorized }

func (f *fakeCalendar) TodayEvents(context.Context) ([]calendar.Event, error) {
	return f.events, f.err
}

func (f *fakeCalendar) Events(context.Context, time.Time, time.Time) ([]calendar.Event, error) {
	return f.events, f.err
}

func (f *fakeCalendar) Upcoming(context.Context, int) ([]calendar.Event, error) {
	return f.events, f.err
}

type fakeNavigator struct {
	dests []Destination
}

func (f *fakeNavigator) Navigate(dest Destination) { f.dests = append(f.dests, dest) }

func newTestEngine(t *testing.T, cal calendar.Service, opts ...Option) (*Engine, Stores) {
	t.Helper()

	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	st := Stores{
		Tasks:         stores.NewTaskStore(database),
		Notes:         stores.NewNoteStore(database),
		Transactions:  stores.NewTransactionStore(database),
		Budgets:       stores.NewBudgetStore(database),
		Health:        stores.NewHealthStore(database),
		Subscriptions: stores.NewSubscriptionStore(database),
		Portfolio:     stores.NewPortfolioStore(database),
		Houses:        stores.NewHouseStore(database),
		Transcript:    stores.NewChatStore(database, 200),
	}

	opts = append([]Option{WithClock(func() time.Time { return testNow })}, opts...)
	return New(st, cal, zerolog.Nop(), opts...), st
}

func TestEngineCreateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("title, due date, and priority extracted", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		reply := e.HandleUtterance(ctx, "remind me to call mom tomorrow")
		assert.Equal(t, KindTaskCreated, reply.Kind)
		assert.Equal(t, "call mom", reply.Title)

		tasks, err := st.Tasks.List(ctx, task.ListFilter{})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "call mom", tasks[0].Title)
		assert.Equal(t, task.PriorityMedium, tasks[0].Priority)
		require.NotNil(t, tasks[0].Due)
		assert.True(t, tasks[0].Due.Equal(time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("priority keyword stripped from title", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		reply := e.HandleUtterance(ctx, "add task finish report urgent")
		assert.Equal(t, KindTaskCreated, reply.Kind)

		tasks, err := st.Tasks.List(ctx, task.ListFilter{})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "finish report", tasks[0].Title)
		assert.Equal(t, task.PriorityUrgent, tasks[0].Priority)
		assert.Nil(t, tasks[0].Due)
	})

	t.Run("bare trigger falls through to query", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		reply := e.HandleUtterance(ctx, "add task")
		assert.Equal(t, KindText, reply.Kind)
		assert.Contains(t, reply.Text, "don't have any tasks")

		tasks, err := st.Tasks.List(ctx, task.ListFilter{})
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

func TestEngineCreateNote(t *testing.T) {
	ctx := context.Background()

	t.Run("colon splits title from body", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		reply := e.HandleUtterance(ctx, "add note shopping: eggs and milk")
		assert.Equal(t, KindNoteCreated, reply.Kind)
		assert.Equal(t, "shopping", reply.Title)

		notes, err := st.Notes.List(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "shopping", notes[0].Title)
		assert.Equal(t, "eggs and milk", notes[0].Body)
	})

	t.Run("short content becomes the title", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		reply := e.HandleUtterance(ctx, "create note pick up keys")
		assert.Equal(t, KindNoteCreated, reply.Kind)

		notes, err := st.Notes.List(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "pick up keys", notes[0].Title)
		assert.Empty(t, notes[0].Body)
	})
}

func TestEngineCompleteTask(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, st Stores, titles ...string) {
		t.Helper()
		for _, title := range titles {
			require.NoError(t, st.Tasks.Create(ctx, &task.Task{Title: title, Priority: task.PriorityMedium}))
		}
	}

	t.Run("substring match completes", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})
		seed(t, st, "buy groceries", "walk the dog")

		reply := e.HandleUtterance(ctx, "complete task groceries")
		assert.Equal(t, KindTaskCompleted, reply.Kind)
		assert.Equal(t, "buy groceries", reply.Title)

		done := true
		completed, err := st.Tasks.List(ctx, task.ListFilter{Done: &done})
		require.NoError(t, err)
		require.Len(t, completed, 1)
		assert.Equal(t, "buy groceries", completed[0].Title)
	})

	t.Run("word overlap suggests alternatives", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})
		seed(t, st, "book dentist visit", "walk the dog")

		reply := e.HandleUtterance(ctx, "complete task dentist appointment")
		assert.Equal(t, KindText, reply.Kind)
		assert.Contains(t, reply.Text, "Did you mean")
		assert.Contains(t, reply.Text, "book dentist visit")
		assert.NotContains(t, reply.Text, "walk the dog")
	})

	t.Run("no match falls back to pending count", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})
		seed(t, st, "buy groceries", "walk the dog")

		reply := e.HandleUtterance(ctx, "complete task xyzzy")
		assert.Equal(t, KindText, reply.Kind)
		assert.Contains(t, reply.Text, "2 tasks pending")
	})
}

func TestEngineLogHealth(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      string
		wantMetric health.Metric
		wantValue  float64
		wantUnit   string
	}{
		{"liters convert to ml", "drank 2 liters of water", health.MetricWaterIntake, 2000, "ml"},
		{"glasses convert to ml", "drank 3 glasses of water", health.MetricWaterIntake, 750, "ml"},
		{"pounds convert to kg", "log weight 150 pounds", health.MetricWeight, 68.0388, "kg"},
		{"sleep hours", "slept 8 hours last night", health.MetricSleep, 8, "hours"},
		{"steps", "walked 12000 steps", health.MetricSteps, 12000, "steps"},
		{"mood clamps high", "log mood 15", health.MetricMood, 10, "/10"},
		{"energy clamps low", "track energy 0", health.MetricEnergy, 1, "/10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, st := newTestEngine(t, &fakeCalendar{})

			reply := e.HandleUtterance(ctx, tt.input)
			require.Equal(t, KindHealthLogged, reply.Kind, "reply: %s", reply.Text)
			assert.Equal(t, tt.wantMetric, reply.Metric)
			assert.InDelta(t, tt.wantValue, reply.Value, 0.001)

			entries, err := st.Health.List(ctx)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantMetric, entries[0].Metric)
			assert.InDelta(t, tt.wantValue, entries[0].Value, 0.001)
			assert.Equal(t, tt.wantUnit, entries[0].Unit)
		})
	}

	t.Run("metric keyword with a number logs without a verb", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		reply := e.HandleUtterance(ctx, "8 hours of sleep")
		require.Equal(t, KindHealthLogged, reply.Kind, "reply: %s", reply.Text)
		assert.Equal(t, health.MetricSleep, reply.Metric)

		entries, err := st.Health.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.InDelta(t, 8, entries[0].Value, 0.001)
	})

	t.Run("metric without number is not a log", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		reply := e.HandleUtterance(ctx, "how is my sleep")
		assert.NotEqual(t, KindHealthLogged, reply.Kind)

		entries, err := st.Health.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("mutation outranks health query", func(t *testing.T) {
		e, _ := newTestEngine(t, &fakeCalendar{})

		reply := e.HandleUtterance(ctx, "log 8 hours of sleep")
		assert.Equal(t, KindHealthLogged, reply.Kind)
	})
}

func TestEngineCreateSubscription(t *testing.T) {
	ctx := context.Background()

	t.Run("dollar amount and monthly default", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		reply := e.HandleUtterance(ctx, "add subscription netflix $15.99")
		assert.Equal(t, KindText, reply.Kind)
		assert.Contains(t, reply.Text, "netflix")

		subs, err := st.Subscriptions.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Equal(t, "netflix", subs[0].Name)
		assert.InDelta(t, 15.99, subs[0].Amount, 0.001)
		assert.Equal(t, subscription.CycleMonthly, subs[0].Cycle)
	})

	t.Run("yearly cycle from keyword", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		reply := e.HandleUtterance(ctx, "add subscription amazon prime $139 per year")
		assert.Equal(t, KindText, reply.Kind)

		subs, err := st.Subscriptions.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Equal(t, "amazon prime", subs[0].Name)
		assert.Equal(t, subscription.CycleYearly, subs[0].Cycle)
	})
}

func TestEngineOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("destination keyword navigates", func(t *testing.T) {
		nav := &fakeNavigator{}
		e, _ := newTestEngine(t, &fakeCalendar{}, WithNavigator(nav))

		reply := e.HandleUtterance(ctx, "open tasks")
		assert.Equal(t, KindAction, reply.Kind)
		require.NotNil(t, reply.Navigate)
		assert.Equal(t, DestTasks, *reply.Navigate)
		assert.Equal(t, []Destination{DestTasks}, nav.dests)
	})

	t.Run("ordinal opens a listed event", func(t *testing.T) {
		cal := &fakeCalendar{authorized: true, events: []calendar.Event{
			{ID: "ev1", Title: "Standup", Start: testNow.Add(time.Hour)},
			{ID: "ev2", Title: "Dentist", Start: testNow.Add(3 * time.Hour)},
		}}
		e, _ := newTestEngine(t, cal)

		listing := e.HandleUtterance(ctx, "what's on my calendar today?")
		assert.Contains(t, listing.Text, "1. Standup")
		assert.Contains(t, listing.Text, "2. Dentist")

		reply := e.HandleUtterance(ctx, "open 2")
		assert.Equal(t, KindAction, reply.Kind)
		assert.Contains(t, reply.Text, "Dentist")
		require.NotNil(t, reply.Navigate)
		assert.Equal(t, DestCalendar, *reply.Navigate)
	})

	t.Run("ordinal out of range", func(t *testing.T) {
		cal := &fakeCalendar{authorized: true, events: []calendar.Event{
			{ID: "ev1", Title: "Standup", Start: testNow.Add(time.Hour)},
		}}
		e, _ := newTestEngine(t, cal)

		e.HandleUtterance(ctx, "what's on my calendar today?")
		reply := e.HandleUtterance(ctx, "open 5")
		assert.Equal(t, KindText, reply.Kind)
		assert.Contains(t, reply.Text, "1 event")
	})

	t.Run("ordinal without a listing", func(t *testing.T) {
		e, _ := newTestEngine(t, &fakeCalendar{authorized: true})

		reply := e.HandleUtterance(ctx, "open 1")
		assert.Equal(t, KindText, reply.Kind)
		assert.Contains(t, reply.Text, "0 events")
	})

	t.Run("contextual last and first references", func(t *testing.T) {
		cal := &fakeCalendar{authorized: true, events: []calendar.Event{
			{ID: "ev1", Title: "Standup", Start: testNow.Add(time.Hour)},
			{ID: "ev2", Title: "Dentist", Start: testNow.Add(3 * time.Hour)},
			{ID: "ev3", Title: "Gym", Start: testNow.Add(5 * time.Hour)},
		}}
		e, _ := newTestEngine(t, cal)

		e.HandleUtterance(ctx, "what's on my calendar today?")

		reply := e.HandleUtterance(ctx, "open last")
		assert.Equal(t, KindAction, reply.Kind)
		assert.Contains(t, reply.Text, "Gym")

		reply = e.HandleUtterance(ctx, "open the first one")
		assert.Equal(t, KindAction, reply.Kind)
		assert.Contains(t, reply.Text, "Standup")
	})

	t.Run("title word opens a tracked event", func(t *testing.T) {
		cal := &fakeCalendar{authorized: true, events: []calendar.Event{
			{ID: "ev1", Title: "Quarterly Review", Start: testNow.Add(time.Hour)},
		}}
		e, _ := newTestEngine(t, cal)

		e.HandleUtterance(ctx, "what's on my calendar today?")
		reply := e.HandleUtterance(ctx, "open the quarterly one")
		assert.Equal(t, KindAction, reply.Kind)
		assert.Contains(t, reply.Text, "Quarterly Review")
	})

	t.Run("empty listing clears references", func(t *testing.T) {
		cal := &fakeCalendar{authorized: true, events: []calendar.Event{
			{ID: "ev1", Title: "Standup", Start: testNow.Add(time.Hour)},
		}}
		e, _ := newTestEngine(t, cal)

		e.HandleUtterance(ctx, "what's on my calendar today?")
		cal.events = nil
		e.HandleUtterance(ctx, "what's on my calendar today?")

		reply := e.HandleUtterance(ctx, "open 1")
		assert.Equal(t, KindText, reply.Kind)
		assert.Contains(t, reply.Text, "0 events")
	})
}

func TestEngineCalendarQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("unauthorized", func(t *testing.T) {
		e, _ := newTestEngine(t, &fakeCalendar{authorized: false})

		reply := e.HandleUtterance(ctx, "what's on my calendar today?")
		assert.Equal(t, KindText, reply.Kind)
		assert.Contains(t, reply.Text, "isn't set up")
	})

	t.Run("empty day", func(t *testing.T) {
		e, _ := newTestEngine(t, &fakeCalendar{authorized: true})

		reply := e.HandleUtterance(ctx, "any meetings today?")
		assert.Contains(t, reply.Text, "Nothing on your calendar")
	})

	t.Run("day listing caps at eight", func(t *testing.T) {
		cal := &fakeCalendar{authorized: true}
		for i := range 10 {
			cal.events = append(cal.events, calendar.Event{
				ID:    string(rune('a' + i)),
				Title: "Meeting",
				Start: testNow.Add(time.Duration(i) * time.Minute),
			})
		}
		e, _ := newTestEngine(t, cal)

		reply := e.HandleUtterance(ctx, "what's on my calendar today?")
		assert.Contains(t, reply.Text, "10 events")
		assert.Contains(t, reply.Text, "8. Meeting")
		assert.NotContains(t, reply.Text, "9. Meeting")
		assert.Contains(t, reply.Text, "…and 2 more")
		assert.Len(t, e.lastEvents, 8)
	})

	t.Run("all-day events render without a time", func(t *testing.T) {
		cal := &fakeCalendar{authorized: true, events: []calendar.Event{
			{ID: "ev1", Title: "Company Offsite", Start: testNow, AllDay: true},
		}}
		e, _ := newTestEngine(t, cal)

		reply := e.HandleUtterance(ctx, "what's on my calendar today?")
		assert.Contains(t, reply.Text, "All day:")
		assert.Contains(t, reply.Text, "1. Company Offsite")
		assert.NotContains(t, reply.Text, "AM")
		assert.NotContains(t, reply.Text, "PM")
	})

	t.Run("all-day events group ahead of timed ones", func(t *testing.T) {
		cal := &fakeCalendar{authorized: true, events: []calendar.Event{
			{ID: "ev1", Title: "Standup", Start: testNow.Add(time.Hour)},
			{ID: "ev2", Title: "Company Offsite", Start: testNow, AllDay: true},
		}}
		e, _ := newTestEngine(t, cal)

		reply := e.HandleUtterance(ctx, "what's on my calendar today?")
		assert.Contains(t, reply.Text, "All day:\n1. Company Offsite")
		assert.Contains(t, reply.Text, "Scheduled:\n2. Standup")

		require.Len(t, e.lastEvents, 2)
		assert.Equal(t, "Company Offsite", e.lastEvents[0].Title)

		open := e.HandleUtterance(ctx, "open 1")
		assert.Contains(t, open.Text, "Company Offsite")
	})

	t.Run("fetch error degrades to text", func(t *testing.T) {
		e, _ := newTestEngine(t, &fakeCalendar{authorized: true, err: assert.AnError})

		reply := e.HandleUtterance(ctx, "what's on my calendar today?")
		assert.Equal(t, KindText, reply.Kind)
		assert.Contains(t, reply.Text, "couldn't reach your calendar")
	})

	t.Run("week listing caps three per day", func(t *testing.T) {
		cal := &fakeCalendar{authorized: true}
		day := testNow.AddDate(0, 0, 1)
		for i := range 5 {
			cal.events = append(cal.events, calendar.Event{
				ID:    string(rune('a' + i)),
				Title: "Session",
				Start: day.Add(time.Duration(i) * time.Hour),
			})
		}
		e, _ := newTestEngine(t, cal)

		reply := e.HandleUtterance(ctx, "what's my schedule this week?")
		assert.Contains(t, reply.Text, "5 events")
		assert.Contains(t, reply.Text, "…and 2 more")
		assert.Len(t, e.lastEvents, 3)
	})
}

func TestEngineQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("task overview badges completion rate", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		for _, title := range []string{"one", "two", "three", "four"} {
			tk := task.Task{Title: title, Priority: task.PriorityMedium}
			require.NoError(t, st.Tasks.Create(ctx, &tk))
			if title != "four" {
				require.NoError(t, st.Tasks.Complete(ctx, tk.ID))
			}
		}

		reply := e.HandleUtterance(ctx, "how are my tasks?")
		assert.Equal(t, KindStats, reply.Kind)
		assert.Equal(t, 1, reply.Count)
		assert.Contains(t, reply.Text, "🌟 75% completion rate")
	})

	t.Run("due today list", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		due := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
		require.NoError(t, st.Tasks.Create(ctx, &task.Task{Title: "file expenses", Priority: task.PriorityMedium, Due: &due}))
		require.NoError(t, st.Tasks.Create(ctx, &task.Task{Title: "someday thing", Priority: task.PriorityMedium}))

		reply := e.HandleUtterance(ctx, "what's due today?")
		assert.Equal(t, KindTaskList, reply.Kind)
		assert.Equal(t, 1, reply.Count)
		assert.Contains(t, reply.Text, "file expenses")
		assert.NotContains(t, reply.Text, "someday thing")
	})

	t.Run("late tasks list the overdue ones", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		past := testNow.AddDate(0, 0, -2)
		require.NoError(t, st.Tasks.Create(ctx, &task.Task{Title: "renew passport", Priority: task.PriorityMedium, Due: &past}))
		require.NoError(t, st.Tasks.Create(ctx, &task.Task{Title: "someday thing", Priority: task.PriorityMedium}))

		reply := e.HandleUtterance(ctx, "which tasks are late?")
		assert.Equal(t, KindTaskList, reply.Kind)
		assert.Equal(t, 1, reply.Count)
		assert.Contains(t, reply.Text, "Overdue")
		assert.Contains(t, reply.Text, "renew passport")
		assert.NotContains(t, reply.Text, "someday thing")
	})

	t.Run("notes summary", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		require.NoError(t, st.Notes.Create(ctx, &note.Note{Title: "roof quote"}))
		require.NoError(t, st.Notes.Create(ctx, &note.Note{Title: "gift ideas"}))

		reply := e.HandleUtterance(ctx, "summarize my notes")
		assert.Equal(t, KindNotesSummary, reply.Kind)
		assert.Equal(t, 2, reply.Count)
		assert.Contains(t, reply.Text, "roof quote")
		assert.Contains(t, reply.Text, "gift ideas")
	})

	t.Run("finance summary balances the month", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		occurred := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
		require.NoError(t, st.Transactions.Create(ctx, &finance.Transaction{
			Kind: finance.KindIncome, Amount: 5000, Category: "salary", OccurredAt: occurred,
		}))
		require.NoError(t, st.Transactions.Create(ctx, &finance.Transaction{
			Kind: finance.KindExpense, Amount: 1200, Category: "rent", OccurredAt: occurred,
		}))

		reply := e.HandleUtterance(ctx, "how much did i spend this month?")
		assert.Equal(t, KindFinanceSummary, reply.Kind)
		assert.InDelta(t, 3800, reply.Balance, 0.001)
		assert.Contains(t, reply.Text, "$5,000")
		assert.Contains(t, reply.Text, "$1,200")
		assert.Contains(t, reply.Text, "rent")
	})

	t.Run("budget status icons", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		require.NoError(t, st.Budgets.Create(ctx, &finance.Budget{Category: "food", Limit: 300, Active: true}))
		occurred := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
		require.NoError(t, st.Transactions.Create(ctx, &finance.Transaction{
			Kind: finance.KindExpense, Amount: 250, Category: "food", OccurredAt: occurred,
		}))

		reply := e.HandleUtterance(ctx, "how are my budgets?")
		assert.Equal(t, KindStats, reply.Kind)
		assert.Contains(t, reply.Text, "🟡 food")
		assert.Contains(t, reply.Text, "(83%)")
	})

	t.Run("budget percentage clamps at 100", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		require.NoError(t, st.Budgets.Create(ctx, &finance.Budget{Category: "food", Limit: 300, Active: true}))
		occurred := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
		require.NoError(t, st.Transactions.Create(ctx, &finance.Transaction{
			Kind: finance.KindExpense, Amount: 450, Category: "food", OccurredAt: occurred,
		}))

		reply := e.HandleUtterance(ctx, "how are my budgets?")
		assert.Contains(t, reply.Text, "🔴 food")
		assert.Contains(t, reply.Text, "(100%)")
	})

	t.Run("budget over icon flips exactly at the limit", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		require.NoError(t, st.Budgets.Create(ctx, &finance.Budget{Category: "rent", Limit: 300, Active: true}))
		occurred := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
		require.NoError(t, st.Transactions.Create(ctx, &finance.Transaction{
			Kind: finance.KindExpense, Amount: 300, Category: "rent", OccurredAt: occurred,
		}))

		reply := e.HandleUtterance(ctx, "how are my budgets?")
		assert.Contains(t, reply.Text, "🔴 rent")
		assert.Contains(t, reply.Text, "(100%)")
	})

	t.Run("subscriptions summary totals monthly cost", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		require.NoError(t, st.Subscriptions.Create(ctx, &subscription.Subscription{
			Name: "netflix", Amount: 16, Cycle: subscription.CycleMonthly,
		}))
		require.NoError(t, st.Subscriptions.Create(ctx, &subscription.Subscription{
			Name: "prime", Amount: 120, Cycle: subscription.CycleYearly,
		}))

		reply := e.HandleUtterance(ctx, "what subscriptions do i have?")
		assert.Equal(t, KindStats, reply.Kind)
		assert.Equal(t, 2, reply.Count)
		assert.Contains(t, reply.Text, "$26/month")
	})

	t.Run("health summary flags goals", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		require.NoError(t, st.Health.Create(ctx, &health.Entry{Metric: health.MetricSteps, Value: 12000, Unit: "steps"}))
		require.NoError(t, st.Health.Create(ctx, &health.Entry{Metric: health.MetricSleep, Value: 6, Unit: "hours"}))

		reply := e.HandleUtterance(ctx, "how is my health?")
		assert.Equal(t, KindHealthSummary, reply.Kind)
		assert.Contains(t, reply.Text, "🎯")
		assert.Contains(t, reply.Text, "💤")
	})

	t.Run("stocks summary", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		require.NoError(t, st.Portfolio.Create(ctx, &portfolio.Holding{Symbol: "aapl", Quantity: 10, AvgCost: 150}))

		reply := e.HandleUtterance(ctx, "how is my portfolio doing?")
		assert.Equal(t, KindStats, reply.Kind)
		assert.Contains(t, reply.Text, "AAPL")
		assert.Contains(t, reply.Text, "$1,500")
	})

	t.Run("house summary lists utilities", func(t *testing.T) {
		e, st := newTestEngine(t, &fakeCalendar{})

		require.NoError(t, st.Houses.Create(ctx, &house.House{
			Address: "12 elm street",
			Utilities: []house.Utility{
				{Provider: "city power", Service: "electric"},
			},
		}))

		reply := e.HandleUtterance(ctx, "who provides electric at my house?")
		assert.Contains(t, reply.Text, "12 elm street")
		assert.Contains(t, reply.Text, "city power")
	})

	t.Run("capabilities", func(t *testing.T) {
		e, _ := newTestEngine(t, &fakeCalendar{})

		reply := e.HandleUtterance(ctx, "what can you do?")
		assert.Equal(t, KindCapabilities, reply.Kind)
	})

	t.Run("default fallback", func(t *testing.T) {
		e, _ := newTestEngine(t, &fakeCalendar{})

		reply := e.HandleUtterance(ctx, "tell me a joke")
		assert.Equal(t, KindText, reply.Kind)
		assert.Contains(t, reply.Text, "not sure")
	})
}

func TestEngineTranscript(t *testing.T) {
	ctx := context.Background()
	e, st := newTestEngine(t, &fakeCalendar{})

	e.HandleUtterance(ctx, "what can you do?")

	msgs, err := st.Transcript.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "what can you do?", msgs[0].Content)
	assert.Equal(t, string(KindCapabilities), msgs[1].Kind)
}
