// Package pal wires stores, the assistant engine, and shared services into
// the App consumed by commands and the TUI.
package pal

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/pal/internal/assistant"
	"github.com/colonyops/pal/internal/core/calendar"
	"github.com/colonyops/pal/internal/core/config"
	"github.com/colonyops/pal/internal/core/kv"
	"github.com/colonyops/pal/internal/data/db"
	"github.com/colonyops/pal/internal/data/stores"
)

// App is the central entry point for all pal operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Assistant *assistant.Engine
	Stores    assistant.Stores
	Calendar  calendar.Service
	Events    calendar.Store
	Settings  kv.KV
	Config    *config.Config
	DB        *db.DB
}

// NewApp constructs an App over an open database.
func NewApp(cfg *config.Config, database *db.DB, log zerolog.Logger) *App {
	st := assistant.Stores{
		Tasks:         stores.NewTaskStore(database),
		Notes:         stores.NewNoteStore(database),
		Transactions:  stores.NewTransactionStore(database),
		Budgets:       stores.NewBudgetStore(database),
		Health:        stores.NewHealthStore(database),
		Subscriptions: stores.NewSubscriptionStore(database),
		Portfolio:     stores.NewPortfolioStore(database),
		Houses:        stores.NewHouseStore(database),
		Transcript:    stores.NewChatStore(database, cfg.Chat.MaxMessages),
	}

	events := stores.NewCalendarStore(database)
	cal := NewLocalCalendar(events, cfg.Calendar.Enabled)

	return &App{
		Assistant: assistant.New(st, cal, log),
		Stores:    st,
		Calendar:  cal,
		Events:    events,
		Settings:  stores.NewKVStore(database),
		Config:    cfg,
		DB:        database,
	}
}
