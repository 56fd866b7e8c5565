// Package health defines the health-metric domain model.
package health

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrUnknownMetric is returned when a metric name is not recognized.
var ErrUnknownMetric = errors.New("unknown health metric")

// Metric identifies a tracked health measurement.
type Metric string

const (
	MetricSteps         Metric = "steps"
	MetricSleep         Metric = "sleep"
	MetricWaterIntake   Metric = "water_intake"
	MetricCalories      Metric = "calories"
	MetricWeight        Metric = "weight"
	MetricHeartRate     Metric = "heart_rate"
	MetricMood          Metric = "mood"
	MetricEnergy        Metric = "energy"
	MetricBloodPressure Metric = "blood_pressure"
)

// Metrics lists all known metrics in display order.
var Metrics = []Metric{
	MetricSteps,
	MetricSleep,
	MetricWaterIntake,
	MetricCalories,
	MetricWeight,
	MetricHeartRate,
	MetricMood,
	MetricEnergy,
	MetricBloodPressure,
}

// Valid reports whether m is a known metric.
func (m Metric) Valid() bool {
	for _, known := range Metrics {
		if m == known {
			return true
		}
	}
	return false
}

// DefaultUnit returns the unit a metric is stored in.
func (m Metric) DefaultUnit() string {
	switch m {
	case MetricSteps:
		return "steps"
	case MetricSleep:
		return "hours"
	case MetricWaterIntake:
		return "ml"
	case MetricCalories:
		return "kcal"
	case MetricWeight:
		return "kg"
	case MetricHeartRate:
		return "bpm"
	case MetricMood, MetricEnergy:
		return "/10"
	case MetricBloodPressure:
		return "mmHg"
	}
	return ""
}

// Label returns the metric name as human-readable text.
func (m Metric) Label() string {
	return strings.ReplaceAll(string(m), "_", " ")
}

// Entry represents one logged health measurement.
type Entry struct {
	ID       string    `json:"id"`
	Metric   Metric    `json:"metric"`
	Value    float64   `json:"value"`
	Unit     string    `json:"unit"`
	LoggedAt time.Time `json:"logged_at"`
}

// Store defines the interface for health entry persistence.
type Store interface {
	// Create persists a new entry. The store populates ID and LoggedAt if
	// not already set.
	Create(ctx context.Context, e *Entry) error

	// List returns all entries ordered by logged_at DESC (most recent first).
	List(ctx context.Context) ([]Entry, error)

	// ListSince returns entries logged at or after the given time,
	// ordered by logged_at DESC.
	ListSince(ctx context.Context, since time.Time) ([]Entry, error)
}
