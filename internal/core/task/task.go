// Package task defines the task domain model for the personal task list.
package task

import "time"

// Priority ranks how urgently a task needs attention.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Task represents a single actionable item.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Priority    Priority   `json:"priority"`
	Due         *time.Time `json:"due,omitempty"`
	Done        bool       `json:"done"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DueToday reports whether the task is due on the same calendar day as now.
func (t Task) DueToday(now time.Time) bool {
	if t.Due == nil {
		return false
	}
	y1, m1, d1 := t.Due.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Overdue reports whether the task's due date is strictly before now and not today.
func (t Task) Overdue(now time.Time) bool {
	if t.Due == nil || t.Done {
		return false
	}
	return t.Due.Before(now) && !t.DueToday(now)
}
