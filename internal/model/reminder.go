package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a reminder. Sent and cancelled are
// terminal.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusSent      Status = "sent"
	StatusCancelled Status = "cancelled"
)

// Repeat describes how a reminder recurs after delivery.
type Repeat string

const (
	RepeatNone    Repeat = "none"
	RepeatDaily   Repeat = "daily"
	RepeatWeekly  Repeat = "weekly"
	RepeatMonthly Repeat = "monthly"
	RepeatCustom  Repeat = "custom"
)

// RepeatUnit is the interval unit for custom repeats.
type RepeatUnit string

const (
	UnitMinutes RepeatUnit = "minutes"
	UnitHours   RepeatUnit = "hours"
	UnitDays    RepeatUnit = "days"
)

// Reminder is the unit of scheduled work. RecipientID is nil when the
// reminder is delivered to its owner. DueAt is always stored in UTC.
type Reminder struct {
	ID               uuid.UUID   `json:"id"`
	OwnerID          uuid.UUID   `json:"owner_id"`
	RecipientID      *uuid.UUID  `json:"recipient_id,omitempty"`
	Title            string      `json:"title"`
	DueAt            time.Time   `json:"due_at"`
	Repeat           Repeat      `json:"repeat"`
	RepeatInterval   *int        `json:"repeat_interval,omitempty"`
	RepeatUnit       *RepeatUnit `json:"repeat_unit,omitempty"`
	FormattedMessage string      `json:"formatted_message,omitempty"`
	Status           Status      `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// Recurring reports whether the reminder is re-armed after delivery.
func (r Reminder) Recurring() bool {
	return r.Repeat != RepeatNone
}

// Terminal reports whether the status admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusSent || s == StatusCancelled
}
