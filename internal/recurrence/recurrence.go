// Package recurrence computes the next occurrence of a repeating reminder
// from its previous due instant. It is pure: no clock, no state.
package recurrence

import (
	"errors"
	"fmt"
	"time"

	"github.com/dimasprtm/wa-reminder/internal/model"
)

var (
	ErrInvalidRepeat   = errors.New("invalid repeat kind")
	ErrInvalidInterval = errors.New("custom repeat requires a positive interval")
	ErrInvalidUnit     = errors.New("custom repeat requires a valid unit")
	ErrUnexpectedSpec  = errors.New("repeat interval/unit only allowed for custom repeat")
)

// Validate checks a repeat specification at creation or update time.
// Custom requires both a positive interval and a known unit; every other
// kind must not carry either.
func Validate(repeat model.Repeat, interval *int, unit *model.RepeatUnit) error {
	switch repeat {
	case model.RepeatNone, model.RepeatDaily, model.RepeatWeekly, model.RepeatMonthly:
		if interval != nil || unit != nil {
			return ErrUnexpectedSpec
		}
		return nil
	case model.RepeatCustom:
		if interval == nil || *interval < 1 {
			return ErrInvalidInterval
		}
		if unit == nil {
			return ErrInvalidUnit
		}
		switch *unit {
		case model.UnitMinutes, model.UnitHours, model.UnitDays:
			return nil
		default:
			return ErrInvalidUnit
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRepeat, repeat)
	}
}

// Next returns the occurrence following prev for the given repeat spec.
// It must not be called for RepeatNone. The result is always after prev
// for any spec that passes Validate.
func Next(prev time.Time, repeat model.Repeat, interval *int, unit *model.RepeatUnit) (time.Time, error) {
	switch repeat {
	case model.RepeatDaily:
		return prev.Add(24 * time.Hour), nil
	case model.RepeatWeekly:
		return prev.Add(7 * 24 * time.Hour), nil
	case model.RepeatMonthly:
		return addMonthClamped(prev), nil
	case model.RepeatCustom:
		if err := Validate(repeat, interval, unit); err != nil {
			return time.Time{}, err
		}
		return prev.Add(time.Duration(*interval) * unitDuration(*unit)), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidRepeat, repeat)
	}
}

func unitDuration(unit model.RepeatUnit) time.Duration {
	switch unit {
	case model.UnitMinutes:
		return time.Minute
	case model.UnitHours:
		return time.Hour
	default:
		return 24 * time.Hour
	}
}

// addMonthClamped advances t by one calendar month, clamping the day of
// month to the last valid day of the target month. Plain AddDate would
// overflow Jan 31 into March.
func addMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	// Day 0 of month+2 is the last day of month+1; time.Date normalizes
	// month overflow across year boundaries.
	last := time.Date(year, month+2, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > last {
		day = last
	}

	return time.Date(year, month+1, day, hour, min, sec, t.Nanosecond(), t.Location())
}
