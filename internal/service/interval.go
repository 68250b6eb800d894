package service

import (
	"time"

	"github.com/fieldhouse/ledger/internal/domain"
)

// AddInterval advances t by count units of the given calendar unit.
//
// Month and year arithmetic clamps the day of month to the last day of the
// target month instead of letting the overflow spill into the following
// month: Jan 31 + 1 month is Feb 28 (Feb 29 in a leap year), not Mar 3.
// Billing periods anchored near the end of a month therefore always end in
// the month customers expect.
func AddInterval(t time.Time, unit domain.IntervalUnit, count int32) (time.Time, error) {
	n := int(count)
	switch unit {
	case domain.IntervalDay:
		return t.AddDate(0, 0, n), nil
	case domain.IntervalMonth:
		return addMonthsClamped(t, n), nil
	case domain.IntervalYear:
		return addMonthsClamped(t, n*12), nil
	default:
		return time.Time{}, ErrInvalidInterval
	}
}

func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	// Normalize the target month first with day pinned to 1 so AddDate's
	// overflow rule cannot kick in, then clamp the day.
	first := time.Date(year, month, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, months, 0)
	if last := daysIn(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
