package services

import (
	"time"

	"pocketledger/internal/models"
)

// FilterTransactions returns the transactions whose date falls inside the
// window described by filter, evaluated against now. The input is never
// modified and the result is always a new slice.
func FilterTransactions(transactions []models.Transaction, filter models.FilterState, now time.Time) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	in := windowFor(filter, models.DateOf(now))
	if in == nil {
		return out
	}
	for _, t := range transactions {
		if in(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// windowFor returns a membership test for the window, or nil if the window
// is empty.
func windowFor(filter models.FilterState, today models.Date) func(models.Date) bool {
	switch filter.Range {
	case models.TimeRangeMonth:
		return func(d models.Date) bool {
			return d.Year() == today.Year() && d.Month() == today.Month()
		}
	case models.TimeRangeYear:
		return func(d models.Date) bool {
			return d.Year() == today.Year()
		}
	case models.TimeRangeCustom:
		if filter.CustomStart.IsZero() || filter.CustomEnd.IsZero() {
			return nil
		}
		start := filter.CustomStart.StartOfDay()
		end := filter.CustomEnd.EndOfDay()
		if start.After(end) {
			return nil
		}
		return func(d models.Date) bool {
			at := d.StartOfDay()
			return !at.Before(start) && !at.After(end)
		}
	}
	return nil
}
