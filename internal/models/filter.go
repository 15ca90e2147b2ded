package models

import "fmt"

// TimeRange selects the window used by the analysis view.
type TimeRange string

const (
	TimeRangeMonth  TimeRange = "month"
	TimeRangeYear   TimeRange = "year"
	TimeRangeCustom TimeRange = "custom"
)

// Valid reports whether r is a known range.
func (r TimeRange) Valid() bool {
	switch r {
	case TimeRangeMonth, TimeRangeYear, TimeRangeCustom:
		return true
	}
	return false
}

// FilterState is the analysis window. CustomStart and CustomEnd only apply
// when Range is custom. It lives for one process and is never persisted.
type FilterState struct {
	Range       TimeRange `json:"range"`
	CustomStart Date      `json:"custom_start" swaggertype:"string" example:"2024-03-01"`
	CustomEnd   Date      `json:"custom_end" swaggertype:"string" example:"2024-03-31"`
}

// DefaultFilterState is the current month, with the custom bounds primed to
// the first of the month through today.
func DefaultFilterState(today Date) FilterState {
	return FilterState{
		Range:       TimeRangeMonth,
		CustomStart: NewDate(today.Year(), today.Month(), 1),
		CustomEnd:   today,
	}
}

// ContextLabel is the human-readable description of the window handed to
// the insight prompt.
func (f FilterState) ContextLabel() string {
	if f.Range == TimeRangeCustom {
		return fmt.Sprintf("From %s to %s", f.CustomStart, f.CustomEnd)
	}
	return fmt.Sprintf("Current %s", f.Range)
}
