package statistics

import (
	"fmt"
	"time"

	"logistics/internal/pkg/errs"
)

// Period is the half-open window [Start, End).
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewPeriod requires End to be after Start. Both are normalized to UTC.
func NewPeriod(start, end time.Time) (Period, error) {
	if !end.After(start) {
		return Period{}, errs.NewValueIsInvalidErrorWithCause(
			"period",
			fmt.Errorf("end %s is not after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)),
		)
	}
	return Period{Start: start.UTC(), End: end.UTC()}, nil
}

// PreviousDay is yesterday's UTC calendar day relative to now.
func PreviousDay(now time.Time) Period {
	end := startOfDay(now)
	return Period{Start: end.AddDate(0, 0, -1), End: end}
}

// LastDays is the rolling window of the n full days before today, plus today so far.
func LastDays(now time.Time, n int) Period {
	end := startOfDay(now).AddDate(0, 0, 1)
	return Period{Start: end.AddDate(0, 0, -n-1), End: end}
}

// Contains reports whether t falls in [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Key is a stable cache key fragment.
func (p Period) Key() string {
	return p.Start.UTC().Format(time.RFC3339) + "_" + p.End.UTC().Format(time.RFC3339)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
