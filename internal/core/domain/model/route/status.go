package route

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of a route.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Planned
	InProgress
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Planned:    "Planned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid route status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus is the inverse of String.
func ParseStatus(s string) (Status, error) {
	for st, name := range getStatusStrings() {
		if st != Unknown && name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a route status", s))
}

func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Start moves Planned to InProgress.
func (s Status) Start() (Status, error) {
	if s != Planned {
		return 0, s.invalid("start")
	}
	return InProgress, nil
}

// Complete moves InProgress to Completed.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, s.invalid("complete")
	}
	return Completed, nil
}

// Cancel moves Planned or InProgress to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Planned && s != InProgress {
		return 0, s.invalid("cancel")
	}
	return Cancelled, nil
}

func (s Status) invalid(action string) error {
	return errs.NewInvalidTransitionError(kernel.EntityRoute, s.String(), action)
}
