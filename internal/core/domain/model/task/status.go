package task

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of a task.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	New
	InProgress
	OnHold
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		New:        "New",
		InProgress: "InProgress",
		OnHold:     "OnHold",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid task status", s))
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
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a task status", s))
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Start moves New to InProgress.
func (s Status) Start() (Status, error) {
	if s != New {
		return 0, s.invalid("start")
	}
	return InProgress, nil
}

// Hold moves New or InProgress to OnHold.
func (s Status) Hold() (Status, error) {
	if s != New && s != InProgress {
		return 0, s.invalid("hold")
	}
	return OnHold, nil
}

// Resume moves OnHold back to InProgress.
func (s Status) Resume() (Status, error) {
	if s != OnHold {
		return 0, s.invalid("resume")
	}
	return InProgress, nil
}

// Complete is legal from any non-terminal status.
func (s Status) Complete() (Status, error) {
	if err := s.ensureActive("complete"); err != nil {
		return 0, err
	}
	return Completed, nil
}

// Cancel is legal from any non-terminal status.
func (s Status) Cancel() (Status, error) {
	if err := s.ensureActive("cancel"); err != nil {
		return 0, err
	}
	return Cancelled, nil
}

// Reset sends a non-terminal task back to New. Used when its route is cancelled mid-way.
func (s Status) Reset() (Status, error) {
	if err := s.ensureActive("reset"); err != nil {
		return 0, err
	}
	return New, nil
}

func (s Status) ensureActive(action string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return s.invalid(action)
	}
	return nil
}

func (s Status) invalid(action string) error {
	return errs.NewInvalidTransitionError(kernel.EntityTask, s.String(), action)
}
