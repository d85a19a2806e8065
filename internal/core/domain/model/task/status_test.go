package task_test

import (
	"testing"

	"logistics/internal/core/domain/model/task"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []task.Status{task.New, task.InProgress, task.OnHold, task.Completed, task.Cancelled}

func TestStatus_ValidateAndString(t *testing.T) {
	for _, s := range allStatuses {
		require.NoError(t, s.Validate())
		parsed, err := task.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	assert.Error(t, task.Unknown.Validate())
	assert.Error(t, task.Status(17).Validate())
	assert.Equal(t, "Unknown", task.Status(17).String())

	_, err := task.ParseStatus("Done")
	assert.True(t, errs.IsValidation(err))
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(task.Status) (task.Status, error)

	tests := []struct {
		name    string
		apply   transition
		allowed map[task.Status]task.Status
	}{
		{
			name:    "start",
			apply:   task.Status.Start,
			allowed: map[task.Status]task.Status{task.New: task.InProgress},
		},
		{
			name:    "hold",
			apply:   task.Status.Hold,
			allowed: map[task.Status]task.Status{task.New: task.OnHold, task.InProgress: task.OnHold},
		},
		{
			name:    "resume",
			apply:   task.Status.Resume,
			allowed: map[task.Status]task.Status{task.OnHold: task.InProgress},
		},
		{
			name:  "complete",
			apply: task.Status.Complete,
			allowed: map[task.Status]task.Status{
				task.New: task.Completed, task.InProgress: task.Completed, task.OnHold: task.Completed,
			},
		},
		{
			name:  "cancel",
			apply: task.Status.Cancel,
			allowed: map[task.Status]task.Status{
				task.New: task.Cancelled, task.InProgress: task.Cancelled, task.OnHold: task.Cancelled,
			},
		},
		{
			name:  "reset",
			apply: task.Status.Reset,
			allowed: map[task.Status]task.Status{
				task.New: task.New, task.InProgress: task.New, task.OnHold: task.New,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, from := range allStatuses {
				got, err := tt.apply(from)
				want, ok := tt.allowed[from]
				if ok {
					require.NoError(t, err, "from %s", from)
					assert.Equal(t, want, got, "from %s", from)
					continue
				}
				require.Error(t, err, "from %s", from)
				assert.ErrorIs(t, err, errs.ErrInvalidTransition, "from %s", from)
			}
		})
	}
}

func TestStatus_TerminalStatesRejectEverything(t *testing.T) {
	for _, from := range []task.Status{task.Completed, task.Cancelled} {
		assert.True(t, from.IsTerminal())
		for _, apply := range []func(task.Status) (task.Status, error){
			task.Status.Start, task.Status.Hold, task.Status.Resume,
			task.Status.Complete, task.Status.Cancel, task.Status.Reset,
		} {
			_, err := apply(from)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	}
}
