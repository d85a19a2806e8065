package route_test

import (
	"testing"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Transitions(t *testing.T) {
	all := []route.Status{route.Planned, route.InProgress, route.Completed, route.Cancelled}

	tests := []struct {
		name    string
		apply   func(route.Status) (route.Status, error)
		allowed map[route.Status]route.Status
	}{
		{"start", route.Status.Start, map[route.Status]route.Status{route.Planned: route.InProgress}},
		{"complete", route.Status.Complete, map[route.Status]route.Status{route.InProgress: route.Completed}},
		{"cancel", route.Status.Cancel, map[route.Status]route.Status{
			route.Planned: route.Cancelled, route.InProgress: route.Cancelled,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, from := range all {
				got, err := tt.apply(from)
				if want, ok := tt.allowed[from]; ok {
					require.NoError(t, err)
					assert.Equal(t, want, got)
					continue
				}
				assert.ErrorIs(t, err, errs.ErrInvalidTransition, "from %s", from)
			}
		})
	}
}

func TestStatus_Parse(t *testing.T) {
	s, err := route.ParseStatus("InProgress")
	require.NoError(t, err)
	assert.Equal(t, route.InProgress, s)

	_, err = route.ParseStatus("Paused")
	assert.Error(t, err)
	assert.Error(t, route.Unknown.Validate())
	assert.True(t, route.Completed.IsTerminal())
	assert.False(t, route.Planned.IsTerminal())
}
