package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/ports/portstest"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeTaskStatusCommandHandler_Start_CascadesToRouteAndNotifies(t *testing.T) {
	// Arrange
	ctx := t.Context()
	e := newEnv(t)
	tk := e.task(t, task.New)
	r := e.route(t, route.Planned)

	uow := NewMockUoW()
	factory := new(MockLifecycleUoWFactory)
	notifier := new(portstest.MockNotifier)

	factory.On("Create").Return(uow).Once()
	uow.expectTx(ctx, 1)
	uow.Users.On("Get", ctx, e.acme.Driver.ID()).Return(e.acme.Driver, nil).Once()
	uow.Tasks.On("Get", ctx, e.taskID).Return(tk, nil).Once()
	uow.Routes.On("GetByTask", ctx, e.taskID).Return(r, nil).Once()
	uow.Tasks.On("Update", ctx, tk).Return(nil).Once()
	uow.Routes.On("Update", ctx, r).Return(nil).Once()
	notifier.On("Notify", ctx, mock.MatchedBy(func(tr kernel.Transition) bool {
		return tr.Entity == kernel.EntityTask && !tr.Cascade
	})).Return(nil).Once()
	notifier.On("Notify", ctx, mock.MatchedBy(func(tr kernel.Transition) bool {
		return tr.Entity == kernel.EntityRoute && tr.Cascade
	})).Return(errors.New("broker down")).Once()

	cmd, err := commands.NewChangeTaskStatusCommand(e.acme.Driver.ID(), e.taskID, commands.TaskActionStart)
	require.NoError(t, err)
	handler := commands.NewChangeTaskStatusCommandHandler(factory, e.clock, notifier, nil)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err, "notification failures never fail the operation")
	assert.Equal(t, task.InProgress, tk.Status())
	assert.Equal(t, route.InProgress, r.Status())
	require.NotNil(t, r.ActualStartTime())
	assert.Equal(t, t0, *r.ActualStartTime())
	factory.AssertExpectations(t)
	uow.AssertAll(t)
	notifier.AssertExpectations(t)
}

func TestChangeTaskStatusCommandHandler_Hold_DoesNotTouchRoute(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	tk := e.task(t, task.InProgress)
	r := e.route(t, route.InProgress)

	uow := NewMockUoW()
	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.expectTx(ctx, 1)
	uow.Users.On("Get", ctx, e.acme.Operator.ID()).Return(e.acme.Operator, nil).Once()
	uow.Tasks.On("Get", ctx, e.taskID).Return(tk, nil).Once()
	uow.Routes.On("GetByTask", ctx, e.taskID).Return(r, nil).Once()
	uow.Tasks.On("Update", ctx, tk).Return(nil).Once()

	cmd, err := commands.NewChangeTaskStatusCommand(e.acme.Operator.ID(), e.taskID, commands.TaskActionHold)
	require.NoError(t, err)
	handler := commands.NewChangeTaskStatusCommandHandler(factory, e.clock, nil, nil)

	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, task.OnHold, tk.Status())
	uow.AssertAll(t)
}

func TestChangeTaskStatusCommandHandler_RetriesOnceOnConflict(t *testing.T) {
	// Arrange
	ctx := t.Context()
	e := newEnv(t)
	first, second := e.task(t, task.InProgress), e.task(t, task.InProgress)

	uow := NewMockUoW()
	factory := new(MockLifecycleUoWFactory)
	notifier := new(portstest.MockNotifier)

	factory.On("Create").Return(uow).Twice()
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.Users.On("Get", ctx, e.acme.Manager.ID()).Return(e.acme.Manager, nil).Twice()
	uow.Tasks.On("Get", ctx, e.taskID).Return(first, nil).Once()
	uow.Tasks.On("Get", ctx, e.taskID).Return(second, nil).Once()
	uow.Routes.On("GetByTask", ctx, e.taskID).Return(nil, errs.NewObjectNotFoundError("route", e.taskID)).Twice()
	uow.Tasks.On("Update", ctx, first).Return(errs.NewConflictError("task", e.taskID.String(), 1)).Once()
	uow.Tasks.On("Update", ctx, second).Return(nil).Once()
	notifier.On("Notify", ctx, mock.Anything).Return(nil).Once()

	cmd, err := commands.NewChangeTaskStatusCommand(e.acme.Manager.ID(), e.taskID, commands.TaskActionComplete)
	require.NoError(t, err)
	handler := commands.NewChangeTaskStatusCommandHandler(factory, e.clock, notifier, nil)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, task.Completed, second.Status())
	factory.AssertExpectations(t)
	uow.AssertAll(t)
	notifier.AssertExpectations(t)
}

func TestChangeTaskStatusCommandHandler_SecondConflictIsReturned(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)

	uow := NewMockUoW()
	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Twice()
	uow.expectAborted(ctx, 2)
	uow.Users.On("Get", ctx, e.acme.Manager.ID()).Return(e.acme.Manager, nil).Twice()
	uow.Tasks.On("Get", ctx, e.taskID).Return(e.task(t, task.New), nil).Once()
	uow.Tasks.On("Get", ctx, e.taskID).Return(e.task(t, task.New), nil).Once()
	uow.Routes.On("GetByTask", ctx, e.taskID).Return(nil, errs.NewObjectNotFoundError("route", e.taskID)).Twice()
	uow.Tasks.On("Update", ctx, mock.Anything).Return(errs.NewConflictError("task", e.taskID.String(), 1)).Twice()

	cmd, err := commands.NewChangeTaskStatusCommand(e.acme.Manager.ID(), e.taskID, commands.TaskActionCancel)
	require.NoError(t, err)
	handler := commands.NewChangeTaskStatusCommandHandler(factory, e.clock, nil, nil)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertAll(t)
}

func TestChangeTaskStatusCommandHandler_TerminalTaskFailsWithoutWrites(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	tk := e.task(t, task.Completed)

	uow := NewMockUoW()
	factory := new(MockLifecycleUoWFactory)
	notifier := new(portstest.MockNotifier)
	factory.On("Create").Return(uow).Once()
	uow.expectAborted(ctx, 1)
	uow.Users.On("Get", ctx, e.acme.Manager.ID()).Return(e.acme.Manager, nil).Once()
	uow.Tasks.On("Get", ctx, e.taskID).Return(tk, nil).Once()
	uow.Routes.On("GetByTask", ctx, e.taskID).Return(nil, errs.NewObjectNotFoundError("route", e.taskID)).Once()

	cmd, err := commands.NewChangeTaskStatusCommand(e.acme.Manager.ID(), e.taskID, commands.TaskActionCancel)
	require.NoError(t, err)
	handler := commands.NewChangeTaskStatusCommandHandler(factory, e.clock, notifier, nil)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertAll(t)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestChangeTaskStatusCommandHandler_ForeignManagerIsForbidden(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	tk := e.task(t, task.New)

	uow := NewMockUoW()
	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.expectAborted(ctx, 1)
	uow.Users.On("Get", ctx, e.globex.Manager.ID()).Return(e.globex.Manager, nil).Once()
	uow.Tasks.On("Get", ctx, e.taskID).Return(tk, nil).Once()
	uow.Routes.On("GetByTask", ctx, e.taskID).Return(nil, errs.NewObjectNotFoundError("route", e.taskID)).Once()

	cmd, err := commands.NewChangeTaskStatusCommand(e.globex.Manager.ID(), e.taskID, commands.TaskActionComplete)
	require.NoError(t, err)
	handler := commands.NewChangeTaskStatusCommandHandler(factory, e.clock, nil, nil)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, task.New, tk.Status())
	uow.AssertAll(t)
}

func TestChangeTaskStatusCommandHandler_InvalidCommand(t *testing.T) {
	ctx := t.Context()
	var cmd commands.ChangeTaskStatusCommand
	factory := new(MockLifecycleUoWFactory)
	handler := commands.NewChangeTaskStatusCommandHandler(factory, kernel.SystemClock{}, nil, nil)

	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrChangeTaskStatusCommandIsNotConstructed)
	factory.AssertExpectations(t)
}

func TestChangeTaskStatusCommandHandler_BeginError(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	expected := errors.New("begin transaction failed")

	uow := NewMockUoW()
	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(expected).Once()

	cmd, err := commands.NewChangeTaskStatusCommand(e.acme.Driver.ID(), e.taskID, commands.TaskActionStart)
	require.NoError(t, err)
	handler := commands.NewChangeTaskStatusCommandHandler(factory, e.clock, nil, nil)

	err = handler.Handle(ctx, cmd)

	assert.Equal(t, expected, err)
	uow.AssertAll(t)
}
