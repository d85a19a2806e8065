package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/ports/portstest"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeTaskStatusCommandHandler_Complete_InvalidatesCompanyReports(t *testing.T) {
	// Arrange
	ctx := t.Context()
	e := newEnv(t)
	tk := e.task(t, task.InProgress)
	r := e.route(t, route.InProgress)

	uow := NewMockUoW()
	factory := new(MockLifecycleUoWFactory)
	cache := new(portstest.MockReportCache)
	factory.On("Create").Return(uow).Once()
	uow.expectTx(ctx, 1)
	uow.Users.On("Get", ctx, e.acme.Manager.ID()).Return(e.acme.Manager, nil).Once()
	uow.Tasks.On("Get", ctx, e.taskID).Return(tk, nil).Once()
	uow.Routes.On("GetByTask", ctx, e.taskID).Return(r, nil).Once()
	uow.Tasks.On("Update", ctx, tk).Return(nil).Once()
	uow.Routes.On("Update", ctx, r).Return(nil).Once()
	cache.On("Invalidate", ctx, e.acme.Company.ID()).Return(nil).Once()

	cmd, err := commands.NewChangeTaskStatusCommand(e.acme.Manager.ID(), e.taskID, commands.TaskActionComplete)
	require.NoError(t, err)
	handler := commands.NewChangeTaskStatusCommandHandler(factory, e.clock, nil, cache)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, task.Completed, tk.Status())
	assert.Equal(t, route.Completed, r.Status())
	uow.AssertAll(t)
	cache.AssertExpectations(t)
}

func TestChangeTaskStatusCommandHandler_RejectedTransitionKeepsReports(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)

	uow := NewMockUoW()
	factory := new(MockLifecycleUoWFactory)
	cache := new(portstest.MockReportCache)
	factory.On("Create").Return(uow).Once()
	uow.expectAborted(ctx, 1)
	uow.Users.On("Get", ctx, e.acme.Manager.ID()).Return(e.acme.Manager, nil).Once()
	uow.Tasks.On("Get", ctx, e.taskID).Return(e.task(t, task.Completed), nil).Once()
	uow.Routes.On("GetByTask", ctx, e.taskID).Return(nil, errs.NewObjectNotFoundError("route", e.taskID)).Once()

	cmd, err := commands.NewChangeTaskStatusCommand(e.acme.Manager.ID(), e.taskID, commands.TaskActionCancel)
	require.NoError(t, err)

	err = commands.NewChangeTaskStatusCommandHandler(factory, e.clock, nil, cache).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	uow.AssertAll(t)
}

func TestCreateTaskCommandHandler_InvalidatesCompanyReports(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)

	uow := NewMockUoW()
	factory := new(MockLifecycleUoWFactory)
	cache := new(portstest.MockReportCache)
	factory.On("Create").Return(uow).Once()
	uow.expectTx(ctx, 1)
	uow.Users.On("Get", ctx, e.acme.Operator.ID()).Return(e.acme.Operator, nil).Once()
	uow.Tasks.On("Add", ctx, mock.AnythingOfType("*task.Task")).Return(nil).Once()
	cache.On("Invalidate", ctx, e.acme.Company.ID()).Return(nil).Once()

	cmd, err := commands.NewCreateTaskCommand(e.acme.Operator.ID(), e.acme.Company.ID(), "Deliver", "", nil, nil)
	require.NoError(t, err)

	_, err = commands.NewCreateTaskCommandHandler(factory, e.clock, cache).Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertAll(t)
	cache.AssertExpectations(t)
}

func TestCreateTaskCommandHandler_ForeignActorIsForbiddenBeforeAssigneeLookup(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	unknown := kernel.NewUUID()

	uow := NewMockUoW()
	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.expectAborted(ctx, 1)
	uow.Users.On("Get", ctx, e.globex.Operator.ID()).Return(e.globex.Operator, nil).Once()

	cmd, err := commands.NewCreateTaskCommand(e.globex.Operator.ID(), e.acme.Company.ID(),
		"Deliver", "", kernel.Ptr(unknown), nil)
	require.NoError(t, err)

	_, err = commands.NewCreateTaskCommandHandler(factory, e.clock, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	uow.Users.AssertNotCalled(t, "Get", ctx, unknown)
	uow.AssertAll(t)
}

func TestCreateTaskCommandHandler_UnknownAssigneeIsInvalid(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	unknown := kernel.NewUUID()

	uow := NewMockUoW()
	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.expectAborted(ctx, 1)
	uow.Users.On("Get", ctx, e.acme.Operator.ID()).Return(e.acme.Operator, nil).Once()
	uow.Users.On("Get", ctx, unknown).Return(nil, errs.NewObjectNotFoundError("user", unknown)).Once()

	cmd, err := commands.NewCreateTaskCommand(e.acme.Operator.ID(), e.acme.Company.ID(),
		"Deliver", "", kernel.Ptr(unknown), nil)
	require.NoError(t, err)

	_, err = commands.NewCreateTaskCommandHandler(factory, e.clock, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertAll(t)
}

func TestAssignTaskCommandHandler(t *testing.T) {
	t.Run("reassigns and invalidates reports", func(t *testing.T) {
		ctx := t.Context()
		e := newEnv(t)
		tk := e.task(t, task.New)

		uow := NewMockUoW()
		factory := new(MockLifecycleUoWFactory)
		cache := new(portstest.MockReportCache)
		factory.On("Create").Return(uow).Once()
		uow.expectTx(ctx, 1)
		uow.Users.On("Get", ctx, e.acme.Manager.ID()).Return(e.acme.Manager, nil).Once()
		uow.Users.On("Get", ctx, e.acme.OtherDriver.ID()).Return(e.acme.OtherDriver, nil).Once()
		uow.Tasks.On("Get", ctx, e.taskID).Return(tk, nil).Once()
		uow.Tasks.On("Update", ctx, tk).Return(nil).Once()
		cache.On("Invalidate", ctx, e.acme.Company.ID()).Return(nil).Once()

		cmd, err := commands.NewAssignTaskCommand(e.acme.Manager.ID(), e.taskID, e.acme.OtherDriver.ID())
		require.NoError(t, err)

		require.NoError(t, commands.NewAssignTaskCommandHandler(factory, e.clock, cache).Handle(ctx, cmd))
		assert.True(t, tk.IsAssignee(e.acme.OtherDriver.ID()))
		uow.AssertAll(t)
		cache.AssertExpectations(t)
	})

	t.Run("foreign manager is forbidden before the driver is looked up", func(t *testing.T) {
		ctx := t.Context()
		e := newEnv(t)
		unknown := kernel.NewUUID()

		uow := NewMockUoW()
		factory := new(MockLifecycleUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.expectAborted(ctx, 1)
		uow.Users.On("Get", ctx, e.globex.Manager.ID()).Return(e.globex.Manager, nil).Once()
		uow.Tasks.On("Get", ctx, e.taskID).Return(e.task(t, task.New), nil).Once()

		cmd, err := commands.NewAssignTaskCommand(e.globex.Manager.ID(), e.taskID, unknown)
		require.NoError(t, err)

		err = commands.NewAssignTaskCommandHandler(factory, e.clock, nil).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		uow.Users.AssertNotCalled(t, "Get", ctx, unknown)
		uow.AssertAll(t)
	})
}

func TestChangeUserRoleCommandHandler_InvalidatesCompanyReportsOnce(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	target := e.acme.OtherDriver

	uow := NewMockUoW()
	factory := new(MockUserUoWFactory)
	cache := new(portstest.MockReportCache)
	factory.On("Create").Return(uow).Once()
	uow.expectTx(ctx, 1)
	uow.Users.On("Get", ctx, e.acme.Owner.ID()).Return(e.acme.Owner, nil).Once()
	uow.Users.On("Get", ctx, target.ID()).Return(target, nil).Once()
	uow.Users.On("Update", ctx, target).Return(nil).Once()
	cache.On("Invalidate", ctx, e.acme.Company.ID()).Return(nil).Once()

	cmd, err := commands.NewChangeUserRoleCommand(e.acme.Owner.ID(), target.ID(), commands.ProfileSpec{
		Role:      org.Manager,
		CompanyID: kernel.Ptr(e.acme.Company.ID()),
	})
	require.NoError(t, err)

	require.NoError(t, commands.NewChangeUserRoleCommandHandler(factory, cache).Handle(ctx, cmd))
	assert.Equal(t, org.Manager, target.Role())
	uow.AssertAll(t)
	cache.AssertExpectations(t)
}
