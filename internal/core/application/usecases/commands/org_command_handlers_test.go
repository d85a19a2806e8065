package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/document"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/statistics"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeUserRoleCommandHandler_OwnerPromotesDriver(t *testing.T) {
	// Arrange
	ctx := t.Context()
	e := newEnv(t)
	target := e.acme.OtherDriver

	uow := NewMockUoW()
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.expectTx(ctx, 1)
	uow.Users.On("Get", ctx, e.acme.Owner.ID()).Return(e.acme.Owner, nil).Once()
	uow.Users.On("Get", ctx, target.ID()).Return(target, nil).Once()
	uow.Users.On("Get", ctx, e.acme.Manager.ID()).Return(e.acme.Manager, nil).Once()
	uow.Users.On("Update", ctx, target).Return(nil).Once()

	cmd, err := commands.NewChangeUserRoleCommand(e.acme.Owner.ID(), target.ID(), commands.ProfileSpec{
		Role:         org.Operator,
		CompanyID:    kernel.Ptr(e.acme.Company.ID()),
		SupervisorID: kernel.Ptr(e.acme.Manager.ID()),
	})
	require.NoError(t, err)

	// Act
	err = commands.NewChangeUserRoleCommandHandler(factory, nil).Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, org.Operator, target.Role())
	p, ok := target.Profile().(org.OperatorProfile)
	require.True(t, ok)
	assert.True(t, kernel.EqualPtr(p.ManagerID, e.acme.Manager.ID()))
	uow.AssertAll(t)
}

func TestChangeUserRoleCommandHandler_SupervisorWithWrongRole(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	target := e.acme.OtherDriver

	uow := NewMockUoW()
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.expectAborted(ctx, 1)
	uow.Users.On("Get", ctx, e.acme.Owner.ID()).Return(e.acme.Owner, nil).Once()
	uow.Users.On("Get", ctx, target.ID()).Return(target, nil).Once()
	uow.Users.On("Get", ctx, e.acme.Driver.ID()).Return(e.acme.Driver, nil).Once()

	cmd, err := commands.NewChangeUserRoleCommand(e.acme.Owner.ID(), target.ID(), commands.ProfileSpec{
		Role:         org.Operator,
		CompanyID:    kernel.Ptr(e.acme.Company.ID()),
		SupervisorID: kernel.Ptr(e.acme.Driver.ID()),
	})
	require.NoError(t, err)

	err = commands.NewChangeUserRoleCommandHandler(factory, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, org.Driver, target.Role(), "profile unchanged")
	uow.AssertAll(t)
}

func TestChangeUserRoleCommandHandler_OwnerCannotMakeAdmins(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)

	uow := NewMockUoW()
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.expectAborted(ctx, 1)
	uow.Users.On("Get", ctx, e.acme.Owner.ID()).Return(e.acme.Owner, nil).Once()
	uow.Users.On("Get", ctx, e.acme.Manager.ID()).Return(e.acme.Manager, nil).Once()

	cmd, err := commands.NewChangeUserRoleCommand(e.acme.Owner.ID(), e.acme.Manager.ID(), commands.ProfileSpec{Role: org.Admin})
	require.NoError(t, err)

	err = commands.NewChangeUserRoleCommandHandler(factory, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	uow.AssertAll(t)
}

func TestSendMessageCommandHandler_TaskThreadGoesToCreator(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)

	uow := NewMockUoW()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.expectTx(ctx, 1)
	uow.Users.On("Get", ctx, e.acme.Driver.ID()).Return(e.acme.Driver, nil).Once()
	uow.Tasks.On("Get", ctx, e.taskID).Return(e.task(t, task.InProgress), nil).Once()
	uow.Users.On("Get", ctx, e.acme.Operator.ID()).Return(e.acme.Operator, nil).Once()
	uow.Messages.On("Add", ctx, mock.MatchedBy(func(m *document.Message) bool {
		return m.RecipientID().IsEqual(e.acme.Operator.ID()) &&
			kernel.EqualPtr(m.TaskID(), e.taskID) &&
			m.CompanyID().IsEqual(e.acme.Company.ID()) &&
			!m.Read()
	})).Return(nil).Once()

	cmd, err := commands.NewSendMessageCommand(e.acme.Driver.ID(), nil, kernel.Ptr(e.taskID), "Gate is closed")
	require.NoError(t, err)

	_, err = commands.NewSendMessageCommandHandler(factory, e.clock).Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertAll(t)
}

func TestSendMessageCommandHandler_DriverToDriverIsForbidden(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)

	uow := NewMockUoW()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.expectAborted(ctx, 1)
	uow.Users.On("Get", ctx, e.acme.Driver.ID()).Return(e.acme.Driver, nil).Once()
	uow.Users.On("Get", ctx, e.acme.OtherDriver.ID()).Return(e.acme.OtherDriver, nil).Once()

	cmd, err := commands.NewSendMessageCommand(e.acme.Driver.ID(), kernel.Ptr(e.acme.OtherDriver.ID()), nil, "hi")
	require.NoError(t, err)

	_, err = commands.NewSendMessageCommandHandler(factory, e.clock).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	uow.AssertAll(t)
}

func TestMarkMessageReadCommandHandler(t *testing.T) {
	newMessage := func(t *testing.T, e env) *document.Message {
		t.Helper()
		m, err := document.NewMessage(kernel.NewUUID(), e.acme.Driver.ID(), e.acme.Operator.ID(),
			kernel.Ptr(e.taskID), e.acme.Company.ID(), "Gate is closed", t0)
		require.NoError(t, err)
		return m
	}

	t.Run("recipient marks the message read", func(t *testing.T) {
		ctx := t.Context()
		e := newEnv(t)
		m := newMessage(t, e)

		uow := NewMockUoW()
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.expectTx(ctx, 1)
		uow.Users.On("Get", ctx, e.acme.Operator.ID()).Return(e.acme.Operator, nil).Once()
		uow.Messages.On("Get", ctx, m.ID()).Return(m, nil).Once()
		uow.Messages.On("Update", ctx, m).Return(nil).Once()

		cmd, err := commands.NewMarkMessageReadCommand(e.acme.Operator.ID(), m.ID())
		require.NoError(t, err)

		require.NoError(t, commands.NewMarkMessageReadCommandHandler(factory).Handle(ctx, cmd))
		assert.True(t, m.Read())
		uow.AssertAll(t)
	})

	t.Run("already read is a no-op", func(t *testing.T) {
		ctx := t.Context()
		e := newEnv(t)
		m := newMessage(t, e)
		m.MarkRead()

		uow := NewMockUoW()
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.expectAborted(ctx, 1)
		uow.Users.On("Get", ctx, e.acme.Operator.ID()).Return(e.acme.Operator, nil).Once()
		uow.Messages.On("Get", ctx, m.ID()).Return(m, nil).Once()

		cmd, err := commands.NewMarkMessageReadCommand(e.acme.Operator.ID(), m.ID())
		require.NoError(t, err)

		require.NoError(t, commands.NewMarkMessageReadCommandHandler(factory).Handle(ctx, cmd))
		uow.AssertAll(t)
	})

	t.Run("sender is forbidden", func(t *testing.T) {
		ctx := t.Context()
		e := newEnv(t)
		m := newMessage(t, e)

		uow := NewMockUoW()
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.expectAborted(ctx, 1)
		uow.Users.On("Get", ctx, e.acme.Driver.ID()).Return(e.acme.Driver, nil).Once()
		uow.Messages.On("Get", ctx, m.ID()).Return(m, nil).Once()

		cmd, err := commands.NewMarkMessageReadCommand(e.acme.Driver.ID(), m.ID())
		require.NoError(t, err)

		err = commands.NewMarkMessageReadCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.False(t, m.Read())
		uow.AssertAll(t)
	})
}

func TestSaveStatisticsSnapshotsCommandHandler_OneSnapshotPerCompany(t *testing.T) {
	// Arrange
	ctx := t.Context()
	e := newEnv(t)
	period := statistics.PreviousDay(t0)
	companyID := e.acme.Company.ID()

	uow := NewMockUoW()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.expectTx(ctx, 1)
	uow.Companies.On("List", ctx).Return([]*org.Company{e.acme.Company}, nil).Once()
	uow.Users.On("ListByCompany", ctx, companyID).Return(e.acme.Users(), nil).Once()
	uow.Tasks.On("ListByCompany", ctx, companyID, ports.TaskFilter{}).Return([]*task.Task{}, nil).Once()
	uow.Routes.On("ListByCompany", ctx, companyID, ports.RouteFilter{}).Return([]*route.Route{}, nil).Once()

	var saved *statistics.Snapshot
	uow.Statistics.On("Add", ctx, mock.AnythingOfType("*statistics.Snapshot")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*statistics.Snapshot) }).
		Return(nil).Once()

	cmd, err := commands.NewSaveStatisticsSnapshotsCommand(period)
	require.NoError(t, err)

	// Act
	n, err := commands.NewSaveStatisticsSnapshotsCommandHandler(factory, e.clock).Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NotNil(t, saved)
	assert.True(t, saved.CompanyID().IsEqual(companyID))
	assert.Equal(t, period, saved.Period())
	assert.Equal(t, t0, saved.CalculatedAt())
	assert.Equal(t, 2, saved.Report().Company.Drivers)
	assert.Zero(t, saved.Report().Company.CompletionRate)
	uow.AssertAll(t)
}
