package commands_test

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/ports"
	"logistics/internal/core/ports/portstest"

	"github.com/stretchr/testify/mock"
)

// MockUoW hands out fixed repository mocks; transaction calls are recorded.
type MockUoW struct {
	mock.Mock

	Tasks      *portstest.MockTaskRepository
	Routes     *portstest.MockRouteRepository
	Users      *portstest.MockUserRepository
	Companies  *portstest.MockCompanyRepository
	Documents  *portstest.MockDocumentRepository
	Messages   *portstest.MockMessageRepository
	Statistics *portstest.MockStatisticsRepository
}

func NewMockUoW() *MockUoW {
	return &MockUoW{
		Tasks:      new(portstest.MockTaskRepository),
		Routes:     new(portstest.MockRouteRepository),
		Users:      new(portstest.MockUserRepository),
		Companies:  new(portstest.MockCompanyRepository),
		Documents:  new(portstest.MockDocumentRepository),
		Messages:   new(portstest.MockMessageRepository),
		Statistics: new(portstest.MockStatisticsRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) TaskRepository() ports.TaskRepository             { return m.Tasks }
func (m *MockUoW) RouteRepository() ports.RouteRepository           { return m.Routes }
func (m *MockUoW) UserRepository() ports.UserRepository             { return m.Users }
func (m *MockUoW) CompanyRepository() ports.CompanyRepository       { return m.Companies }
func (m *MockUoW) DocumentRepository() ports.DocumentRepository     { return m.Documents }
func (m *MockUoW) MessageRepository() ports.MessageRepository       { return m.Messages }
func (m *MockUoW) StatisticsRepository() ports.StatisticsRepository { return m.Statistics }

// expectTx sets up one successful Begin/Commit/Rollback cycle.
func (m *MockUoW) expectTx(ctx context.Context, times int) {
	m.On("Begin", ctx).Return(nil).Times(times)
	m.On("Commit", ctx).Return(nil).Times(times)
	m.On("Rollback", ctx).Return(nil).Times(times)
}

// expectAborted sets up Begin/Rollback cycles that never commit.
func (m *MockUoW) expectAborted(ctx context.Context, times int) {
	m.On("Begin", ctx).Return(nil).Times(times)
	m.On("Rollback", ctx).Return(nil).Times(times)
}

func (m *MockUoW) AssertAll(t mock.TestingT) {
	m.AssertExpectations(t)
	m.Tasks.AssertExpectations(t)
	m.Routes.AssertExpectations(t)
	m.Users.AssertExpectations(t)
	m.Companies.AssertExpectations(t)
	m.Documents.AssertExpectations(t)
	m.Messages.AssertExpectations(t)
	m.Statistics.AssertExpectations(t)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return m.Called().Get(0).(commands.LifecycleUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	return m.Called().Get(0).(commands.UserUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}
