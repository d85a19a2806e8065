package queries_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/org/orgtest"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/ports"
	"logistics/internal/core/ports/portstest"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

type MockReadModel struct {
	Tasks      *portstest.MockTaskRepository
	Routes     *portstest.MockRouteRepository
	Users      *portstest.MockUserRepository
	Documents  *portstest.MockDocumentRepository
	Messages   *portstest.MockMessageRepository
	Statistics *portstest.MockStatisticsRepository
}

func NewMockReadModel() *MockReadModel {
	return &MockReadModel{
		Tasks:      new(portstest.MockTaskRepository),
		Routes:     new(portstest.MockRouteRepository),
		Users:      new(portstest.MockUserRepository),
		Documents:  new(portstest.MockDocumentRepository),
		Messages:   new(portstest.MockMessageRepository),
		Statistics: new(portstest.MockStatisticsRepository),
	}
}

func (m *MockReadModel) TaskRepository() ports.TaskRepository             { return m.Tasks }
func (m *MockReadModel) RouteRepository() ports.RouteRepository           { return m.Routes }
func (m *MockReadModel) UserRepository() ports.UserRepository             { return m.Users }
func (m *MockReadModel) DocumentRepository() ports.DocumentRepository     { return m.Documents }
func (m *MockReadModel) MessageRepository() ports.MessageRepository       { return m.Messages }
func (m *MockReadModel) StatisticsRepository() ports.StatisticsRepository { return m.Statistics }

func (m *MockReadModel) AssertAll(t *testing.T) {
	m.Tasks.AssertExpectations(t)
	m.Routes.AssertExpectations(t)
	m.Users.AssertExpectations(t)
	m.Documents.AssertExpectations(t)
	m.Messages.AssertExpectations(t)
	m.Statistics.AssertExpectations(t)
}

type env struct {
	clock  *kernel.FixedClock
	acme   orgtest.Tenant
	globex orgtest.Tenant
	admin  *org.User
}

func newEnv(t *testing.T) env {
	t.Helper()
	return env{
		clock:  kernel.NewFixedClock(t0),
		acme:   orgtest.NewTenant(t, "acme"),
		globex: orgtest.NewTenant(t, "globex"),
		admin:  orgtest.NewAdmin(t),
	}
}

func (e env) task(t *testing.T, status task.Status, assignee *org.User, deadline *time.Time) *task.Task {
	t.Helper()
	var assigneeID *kernel.UUID
	if assignee != nil {
		assigneeID = kernel.Ptr(assignee.ID())
	}
	tk, err := task.RestoreTask(kernel.NewUUID(), "Deliver pallets", "", status,
		e.acme.Company.ID(), e.acme.Operator.ID(), assigneeID, deadline, t0, t0, 1)
	require.NoError(t, err)
	return tk
}
