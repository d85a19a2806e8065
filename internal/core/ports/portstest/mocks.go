// Package portstest provides testify mocks of the core ports.
package portstest

import (
	"context"

	"logistics/internal/core/domain/model/document"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/statistics"
	"logistics/internal/core/domain/model/task"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var (
	_ ports.TaskRepository       = (*MockTaskRepository)(nil)
	_ ports.RouteRepository      = (*MockRouteRepository)(nil)
	_ ports.UserRepository       = (*MockUserRepository)(nil)
	_ ports.CompanyRepository    = (*MockCompanyRepository)(nil)
	_ ports.DocumentRepository   = (*MockDocumentRepository)(nil)
	_ ports.MessageRepository    = (*MockMessageRepository)(nil)
	_ ports.StatisticsRepository = (*MockStatisticsRepository)(nil)
	_ ports.Notifier             = (*MockNotifier)(nil)
	_ ports.ReportCache          = (*MockReportCache)(nil)
)

type MockTaskRepository struct{ mock.Mock }

func (m *MockTaskRepository) Add(ctx context.Context, t *task.Task) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaskRepository) ListByCompany(ctx context.Context, id kernel.UUID, f ports.TaskFilter) ([]*task.Task, error) {
	args := m.Called(ctx, id, f)
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByCreator(ctx context.Context, id kernel.UUID, f ports.TaskFilter) ([]*task.Task, error) {
	args := m.Called(ctx, id, f)
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByAssignee(ctx context.Context, id kernel.UUID, f ports.TaskFilter) ([]*task.Task, error) {
	args := m.Called(ctx, id, f)
	return args.Get(0).([]*task.Task), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) GetByTask(ctx context.Context, taskID kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRouteRepository) DeleteByCompany(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRouteRepository) ListByDriver(ctx context.Context, id kernel.UUID, f ports.RouteFilter) ([]*route.Route, error) {
	args := m.Called(ctx, id, f)
	return args.Get(0).([]*route.Route), args.Error(1)
}

func (m *MockRouteRepository) ListByCompany(ctx context.Context, id kernel.UUID, f ports.RouteFilter) ([]*route.Route, error) {
	args := m.Called(ctx, id, f)
	return args.Get(0).([]*route.Route), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *org.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *org.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*org.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*org.User), args.Error(1)
}

func (m *MockUserRepository) ListByCompany(ctx context.Context, id kernel.UUID) ([]*org.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]*org.User), args.Error(1)
}

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Add(ctx context.Context, c *org.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*org.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*org.Company), args.Error(1)
}

func (m *MockCompanyRepository) List(ctx context.Context) ([]*org.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*org.Company), args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) Add(ctx context.Context, d *document.Document) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDocumentRepository) Update(ctx context.Context, d *document.Document) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*document.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDocumentRepository) DeleteByTask(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDocumentRepository) DeleteByRoute(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDocumentRepository) DeleteByCompany(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDocumentRepository) ListByTask(ctx context.Context, id kernel.UUID) ([]*document.Document, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]*document.Document), args.Error(1)
}

type MockMessageRepository struct{ mock.Mock }

func (m *MockMessageRepository) Add(ctx context.Context, msg *document.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockMessageRepository) Get(ctx context.Context, id kernel.UUID) (*document.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Message), args.Error(1)
}

func (m *MockMessageRepository) Update(ctx context.Context, msg *document.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockMessageRepository) DeleteByTask(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMessageRepository) DeleteByCompany(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMessageRepository) ListByTask(ctx context.Context, id kernel.UUID) ([]*document.Message, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]*document.Message), args.Error(1)
}

type MockStatisticsRepository struct{ mock.Mock }

func (m *MockStatisticsRepository) Add(ctx context.Context, s *statistics.Snapshot) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStatisticsRepository) ListByCompany(ctx context.Context, id kernel.UUID) ([]*statistics.Snapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]*statistics.Snapshot), args.Error(1)
}

func (m *MockStatisticsRepository) DeleteByCompany(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, t kernel.Transition) error {
	return m.Called(ctx, t).Error(0)
}

type MockReportCache struct{ mock.Mock }

func (m *MockReportCache) Get(ctx context.Context, id kernel.UUID, p statistics.Period) (statistics.Report, bool, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(statistics.Report), args.Bool(1), args.Error(2)
}

func (m *MockReportCache) Set(ctx context.Context, r statistics.Report) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReportCache) Invalidate(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
