package cmd

import (
	"logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/kafka"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/redis"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	uowFactory postgres.GormUnitOfWorkFactory
	readModel  queries.ReadModel
	clock      kernel.Clock
	notifier   ports.Notifier
	cache      ports.ReportCache
	log        zerolog.Logger

	closers []func() error
}

// NewCompositionRoot wires the adapters. Kafka and redis are optional: an
// empty KAFKA_HOST drops notifications and an empty REDIS_ADDR disables the
// report cache.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, log zerolog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		cfg:        cfg,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		readModel:  postgres.NewGormUnitOfWork(gormDB),
		clock:      kernel.SystemClock{},
		notifier:   ports.NopNotifier{},
		log:        log,
	}

	if brokers := cfg.KafkaBrokers(); len(brokers) > 0 {
		n := kafka.NewNotifier(brokers, cfg.KafkaTransitionsTopic, log.With().Str("component", "kafka_notifier").Logger())
		c.notifier = n
		c.closers = append(c.closers, n.Close)
	}
	if cfg.RedisAddr != "" {
		rc := redis.NewReportCache(cfg.RedisAddr, cfg.ReportCacheTTL)
		c.cache = rc
		c.closers = append(c.closers, rc.Close)
	}
	return c
}

// Close releases the optional adapters.
func (c *CompositionRoot) Close() {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			c.log.Warn().Err(err).Msg("close adapter")
		}
	}
}

func (c *CompositionRoot) lifecycleUoWFactory() commands.LifecycleUoWFactory {
	return FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateTaskCommandHandler() commands.CreateTaskCommandHandler {
	return commands.NewCreateTaskCommandHandler(c.lifecycleUoWFactory(), c.clock, c.cache)
}

func (c *CompositionRoot) CreateUpdateTaskCommandHandler() commands.UpdateTaskCommandHandler {
	return commands.NewUpdateTaskCommandHandler(c.lifecycleUoWFactory(), c.clock, c.cache)
}

func (c *CompositionRoot) CreateAssignTaskCommandHandler() commands.AssignTaskCommandHandler {
	return commands.NewAssignTaskCommandHandler(c.lifecycleUoWFactory(), c.clock, c.cache)
}

func (c *CompositionRoot) CreateChangeTaskStatusCommandHandler() commands.ChangeTaskStatusCommandHandler {
	return commands.NewChangeTaskStatusCommandHandler(c.lifecycleUoWFactory(), c.clock, c.notifier, c.cache)
}

func (c *CompositionRoot) CreateDeleteTaskCommandHandler() commands.DeleteTaskCommandHandler {
	return commands.NewDeleteTaskCommandHandler(c.fullUoWFactory(), c.cache)
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	return commands.NewCreateRouteCommandHandler(c.lifecycleUoWFactory(), c.clock, c.cache)
}

func (c *CompositionRoot) CreateUpdateRouteCommandHandler() commands.UpdateRouteCommandHandler {
	return commands.NewUpdateRouteCommandHandler(c.lifecycleUoWFactory(), c.clock, c.cache)
}

func (c *CompositionRoot) CreateChangeRouteStatusCommandHandler() commands.ChangeRouteStatusCommandHandler {
	return commands.NewChangeRouteStatusCommandHandler(c.lifecycleUoWFactory(), c.clock, c.notifier, c.cache)
}

func (c *CompositionRoot) CreateCompleteWaypointCommandHandler() commands.CompleteWaypointCommandHandler {
	return commands.NewCompleteWaypointCommandHandler(c.lifecycleUoWFactory(), c.clock, c.cache)
}

func (c *CompositionRoot) CreateDeleteRouteCommandHandler() commands.DeleteRouteCommandHandler {
	return commands.NewDeleteRouteCommandHandler(c.fullUoWFactory(), c.cache)
}

func (c *CompositionRoot) CreateAttachDocumentCommandHandler() commands.AttachDocumentCommandHandler {
	return commands.NewAttachDocumentCommandHandler(c.fullUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateDocumentCommandHandler() commands.UpdateDocumentCommandHandler {
	return commands.NewUpdateDocumentCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDocumentCommandHandler() commands.DeleteDocumentCommandHandler {
	return commands.NewDeleteDocumentCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateMarkMessageReadCommandHandler() commands.MarkMessageReadCommandHandler {
	return commands.NewMarkMessageReadCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateSendMessageCommandHandler() commands.SendMessageCommandHandler {
	return commands.NewSendMessageCommandHandler(c.fullUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangeUserRoleCommandHandler() commands.ChangeUserRoleCommandHandler {
	return commands.NewChangeUserRoleCommandHandler(c.userUoWFactory(), c.cache)
}

func (c *CompositionRoot) CreateDeleteCompanyCommandHandler() commands.DeleteCompanyCommandHandler {
	return commands.NewDeleteCompanyCommandHandler(c.fullUoWFactory(), c.cache)
}

func (c *CompositionRoot) CreateSaveStatisticsSnapshotsCommandHandler() commands.SaveStatisticsSnapshotsCommandHandler {
	return commands.NewSaveStatisticsSnapshotsCommandHandler(c.fullUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetTaskQueryHandler() queries.GetTaskQueryHandler {
	return queries.NewGetTaskQueryHandler(c.readModel, c.clock)
}

func (c *CompositionRoot) CreateListTasksQueryHandler() queries.ListTasksQueryHandler {
	return queries.NewListTasksQueryHandler(c.readModel, c.clock)
}

func (c *CompositionRoot) CreateListTaskAttachmentsQueryHandler() queries.ListTaskAttachmentsQueryHandler {
	return queries.NewListTaskAttachmentsQueryHandler(c.readModel)
}

func (c *CompositionRoot) CreateGetRouteQueryHandler() queries.GetRouteQueryHandler {
	return queries.NewGetRouteQueryHandler(c.readModel)
}

func (c *CompositionRoot) CreateGetCompanyReportQueryHandler() queries.GetCompanyReportQueryHandler {
	return queries.NewGetCompanyReportQueryHandler(c.readModel, c.cache, c.clock)
}

func (c *CompositionRoot) CreateListStatisticsSnapshotsQueryHandler() queries.ListStatisticsSnapshotsQueryHandler {
	return queries.NewListStatisticsSnapshotsQueryHandler(c.readModel)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.UseCases{
		CreateTask:       c.CreateCreateTaskCommandHandler(),
		UpdateTask:       c.CreateUpdateTaskCommandHandler(),
		AssignTask:       c.CreateAssignTaskCommandHandler(),
		ChangeTaskStatus: c.CreateChangeTaskStatusCommandHandler(),
		DeleteTask:       c.CreateDeleteTaskCommandHandler(),

		CreateRoute:       c.CreateCreateRouteCommandHandler(),
		UpdateRoute:       c.CreateUpdateRouteCommandHandler(),
		ChangeRouteStatus: c.CreateChangeRouteStatusCommandHandler(),
		CompleteWaypoint:  c.CreateCompleteWaypointCommandHandler(),
		DeleteRoute:       c.CreateDeleteRouteCommandHandler(),

		AttachDocument: c.CreateAttachDocumentCommandHandler(),
		UpdateDocument: c.CreateUpdateDocumentCommandHandler(),
		DeleteDocument: c.CreateDeleteDocumentCommandHandler(),
		SendMessage:    c.CreateSendMessageCommandHandler(),
		MarkRead:       c.CreateMarkMessageReadCommandHandler(),

		ChangeUserRole: c.CreateChangeUserRoleCommandHandler(),
		DeleteCompany:  c.CreateDeleteCompanyCommandHandler(),

		GetTask:                 c.CreateGetTaskQueryHandler(),
		ListTasks:               c.CreateListTasksQueryHandler(),
		ListTaskAttachments:     c.CreateListTaskAttachmentsQueryHandler(),
		GetRoute:                c.CreateGetRouteQueryHandler(),
		GetCompanyReport:        c.CreateGetCompanyReportQueryHandler(),
		ListStatisticsSnapshots: c.CreateListStatisticsSnapshotsQueryHandler(),
	}, c.cfg.JWTSecret, c.clock, c.log.With().Str("component", "http").Logger())
}

// CreateJobManager schedules the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewStatisticsSnapshotJob(
			c.CreateSaveStatisticsSnapshotsCommandHandler(),
			c.clock,
			c.cfg.StatisticsCron,
			c.log,
		),
	)
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
