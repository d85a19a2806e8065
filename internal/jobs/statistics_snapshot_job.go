package jobs

import (
	"context"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/statistics"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultStatisticsSchedule runs five minutes after midnight UTC, with seconds.
const DefaultStatisticsSchedule = "0 5 0 * * *"

const runTimeout = 5 * time.Minute

// SnapshotSaver stores one snapshot per company for a period.
type SnapshotSaver interface {
	Handle(ctx context.Context, cmd commands.SaveStatisticsSnapshotsCommand) (int, error)
}

// StatisticsSnapshotJob stores every company's report for the previous UTC day.
type StatisticsSnapshotJob struct {
	handler  SnapshotSaver
	clock    kernel.Clock
	schedule string
	cron     *cron.Cron
	log      zerolog.Logger
}

// NewStatisticsSnapshotJob uses DefaultStatisticsSchedule when schedule is empty.
func NewStatisticsSnapshotJob(
	handler SnapshotSaver,
	clock kernel.Clock,
	schedule string,
	log zerolog.Logger,
) *StatisticsSnapshotJob {
	if schedule == "" {
		schedule = DefaultStatisticsSchedule
	}
	return &StatisticsSnapshotJob{
		handler:  handler,
		clock:    clock,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithLocation(time.UTC)),
		log:      log.With().Str("component", "statistics_snapshot_job").Logger(),
	}
}

// RunOnce snapshots the day before the clock's current day.
func (j *StatisticsSnapshotJob) RunOnce(ctx context.Context) (int, error) {
	period := statistics.PreviousDay(j.clock.Now())
	cmd, err := commands.NewSaveStatisticsSnapshotsCommand(period)
	if err != nil {
		return 0, err
	}

	saved, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return saved, errors.Wrapf(err, "snapshot statistics for %s", period.Key())
	}
	return saved, nil
}

func (j *StatisticsSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		saved, runErr := j.RunOnce(ctx)
		if runErr != nil {
			j.log.Error().Err(runErr).Int("saved", saved).Msg("statistics snapshot failed")
			return
		}
		j.log.Info().Int("saved", saved).Msg("statistics snapshots stored")
	})
	if err != nil {
		return errors.Wrapf(err, "schedule %q", j.schedule)
	}

	j.cron.Start()
	j.log.Info().Str("schedule", j.schedule).Msg("statistics snapshot job started")
	return nil
}

// Stop waits for a running snapshot to finish.
func (j *StatisticsSnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info().Msg("statistics snapshot job stopped")
}
