package worker

import (
	"context"
	"time"

	"oficina/internal/events"

	"github.com/rs/zerolog"
)

// PayrollExporter writes the current payroll into a directory.
type PayrollExporter interface {
	Export(ctx context.Context, dir string, withXLSX bool) ([]string, error)
}

// ExportTask asks for a fresh payroll snapshot on disk.
type ExportTask struct {
	Reason    string
	CreatedAt time.Time
}

// ExportWorker keeps the exports directory in step with the payroll list. It
// coalesces requests: while one task is queued, new ones are dropped, since
// the queued run will export the latest list anyway.
type ExportWorker struct {
	exporter    PayrollExporter
	dir         string
	retryPolicy RetryPolicy
	queue       chan ExportTask
	logger      *zerolog.Logger
	wait        func(ctx context.Context, d time.Duration) error
}

func NewExportWorker(exporter PayrollExporter, dir string, retry RetryPolicy, logger *zerolog.Logger) *ExportWorker {
	retry = retry.withDefaults()
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &ExportWorker{
		exporter:    exporter,
		dir:         dir,
		retryPolicy: retry,
		queue:       make(chan ExportTask, 1),
		logger:      logger,
		wait:        sleepContext,
	}
}

// Enqueue schedules an export and reports whether the task was queued.
func (w *ExportWorker) Enqueue(task ExportTask) bool {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	select {
	case w.queue <- task:
		return true
	default:
		w.logger.Debug().Str("reason", task.Reason).Msg("export already pending")
		return false
	}
}

// Subscribe hooks the worker to employee additions.
func (w *ExportWorker) Subscribe(bus *events.EventBus) {
	bus.Subscribe(events.EventEmployeeAdded, func(ev *events.Event) error {
		w.Enqueue(ExportTask{Reason: ev.Type})
		return nil
	})
}

// Start processes tasks until ctx is done.
func (w *ExportWorker) Start(ctx context.Context) {
	w.logger.Info().Str("dir", w.dir).Msg("export worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("export worker stopped")
			return
		case task := <-w.queue:
			_ = w.process(ctx, task)
		}
	}
}

func (w *ExportWorker) process(ctx context.Context, task ExportTask) error {
	var err error
	for attempt := 1; attempt <= w.retryPolicy.MaxRetries+1; attempt++ {
		var files []string
		files, err = w.exporter.Export(ctx, w.dir, true)
		if err == nil {
			w.logger.Info().Str("reason", task.Reason).Strs("files", files).Int("attempt", attempt).Msg("payroll autosaved")
			return nil
		}
		if attempt > w.retryPolicy.MaxRetries {
			break
		}

		delay := w.retryPolicy.NextDelay(attempt)
		w.logger.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", delay).Msg("payroll autosave failed")
		if waitErr := w.wait(ctx, delay); waitErr != nil {
			return waitErr
		}
	}
	w.logger.Error().Err(err).Str("reason", task.Reason).Msg("payroll autosave gave up")
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
