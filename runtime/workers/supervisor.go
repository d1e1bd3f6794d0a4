package workers

import (
	"charlie/contract"
	"charlie/errors"
	"context"
	"log/slog"
	"sync"
	"time"
)

const restartDelay = 200 * time.Millisecond

// Supervisor runs every registered worker in its own goroutine, recovers
// panics, and restarts crashed workers after a short delay. A failure in one
// worker must not stop the supervisor itself. Workers that return nil are
// considered finished and never restarted.
type Supervisor struct {
	Cancel  context.CancelFunc
	wg      *sync.WaitGroup
	log     *slog.Logger
	workers []contract.Worker
}

func NewSupervisor(log *slog.Logger) *Supervisor {
	return &Supervisor{wg: &sync.WaitGroup{}, log: log}
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Run starts all registered workers and blocks until they all return.
// Cancellation of the parent context stops the whole tree; calling Stop
// cancels only the supervised workers.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.Cancel = cancel
	defer s.Cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

// Start supervises a single worker until it finishes or the context ends.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	name := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		for {
			if ctx.Err() != nil {
				s.log.Info("Worker stopped", "name", name)
				return
			}

			err := runRecovered(ctx, worker)

			if err == nil {
				s.log.Info("Worker finished", "name", name)
				return
			}
			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", name)
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", name, "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(restartDelay):
			}
		}
	}()
}

// runRecovered executes one worker run, converting a panic into an error so
// the supervision loop stays alive.
func runRecovered(ctx context.Context, worker contract.Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.ErrWorkerPanic
		}
	}()
	return worker.Run(ctx)
}

func (s *Supervisor) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
}
