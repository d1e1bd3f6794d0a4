package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// StatsWorker periodically logs the bot's own memory and CPU footprint.
// Counting traffic is bursty and badger keeps value logs in memory, so a
// cheap self-report makes runaway growth visible without a metrics stack.
type StatsWorker struct {
	log      *slog.Logger
	interval time.Duration
}

func NewStatsWorker(log *slog.Logger, interval time.Duration) *StatsWorker {
	return &StatsWorker{log: log, interval: interval}
}

func (w *StatsWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Debug("Failed to collect self stats", "err", err)
				continue
			}
			w.log.Debug("Self stats", "rss_bytes", rss, "cpu_percent", cpu)
		}
	}
}

func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
