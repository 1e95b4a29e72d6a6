package run

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// progressLogger reports coarse progress checkpoints: one entry per
// pass, plus throttled row-level entries so a large batch does not
// flood the log.
type progressLogger struct {
	runID   string
	limiter *rate.Limiter
}

func newProgressLogger(runID string) *progressLogger {
	return &progressLogger{
		runID:   runID,
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

func (p *progressLogger) pass(name string) {
	zap.L().Info("run: pass",
		zap.String("run_id", p.runID),
		zap.String("pass", name))
}

func (p *progressLogger) row(pass string, row, total int) {
	if !p.limiter.Allow() {
		return
	}
	zap.L().Info("run: progress",
		zap.String("run_id", p.runID),
		zap.String("pass", pass),
		zap.Int("row", row),
		zap.Int("total", total))
}
