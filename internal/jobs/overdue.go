package jobs

import (
	"context"
	"log"
	"time"

	"bytebonds-backend/internal/domain/repayment"

	"github.com/robfig/cron/v3"
)

// Runner owns the scheduled maintenance jobs.
type Runner struct {
	repayments repayment.Repository
	cron       *cron.Cron
}

func NewRunner(repayments repayment.Repository) *Runner {
	return &Runner{repayments: repayments, cron: cron.New()}
}

// Start registers the overdue sweep on the given cron spec and starts the
// scheduler in its own goroutine.
func (r *Runner) Start(spec string) error {
	if _, err := r.cron.AddFunc(spec, func() {
		r.runWithRecovery("MarkOverdueRepayments", r.MarkOverdueRepayments)
	}); err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

func (r *Runner) Stop() { r.cron.Stop() }

func (r *Runner) runWithRecovery(name string, fn func()) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("job %s panicked: %v", name, p)
		}
	}()
	log.Printf("job %s: starting", name)
	fn()
	log.Printf("job %s: done", name)
}

// MarkOverdueRepayments flips pending repayments whose due date has passed
// to overdue. It never touches paid rows and never moves a repayment back,
// so repeated sweeps are harmless.
func (r *Runner) MarkOverdueRepayments() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := r.repayments.MarkOverdueBefore(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("overdue sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("overdue sweep: %d repayments marked", n)
	}
}
