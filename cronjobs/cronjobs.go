package cronjobs

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"
)

// CycleRunner is one full fetch-persist-match-notify cycle.
type CycleRunner interface {
	RunCycle(ctx context.Context) error
}

// Runner wraps a cycle with the overlap guard and the bounded retry. The
// fire feed has transient outages, so a failed cycle is retried a few times
// with growing delays instead of looping on it; after the attempt cap the
// trigger is abandoned and the next cron tick starts fresh.
type Runner struct {
	Cycle          CycleRunner
	Clock          clockwork.Clock
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	running atomic.Bool
}

func NewRunner(cycle CycleRunner) *Runner {
	return &Runner{
		Cycle:          cycle,
		Clock:          clockwork.NewRealClock(),
		MaxAttempts:    3,
		InitialBackoff: 30 * time.Second,
		MaxBackoff:     5 * time.Minute,
	}
}

// TryRun runs one guarded trigger. If a cycle is still in flight the trigger
// is skipped, not queued: overlapping cycles would race on the fires
// collection replacement. Returns whether a cycle actually ran.
func (r *Runner) TryRun(ctx context.Context) bool {
	if !r.running.CompareAndSwap(false, true) {
		log.Println("Fire cycle still running, skipping this trigger")
		return false
	}
	defer r.running.Store(false)

	backoff := r.InitialBackoff
	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		err := r.Cycle.RunCycle(ctx)
		if err == nil {
			return true
		}

		if attempt == r.MaxAttempts {
			log.Printf("Fire cycle failed after %d attempts, giving up until next trigger: %v",
				attempt, err)
			return true
		}

		log.Printf("Fire cycle attempt %d failed, retrying in %s: %v", attempt, backoff, err)
		r.Clock.Sleep(backoff)

		backoff *= 2
		if backoff > r.MaxBackoff {
			backoff = r.MaxBackoff
		}
	}
	return true
}

// InitCronJobs runs the cycle once immediately and then every 30 minutes.
func InitCronJobs(r *Runner) *cron.Cron {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")

	// First run at startup, without delaying main.
	go func() {
		log.Println("\nCronJob: Fire Cycle Running (startup)")
		r.TryRun(context.Background())
	}()

	c := cron.New()
	_, err := c.AddFunc("*/30 * * * *", func() {
		log.Println("\nCronJob: Fire Cycle Running")
		r.TryRun(context.Background())
	})
	if err != nil {
		log.Println("Error scheduling Fire Cycle", err)
	}

	c.Start()
	return c
}
