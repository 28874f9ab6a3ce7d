package reservations

import (
	"context"
	"log"
	"time"
)

// JobProcessor runs the overdue sweep on a schedule. The sweep itself is
// on-demand; this is the external scheduler that demands it.
type JobProcessor struct {
	service Service
	config  *JobConfig
	done    chan struct{}
}

// JobConfig contains configuration for background jobs
type JobConfig struct {
	SweepInterval time.Duration
}

// DefaultJobConfig returns default job configuration
func DefaultJobConfig() *JobConfig {
	return &JobConfig{
		SweepInterval: 10 * time.Minute,
	}
}

// NewJobProcessor creates a new job processor
func NewJobProcessor(service Service, config *JobConfig) *JobProcessor {
	if config == nil {
		config = DefaultJobConfig()
	}

	return &JobProcessor{
		service: service,
		config:  config,
		done:    make(chan struct{}),
	}
}

// Start starts the background sweep loop.
func (jp *JobProcessor) Start(ctx context.Context) {
	log.Printf("Starting overdue reservation sweep with %v interval", jp.config.SweepInterval)
	go jp.runSweepLoop(ctx)
}

// Stop stops the background sweep loop.
func (jp *JobProcessor) Stop() {
	close(jp.done)
	log.Println("Overdue reservation sweep stopped")
}

func (jp *JobProcessor) runSweepLoop(ctx context.Context) {
	ticker := time.NewTicker(jp.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			jp.runSweep(ctx)
		case <-jp.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// runSweep is the single call site that reads the wall clock for a sweep.
func (jp *JobProcessor) runSweep(ctx context.Context) {
	result, err := jp.service.SweepOverdue(ctx, time.Now())
	if err != nil {
		log.Printf("Error sweeping overdue reservations: %v", err)
		return
	}

	if len(result.CancelledIDs) > 0 || len(result.Failed) > 0 {
		log.Printf("Overdue sweep: cancelled %d, skipped %d, failed %d",
			len(result.CancelledIDs), result.Skipped, len(result.Failed))
	}
}
