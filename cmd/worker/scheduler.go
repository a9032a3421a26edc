package main

import (
	"log"

	"github.com/hibiken/asynq"

	copyJob "library-backend/internal/domains/copy/job"
)

// asynqScheduler wraps asynq.Scheduler with additional functionality
type asynqScheduler struct {
	*asynq.Scheduler
}

// setupScheduler creates the scheduler and registers the periodic jobs.
func setupScheduler(cfg *Config) *asynqScheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		nil,
	)

	entryID, err := scheduler.Register(cfg.OverdueScanSchedule, copyJob.NewOverdueScanTask())
	if err != nil {
		log.Fatalf("[Scheduler] Failed to register overdue scan: %v", err)
	}
	log.Printf("[Scheduler] Registered overdue scan (entry %s, spec %q)", entryID, cfg.OverdueScanSchedule)

	go func() {
		log.Println("[Scheduler] Starting...")
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[Scheduler] Failed: %v", err)
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

// Shutdown gracefully shuts down the scheduler
func (s *asynqScheduler) Shutdown() {
	log.Println("[Scheduler] Shutting down...")
	s.Scheduler.Shutdown()
	log.Println("[Scheduler] ✓ Stopped")
}
