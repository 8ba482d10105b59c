// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartSnapshotScheduler persists the container to the database once a
// minute. Recording a match only mutates memory; this job is what gives
// the ratings durability between restarts.
func (s *SnapshotService) StartSnapshotScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			if err := s.Save(); err != nil {
				log.Printf("[Scheduler] Snapshot save failed: %v", err)
			}
		}),
	)
}
