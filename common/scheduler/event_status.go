package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/techclub-services/services/event/repository"
)

// EventStatusScheduler moves upcoming events whose date has passed to
// completed. It only runs on the local server; the serverless entrypoint has
// no long-lived process to host it.
type EventStatusScheduler struct {
	eventRepo *repository.EventRepository
	interval  time.Duration
	stopChan  chan bool
}

// NewEventStatusScheduler creates a new scheduler
func NewEventStatusScheduler(eventRepo *repository.EventRepository, intervalMinutes int) *EventStatusScheduler {
	return &EventStatusScheduler{
		eventRepo: eventRepo,
		interval:  time.Duration(intervalMinutes) * time.Minute,
		stopChan:  make(chan bool),
	}
}

// Start begins the scheduled status sweep
func (s *EventStatusScheduler) Start() {
	log.Printf("[SCHEDULER] Event status sweep started (runs every %v)", s.interval)

	// Run immediately once at startup
	s.sweep()

	// Then run periodically
	ticker := time.NewTicker(s.interval)
	go func() {
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stopChan:
				ticker.Stop()
				log.Println("[SCHEDULER] Event status sweep stopped")
				return
			}
		}
	}()
}

// Stop stops the scheduler
func (s *EventStatusScheduler) Stop() {
	s.stopChan <- true
}

func (s *EventStatusScheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	updated, err := s.eventRepo.MarkPastEventsCompleted(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("[SCHEDULER] Error sweeping past events: %v", err)
		return
	}
	if updated > 0 {
		log.Printf("[SCHEDULER] Marked %d past events completed", updated)
	}
}
