package tasks

import (
	"log"
	"sync"
	"time"
)

// DefaultSaveDebounce is how long a burst of mutations is allowed to settle
// before one save task is queued for all of them.
const DefaultSaveDebounce = 3 * time.Second

// SaveDebouncer coalesces store mutation notifications into a single queued
// SaveSnapshotTask. Each Notify resets the timer, so only the tail of a burst
// enqueues.
type SaveDebouncer struct {
	client *Client
	delay  time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func NewSaveDebouncer(client *Client, delay time.Duration) *SaveDebouncer {
	if delay <= 0 {
		delay = DefaultSaveDebounce
	}
	return &SaveDebouncer{client: client, delay: delay}
}

// Notify schedules a save after the debounce window. Safe to call from store
// observers on every mutation.
func (d *SaveDebouncer) Notify() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.enqueue)
}

// Stop cancels any pending save. Callers flush synchronously on shutdown, so
// a cancelled tail save is not lost work.
func (d *SaveDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *SaveDebouncer) enqueue() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	if _, err := d.client.Add(SaveSnapshotTask{Reason: "mutation"}).Save(); err != nil {
		log.Printf("Failed to queue mutation save: %v", err)
	}
}
