// Package monitor collects check events and streams them live
// to websocket clients, so a long suite run can be observed
// while it executes.
package monitor

import (
	"sync"
	"time"
)

// EventType classifies a check event.
type EventType string

const (
	// EventPassed marks a check that constructed and matched.
	EventPassed EventType = "passed"

	// EventFailed marks a check whose comparison did not hold.
	EventFailed EventType = "failed"

	// EventError marks a check that could not be constructed
	// (unknown kind, duplicate expected element, missing
	// target).
	EventError EventType = "error"
)

// CheckEvent is one evaluated check, as streamed to monitoring
// clients.
type CheckEvent struct {
	Type      EventType `json:"type"`
	Kind      string    `json:"kind"`
	Target    string    `json:"target"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Collector is a thread-safe sink for check events. Handlers
// registered via OnEvent are invoked synchronously for every
// published event.
type Collector struct {
	mu       sync.RWMutex
	events   []CheckEvent
	handlers []func(CheckEvent)
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Publish records the event and invokes all registered
// handlers.
func (c *Collector) Publish(e CheckEvent) {
	c.mu.Lock()
	c.events = append(c.events, e)
	handlers := make([]func(CheckEvent), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(e)
	}
}

// OnEvent registers a handler invoked for every subsequently
// published event.
func (c *Collector) OnEvent(fn func(CheckEvent)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, fn)
}

// Events returns a snapshot of all events published so far.
func (c *Collector) Events() []CheckEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot := make([]CheckEvent, len(c.events))
	copy(snapshot, c.events)
	return snapshot
}

// Len returns the number of events published so far.
func (c *Collector) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.events)
}
