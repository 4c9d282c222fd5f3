package mocks

import (
	"context"
	"sync"

	"github.com/mcoot/wordtiles/internal/events"
	"github.com/mcoot/wordtiles/internal/model"
)

// EventRecorder is a Publisher that keeps every event for inspection
type EventRecorder struct {
	mu     sync.Mutex
	events []model.Event

	// Err is returned from Publish when set
	Err error
}

// Ensure EventRecorder implements Publisher
var _ events.Publisher = (*EventRecorder)(nil)

// NewEventRecorder creates a new EventRecorder
func NewEventRecorder() *EventRecorder {
	return &EventRecorder{}
}

// Publish records the event
func (r *EventRecorder) Publish(_ context.Context, event model.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.Err
}

// Events returns a copy of everything published so far
func (r *EventRecorder) Events() []model.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Event(nil), r.events...)
}

// Types returns the type of each published event in order
func (r *EventRecorder) Types() []model.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]model.EventType, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type
	}
	return types
}

// Reset clears recorded events
func (r *EventRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
