package builder

import (
	"sync"
	"time"

	"github.com/wouterj/oopbuilder/umlparser"
)

// EventType represents the type of builder event.
type EventType string

const (
	EventRenderStarted   EventType = "render_started"
	EventRenderCompleted EventType = "render_completed"
	EventRenderFailed    EventType = "render_failed"
	EventDiagnostic      EventType = "diagnostic"
)

// Event represents an observable builder event with typed data.
type Event struct {
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// EventEmitter manages event listeners and dispatches events.
type EventEmitter struct {
	mu        sync.RWMutex
	listeners []func(Event)
}

// NewEventEmitter creates a new EventEmitter.
func NewEventEmitter() *EventEmitter {
	return &EventEmitter{
		listeners: make([]func(Event), 0),
	}
}

// On registers a listener function to receive events.
// Listeners are called synchronously in registration order.
func (e *EventEmitter) On(listener func(Event)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

// Emit dispatches an event to all registered listeners.
func (e *EventEmitter) Emit(event Event) {
	e.mu.RLock()
	listeners := make([]func(Event), len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
}

// ListenerCount returns the number of registered listeners.
func (e *EventEmitter) ListenerCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners)
}

// RenderStartedEvent creates a render_started event.
func RenderStartedEvent(id, name, notation string) Event {
	return Event{
		Type:      EventRenderStarted,
		Timestamp: time.Now(),
		Data: map[string]any{
			"id":       id,
			"name":     name,
			"notation": notation,
		},
	}
}

// RenderCompletedEvent creates a render_completed event.
func RenderCompletedEvent(id string, typeCount, diagnosticCount int, duration time.Duration) Event {
	return Event{
		Type:      EventRenderCompleted,
		Timestamp: time.Now(),
		Data: map[string]any{
			"id":               id,
			"type_count":       typeCount,
			"diagnostic_count": diagnosticCount,
			"duration_ms":      duration.Milliseconds(),
		},
	}
}

// RenderFailedEvent creates a render_failed event.
func RenderFailedEvent(id, err string) Event {
	return Event{
		Type:      EventRenderFailed,
		Timestamp: time.Now(),
		Data: map[string]any{
			"id":    id,
			"error": err,
		},
	}
}

// DiagnosticEvent creates a diagnostic event for a lint finding.
func DiagnosticEvent(id string, d umlparser.Diagnostic) Event {
	return Event{
		Type:      EventDiagnostic,
		Timestamp: time.Now(),
		Data: map[string]any{
			"id":       id,
			"rule":     d.Rule,
			"severity": d.Severity.String(),
			"message":  d.Message,
			"line":     d.Line,
		},
	}
}
