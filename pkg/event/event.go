// pkg/event/event.go
package event

import (
	"reflect"
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	GameStarted        Type = "game_started"
	GameEnded          Type = "game_ended"
	AircraftLaunched   Type = "aircraft_launched"
	AircraftLanded     Type = "aircraft_landed"
	AircraftRelaunched Type = "aircraft_relaunched"
	FleetRetargeted    Type = "fleet_retargeted"
	GoalMarkerPlaced   Type = "goal_marker_placed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Unsubscribe removes a previously registered handler for an event type
func (b *Bus) Unsubscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers, ok := b.handlers[eventType]
	if !ok {
		return
	}

	target := reflect.ValueOf(handler).Pointer()
	for i, h := range handlers {
		if reflect.ValueOf(h).Pointer() == target {
			b.handlers[eventType] = append(handlers[:i], handlers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// AircraftEvent carries information about a single sortie's lifecycle.
type AircraftEvent struct {
	BaseEvent
	AircraftID uint64
	X          float64
	Y          float64
}

// NewAircraftEvent creates a new aircraft lifecycle event
func NewAircraftEvent(eventType Type, source interface{}, aircraftID uint64, x, y float64) *AircraftEvent {
	return &AircraftEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		AircraftID: aircraftID,
		X:          x,
		Y:          y,
	}
}

// FleetEvent carries information about fleet-wide commands.
type FleetEvent struct {
	BaseEvent
	TargetX   float64
	TargetY   float64
	FleetSize int
	Rerouted  bool // true when the command forced every sortie back to its target leg
}

// NewFleetEvent creates a new fleet command event
func NewFleetEvent(eventType Type, source interface{}, targetX, targetY float64, fleetSize int, rerouted bool) *FleetEvent {
	return &FleetEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		TargetX:   targetX,
		TargetY:   targetY,
		FleetSize: fleetSize,
		Rerouted:  rerouted,
	}
}
