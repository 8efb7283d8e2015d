// pkg/event/event_test.go
package event

import (
	"sync"
	"testing"
)

func TestBus_SubscribeAndPublish(t *testing.T) {
	bus := NewEventBus()
	received := 0

	bus.Subscribe(AircraftLaunched, func(e Event) {
		received++
		if e.GetType() != AircraftLaunched {
			t.Errorf("handler got type %s, expected %s", e.GetType(), AircraftLaunched)
		}
	})

	bus.Publish(NewAircraftEvent(AircraftLaunched, nil, 1, 0, 0))
	bus.Publish(NewAircraftEvent(AircraftLaunched, nil, 2, 1, 1))

	if received != 2 {
		t.Errorf("handler called %d times, expected 2", received)
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewEventBus()
	// Must not panic or block.
	bus.Publish(&BaseEvent{EventType: GameEnded})
}

func TestBus_MultipleHandlers(t *testing.T) {
	bus := NewEventBus()
	var calls []string

	bus.Subscribe(FleetRetargeted, func(e Event) { calls = append(calls, "first") })
	bus.Subscribe(FleetRetargeted, func(e Event) { calls = append(calls, "second") })

	bus.Publish(NewFleetEvent(FleetRetargeted, nil, 3, 4, 2, false))

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("handlers called in order %v, expected [first second]", calls)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()
	count := 0
	handler := func(e Event) { count++ }

	bus.Subscribe(AircraftLanded, handler)
	bus.Publish(NewAircraftEvent(AircraftLanded, nil, 1, 0, 0))
	bus.Unsubscribe(AircraftLanded, handler)
	bus.Publish(NewAircraftEvent(AircraftLanded, nil, 1, 0, 0))

	if count != 1 {
		t.Errorf("handler called %d times after unsubscribe, expected 1", count)
	}
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewEventBus()
	var mu sync.Mutex
	count := 0

	bus.Subscribe(AircraftRelaunched, func(e Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(NewAircraftEvent(AircraftRelaunched, nil, 1, 0, 0))
		}()
	}
	wg.Wait()

	if count != 10 {
		t.Errorf("handler called %d times, expected 10", count)
	}
}

func TestFleetEvent_Fields(t *testing.T) {
	e := NewFleetEvent(FleetRetargeted, "game", 5, -2, 4, true)
	if e.GetType() != FleetRetargeted {
		t.Errorf("GetType() = %s, expected %s", e.GetType(), FleetRetargeted)
	}
	if e.GetSource() != "game" {
		t.Errorf("GetSource() = %v, expected game", e.GetSource())
	}
	if e.TargetX != 5 || e.TargetY != -2 || e.FleetSize != 4 || !e.Rerouted {
		t.Errorf("unexpected fleet event payload: %+v", e)
	}
}
