// pkg/engine/game.go
package engine

import (
	"context"
	"errors"
	"sync"

	"github.com/opd-ai/go-flattop/pkg/config"
	"github.com/opd-ai/go-flattop/pkg/entity"
	"github.com/opd-ai/go-flattop/pkg/event"
	"github.com/opd-ai/go-flattop/pkg/logging"
	"github.com/opd-ai/go-flattop/pkg/physics"
)

// Game owns the carrier and the aircraft fleet and exposes the surface
// a driver needs: Init, Deinit, Update(dt) once per tick, and the input
// callbacks. The fleet manager is embedded here: the active-sortie
// counter lives on the Game and is only mutated by launch, landing, and
// relaunch transitions.
type Game struct {
	Config *config.GameConfig
	Ship   *entity.Ship
	Fleet  []*entity.Aircraft

	// ActiveAircraft counts sorties holding a capacity slot. It never
	// exceeds Config.MaxAircraft and never goes negative.
	ActiveAircraft int

	EventBus *event.Bus
	Renderer entity.Renderer

	CurrentTick uint64
	ElapsedTime float64

	initialized bool
	mu          sync.RWMutex
	logger      *logging.Logger
}

// NewGame creates a game session with the given configuration and
// visual layer.
func NewGame(cfg *config.GameConfig, renderer entity.Renderer) *Game {
	return &Game{
		Config:   cfg,
		Ship:     entity.NewShip(entity.GenerateID(), cfg.Ship.Stats()),
		EventBus: event.NewEventBus(),
		Renderer: renderer,
		logger:   logging.NewLogger(),
	}
}

// Init sets up the session: the carrier gets its model and pose.
// Calling Init on an already initialized game is an invariant violation.
func (g *Game) Init() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.initialized {
		return errors.New("game already initialized")
	}
	if err := g.Ship.Init(g.Renderer); err != nil {
		return logging.WrapError(err, "initializing carrier")
	}
	g.initialized = true

	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameStarted,
		Source:    g,
	})
	return nil
}

// Deinit tears the session down. Calling Deinit on an uninitialized
// game is an invariant violation.
func (g *Game) Deinit() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.initialized {
		return errors.New("game not initialized")
	}
	if err := g.Ship.Deinit(g.Renderer); err != nil {
		return logging.WrapError(err, "deinitializing carrier")
	}
	g.initialized = false

	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameEnded,
		Source:    g,
	})
	return nil
}

// Update advances the simulation by dt seconds: the carrier first, then
// every sortie against the carrier's fresh position.
func (g *Game) Update(dt float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Ship.Update(dt, g.Renderer)

	for _, aircraft := range g.Fleet {
		switch aircraft.Update(dt, g.Ship.Position, g.Renderer) {
		case entity.TransitionLanded:
			g.handleLanding(aircraft)
		case entity.TransitionRelaunched:
			g.handleRelaunch(aircraft)
		}
	}

	g.CurrentTick++
	g.ElapsedTime += dt
}

// handleLanding processes a sortie touching down on the carrier
func (g *Game) handleLanding(aircraft *entity.Aircraft) {
	if g.Config.SlotPolicy == config.SlotFreedOnLanding {
		g.releaseSlot()
	}
	g.EventBus.Publish(event.NewAircraftEvent(
		event.AircraftLanded,
		g,
		uint64(aircraft.ID),
		aircraft.Position.X,
		aircraft.Position.Y,
	))
}

// handleRelaunch processes a refueled sortie taking off again
func (g *Game) handleRelaunch(aircraft *entity.Aircraft) {
	if g.Config.SlotPolicy == config.SlotFreedOnRelaunch {
		g.releaseSlot()
	}
	g.EventBus.Publish(event.NewAircraftEvent(
		event.AircraftRelaunched,
		g,
		uint64(aircraft.ID),
		aircraft.Position.X,
		aircraft.Position.Y,
	))
}

// releaseSlot returns one capacity slot to the fleet
func (g *Game) releaseSlot() {
	if g.ActiveAircraft > 0 {
		g.ActiveAircraft--
	}
}

// KeyPressed forwards a held steering key to the carrier
func (g *Game) KeyPressed(key entity.Key) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Ship.KeyPressed(key)
}

// KeyReleased forwards a released steering key to the carrier
func (g *Game) KeyReleased(key entity.Key) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Ship.KeyReleased(key)
}

// MouseClicked dispatches a click: the primary button launches a new
// sortie at the click point, the secondary button places a goal marker
// and sends the whole fleet to orbit the click point.
func (g *Game) MouseClicked(x, y float64, primary bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Ship.MouseClicked(x, y, primary, g.Renderer)

	target := physics.Vector2D{X: x, Y: y}
	if primary {
		g.launchAircraft(target)
	} else {
		g.EventBus.Publish(event.NewFleetEvent(
			event.GoalMarkerPlaced,
			g,
			target.X,
			target.Y,
			len(g.Fleet),
			false,
		))
		g.retargetFleet(target)
	}
}

// launchAircraft spawns a new sortie at the carrier if a capacity slot
// is free. At capacity the command is dropped without error.
func (g *Game) launchAircraft(target physics.Vector2D) {
	if g.ActiveAircraft >= g.Config.MaxAircraft {
		g.logger.Debug(context.Background(), "launch rejected, fleet at capacity",
			"active_aircraft", g.ActiveAircraft,
			"max_aircraft", g.Config.MaxAircraft,
		)
		return
	}

	aircraft := entity.NewAircraft(
		entity.GenerateID(),
		g.Ship.Position,
		0,
		g.Config.Aircraft.Stats(),
	)
	aircraft.SetTarget(target)
	aircraft.Takeoff(g.Renderer)

	g.ActiveAircraft++
	g.Fleet = append(g.Fleet, aircraft)

	g.EventBus.Publish(event.NewAircraftEvent(
		event.AircraftLaunched,
		g,
		uint64(aircraft.ID),
		aircraft.Position.X,
		aircraft.Position.Y,
	))
}

// retargetFleet orders every sortie to orbit the new shared target. If
// any sortie is already mid-orbit when the command arrives, the whole
// fleet is re-routed: every sortie is forced back onto its target leg.
func (g *Game) retargetFleet(target physics.Vector2D) {
	rerouted := false
	for _, aircraft := range g.Fleet {
		if aircraft.Phase == entity.PhaseOrbitTarget {
			rerouted = true
			break
		}
	}

	for _, aircraft := range g.Fleet {
		aircraft.ShouldOrbit = true
		aircraft.SetTarget(target)
		if rerouted {
			aircraft.Phase = entity.PhaseToTarget
		}
	}

	g.EventBus.Publish(event.NewFleetEvent(
		event.FleetRetargeted,
		g,
		target.X,
		target.Y,
		len(g.Fleet),
		rerouted,
	))
}

// GetGameState returns a snapshot of the current session state
func (g *Game) GetGameState() *GameState {
	g.mu.RLock()
	defer g.mu.RUnlock()

	state := &GameState{
		Tick:           g.CurrentTick,
		ElapsedTime:    g.ElapsedTime,
		ActiveAircraft: g.ActiveAircraft,
		Ship: ShipState{
			ID:       g.Ship.ID,
			Position: g.Ship.Position,
			Heading:  g.Ship.Heading,
		},
		Fleet: make([]AircraftState, 0, len(g.Fleet)),
	}

	for _, aircraft := range g.Fleet {
		state.Fleet = append(state.Fleet, AircraftState{
			ID:       aircraft.ID,
			Position: aircraft.Position,
			Heading:  aircraft.Heading,
			Target:   aircraft.Target,
			Phase:    aircraft.Phase,
			Landed:   aircraft.Landed,
		})
	}

	return state
}

// GameState is a snapshot of the session for renderers and tooling
type GameState struct {
	Tick           uint64
	ElapsedTime    float64
	ActiveAircraft int
	Ship           ShipState
	Fleet          []AircraftState
}

// ShipState is a snapshot of the carrier's pose
type ShipState struct {
	ID       entity.ID
	Position physics.Vector2D
	Heading  float64
}

// AircraftState is a snapshot of one sortie
type AircraftState struct {
	ID       entity.ID
	Position physics.Vector2D
	Heading  float64
	Target   physics.Vector2D
	Phase    entity.FlightPhase
	Landed   bool
}
