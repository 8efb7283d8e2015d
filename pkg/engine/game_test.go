// pkg/engine/game_test.go
package engine

import (
	"testing"

	"github.com/opd-ai/go-flattop/pkg/config"
	"github.com/opd-ai/go-flattop/pkg/entity"
	"github.com/opd-ai/go-flattop/pkg/event"
	"github.com/opd-ai/go-flattop/pkg/physics"
)

// stubRenderer records model lifecycle calls for assertions
type stubRenderer struct {
	nextID     entity.ModelID
	created    int
	destroyed  int
	liveModels map[entity.ModelID]bool
	markers    int
}

func newStubRenderer() *stubRenderer {
	return &stubRenderer{liveModels: make(map[entity.ModelID]bool)}
}

func (s *stubRenderer) CreateShipModel() entity.ModelID     { return s.create() }
func (s *stubRenderer) CreateAircraftModel() entity.ModelID { return s.create() }

func (s *stubRenderer) create() entity.ModelID {
	s.nextID++
	s.created++
	s.liveModels[s.nextID] = true
	return s.nextID
}

func (s *stubRenderer) DestroyModel(id entity.ModelID) {
	s.destroyed++
	delete(s.liveModels, id)
}

func (s *stubRenderer) PlaceModel(id entity.ModelID, x, y, angle float64) {}
func (s *stubRenderer) PlaceGoalMarker(x, y float64)                      { s.markers++ }
func (s *stubRenderer) Clear()                                            {}
func (s *stubRenderer) Present()                                          {}

func newTestGame() (*Game, *stubRenderer) {
	r := newStubRenderer()
	return NewGame(config.DefaultConfig(), r), r
}

func TestNewGame_InitializesState(t *testing.T) {
	game, _ := newTestGame()
	if game.Ship == nil {
		t.Fatal("NewGame did not create the carrier")
	}
	if len(game.Fleet) != 0 {
		t.Errorf("fleet length = %d, expected 0", len(game.Fleet))
	}
	if game.ActiveAircraft != 0 {
		t.Errorf("active aircraft = %d, expected 0", game.ActiveAircraft)
	}
	if game.EventBus == nil {
		t.Error("event bus not initialized")
	}
}

func TestGame_Init_Invariants(t *testing.T) {
	game, r := newTestGame()

	if err := game.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if game.Ship.Model == 0 {
		t.Error("Init() did not allocate the carrier model")
	}
	if err := game.Init(); err == nil {
		t.Error("second Init() should return an error")
	}

	if err := game.Deinit(); err != nil {
		t.Fatalf("Deinit() error: %v", err)
	}
	if len(r.liveModels) != 0 {
		t.Errorf("live models after Deinit = %d, expected 0", len(r.liveModels))
	}
	if err := game.Deinit(); err == nil {
		t.Error("Deinit() on torn-down game should return an error")
	}
}

func TestGame_PrimaryClick_LaunchesAircraft(t *testing.T) {
	game, _ := newTestGame()

	game.MouseClicked(3, 4, true)

	if len(game.Fleet) != 1 {
		t.Fatalf("fleet length = %d, expected 1", len(game.Fleet))
	}
	if game.ActiveAircraft != 1 {
		t.Errorf("active aircraft = %d, expected 1", game.ActiveAircraft)
	}

	aircraft := game.Fleet[0]
	if aircraft.Landed {
		t.Error("launched aircraft still landed")
	}
	if aircraft.Target != (physics.Vector2D{X: 3, Y: 4}) || !aircraft.HasTarget {
		t.Errorf("target = %v, expected (3, 4)", aircraft.Target)
	}
	if aircraft.Position != game.Ship.Position {
		t.Errorf("spawn position = %v, expected carrier position %v",
			aircraft.Position, game.Ship.Position)
	}
}

func TestGame_LaunchAtCapacity_SilentlyDropped(t *testing.T) {
	game, _ := newTestGame()

	for i := 0; i < game.Config.MaxAircraft+3; i++ {
		game.MouseClicked(float64(i), 0, true)
	}

	if len(game.Fleet) != game.Config.MaxAircraft {
		t.Errorf("fleet length = %d, expected cap %d", len(game.Fleet), game.Config.MaxAircraft)
	}
	if game.ActiveAircraft != game.Config.MaxAircraft {
		t.Errorf("active aircraft = %d, expected cap %d", game.ActiveAircraft, game.Config.MaxAircraft)
	}
}

func TestGame_SecondaryClick_RetargetsFleet(t *testing.T) {
	game, r := newTestGame()
	game.MouseClicked(10, 0, true)
	game.MouseClicked(0, 10, true)

	game.MouseClicked(-5, -5, false)

	if r.markers != 1 {
		t.Errorf("goal markers placed = %d, expected 1", r.markers)
	}
	want := physics.Vector2D{X: -5, Y: -5}
	for i, aircraft := range game.Fleet {
		if !aircraft.ShouldOrbit {
			t.Errorf("aircraft %d orbit flag not set", i)
		}
		if aircraft.Target != want {
			t.Errorf("aircraft %d target = %v, expected %v", i, aircraft.Target, want)
		}
	}
}

func TestGame_SecondaryClick_NoOrbiterKeepsPhases(t *testing.T) {
	game, _ := newTestGame()
	game.MouseClicked(10, 0, true)
	game.Fleet[0].Phase = entity.PhaseReturnToBase

	game.MouseClicked(2, 2, false)

	if game.Fleet[0].Phase != entity.PhaseReturnToBase {
		t.Errorf("phase = %v, expected unchanged %v",
			game.Fleet[0].Phase, entity.PhaseReturnToBase)
	}
}

func TestGame_SecondaryClick_MidOrbitReroutesWholeFleet(t *testing.T) {
	game, _ := newTestGame()
	game.MouseClicked(10, 0, true)
	game.MouseClicked(0, 10, true)
	game.MouseClicked(5, 5, true)

	game.Fleet[1].Phase = entity.PhaseOrbitTarget
	game.Fleet[2].Phase = entity.PhaseReturnToBase

	rerouted := false
	game.EventBus.Subscribe(event.FleetRetargeted, func(e event.Event) {
		rerouted = e.(*event.FleetEvent).Rerouted
	})

	game.MouseClicked(7, 7, false)

	for i, aircraft := range game.Fleet {
		if aircraft.Phase != entity.PhaseToTarget {
			t.Errorf("aircraft %d phase = %v, expected %v",
				i, aircraft.Phase, entity.PhaseToTarget)
		}
	}
	if !rerouted {
		t.Error("fleet event did not report a re-route")
	}
}

// flyUntil steps the game until the predicate holds or the time budget runs out
func flyUntil(t *testing.T, game *Game, seconds float64, pred func() bool) {
	t.Helper()
	steps := int(seconds / 0.05)
	for i := 0; i < steps; i++ {
		game.Update(0.05)
		if pred() {
			return
		}
	}
	t.Fatalf("condition not reached within %v simulated seconds", seconds)
}

func TestGame_FullSortie_LandsBackOnCarrier(t *testing.T) {
	game, r := newTestGame()
	if err := game.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	game.MouseClicked(1, 0, true)
	aircraft := game.Fleet[0]
	model := aircraft.Model
	if model == 0 {
		t.Fatal("launched aircraft has no model")
	}

	flyUntil(t, game, 15, func() bool { return aircraft.Phase == entity.PhaseReturnToBase })
	flyUntil(t, game, 30, func() bool { return aircraft.Phase == entity.PhaseLanded })

	if !aircraft.Landed {
		t.Error("aircraft not marked landed")
	}
	if aircraft.Model != 0 || r.liveModels[model] {
		t.Error("landing did not release the aircraft model")
	}
	if d := aircraft.Position.Distance(game.Ship.Position); d > aircraft.Stats.ArrivalRadius {
		t.Errorf("landed %v from carrier, expected within %v", d, aircraft.Stats.ArrivalRadius)
	}
}

func TestGame_SlotFreedOnRelaunch_AllowsNewSpawnWhileReusedSortieFlies(t *testing.T) {
	game, _ := newTestGame()
	game.MouseClicked(1, 0, true)
	aircraft := game.Fleet[0]

	flyUntil(t, game, 45, func() bool { return aircraft.Phase == entity.PhaseLanded })
	if game.ActiveAircraft != 1 {
		t.Fatalf("active aircraft after landing = %d, expected 1 under relaunch policy",
			game.ActiveAircraft)
	}

	flyUntil(t, game, 10, func() bool { return !aircraft.Landed })
	if game.ActiveAircraft != 0 {
		t.Fatalf("active aircraft after relaunch = %d, expected 0", game.ActiveAircraft)
	}

	// The reused sortie is airborne yet holds no slot: a fresh spawn works.
	game.MouseClicked(2, 2, true)
	if len(game.Fleet) != 2 {
		t.Errorf("fleet length = %d, expected 2", len(game.Fleet))
	}
}

func TestGame_SlotFreedOnLanding_ReleasesAtTouchdown(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SlotPolicy = config.SlotFreedOnLanding
	game := NewGame(cfg, newStubRenderer())

	game.MouseClicked(1, 0, true)
	aircraft := game.Fleet[0]

	flyUntil(t, game, 45, func() bool { return aircraft.Phase == entity.PhaseLanded })
	if game.ActiveAircraft != 0 {
		t.Errorf("active aircraft after landing = %d, expected 0 under landing policy",
			game.ActiveAircraft)
	}
}

func TestGame_ActiveAircraft_NeverNegative(t *testing.T) {
	// Under the landing policy a reused sortie releases a slot on every
	// touchdown; the counter must still never dip below zero.
	cfg := config.DefaultConfig()
	cfg.SlotPolicy = config.SlotFreedOnLanding
	game := NewGame(cfg, newStubRenderer())

	game.MouseClicked(0.5, 0, true)
	aircraft := game.Fleet[0]

	for cycle := 0; cycle < 2; cycle++ {
		flyUntil(t, game, 60, func() bool { return aircraft.Landed })
		if game.ActiveAircraft < 0 {
			t.Fatalf("active aircraft went negative: %d", game.ActiveAircraft)
		}
		flyUntil(t, game, 10, func() bool { return !aircraft.Landed })
	}

	if game.ActiveAircraft != 0 {
		t.Errorf("active aircraft = %d, expected 0", game.ActiveAircraft)
	}
}

func TestGame_CapacityInvariant_UnderMixedCommands(t *testing.T) {
	game, _ := newTestGame()

	for i := 0; i < 200; i++ {
		if i%3 == 0 {
			game.MouseClicked(float64(i%7), float64(i%5), true)
		}
		if i%17 == 0 {
			game.MouseClicked(1, 1, false)
		}
		game.Update(0.1)

		if game.ActiveAircraft < 0 || game.ActiveAircraft > game.Config.MaxAircraft {
			t.Fatalf("tick %d: active aircraft = %d, outside [0, %d]",
				i, game.ActiveAircraft, game.Config.MaxAircraft)
		}
	}
}

func TestGame_KeyInput_DrivesCarrier(t *testing.T) {
	game, _ := newTestGame()

	game.KeyPressed(entity.KeyForward)
	game.Update(1.0)
	if game.Ship.Position == (physics.Vector2D{}) {
		t.Error("carrier did not move with forward held")
	}

	game.KeyReleased(entity.KeyForward)
	before := game.Ship.Position
	game.Update(1.0)
	if game.Ship.Position != before {
		t.Error("carrier moved after key release")
	}
}

func TestGame_Events_PublishedOnSortieLifecycle(t *testing.T) {
	game, _ := newTestGame()

	var launched, landed int
	game.EventBus.Subscribe(event.AircraftLaunched, func(e event.Event) { launched++ })
	game.EventBus.Subscribe(event.AircraftLanded, func(e event.Event) { landed++ })

	game.MouseClicked(1, 0, true)
	aircraft := game.Fleet[0]
	flyUntil(t, game, 45, func() bool { return aircraft.Phase == entity.PhaseLanded })

	if launched != 1 {
		t.Errorf("launched events = %d, expected 1", launched)
	}
	if landed != 1 {
		t.Errorf("landed events = %d, expected 1", landed)
	}
}

func TestGame_GetGameState_Snapshot(t *testing.T) {
	game, _ := newTestGame()
	game.MouseClicked(2, 3, true)
	game.Update(0.1)

	state := game.GetGameState()

	if state.Tick != 1 {
		t.Errorf("tick = %d, expected 1", state.Tick)
	}
	if state.ActiveAircraft != 1 {
		t.Errorf("active aircraft = %d, expected 1", state.ActiveAircraft)
	}
	if len(state.Fleet) != 1 {
		t.Fatalf("fleet snapshot length = %d, expected 1", len(state.Fleet))
	}
	if state.Fleet[0].Target != (physics.Vector2D{X: 2, Y: 3}) {
		t.Errorf("snapshot target = %v, expected (2, 3)", state.Fleet[0].Target)
	}
	if state.Ship.Position != game.Ship.Position {
		t.Errorf("snapshot ship position = %v, expected %v",
			state.Ship.Position, game.Ship.Position)
	}
}
