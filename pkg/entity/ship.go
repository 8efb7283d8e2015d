// pkg/entity/ship.go
package entity

import (
	"errors"

	"github.com/opd-ai/go-flattop/pkg/physics"
)

// Key identifies a steering input recognized by the ship
type Key int

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
)

// ShipStats contains the tuning parameters for the carrier
type ShipStats struct {
	LinearSpeed  float64
	AngularSpeed float64
}

// DefaultShipStats returns the standard carrier tuning
func DefaultShipStats() ShipStats {
	return ShipStats{
		LinearSpeed:  0.5,
		AngularSpeed: 0.5,
	}
}

// Ship represents the player-controlled carrier. Steering is arcade
// style: held keys select a linear and angular speed, and the pose is
// integrated directly each tick.
type Ship struct {
	BaseActor
	Stats ShipStats
	Input map[Key]bool
	Model ModelID
}

// NewShip creates a carrier at the origin with no keys held
func NewShip(id ID, stats ShipStats) *Ship {
	return &Ship{
		BaseActor: BaseActor{ID: id},
		Stats:     stats,
		Input: map[Key]bool{
			KeyForward:  false,
			KeyBackward: false,
			KeyLeft:     false,
			KeyRight:    false,
		},
	}
}

// Init allocates the ship's visual model and resets its pose.
// It is an invariant violation to initialize an already initialized ship.
func (s *Ship) Init(r Renderer) error {
	if s.Model != 0 {
		return errors.New("ship already initialized")
	}
	s.Model = r.CreateShipModel()
	s.Position = physics.Vector2D{}
	s.Heading = 0
	return nil
}

// Deinit releases the ship's visual model.
func (s *Ship) Deinit(r Renderer) error {
	if s.Model == 0 {
		return errors.New("ship not initialized")
	}
	r.DestroyModel(s.Model)
	s.Model = 0
	return nil
}

// Update integrates the carrier's pose for one tick and pushes it to
// the visual layer. Forward wins over backward, left wins over right,
// and turning is suppressed while the ship is not moving.
func (s *Ship) Update(dt float64, r Renderer) {
	var linearSpeed, angularSpeed float64

	if s.Input[KeyForward] {
		linearSpeed = s.Stats.LinearSpeed
	} else if s.Input[KeyBackward] {
		linearSpeed = -s.Stats.LinearSpeed
	}

	if s.Input[KeyLeft] && linearSpeed != 0 {
		angularSpeed = s.Stats.AngularSpeed
	} else if s.Input[KeyRight] && linearSpeed != 0 {
		angularSpeed = -s.Stats.AngularSpeed
	}

	s.Heading += angularSpeed * dt
	s.Position = s.Position.Add(physics.FromAngle(s.Heading, linearSpeed).Scale(dt))

	if s.Model != 0 {
		r.PlaceModel(s.Model, s.Position.X, s.Position.Y, s.Heading)
	}
}

// KeyPressed marks a steering key as held. Unrecognized keys are ignored.
func (s *Ship) KeyPressed(key Key) {
	if _, ok := s.Input[key]; ok {
		s.Input[key] = true
	}
}

// KeyReleased marks a steering key as released. Unrecognized keys are ignored.
func (s *Ship) KeyReleased(key Key) {
	if _, ok := s.Input[key]; ok {
		s.Input[key] = false
	}
}

// MouseClicked forwards a secondary-button click to the visual layer as
// a goal marker. It has no other effect on the ship.
func (s *Ship) MouseClicked(x, y float64, primary bool, r Renderer) {
	if !primary {
		r.PlaceGoalMarker(x, y)
	}
}
