// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-flattop/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Actor is the shared positional capability implemented by the ship and
// the aircraft: a pose on the plane advanced once per simulation tick.
// There is no common update signature (the aircraft needs the carrier's
// position each tick), so Update is left to the concrete types.
type Actor interface {
	GetID() ID
	GetPosition() physics.Vector2D
	GetHeading() float64
}

// BaseActor contains the pose shared by all simulation entities
type BaseActor struct {
	ID       ID
	Position physics.Vector2D
	Heading  float64 // radians
}

// GetID returns the entity's unique identifier
func (a *BaseActor) GetID() ID {
	return a.ID
}

// GetPosition returns the entity's position
func (a *BaseActor) GetPosition() physics.Vector2D {
	return a.Position
}

// GetHeading returns the entity's heading in radians
func (a *BaseActor) GetHeading() float64 {
	return a.Heading
}

var idCounter uint64

// GenerateID generates a unique ID for entities
func GenerateID() ID {
	return ID(atomic.AddUint64(&idCounter, 1))
}
