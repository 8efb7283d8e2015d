// pkg/entity/aircraft.go
package entity

import (
	"math"

	"github.com/opd-ai/go-flattop/pkg/physics"
)

// FlightPhase is the discrete state of a sortie's flight plan
type FlightPhase int

const (
	PhaseToTarget FlightPhase = iota
	PhaseOrbitTarget
	PhaseReturnToBase
	PhaseLanded
)

// String returns a human-readable phase name for logs and rendering
func (p FlightPhase) String() string {
	switch p {
	case PhaseToTarget:
		return "to_target"
	case PhaseOrbitTarget:
		return "orbit_around_target"
	case PhaseReturnToBase:
		return "return_to_base"
	case PhaseLanded:
		return "landed"
	default:
		return "unknown"
	}
}

// Transition reports what, if anything, happened to a sortie during one
// Update call. The fleet manager uses it to keep the capacity counter
// in sync with takeoff/landing transitions.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionLanded
	TransitionRelaunched
)

// AircraftStats contains the tuning parameters for a sortie
type AircraftStats struct {
	LinearSpeed      float64
	FlyTime          float64 // outbound leg budget; also the speed ramp constant
	RefuelTime       float64
	OrbitDuration    float64
	OrbitRadius      float64
	OrbitRate        float64 // radians per second around the target
	OrbitEasingTime  float64 // horizon for easing onto the orbit track
	ReturnRotateTime float64 // seconds to swing the nose toward the carrier
	ArrivalRadius    float64
}

// DefaultAircraftStats returns the standard sortie tuning
func DefaultAircraftStats() AircraftStats {
	return AircraftStats{
		LinearSpeed:      2.0,
		FlyTime:          10.0,
		RefuelTime:       5.0,
		OrbitDuration:    10.0,
		OrbitRadius:      0.7,
		OrbitRate:        0.8,
		OrbitEasingTime:  50.0,
		ReturnRotateTime: 5.0,
		ArrivalRadius:    0.1,
	}
}

// Aircraft represents one sortie. The same value cycles between flying
// and refueling for the whole session; it is never removed from the
// fleet once launched.
type Aircraft struct {
	BaseActor
	Stats AircraftStats

	Target    physics.Vector2D
	HasTarget bool

	Phase       FlightPhase
	Landed      bool
	ShouldOrbit bool

	TimeSinceTakeoff float64
	TimeSinceLanding float64
	OrbitElapsed     float64
	ReturnElapsed    float64

	Model ModelID
}

// NewAircraft creates a sortie on the carrier deck, ready for takeoff
func NewAircraft(id ID, position physics.Vector2D, heading float64, stats AircraftStats) *Aircraft {
	return &Aircraft{
		BaseActor: BaseActor{
			ID:       id,
			Position: position,
			Heading:  heading,
		},
		Stats:  stats,
		Phase:  PhaseToTarget,
		Landed: true,
	}
}

// SetTarget assigns the commanded destination
func (a *Aircraft) SetTarget(target physics.Vector2D) {
	a.Target = target
	a.HasTarget = true
}

// Takeoff starts a sortie: it allocates the visual model, zeroes the
// flight timer, and enters the outbound leg. A no-op while airborne.
func (a *Aircraft) Takeoff(r Renderer) {
	if !a.Landed {
		return
	}
	a.Model = r.CreateAircraftModel()
	a.TimeSinceTakeoff = 0
	a.Landed = false
	a.TimeSinceLanding = 0
	a.Phase = PhaseToTarget
}

// Land ends a sortie: it releases the visual model and starts the
// refuel timer. A no-op if already landed.
func (a *Aircraft) Land(r Renderer) {
	if a.Landed {
		return
	}
	if a.Model != 0 {
		r.DestroyModel(a.Model)
		a.Model = 0
	}
	a.Landed = true
	a.TimeSinceLanding = 0
}

// Update advances the sortie by one tick. basePos is the carrier's
// current position, the anchor for the return leg. The returned
// Transition tells the fleet manager about takeoff/landing boundary
// crossings; the capacity counter is never touched here.
func (a *Aircraft) Update(dt float64, basePos physics.Vector2D, r Renderer) Transition {
	if a.Landed {
		return a.refuel(dt, r)
	}

	switch a.Phase {
	case PhaseToTarget:
		a.updateToTarget(dt, r)
	case PhaseOrbitTarget:
		a.updateOrbit(dt, r)
	case PhaseReturnToBase:
		return a.updateReturn(dt, basePos, r)
	case PhaseLanded:
		// Phase and landed flag disagree only if a caller forced the
		// phase by hand; treat it as already down.
	}
	return TransitionNone
}

// refuel advances the refuel timer and relaunches the sortie when full.
// On relaunch the freshly allocated model is released again at once:
// a reused sortie flies without a visual handle between landings.
func (a *Aircraft) refuel(dt float64, r Renderer) Transition {
	a.TimeSinceLanding += dt
	if a.TimeSinceLanding < a.Stats.RefuelTime {
		return TransitionNone
	}

	a.Takeoff(r)
	if a.Model != 0 {
		r.DestroyModel(a.Model)
		a.Model = 0
	}
	return TransitionRelaunched
}

// updateToTarget flies the outbound leg: speed ramps up linearly over
// FlyTime, heading locked onto the target. The leg is abandoned for the
// return leg once the flight-time budget runs out, whether or not the
// target was reached.
func (a *Aircraft) updateToTarget(dt float64, r Renderer) {
	a.TimeSinceTakeoff += dt
	if a.TimeSinceTakeoff > a.Stats.FlyTime {
		// Out of flight time. The return timer intentionally keeps its
		// previous value on this path.
		a.Phase = PhaseReturnToBase
		return
	}

	offset := a.Target.Sub(a.Position)
	distance := offset.Length()
	direction := offset.Normalize()

	ramp := math.Min(1, a.TimeSinceTakeoff/a.Stats.FlyTime)
	a.Position = a.Position.Add(direction.Scale(a.Stats.LinearSpeed * dt * ramp))
	a.Heading = direction.Angle()
	a.place(r, a.Heading)

	if distance <= a.Stats.ArrivalRadius {
		if a.ShouldOrbit {
			a.Phase = PhaseOrbitTarget
			a.OrbitElapsed = 0
		} else {
			a.Phase = PhaseReturnToBase
			a.ReturnElapsed = 0
		}
	}
}

// updateOrbit loiters around the target: the sortie eases toward a
// point circling the target and is drawn facing that point. The stored
// heading is left alone so the return leg swings from the last
// outbound heading, matching the observed flight profile.
func (a *Aircraft) updateOrbit(dt float64, r Renderer) {
	if !a.ShouldOrbit {
		a.Phase = PhaseReturnToBase
		a.ReturnElapsed = 0
		return
	}

	a.OrbitElapsed += dt

	orbitAngle := a.OrbitElapsed * a.Stats.OrbitRate
	easing := math.Min(1, a.OrbitElapsed/a.Stats.OrbitEasingTime)

	orbitPoint := a.Target.Add(physics.FromAngle(orbitAngle, a.Stats.OrbitRadius))
	facing := orbitPoint.Sub(a.Position).Normalize().Angle()

	a.Position = a.Position.Add(orbitPoint.Sub(a.Position).Scale(easing))
	a.place(r, facing)

	if a.OrbitElapsed >= a.Stats.OrbitDuration {
		a.Phase = PhaseReturnToBase
		a.ReturnElapsed = 0
	}
}

// updateReturn flies back to the carrier's current position. The nose
// eases toward the carrier bearing over ReturnRotateTime; movement uses
// the same ramp constant as takeoff, so a timed-out sortie comes home
// at full speed while a fresh return leg ramps up from zero.
func (a *Aircraft) updateReturn(dt float64, basePos physics.Vector2D, r Renderer) Transition {
	a.ReturnElapsed += dt

	offset := basePos.Sub(a.Position)
	distance := offset.Length()
	direction := offset.Normalize()

	bearing := direction.Angle()
	rotation := math.Min(1, a.ReturnElapsed/a.Stats.ReturnRotateTime)
	a.Heading += (bearing - a.Heading) * rotation

	ramp := math.Min(1, a.ReturnElapsed/a.Stats.FlyTime)
	a.Position = a.Position.Add(direction.Scale(a.Stats.LinearSpeed * dt * ramp))
	a.place(r, a.Heading)

	if distance <= a.Stats.ArrivalRadius {
		a.Phase = PhaseLanded
		a.Land(r)
		return TransitionLanded
	}
	return TransitionNone
}

// place pushes the sortie's pose to the visual layer if it has a model
func (a *Aircraft) place(r Renderer, angle float64) {
	if a.Model != 0 {
		r.PlaceModel(a.Model, a.Position.X, a.Position.Y, angle)
	}
}
