// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-flattop/pkg/physics"
)

// CameraSystem keeps the camera on the carrier. The target is set in
// simulation coordinates every frame and the camera glides toward it.
type CameraSystem struct {
	target    physics.Vector2D
	targetSet bool

	followSpeed float32
	smoothing   bool

	currentPos physics.Vector2D
}

// NewCameraSystem creates a new camera system
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{
		followSpeed: 2.0,
		smoothing:   true,
	}
}

// Add satisfies the ecs.System interface
func (cs *CameraSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for camera system
}

// Remove satisfies the ecs.System interface
func (cs *CameraSystem) Remove(basic ecs.BasicEntity) {
	// Not used for camera system
}

// Update moves the camera toward the target and applies the transform
func (cs *CameraSystem) Update(dt float32) {
	if !cs.targetSet {
		return
	}

	if cs.smoothing {
		dx := cs.target.X - cs.currentPos.X
		dy := cs.target.Y - cs.currentPos.Y
		cs.currentPos.X += dx * float64(cs.followSpeed) * float64(dt)
		cs.currentPos.Y += dy * float64(cs.followSpeed) * float64(dt)
	} else {
		cs.currentPos = cs.target
	}

	cs.applyCameraTransform()
}

// applyCameraTransform centers the Engo camera on the current position
func (cs *CameraSystem) applyCameraTransform() {
	engo.Mailbox.Dispatch(common.CameraMessage{
		Axis:        common.XAxis,
		Value:       float32(cs.currentPos.X * pixelsPerUnit),
		Incremental: false,
	})
	engo.Mailbox.Dispatch(common.CameraMessage{
		Axis:        common.YAxis,
		Value:       float32(-cs.currentPos.Y * pixelsPerUnit),
		Incremental: false,
	})
}

// SetTarget sets the position for the camera to follow, in simulation
// coordinates.
func (cs *CameraSystem) SetTarget(target physics.Vector2D) {
	// Snap on the first target so the session does not open with a pan
	// across empty water.
	if !cs.targetSet {
		cs.currentPos = target
	}
	cs.target = target
	cs.targetSet = true
}

// ClearTarget clears the camera target
func (cs *CameraSystem) ClearTarget() {
	cs.targetSet = false
}

// EnableSmoothing enables or disables camera smoothing
func (cs *CameraSystem) EnableSmoothing(enabled bool) {
	cs.smoothing = enabled
}

// GetCurrentPosition returns the current camera position in simulation
// coordinates.
func (cs *CameraSystem) GetCurrentPosition() physics.Vector2D {
	return cs.currentPos
}

// ScreenToWorld converts window coordinates to simulation coordinates,
// accounting for the camera offset.
func (cs *CameraSystem) ScreenToWorld(screenPos engo.Point) physics.Vector2D {
	relativeX := float64(screenPos.X) - float64(engo.GameWidth())/2
	relativeY := float64(screenPos.Y) - float64(engo.GameHeight())/2

	return physics.Vector2D{
		X: relativeX/pixelsPerUnit + cs.currentPos.X,
		Y: -relativeY/pixelsPerUnit + cs.currentPos.Y,
	}
}
