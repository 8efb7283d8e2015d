// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-flattop/pkg/engine"
	"github.com/opd-ai/go-flattop/pkg/entity"
)

// steeringButtons maps Engo button names to carrier steering keys
var steeringButtons = []struct {
	button string
	key    entity.Key
}{
	{"forward", entity.KeyForward},
	{"backward", entity.KeyBackward},
	{"left", entity.KeyLeft},
	{"right", entity.KeyRight},
}

// InputSystem translates Engo input into game commands. Steering keys
// are edge-triggered so the game sees the same pressed and released
// callbacks a windowing toolkit would deliver.
type InputSystem struct {
	game   *engine.Game
	camera *CameraSystem

	// Previous frame's button state, for edge detection.
	buttonDown map[string]bool
}

// NewInputSystem creates a new input system
func NewInputSystem(game *engine.Game, camera *CameraSystem) *InputSystem {
	return &InputSystem{
		game:       game,
		camera:     camera,
		buttonDown: make(map[string]bool),
	}
}

// Add satisfies the ecs.System interface
func (is *InputSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for input system
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {
	// Not used for input system
}

// Update processes input and forwards commands to the game
func (is *InputSystem) Update(dt float32) {
	is.handleSteeringInput()
	is.handleMouseInput()
}

// handleSteeringInput forwards steering key edges to the game
func (is *InputSystem) handleSteeringInput() {
	for _, binding := range steeringButtons {
		down := engo.Input.Button(binding.button).Down()
		was := is.buttonDown[binding.button]

		if down && !was {
			is.game.KeyPressed(binding.key)
		} else if !down && was {
			is.game.KeyReleased(binding.key)
		}
		is.buttonDown[binding.button] = down
	}
}

// handleMouseInput forwards click events, converted to simulation
// coordinates, to the game.
func (is *InputSystem) handleMouseInput() {
	mouse := engo.Input.Mouse
	if mouse.Action != engo.Press {
		return
	}

	worldPos := is.camera.ScreenToWorld(engo.Point{X: mouse.X, Y: mouse.Y})

	switch mouse.Button {
	case engo.MouseButtonLeft:
		is.game.MouseClicked(worldPos.X, worldPos.Y, true)
	case engo.MouseButtonRight:
		is.game.MouseClicked(worldPos.X, worldPos.Y, false)
	}
}

// SetupInputBindings registers the steering key bindings
func SetupInputBindings() {
	engo.Input.RegisterButton("forward", engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton("backward", engo.KeyS, engo.KeyArrowDown)
	engo.Input.RegisterButton("left", engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton("right", engo.KeyD, engo.KeyArrowRight)
}
