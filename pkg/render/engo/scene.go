// pkg/render/engo/scene.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-flattop/pkg/config"
	"github.com/opd-ai/go-flattop/pkg/engine"
)

// GameScene is the Engo scene hosting a carrier session. It owns the
// game, the renderer, and the systems that drive them.
type GameScene struct {
	world *ecs.World

	config *config.GameConfig
	game   *engine.Game

	renderer *EngoRenderer
	camera   *CameraSystem
	input    *InputSystem
}

// NewGameScene creates a scene for the given configuration
func NewGameScene(cfg *config.GameConfig) *GameScene {
	return &GameScene{
		config: cfg,
		world:  &ecs.World{},
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	// Sprites are generated at Setup, nothing to preload.
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	scene.world = &ecs.World{}
	scene.world.AddSystem(&common.MouseSystem{})

	scene.renderer = NewEngoRenderer(scene.world)
	if err := scene.renderer.Initialize(); err != nil {
		panic("failed to initialize renderer: " + err.Error())
	}

	scene.game = engine.NewGame(scene.config, scene.renderer)
	if err := scene.game.Init(); err != nil {
		panic("failed to initialize game: " + err.Error())
	}

	scene.camera = NewCameraSystem()
	scene.world.AddSystem(scene.camera)

	SetupInputBindings()
	scene.input = NewInputSystem(scene.game, scene.camera)
	scene.world.AddSystem(scene.input)

	scene.world.AddSystem(&simulationSystem{
		game:   scene.game,
		camera: scene.camera,
	})
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	if scene.game != nil {
		_ = scene.game.Deinit()
	}
}

// simulationSystem steps the game once per frame and keeps the camera
// on the carrier.
type simulationSystem struct {
	game   *engine.Game
	camera *CameraSystem
}

// Add satisfies the ecs.System interface
func (s *simulationSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for simulation system
}

// Remove satisfies the ecs.System interface
func (s *simulationSystem) Remove(basic ecs.BasicEntity) {
	// Not used for simulation system
}

// Update advances the simulation by the frame's elapsed time
func (s *simulationSystem) Update(dt float32) {
	s.game.Renderer.Clear()
	s.game.Update(float64(dt))
	s.game.Renderer.Present()

	state := s.game.GetGameState()
	s.camera.SetTarget(state.Ship.Position)
}
