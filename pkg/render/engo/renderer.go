// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-flattop/pkg/entity"
	"github.com/opd-ai/go-flattop/pkg/physics"
)

// pixelsPerUnit scales simulation coordinates to screen pixels
const pixelsPerUnit = 32.0

// model kinds tracked by the renderer
const (
	modelCarrier = iota
	modelAircraft
)

// engoModel is the renderer's record of one live handle and the ECS
// components it owns.
type engoModel struct {
	kind   int
	basic  ecs.BasicEntity
	render *common.RenderComponent
	space  *common.SpaceComponent
}

// EngoRenderer implements entity.Renderer on top of the Engo game
// engine. Each handle maps to one ECS entity in the render system, and
// PlaceModel mutates that entity's space component in place.
type EngoRenderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem

	nextID entity.ModelID
	models map[entity.ModelID]*engoModel
	goal   *engoModel

	assets *AssetManager
}

// NewEngoRenderer creates a new Engo-based renderer
func NewEngoRenderer(world *ecs.World) *EngoRenderer {
	return &EngoRenderer{
		world:  world,
		models: make(map[entity.ModelID]*engoModel),
		assets: NewAssetManager(),
	}
}

// Initialize sets up the renderer's systems
func (r *EngoRenderer) Initialize() error {
	r.renderSystem = &common.RenderSystem{}
	r.world.AddSystem(r.renderSystem)

	return r.assets.LoadAssets()
}

// CreateShipModel implements entity.Renderer
func (r *EngoRenderer) CreateShipModel() entity.ModelID {
	return r.create(modelCarrier, r.assets.GetCarrierSprite(), 48, 24)
}

// CreateAircraftModel implements entity.Renderer
func (r *EngoRenderer) CreateAircraftModel() entity.ModelID {
	return r.create(modelAircraft, r.assets.GetAircraftSprite(), 24, 24)
}

func (r *EngoRenderer) create(kind int, sprite common.Drawable, width, height float32) entity.ModelID {
	model := &engoModel{
		kind:  kind,
		basic: ecs.NewBasic(),
		render: &common.RenderComponent{
			Drawable: sprite,
			Color:    color.RGBA{255, 255, 255, 255},
		},
		space: &common.SpaceComponent{
			Position: engo.Point{X: 0, Y: 0},
			Width:    width,
			Height:   height,
		},
	}
	r.renderSystem.Add(&model.basic, model.render, model.space)

	r.nextID++
	r.models[r.nextID] = model
	return r.nextID
}

// DestroyModel implements entity.Renderer
func (r *EngoRenderer) DestroyModel(id entity.ModelID) {
	if model, exists := r.models[id]; exists {
		r.renderSystem.Remove(model.basic)
		delete(r.models, id)
	}
}

// PlaceModel implements entity.Renderer
func (r *EngoRenderer) PlaceModel(id entity.ModelID, x, y, angle float64) {
	model, exists := r.models[id]
	if !exists {
		return
	}

	pos := r.worldToScreen(physics.Vector2D{X: x, Y: y})
	model.space.Position = engo.Point{
		X: pos.X - model.space.Width/2,
		Y: pos.Y - model.space.Height/2,
	}
	// Engo rotations are clockwise degrees, simulation headings are
	// counterclockwise radians.
	model.space.Rotation = float32(-angle * 180 / math.Pi)
}

// PlaceGoalMarker implements entity.Renderer
func (r *EngoRenderer) PlaceGoalMarker(x, y float64) {
	if r.goal == nil {
		r.goal = &engoModel{
			basic: ecs.NewBasic(),
			render: &common.RenderComponent{
				Drawable: r.assets.GetGoalMarkerSprite(),
				Color:    color.RGBA{255, 80, 80, 255},
			},
			space: &common.SpaceComponent{
				Width:  16,
				Height: 16,
			},
		}
		r.renderSystem.Add(&r.goal.basic, r.goal.render, r.goal.space)
	}

	pos := r.worldToScreen(physics.Vector2D{X: x, Y: y})
	r.goal.space.Position = engo.Point{
		X: pos.X - r.goal.space.Width/2,
		Y: pos.Y - r.goal.space.Height/2,
	}
}

// Clear implements entity.Renderer. Engo clears the framebuffer itself
// and the entity components persist between frames, so there is nothing
// to do here.
func (r *EngoRenderer) Clear() {}

// Present implements entity.Renderer. Presentation happens inside the
// render system's own update pass.
func (r *EngoRenderer) Present() {}

// worldToScreen converts simulation coordinates to Engo screen
// coordinates. Screen Y grows downward.
func (r *EngoRenderer) worldToScreen(worldPos physics.Vector2D) engo.Point {
	return engo.Point{
		X: float32(worldPos.X * pixelsPerUnit),
		Y: float32(-worldPos.Y * pixelsPerUnit),
	}
}

// screenToWorld converts Engo world-space coordinates back to
// simulation coordinates. Used by the input system for mouse clicks.
func (r *EngoRenderer) screenToWorld(screenPos engo.Point) physics.Vector2D {
	return physics.Vector2D{
		X: float64(screenPos.X) / pixelsPerUnit,
		Y: -float64(screenPos.Y) / pixelsPerUnit,
	}
}
