// pkg/render/renderer.go
package render

import (
	"context"
	"sync/atomic"

	"github.com/opd-ai/go-flattop/pkg/entity"
	"github.com/opd-ai/go-flattop/pkg/logging"
)

// NullRenderer is an entity.Renderer that draws nothing. It hands out
// real handles and logs calls at debug level, which makes it the
// default visual layer for headless runs and tests.
type NullRenderer struct {
	nextID uint64
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// CreateShipModel implements entity.Renderer.
func (n *NullRenderer) CreateShipModel() entity.ModelID {
	id := entity.ModelID(atomic.AddUint64(&n.nextID, 1))
	n.logger.Debug(context.Background(), "CreateShipModel called", "model_id", id)
	return id
}

// CreateAircraftModel implements entity.Renderer.
func (n *NullRenderer) CreateAircraftModel() entity.ModelID {
	id := entity.ModelID(atomic.AddUint64(&n.nextID, 1))
	n.logger.Debug(context.Background(), "CreateAircraftModel called", "model_id", id)
	return id
}

// DestroyModel implements entity.Renderer.
func (n *NullRenderer) DestroyModel(id entity.ModelID) {
	n.logger.Debug(context.Background(), "DestroyModel called", "model_id", id)
}

// PlaceModel implements entity.Renderer.
func (n *NullRenderer) PlaceModel(id entity.ModelID, x, y, angle float64) {
	n.logger.Debug(context.Background(), "PlaceModel called",
		"model_id", id,
		"x", x,
		"y", y,
		"angle", angle,
	)
}

// PlaceGoalMarker implements entity.Renderer.
func (n *NullRenderer) PlaceGoalMarker(x, y float64) {
	n.logger.Debug(context.Background(), "PlaceGoalMarker called", "x", x, "y", y)
}

// Clear implements entity.Renderer.
func (n *NullRenderer) Clear() {}

// Present implements entity.Renderer.
func (n *NullRenderer) Present() {}

// NullRendererInstance is a shared NullRenderer for convenience.
var NullRendererInstance entity.Renderer = NewNullRenderer()
