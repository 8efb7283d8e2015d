// pkg/entity/renderer.go
package entity

// ModelID is an opaque handle to a model owned by the visual layer.
// The zero value means "no model".
type ModelID uint64

// Renderer is the capability set the simulation consumes from the
// visual layer. All calls are fire-and-forget; the core never reads
// anything back beyond the allocated handle.
type Renderer interface {
	CreateShipModel() ModelID
	CreateAircraftModel() ModelID
	DestroyModel(id ModelID)
	PlaceModel(id ModelID, x, y, angle float64)
	PlaceGoalMarker(x, y float64)
	Clear()
	Present()
}
