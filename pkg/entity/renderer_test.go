// pkg/entity/renderer_test.go
package entity

// fakeRenderer records visual-layer calls so tests can assert on model
// lifecycles without a real rendering backend.
type fakeRenderer struct {
	nextID         ModelID
	shipsCreated   int
	planesCreated  int
	destroyed      []ModelID
	placements     map[ModelID]int
	lastPlacement  map[ModelID][3]float64
	goalMarkers    [][2]float64
	clearCalls     int
	presentCalls   int
	liveModelCount int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		placements:    make(map[ModelID]int),
		lastPlacement: make(map[ModelID][3]float64),
	}
}

func (f *fakeRenderer) CreateShipModel() ModelID {
	f.nextID++
	f.shipsCreated++
	f.liveModelCount++
	return f.nextID
}

func (f *fakeRenderer) CreateAircraftModel() ModelID {
	f.nextID++
	f.planesCreated++
	f.liveModelCount++
	return f.nextID
}

func (f *fakeRenderer) DestroyModel(id ModelID) {
	f.destroyed = append(f.destroyed, id)
	f.liveModelCount--
}

func (f *fakeRenderer) PlaceModel(id ModelID, x, y, angle float64) {
	f.placements[id]++
	f.lastPlacement[id] = [3]float64{x, y, angle}
}

func (f *fakeRenderer) PlaceGoalMarker(x, y float64) {
	f.goalMarkers = append(f.goalMarkers, [2]float64{x, y})
}

func (f *fakeRenderer) Clear()   { f.clearCalls++ }
func (f *fakeRenderer) Present() { f.presentCalls++ }
