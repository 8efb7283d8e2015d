// pkg/render/terminal.go
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opd-ai/go-flattop/pkg/entity"
	"github.com/opd-ai/go-flattop/pkg/physics"
)

// model kinds tracked by the terminal renderer
const (
	modelShip = iota
	modelAircraft
)

// placedModel is the terminal renderer's record of one live handle
type placedModel struct {
	kind  int
	pos   physics.Vector2D
	angle float64
}

// TerminalRenderer provides simple ASCII rendering for terminals. It
// keeps its own table of live handles so the simulation can stay
// handle-based while the renderer decides how to draw each kind.
type TerminalRenderer struct {
	width  int
	height int
	scale  float64
	buffer [][]rune
	out    io.Writer

	nextID entity.ModelID
	models map[entity.ModelID]*placedModel
	goal   *physics.Vector2D
}

// NewTerminalRenderer creates a terminal renderer with the specified
// character dimensions. scale is world units per character cell.
func NewTerminalRenderer(width, height int, scale float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:  width,
		height: height,
		scale:  scale,
		buffer: buffer,
		out:    os.Stdout,
		models: make(map[entity.ModelID]*placedModel),
	}
}

// SetOutput redirects rendering, mainly for tests
func (r *TerminalRenderer) SetOutput(w io.Writer) {
	r.out = w
}

// worldToScreen converts world coordinates to buffer coordinates,
// with the world origin at the center of the screen
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := int(pos.X/r.scale + float64(r.width)/2)
	screenY := int(-pos.Y/r.scale + float64(r.height)/2)
	return screenX, screenY
}

// CreateShipModel implements entity.Renderer
func (r *TerminalRenderer) CreateShipModel() entity.ModelID {
	return r.create(modelShip)
}

// CreateAircraftModel implements entity.Renderer
func (r *TerminalRenderer) CreateAircraftModel() entity.ModelID {
	return r.create(modelAircraft)
}

func (r *TerminalRenderer) create(kind int) entity.ModelID {
	r.nextID++
	r.models[r.nextID] = &placedModel{kind: kind}
	return r.nextID
}

// DestroyModel implements entity.Renderer
func (r *TerminalRenderer) DestroyModel(id entity.ModelID) {
	delete(r.models, id)
}

// PlaceModel implements entity.Renderer
func (r *TerminalRenderer) PlaceModel(id entity.ModelID, x, y, angle float64) {
	if m, ok := r.models[id]; ok {
		m.pos = physics.Vector2D{X: x, Y: y}
		m.angle = angle
	}
}

// PlaceGoalMarker implements entity.Renderer
func (r *TerminalRenderer) PlaceGoalMarker(x, y float64) {
	r.goal = &physics.Vector2D{X: x, Y: y}
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	if r.goal != nil {
		r.draw(*r.goal, 'x')
	}
	for _, m := range r.models {
		switch m.kind {
		case modelShip:
			r.draw(m.pos, 'C')
		case modelAircraft:
			r.draw(m.pos, headingGlyph(m.angle))
		}
	}

	// Home the cursor and repaint.
	fmt.Fprint(r.out, "\033[H\033[2J")
	fmt.Fprintln(r.out, "+"+strings.Repeat("-", r.width)+"+")
	for y := range r.buffer {
		fmt.Fprintln(r.out, "|"+string(r.buffer[y])+"|")
	}
	fmt.Fprintln(r.out, "+"+strings.Repeat("-", r.width)+"+")
}

// draw puts a glyph into the buffer if the position is on screen
func (r *TerminalRenderer) draw(pos physics.Vector2D, glyph rune) {
	x, y := r.worldToScreen(pos)
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = glyph
	}
}

// headingGlyph picks an arrow roughly matching an aircraft's heading
func headingGlyph(angle float64) rune {
	// Quantize to the four cardinal directions.
	switch {
	case angle > 2.356 || angle < -2.356:
		return '<'
	case angle > 0.785:
		return '^'
	case angle < -0.785:
		return 'v'
	default:
		return '>'
	}
}
