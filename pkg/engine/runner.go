// pkg/engine/runner.go
package engine

import (
	"context"
	"time"

	"github.com/opd-ai/go-flattop/pkg/logging"
)

// maxDeltaTime caps a single step so a stalled driver does not make the
// fleet teleport when it resumes.
const maxDeltaTime = 0.1

// Runner drives a Game the way a windowing framework would: Init once,
// Update with elapsed wall-clock seconds every tick, Deinit on the way
// out. It is the driver used by headless renderers.
type Runner struct {
	game       *Game
	updateRate int
	logger     *logging.Logger
}

// NewRunner creates a driver ticking updateRate times per second
func NewRunner(game *Game, updateRate int) *Runner {
	return &Runner{
		game:       game,
		updateRate: updateRate,
		logger:     logging.NewLogger(),
	}
}

// Run blocks until the context is cancelled, stepping the game at the
// configured rate. The game is deinitialized before returning.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.game.Init(); err != nil {
		return logging.WrapError(err, "starting game")
	}
	defer func() {
		if err := r.game.Deinit(); err != nil {
			r.logger.Error(ctx, "failed to deinitialize game", err)
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(r.updateRate))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > maxDeltaTime {
				dt = maxDeltaTime
			}
			r.game.Renderer.Clear()
			r.game.Update(dt)
			r.game.Renderer.Present()
		}
	}
}
