package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/termlife/model"
	"github.com/sheikhrachel/termlife/utils"
)

// Reason describes why a run ended
type Reason string

const (
	ReasonThreshold      Reason = "live cells at or below threshold"
	ReasonMaxGenerations Reason = "maximum generations reached"
	ReasonStagnant       Reason = "stagnation detected"
	ReasonCancelled      Reason = "cancelled"
)

// Result summarizes a finished run
type Result struct {
	Generations int
	LivingCells int
	Reason      Reason
}

// Runner drives a grid through generations: render, check stop conditions, tick, pause
type Runner struct {
	config   utils.Config
	grid     *model.Grid
	renderer *model.TerminalRenderer
	history  *History
	stats    *utils.Stats
}

// NewRunner validates config and builds a freshly seeded grid
func NewRunner(config utils.Config, renderer *model.TerminalRenderer) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, err
	}
	if err = SeedGrid(grid, config); err != nil {
		return nil, err
	}
	return NewRunnerWithGrid(config, grid, renderer), nil
}

// NewRunnerWithGrid wraps an already seeded grid
func NewRunnerWithGrid(config utils.Config, grid *model.Grid, renderer *model.TerminalRenderer) *Runner {
	r := &Runner{
		config:   config,
		grid:     grid,
		renderer: renderer,
		stats:    utils.NewStats(),
	}
	if config.StopOnStagnation {
		r.history = NewHistory(config.HistorySize)
	}
	return r
}

// SeedGrid fills the grid either randomly or with the configured pattern
func SeedGrid(grid *model.Grid, config utils.Config) error {
	if config.Random {
		seed := config.RandomSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		grid.Randomize(rand.New(rand.NewSource(seed)), config.RandomDensity)
		return nil
	}

	pattern, err := model.PatternByName(config.Pattern)
	if err != nil {
		return errors.Wrap(err, "[SeedGrid] failed to seed grid")
	}
	// The glider coordinates are absolute, the small patterns are centered
	if pattern.Name == model.Glider.Name {
		grid.Seed(pattern.Coords)
	} else {
		grid.Seed(pattern.At(grid.GetHeight()/2, grid.GetWidth()/2))
	}
	return nil
}

// Grid returns the grid being simulated
func (r *Runner) Grid() *model.Grid {
	return r.grid
}

// Stats returns the running statistics
func (r *Runner) Stats() *utils.Stats {
	return r.stats
}

// Run loops until a stop condition is met or ctx is cancelled.
// Cancellation is a normal stop, only rendering failures are returned as errors.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var (
		generation = 0
		interval   = r.config.Interval()
	)
	result := func(reason Reason) Result {
		return Result{Generations: generation, LivingCells: r.grid.CountLivingCells(), Reason: reason}
	}

	for {
		if ctx.Err() != nil {
			return result(ReasonCancelled), nil
		}

		livingCells := r.grid.CountLivingCells()
		if livingCells <= r.config.StopThreshold {
			return result(ReasonThreshold), nil
		}

		generation++
		r.stats.Update(generation, livingCells)

		if err := r.render(generation); err != nil {
			return result(""), err
		}

		if r.config.MaxGenerations > 0 && generation >= r.config.MaxGenerations {
			return result(ReasonMaxGenerations), nil
		}
		if r.history != nil && r.history.Seen(r.grid) {
			return result(ReasonStagnant), nil
		}

		r.grid.Tick()

		if interval > 0 {
			select {
			case <-ctx.Done():
				return result(ReasonCancelled), nil
			case <-time.After(interval):
			}
		}
	}
}

func (r *Runner) render(generation int) error {
	if r.config.ClearScreen {
		// A terminal that cannot be cleared still gets the frames, scrolled
		if err := r.renderer.Clear(); err != nil {
			r.renderer.Printf("%v, screen clearing disabled\n", err)
			r.config.ClearScreen = false
		}
	}
	if err := r.renderer.Display(r.grid); err != nil {
		return err
	}
	r.renderer.Printf("\nGeneration: %d\n", generation)
	return nil
}
