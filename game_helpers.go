package main

import (
	"context"
	"os"
	"strings"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/termlife/game"
	"github.com/sheikhrachel/termlife/model"
	"github.com/sheikhrachel/termlife/utils"
)

const defaultConfigFile = "config.json"

// cliOptions are the flags that do not map onto a config field directly
type cliOptions struct {
	configFile string
	fixed      bool
	noColor    bool
	noClear    bool
}

// newParser binds every flag onto config and opts
func newParser(config *utils.Config, opts *cliOptions) *flaggy.Parser {
	p := flaggy.NewParser("termlife")
	p.Description = "Conway's Game of Life on a bounded grid, rendered to the terminal"
	p.ShowHelpOnUnexpected = true

	p.String(&opts.configFile, "c", "config", "JSON config file, flags override its values")
	p.Int(&config.Width, "x", "width", "Width of the grid")
	p.Int(&config.Height, "y", "height", "Height of the grid")
	p.Duration(&config.FrameRate, "i", "interval", "Pause between generations, for example 100ms")
	p.Bool(&config.Slow, "", "slow", "Use the slow frame rate")
	p.Bool(&config.Random, "r", "random", "Seed the grid randomly")
	p.Bool(&opts.fixed, "f", "fixed", "Seed the grid with the configured pattern instead of random data")
	p.Int64(&config.RandomSeed, "", "seed", "Random seed, 0 seeds from the clock")
	p.Float64(&config.RandomDensity, "d", "density", "Probability that a randomly seeded cell is alive")
	p.String(&config.Pattern, "p", "pattern", "Pattern used when random seeding is off ["+strings.Join(model.PatternNames(), "|")+"]")
	p.Int(&config.StopThreshold, "t", "threshold", "Stop once the live cell count drops to this value or below")
	p.Int(&config.MaxGenerations, "s", "maxGenerations", "Stop after this many generations, 0 is unlimited")
	p.Bool(&config.StopOnStagnation, "", "stagnation", "Stop when the grid repeats a recent generation")
	p.Bool(&opts.noColor, "", "no-color", "Disable colored output")
	p.Bool(&opts.noClear, "", "no-clear", "Do not clear the screen between generations")
	return p
}

// loadOptions resolves the configuration from defaults, an optional config file and flags, in that order
func loadOptions(args []string) (utils.Config, bool, error) {
	var (
		config = utils.DefaultConfig()
		opts   cliOptions
	)
	if err := newParser(&config, &opts).ParseArgs(args); err != nil {
		return config, false, errors.Wrap(err, "[loadOptions] failed to parse flags")
	}

	path, explicit := opts.configFile, opts.configFile != ""
	if !explicit {
		path = defaultConfigFile
	}

	fromFile := false
	fileConfig, err := utils.LoadConfig(path)
	switch {
	case err == nil:
		fromFile = true
		config, opts = fileConfig, cliOptions{}
		// Parse again so flags win over the file
		if err = newParser(&config, &opts).ParseArgs(args); err != nil {
			return config, false, errors.Wrap(err, "[loadOptions] failed to parse flags")
		}
	case explicit || !os.IsNotExist(errors.Cause(err)):
		return config, false, err
	}

	if opts.fixed {
		config.Random = false
	}
	if opts.noColor {
		config.Color = false
	}
	if opts.noClear {
		config.ClearScreen = false
	}
	return config, fromFile, config.Validate()
}

// displayGameInfo shows the initial game information
func displayGameInfo(r *model.TerminalRenderer, config utils.Config, runner *game.Runner, fromFile bool) {
	if !fromFile {
		r.Printf("Using default configuration (%s not found)\n", defaultConfigFile)
	}
	r.Printf("Grid: %dx%d | Initial living cells: %d | Interval: %v | Stop at: <=%d living\n",
		config.Width, config.Height, runner.Grid().CountLivingCells(), config.Interval(), config.StopThreshold)
	r.Printf("Press Ctrl+C to exit gracefully\n\n")
}

// displayFinalStats shows how the run ended
func displayFinalStats(r *model.TerminalRenderer, result game.Result, stats *utils.Stats) {
	r.Printf("\nFinished (%s): %d generations, %d living cells\n",
		result.Reason, result.Generations, result.LivingCells)
	r.Printf("Runtime: %.1fs | %.1f gen/sec | Avg Pop: %.1f | Peak: %d (gen %d) | Min: %d\n",
		stats.Elapsed().Seconds(), stats.GenerationsPerSecond(), stats.AveragePopulation(),
		stats.PeakLivingCells, stats.PeakGeneration, stats.MinLivingCells)
}

// runGame runs the simulation next to a watcher that reports when ctx is cancelled by a signal
func runGame(ctx context.Context, runner *game.Runner, r *model.TerminalRenderer) (game.Result, error) {
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	var (
		eg, egCtx = errgroup.WithContext(runCtx)
		result    game.Result
	)
	eg.Go(func() (err error) {
		// Releases the watcher once the run ends on its own
		defer cancelRun()
		result, err = runner.Run(egCtx)
		return err
	})
	eg.Go(func() error {
		<-egCtx.Done()
		if ctx.Err() != nil {
			r.Printf("\nShutting down gracefully...\n")
		}
		return nil
	})
	err := eg.Wait()
	return result, err
}
