// Package run drives one analysis run: an ordered sequence of dataset edits
// followed by an optimizer invocation. Managers are applied strictly in
// order against a shared dataset; the first failure aborts the run with the
// already-applied edits left in place.
package run

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/expanse-model/expanse/core/pkg/config"
	"github.com/expanse-model/expanse/dataset/pkg/manager"
	"github.com/expanse-model/expanse/dataset/pkg/results"
)

type RunnerConfig struct {
	Logger    *slog.Logger
	Clock     clockwork.Clock
	Paths     config.RunPaths
	Managers  []manager.Manager
	Optimizer Optimizer
}

func (c *RunnerConfig) Validate() error {
	if c.Logger == nil {
		return fmt.Errorf("logger is required")
	}
	if c.Optimizer == nil {
		return fmt.Errorf("optimizer is required")
	}
	if c.Clock == nil {
		c.Clock = clockwork.NewRealClock()
	}
	return nil
}

// Runner applies a manager sequence and hands the run to the optimizer.
type Runner struct {
	log       *slog.Logger
	clock     clockwork.Clock
	paths     config.RunPaths
	managers  []manager.Manager
	optimizer Optimizer
}

func NewRunner(cfg RunnerConfig) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid runner config: %w", err)
	}
	return &Runner{
		log:       cfg.Logger,
		clock:     cfg.Clock,
		paths:     cfg.Paths,
		managers:  cfg.Managers,
		optimizer: cfg.Optimizer,
	}, nil
}

// Run applies every manager in order, then invokes the optimizer. A run
// whose output directory already holds an objective file is refused so a
// finished analysis is never overwritten.
func (r *Runner) Run(ctx context.Context) error {
	if results.NewClient(r.paths.Results).HasObjective() {
		return fmt.Errorf("results already exist at %s", r.paths.ObjectivePath())
	}

	start := r.clock.Now()
	for _, m := range r.managers {
		if err := ctx.Err(); err != nil {
			return err
		}
		applyStart := r.clock.Now()
		if err := m.Apply(); err != nil {
			return fmt.Errorf("failed to apply %s: %w", m.Name(), err)
		}
		r.log.Debug("applied manager", "manager", m.Name(), "duration", r.clock.Since(applyStart))
	}
	r.log.Info("dataset prepared", "managers", len(r.managers), "duration", r.clock.Since(start))

	if err := r.optimizer.Optimize(ctx, r.paths); err != nil {
		return err
	}
	return nil
}
