package run

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/expanse-model/expanse/core/pkg/config"
)

// Optimizer consumes a finalized run directory and produces results in its
// output directory. The solve itself is external to this module.
type Optimizer interface {
	Optimize(ctx context.Context, paths config.RunPaths) error
}

// NoopOptimizer skips the solve. Used for test runs that only prepare the
// dataset.
type NoopOptimizer struct {
	Logger *slog.Logger
}

func (o *NoopOptimizer) Optimize(_ context.Context, paths config.RunPaths) error {
	o.Logger.Info("skipping optimization", "dataset", paths.Dataset)
	return nil
}

// CommandOptimizer invokes an external solver command with the run
// directory as its argument. Stdout and stderr pass through.
type CommandOptimizer struct {
	Logger  *slog.Logger
	Command string
	Args    []string
}

func (o *CommandOptimizer) Optimize(ctx context.Context, paths config.RunPaths) error {
	args := append(append([]string(nil), o.Args...), paths.Run)
	o.Logger.Info("invoking optimizer", "command", o.Command, "run", paths.Run)

	cmd := exec.CommandContext(ctx, o.Command, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("optimizer failed: %w", err)
	}
	return nil
}
