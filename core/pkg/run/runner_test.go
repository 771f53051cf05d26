package run_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/expanse-model/expanse/core/pkg/config"
	"github.com/expanse-model/expanse/core/pkg/run"
	"github.com/expanse-model/expanse/dataset/pkg/manager"
	"github.com/expanse-model/expanse/dataset/pkg/results"
	expansetesting "github.com/expanse-model/expanse/utils/pkg/testing"
)

type fakeManager struct {
	name    string
	err     error
	applied *[]string
}

func (m *fakeManager) Name() string { return m.name }

func (m *fakeManager) Apply() error {
	if m.err != nil {
		return m.err
	}
	*m.applied = append(*m.applied, m.name)
	return nil
}

type fakeOptimizer struct {
	called bool
	paths  config.RunPaths
}

func (o *fakeOptimizer) Optimize(_ context.Context, paths config.RunPaths) error {
	o.called = true
	o.paths = paths
	return nil
}

func TestExpanse_Runner(t *testing.T) {
	t.Parallel()

	log := expansetesting.NewLogger()

	newPaths := func(t *testing.T) config.RunPaths {
		t.Helper()
		root := t.TempDir()
		paths := config.NewRunPaths(root, filepath.Join(root, "Results", "run1"))
		require.NoError(t, paths.Ensure())
		return paths
	}

	t.Run("applies_managers_in_order_then_optimizes", func(t *testing.T) {
		t.Parallel()

		paths := newPaths(t)
		var applied []string
		opt := &fakeOptimizer{}

		r, err := run.NewRunner(run.RunnerConfig{
			Logger: log,
			Clock:  clockwork.NewFakeClock(),
			Paths:  paths,
			Managers: []manager.Manager{
				&fakeManager{name: "first", applied: &applied},
				&fakeManager{name: "second", applied: &applied},
			},
			Optimizer: opt,
		})
		require.NoError(t, err)
		require.NoError(t, r.Run(context.Background()))

		require.Equal(t, []string{"first", "second"}, applied)
		require.True(t, opt.called)
		require.Equal(t, paths, opt.paths)
	})

	t.Run("first_failure_aborts_the_sequence", func(t *testing.T) {
		t.Parallel()

		paths := newPaths(t)
		var applied []string
		opt := &fakeOptimizer{}
		boom := errors.New("boom")

		r, err := run.NewRunner(run.RunnerConfig{
			Logger: log,
			Paths:  paths,
			Managers: []manager.Manager{
				&fakeManager{name: "first", applied: &applied},
				&fakeManager{name: "second", err: boom, applied: &applied},
				&fakeManager{name: "third", applied: &applied},
			},
			Optimizer: opt,
		})
		require.NoError(t, err)

		err = r.Run(context.Background())
		require.ErrorIs(t, err, boom)
		require.Contains(t, err.Error(), "second")
		require.Equal(t, []string{"first"}, applied)
		require.False(t, opt.called)
	})

	t.Run("refuses_run_with_existing_results", func(t *testing.T) {
		t.Parallel()

		paths := newPaths(t)
		require.NoError(t, os.WriteFile(
			filepath.Join(paths.Results, results.ObjectiveFile),
			[]byte("Objective value: 1\n"), 0o644))

		r, err := run.NewRunner(run.RunnerConfig{
			Logger:    log,
			Paths:     paths,
			Optimizer: &fakeOptimizer{},
		})
		require.NoError(t, err)
		require.Error(t, r.Run(context.Background()))
	})

	t.Run("missing_optimizer_is_a_config_error", func(t *testing.T) {
		t.Parallel()

		_, err := run.NewRunner(run.RunnerConfig{Logger: log})
		require.Error(t, err)
	})

	t.Run("cancelled_context_stops_before_applying", func(t *testing.T) {
		t.Parallel()

		paths := newPaths(t)
		var applied []string
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r, err := run.NewRunner(run.RunnerConfig{
			Logger:    log,
			Paths:     paths,
			Managers:  []manager.Manager{&fakeManager{name: "first", applied: &applied}},
			Optimizer: &fakeOptimizer{},
		})
		require.NoError(t, err)
		require.ErrorIs(t, r.Run(ctx), context.Canceled)
		require.Empty(t, applied)
	})
}
