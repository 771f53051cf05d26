package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ObjectiveFile is the marker written by a completed optimizer run.
const ObjectiveFile = "results_objective.csv"

// RunPaths lays out the working directories of one analysis run: the edited
// dataset copy, the scenario data beside it, and the results directory the
// optimizer writes into.
type RunPaths struct {
	Run          string
	Dataset      string
	ScenarioData string
	Results      string
	Countries    string
}

// NewRunPaths derives the directory layout for a run rooted at runPath.
// basePath is the installation root carrying the shared country lookup.
func NewRunPaths(basePath, runPath string) RunPaths {
	return RunPaths{
		Run:          runPath,
		Dataset:      filepath.Join(runPath, "Input", "Xlsx"),
		ScenarioData: filepath.Join(runPath, "Input", "ScenarioData"),
		Results:      filepath.Join(runPath, "Output"),
		Countries:    filepath.Join(basePath, "config", "countries.json"),
	}
}

// ObjectivePath is the results file whose presence marks a completed run.
func (p RunPaths) ObjectivePath() string {
	return filepath.Join(p.Results, ObjectiveFile)
}

// Ensure creates the run directory tree.
func (p RunPaths) Ensure() error {
	for _, dir := range []string{p.Dataset, p.ScenarioData, p.Results} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create run directory: %w", err)
		}
	}
	return nil
}
