// Package results reads the output directory an optimizer run leaves
// behind. The directory is read-only from this side; the objective file
// doubles as the marker that a run completed.
package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/expanse-model/expanse/dataset/pkg/table"
)

// Result file names as written by the optimizer.
const (
	ObjectiveFile               = "results_objective.csv"
	GeneratorsFile              = "results_output_gen.csv"
	StorageFile                 = "results_output_stor.csv"
	TransmissionFile            = "results_output_transmision.csv"
	OperationalFile             = "results_output_Operational.csv"
	TransmissionOperationalFile = "results_output_transmision_operational.csv"
	CurtailedProductionFile     = "results_output_curtailed_prod.csv"
	CurtailedOperationalFile    = "results_output_curtailed_operational.csv"
)

// Client reads result tables from one run's output directory.
type Client struct {
	dir string
}

// NewClient returns a reader over the given output directory. The directory
// does not have to exist yet; HasObjective reports run completion.
func NewClient(dir string) *Client {
	return &Client{dir: dir}
}

// HasObjective reports whether the optimizer finished and wrote its
// objective value.
func (c *Client) HasObjective() bool {
	_, err := os.Stat(filepath.Join(c.dir, ObjectiveFile))
	return err == nil
}

// Objective returns the optimal objective value. The file holds a single
// "label: value" line.
func (c *Client) Objective() (float64, error) {
	raw, err := os.ReadFile(filepath.Join(c.dir, ObjectiveFile))
	if err != nil {
		return 0, fmt.Errorf("failed to read objective: %w", err)
	}
	_, value, ok := strings.Cut(string(raw), ":")
	if !ok {
		return 0, fmt.Errorf("failed to parse objective from %q", strings.TrimSpace(string(raw)))
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse objective: %w", err)
	}
	return v, nil
}

// ReadTable reads one result CSV into a table.
func (c *Client) ReadTable(name string) (*table.Table, error) {
	f, err := os.Open(filepath.Join(c.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open result %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read result %s: %w", name, err)
	}
	if len(records) == 0 {
		return &table.Table{}, nil
	}
	tbl := table.New(records[0]...)
	for _, row := range records[1:] {
		tbl.AppendRow(row...)
	}
	return tbl, nil
}

func (c *Client) GeneratorValues() (*table.Table, error) {
	return c.ReadTable(GeneratorsFile)
}

func (c *Client) StorageValues() (*table.Table, error) {
	return c.ReadTable(StorageFile)
}

func (c *Client) TransmissionValues() (*table.Table, error) {
	return c.ReadTable(TransmissionFile)
}

func (c *Client) CurtailedProduction() (*table.Table, error) {
	return c.ReadTable(CurtailedProductionFile)
}
