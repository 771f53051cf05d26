package manager

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/expanse-model/expanse/dataset/pkg/inputclient"
	"github.com/expanse-model/expanse/dataset/pkg/table"
)

const hoursPerYear = 8760

// electricLoadFile is the hourly load profile kept next to the scenario
// data. Its last four columns are timestamp bookkeeping, not nodes.
const electricLoadFile = "electricload.csv"

// ElectricLoadManager scales and shifts the electric load for one node. The
// annual demand table is adjusted against the first period's value and the
// hourly profile is rewritten by the same affine transform, keeping the two
// artifacts consistent.
type ElectricLoadManager struct {
	log              *slog.Logger
	client           *inputclient.Client
	node             string
	scale            float64
	shift            float64
	scenarioDataPath string
	countriesPath    string
}

func NewElectricLoadManager(log *slog.Logger, client *inputclient.Client, node string, scale, shift float64, scenarioDataPath, countriesPath string) *ElectricLoadManager {
	return &ElectricLoadManager{
		log:              log,
		client:           client,
		node:             node,
		scale:            scale,
		shift:            shift,
		scenarioDataPath: scenarioDataPath,
		countriesPath:    countriesPath,
	}
}

func (m *ElectricLoadManager) Name() string { return "electric-load" }

func (m *ElectricLoadManager) Apply() error {
	countries, err := readCountries(m.countriesPath)
	if err != nil {
		return err
	}

	loadPath := filepath.Join(m.scenarioDataPath, electricLoadFile)
	header, rows, err := readCSV(loadPath)
	if err != nil {
		return err
	}
	for i, h := range header {
		if name, ok := countries[h]; ok {
			header[i] = name
		}
	}

	nodeCol := -1
	for i, h := range header[:max(0, len(header)-4)] {
		if h == m.node {
			nodeCol = i
			break
		}
	}
	if nodeCol < 0 {
		return &SelectionError{Target: electricLoadFile, Keys: map[string]string{"node": m.node}}
	}

	demand, err := m.client.Nodes.ElectricAnnualDemand()
	if err != nil {
		return err
	}
	if len(demand.Rows) == 0 {
		return &SelectionError{Target: "Node/ElectricAnnualDemand", Keys: map[string]string{"node": m.node}}
	}

	// Scaling is anchored to the first period's demand.
	firstPeriod, err := demand.Value(0, inputclient.ColPeriod)
	if err != nil {
		return err
	}
	matched, err := demand.Where(
		table.Eq(inputclient.ColNodes, m.node),
		table.Eq(inputclient.ColPeriod, firstPeriod),
	)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		return &SelectionError{Target: "Node/ElectricAnnualDemand", Keys: map[string]string{"node": m.node, "period": firstPeriod}}
	}

	annual, err := demand.Float(matched[0], inputclient.ColElectricAdjustment)
	if err != nil {
		return err
	}
	newAnnual := (m.scale*annual/hoursPerYear + m.shift) * hoursPerYear
	for _, r := range matched {
		if err := demand.SetFloat(r, inputclient.ColElectricAdjustment, newAnnual); err != nil {
			return err
		}
	}

	for _, row := range rows {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[nodeCol]), 64)
		if err != nil {
			return fmt.Errorf("failed to parse load value %q for node %s: %w", row[nodeCol], m.node, err)
		}
		row[nodeCol] = table.FormatFloat(m.scale*v + m.shift)
	}

	if err := m.client.Nodes.SetElectricAnnualDemand(demand); err != nil {
		return err
	}

	m.log.Info("adjusting electric load", "node", m.node, "scale", m.scale, "shift_mw", m.shift)
	return writeCSV(loadPath, header, rows)
}

func readCountries(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read country lookup: %w", err)
	}
	var countries map[string]string
	if err := json.Unmarshal(raw, &countries); err != nil {
		return nil, fmt.Errorf("failed to parse country lookup: %w", err)
	}
	return countries, nil
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s is empty", filepath.Base(path))
	}
	return records[0], records[1:], nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
