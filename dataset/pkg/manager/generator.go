package manager

import (
	"fmt"
	"log/slog"

	"github.com/expanse-model/expanse/dataset/pkg/inputclient"
	"github.com/expanse-model/expanse/dataset/pkg/table"
)

// AvailabilityManager sets the capacity factor for one generator technology.
type AvailabilityManager struct {
	log          *slog.Logger
	client       *inputclient.Client
	technology   string
	availability float64
}

func NewAvailabilityManager(log *slog.Logger, client *inputclient.Client, technology string, availability float64) (*AvailabilityManager, error) {
	if availability < 0.0 || availability > 1.0 {
		return nil, &ValidationError{Manager: "availability", Reason: fmt.Sprintf("availability %g outside [0,1]", availability)}
	}
	return &AvailabilityManager{log: log, client: client, technology: technology, availability: availability}, nil
}

func (m *AvailabilityManager) Name() string { return "availability" }

func (m *AvailabilityManager) Apply() error {
	tbl, err := m.client.Generator.GeneratorTypeAvailability()
	if err != nil {
		return err
	}
	err = setMatching(tbl, "Generator/GeneratorTypeAvailability",
		map[string]string{"generator": m.technology},
		[]table.Condition{table.Eq(inputclient.ColGenerator, m.technology)},
		inputclient.ColAvailability, m.availability)
	if err != nil {
		return err
	}
	m.log.Info("setting availability", "technology", m.technology, "availability", m.availability)
	return m.client.Generator.SetGeneratorTypeAvailability(tbl)
}

// CapitalCostManager sets the capital cost for one generator technology
// across all periods.
type CapitalCostManager struct {
	log         *slog.Logger
	client      *inputclient.Client
	technology  string
	capitalCost float64
}

func NewCapitalCostManager(log *slog.Logger, client *inputclient.Client, technology string, capitalCost float64) *CapitalCostManager {
	return &CapitalCostManager{log: log, client: client, technology: technology, capitalCost: capitalCost}
}

func (m *CapitalCostManager) Name() string { return "capital-cost" }

func (m *CapitalCostManager) Apply() error {
	tbl, err := m.client.Generator.CapitalCosts()
	if err != nil {
		return err
	}
	err = setMatching(tbl, "Generator/CapitalCosts",
		map[string]string{"technology": m.technology},
		[]table.Condition{table.Eq(inputclient.ColGeneratorTechnology, m.technology)},
		inputclient.ColCapitalCost, m.capitalCost)
	if err != nil {
		return err
	}
	m.log.Info("setting capital cost", "technology", m.technology, "cost", m.capitalCost)
	return m.client.Generator.SetCapitalCosts(tbl)
}

// FuelCostManager sets the fuel cost for one generator technology.
type FuelCostManager struct {
	log        *slog.Logger
	client     *inputclient.Client
	technology string
	fuelCost   float64
}

func NewFuelCostManager(log *slog.Logger, client *inputclient.Client, technology string, fuelCost float64) *FuelCostManager {
	return &FuelCostManager{log: log, client: client, technology: technology, fuelCost: fuelCost}
}

func (m *FuelCostManager) Name() string { return "fuel-cost" }

func (m *FuelCostManager) Apply() error {
	tbl, err := m.client.Generator.FuelCosts()
	if err != nil {
		return err
	}
	err = setMatching(tbl, "Generator/FuelCosts",
		map[string]string{"technology": m.technology},
		[]table.Condition{table.Eq(inputclient.ColGeneratorTechnology, m.technology)},
		inputclient.ColFuelCost, m.fuelCost)
	if err != nil {
		return err
	}
	m.log.Info("setting fuel cost", "technology", m.technology, "cost", m.fuelCost)
	return m.client.Generator.SetFuelCosts(tbl)
}

// FixedOMCostManager sets the fixed O&M cost for one generator technology.
// The accessor normalizes legacy column naming, so the manager only ever
// touches the canonical column.
type FixedOMCostManager struct {
	log         *slog.Logger
	client      *inputclient.Client
	technology  string
	fixedOMCost float64
}

func NewFixedOMCostManager(log *slog.Logger, client *inputclient.Client, technology string, fixedOMCost float64) *FixedOMCostManager {
	return &FixedOMCostManager{log: log, client: client, technology: technology, fixedOMCost: fixedOMCost}
}

func (m *FixedOMCostManager) Name() string { return "fixed-om-cost" }

func (m *FixedOMCostManager) Apply() error {
	tbl, err := m.client.Generator.FixedOMCosts()
	if err != nil {
		return err
	}
	err = setMatching(tbl, "Generator/FixedOMCosts",
		map[string]string{"technology": m.technology},
		[]table.Condition{table.Eq(inputclient.ColGeneratorTechnology, m.technology)},
		inputclient.ColFixedOMCost, m.fixedOMCost)
	if err != nil {
		return err
	}
	m.log.Info("setting fixed O&M cost", "technology", m.technology, "cost", m.fixedOMCost)
	return m.client.Generator.SetFixedOMCosts(tbl)
}

// MaxInstalledCapacityManager caps the installed capacity for one generator
// technology in a set of nodes.
type MaxInstalledCapacityManager struct {
	log        *slog.Logger
	client     *inputclient.Client
	technology string
	nodes      []string
	capacity   float64
}

func NewMaxInstalledCapacityManager(log *slog.Logger, client *inputclient.Client, technology string, nodes []string, capacity float64) *MaxInstalledCapacityManager {
	return &MaxInstalledCapacityManager{log: log, client: client, technology: technology, nodes: nodes, capacity: capacity}
}

func (m *MaxInstalledCapacityManager) Name() string { return "max-installed-capacity" }

func (m *MaxInstalledCapacityManager) Apply() error {
	tbl, err := m.client.Generator.MaxInstalledCapacity()
	if err != nil {
		return err
	}
	err = setMatching(tbl, "Generator/MaxInstalledCapacity",
		map[string]string{"technology": m.technology, "nodes": fmt.Sprintf("%v", m.nodes)},
		[]table.Condition{
			table.In(inputclient.ColNode, m.nodes...),
			table.Eq(inputclient.ColGeneratorTechnology, m.technology),
		},
		inputclient.ColMaxInstalledCap, m.capacity)
	if err != nil {
		return err
	}
	m.log.Info("setting max installed capacity", "technology", m.technology, "nodes", m.nodes, "capacity", m.capacity)
	return m.client.Generator.SetMaxInstalledCapacity(tbl)
}

// MaxBuiltCapacityManager caps the per-period build capacity for one
// generator technology. With no nodes given the cap applies across all nodes.
type MaxBuiltCapacityManager struct {
	log        *slog.Logger
	client     *inputclient.Client
	technology string
	nodes      []string
	capacity   float64
}

func NewMaxBuiltCapacityManager(log *slog.Logger, client *inputclient.Client, technology string, nodes []string, capacity float64) *MaxBuiltCapacityManager {
	return &MaxBuiltCapacityManager{log: log, client: client, technology: technology, nodes: nodes, capacity: capacity}
}

func (m *MaxBuiltCapacityManager) Name() string { return "max-built-capacity" }

func (m *MaxBuiltCapacityManager) Apply() error {
	tbl, err := m.client.Generator.MaxBuiltCapacity()
	if err != nil {
		return err
	}
	conds := []table.Condition{table.Eq(inputclient.ColGeneratorTechnology, m.technology)}
	keys := map[string]string{"technology": m.technology}
	if len(m.nodes) > 0 {
		conds = append(conds, table.In(inputclient.ColNode, m.nodes...))
		keys["nodes"] = fmt.Sprintf("%v", m.nodes)
	}
	if err := setMatching(tbl, "Generator/MaxBuiltCapacity", keys, conds, inputclient.ColMaxBuiltCap, m.capacity); err != nil {
		return err
	}
	m.log.Info("setting max built capacity", "technology", m.technology, "nodes", m.nodes, "capacity", m.capacity)
	return m.client.Generator.SetMaxBuiltCapacity(tbl)
}

// RampRateManager sets the hourly ramp rate for one thermal generator type.
type RampRateManager struct {
	log       *slog.Logger
	client    *inputclient.Client
	generator string
	rampRate  float64
}

func NewRampRateManager(log *slog.Logger, client *inputclient.Client, generator string, rampRate float64) (*RampRateManager, error) {
	if rampRate <= 0.0 || rampRate > 1.0 {
		return nil, &ValidationError{Manager: "ramp-rate", Reason: fmt.Sprintf("ramp rate %g outside (0,1]", rampRate)}
	}
	return &RampRateManager{log: log, client: client, generator: generator, rampRate: rampRate}, nil
}

func (m *RampRateManager) Name() string { return "ramp-rate" }

func (m *RampRateManager) Apply() error {
	tbl, err := m.client.Generator.RampRate()
	if err != nil {
		return err
	}
	err = setMatching(tbl, "Generator/RampRate",
		map[string]string{"thermal_generator": m.generator},
		[]table.Condition{table.Eq(inputclient.ColThermalGenerators, m.generator)},
		inputclient.ColRampRate, m.rampRate)
	if err != nil {
		return err
	}
	m.log.Info("setting ramp rate", "thermal_generator", m.generator, "ramp_rate", m.rampRate)
	return m.client.Generator.SetRampRate(tbl)
}
