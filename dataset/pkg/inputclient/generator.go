package inputclient

import (
	"github.com/expanse-model/expanse/dataset/pkg/schema"
	"github.com/expanse-model/expanse/dataset/pkg/table"
	"github.com/expanse-model/expanse/dataset/pkg/workbook"
)

// GeneratorClient accesses the Generator workbook.
type GeneratorClient struct {
	store *workbook.Store
}

func (c *GeneratorClient) CapitalCosts() (*table.Table, error) {
	return read(c.store, schema.Generator, "CapitalCosts")
}

func (c *GeneratorClient) SetCapitalCosts(tbl *table.Table) error {
	return write(c.store, schema.Generator, "CapitalCosts", []string{ColGeneratorTechnology, ColCapitalCost}, tbl)
}

// FixedOMCosts returns the fixed O&M cost table under its canonical column
// header. Older dataset vintages mislabel the value column with the capital
// cost header; that legacy layout is normalized on read so writers always
// persist the canonical name.
func (c *GeneratorClient) FixedOMCosts() (*table.Table, error) {
	tbl, err := read(c.store, schema.Generator, "FixedOMCosts")
	if err != nil {
		return nil, err
	}
	if !tbl.HasColumn(ColFixedOMCost) && tbl.HasColumn(ColCapitalCost) {
		if err := tbl.RenameColumn(ColCapitalCost, ColFixedOMCost); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

func (c *GeneratorClient) SetFixedOMCosts(tbl *table.Table) error {
	return write(c.store, schema.Generator, "FixedOMCosts", []string{ColGeneratorTechnology, ColFixedOMCost}, tbl)
}

func (c *GeneratorClient) VariableOMCosts() (*table.Table, error) {
	return read(c.store, schema.Generator, "VariableOMCosts")
}

func (c *GeneratorClient) SetVariableOMCosts(tbl *table.Table) error {
	return write(c.store, schema.Generator, "VariableOMCosts", []string{ColGeneratorTechnology}, tbl)
}

func (c *GeneratorClient) FuelCosts() (*table.Table, error) {
	return read(c.store, schema.Generator, "FuelCosts")
}

func (c *GeneratorClient) SetFuelCosts(tbl *table.Table) error {
	return write(c.store, schema.Generator, "FuelCosts", []string{ColGeneratorTechnology, ColFuelCost}, tbl)
}

func (c *GeneratorClient) CCSCostTSVariable() (*table.Table, error) {
	return read(c.store, schema.Generator, "CCSCostTSVariable")
}

func (c *GeneratorClient) SetCCSCostTSVariable(tbl *table.Table) error {
	return write(c.store, schema.Generator, "CCSCostTSVariable", nil, tbl)
}

func (c *GeneratorClient) Efficiency() (*table.Table, error) {
	return read(c.store, schema.Generator, "Efficiency")
}

func (c *GeneratorClient) SetEfficiency(tbl *table.Table) error {
	return write(c.store, schema.Generator, "Efficiency", []string{ColGeneratorTechnology}, tbl)
}

func (c *GeneratorClient) RefInitialCapacity() (*table.Table, error) {
	return read(c.store, schema.Generator, "RefInitialCap")
}

func (c *GeneratorClient) SetRefInitialCapacity(tbl *table.Table) error {
	return write(c.store, schema.Generator, "RefInitialCap", nil, tbl)
}

func (c *GeneratorClient) ScaleFactorInitialCapacity() (*table.Table, error) {
	return read(c.store, schema.Generator, "ScaleFactorInitialCap")
}

func (c *GeneratorClient) SetScaleFactorInitialCapacity(tbl *table.Table) error {
	return write(c.store, schema.Generator, "ScaleFactorInitialCap", nil, tbl)
}

func (c *GeneratorClient) InitialCapacity() (*table.Table, error) {
	return read(c.store, schema.Generator, "InitialCapacity")
}

func (c *GeneratorClient) SetInitialCapacity(tbl *table.Table) error {
	return write(c.store, schema.Generator, "InitialCapacity", []string{ColNode, ColGeneratorTechnology}, tbl)
}

func (c *GeneratorClient) MaxBuiltCapacity() (*table.Table, error) {
	return read(c.store, schema.Generator, "MaxBuiltCapacity")
}

func (c *GeneratorClient) SetMaxBuiltCapacity(tbl *table.Table) error {
	return write(c.store, schema.Generator, "MaxBuiltCapacity", []string{ColGeneratorTechnology, ColMaxBuiltCap}, tbl)
}

func (c *GeneratorClient) MaxInstalledCapacity() (*table.Table, error) {
	return read(c.store, schema.Generator, "MaxInstalledCapacity")
}

func (c *GeneratorClient) SetMaxInstalledCapacity(tbl *table.Table) error {
	return write(c.store, schema.Generator, "MaxInstalledCapacity", []string{ColNode, ColGeneratorTechnology, ColMaxInstalledCap}, tbl)
}

func (c *GeneratorClient) RampRate() (*table.Table, error) {
	return read(c.store, schema.Generator, "RampRate")
}

func (c *GeneratorClient) SetRampRate(tbl *table.Table) error {
	return write(c.store, schema.Generator, "RampRate", []string{ColThermalGenerators, ColRampRate}, tbl)
}

func (c *GeneratorClient) GeneratorTypeAvailability() (*table.Table, error) {
	return read(c.store, schema.Generator, "GeneratorTypeAvailability")
}

func (c *GeneratorClient) SetGeneratorTypeAvailability(tbl *table.Table) error {
	return write(c.store, schema.Generator, "GeneratorTypeAvailability", []string{ColGenerator, ColAvailability}, tbl)
}

func (c *GeneratorClient) CO2Content() (*table.Table, error) {
	return read(c.store, schema.Generator, "CO2Content")
}

func (c *GeneratorClient) SetCO2Content(tbl *table.Table) error {
	return write(c.store, schema.Generator, "CO2Content", []string{ColGeneratorTechnology}, tbl)
}

func (c *GeneratorClient) Lifetime() (*table.Table, error) {
	return read(c.store, schema.Generator, "Lifetime")
}

func (c *GeneratorClient) SetLifetime(tbl *table.Table) error {
	return write(c.store, schema.Generator, "Lifetime", []string{ColGeneratorTechnology}, tbl)
}
