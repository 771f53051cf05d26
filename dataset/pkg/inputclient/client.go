// Package inputclient exposes the typed accessor catalogue over the dataset
// store: one client per workbook group, one getter/setter pair per logical
// table. Column headers carry their units and are part of the wire contract;
// setters reject tables that lack the canonical columns.
package inputclient

import (
	"fmt"

	"github.com/expanse-model/expanse/dataset/pkg/schema"
	"github.com/expanse-model/expanse/dataset/pkg/table"
	"github.com/expanse-model/expanse/dataset/pkg/workbook"
)

// Canonical column headers shared with the data managers. The unit suffixes
// (and the double space in the max-install header) match the shipped
// datasets exactly.
const (
	ColPeriod = "Period"

	ColGeneratorTechnology = "GeneratorTechnology"
	ColGenerator           = "Generator"
	ColThermalGenerators   = "ThermalGenerators"
	ColCapitalCost         = "generatorCapitalCost in euro per kW"
	ColFixedOMCost         = "generatorFixedOMCost in euro per kW"
	ColFuelCost            = "generatorTypeFuelCost in euro per GJ"
	ColAvailability        = "GeneratorTypeAvailability"
	ColRampRate            = "RampRate"
	ColMaxInstalledCap     = "generatorMaxInstallCapacity  in MW"
	ColMaxBuiltCap         = "generatorMaxBuildCapacity in MW"
	ColNode                = "Node"

	ColCO2Price = "CO2price in euro per tCO2"

	ColFromNode            = "FromNode"
	ColToNode              = "ToNode"
	ColInterconnectorLinks = "InterconnectorLinks"
	ColLength              = "Length in km"
	ColTransmissionType    = "Type"
	ColTypeCapitalCost     = "TypeCapitalCost in euro per MWkm"
	ColTypeFixedOMCost     = "TypeFixedOMCost in euro per MW"
	ColTransmissionInitCap = "TransmissionInitialCapacity"
	ColMaxRawInstallCap    = "MaxRawNotAdjustWithInitCap in MW"

	ColNodes              = "Nodes"
	ColElectricAdjustment = "ElectricAdjustment in MWh per hour"
)

// Client is the facade over the six per-group accessor clients.
type Client struct {
	Sets         *SetsClient
	Generator    *GeneratorClient
	Nodes        *NodeClient
	Transmission *TransmissionClient
	Storage      *StorageClient
	General      *GeneralClient
}

// New builds the accessor facade over a dataset store.
func New(store *workbook.Store) *Client {
	return &Client{
		Sets:         &SetsClient{store: store},
		Generator:    &GeneratorClient{store: store},
		Nodes:        &NodeClient{store: store},
		Transmission: &TransmissionClient{store: store},
		Storage:      &StorageClient{store: store},
		General:      &GeneralClient{store: store},
	}
}

func read(store *workbook.Store, group schema.Group, sheet string) (*table.Table, error) {
	tbl, err := store.ReadSheet(group, sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", group, sheet, err)
	}
	return tbl, nil
}

// write persists a table after checking it carries the sheet's required
// columns. Sheets without a fixed canonical layout pass nil.
func write(store *workbook.Store, group schema.Group, sheet string, required []string, tbl *table.Table) error {
	var missing []string
	for _, col := range required {
		if !tbl.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &table.SchemaError{Sheet: sheet, Missing: missing, Columns: tbl.Columns}
	}
	if err := store.WriteSheet(group, sheet, tbl); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", group, sheet, err)
	}
	return nil
}
