package inputclient

import (
	"github.com/expanse-model/expanse/dataset/pkg/schema"
	"github.com/expanse-model/expanse/dataset/pkg/table"
	"github.com/expanse-model/expanse/dataset/pkg/workbook"
)

// TransmissionClient accesses the Transmission workbook.
type TransmissionClient struct {
	store *workbook.Store
}

func (c *TransmissionClient) LineEfficiency() (*table.Table, error) {
	return read(c.store, schema.Transmission, "lineEfficiency")
}

func (c *TransmissionClient) SetLineEfficiency(tbl *table.Table) error {
	return write(c.store, schema.Transmission, "lineEfficiency", []string{ColFromNode, ColToNode}, tbl)
}

func (c *TransmissionClient) MaxBuiltCapacity() (*table.Table, error) {
	return read(c.store, schema.Transmission, "MaxBuiltCapacity")
}

func (c *TransmissionClient) SetMaxBuiltCapacity(tbl *table.Table) error {
	return write(c.store, schema.Transmission, "MaxBuiltCapacity", []string{ColInterconnectorLinks, ColToNode}, tbl)
}

func (c *TransmissionClient) Length() (*table.Table, error) {
	return read(c.store, schema.Transmission, "Length")
}

func (c *TransmissionClient) SetLength(tbl *table.Table) error {
	return write(c.store, schema.Transmission, "Length", []string{ColFromNode, ColToNode, ColLength}, tbl)
}

// TypeCapitalCost returns the per-line-type capital cost table with the Type
// and Period columns first. Converted datasets occasionally reorder columns;
// ordering is normalized on write.
func (c *TransmissionClient) TypeCapitalCost() (*table.Table, error) {
	return read(c.store, schema.Transmission, "TypeCapitalCost")
}

func (c *TransmissionClient) SetTypeCapitalCost(tbl *table.Table) error {
	return write(c.store, schema.Transmission, "TypeCapitalCost", []string{ColTransmissionType, ColTypeCapitalCost}, orderTypeAndPeriod(tbl))
}

func (c *TransmissionClient) TypeFixedOMCost() (*table.Table, error) {
	return read(c.store, schema.Transmission, "TypeFixedOMCost")
}

func (c *TransmissionClient) SetTypeFixedOMCost(tbl *table.Table) error {
	return write(c.store, schema.Transmission, "TypeFixedOMCost", []string{ColTransmissionType, ColTypeFixedOMCost}, orderTypeAndPeriod(tbl))
}

func (c *TransmissionClient) InitialCapacity() (*table.Table, error) {
	return read(c.store, schema.Transmission, "InitialCapacity")
}

func (c *TransmissionClient) SetInitialCapacity(tbl *table.Table) error {
	return write(c.store, schema.Transmission, "InitialCapacity", []string{ColInterconnectorLinks, ColToNode, ColTransmissionInitCap}, tbl)
}

func (c *TransmissionClient) MaxInstallCapacityRaw() (*table.Table, error) {
	return read(c.store, schema.Transmission, "MaxInstallCapacityRaw")
}

func (c *TransmissionClient) SetMaxInstallCapacityRaw(tbl *table.Table) error {
	return write(c.store, schema.Transmission, "MaxInstallCapacityRaw", []string{ColInterconnectorLinks, ColToNode, ColMaxRawInstallCap}, tbl)
}

func (c *TransmissionClient) Lifetime() (*table.Table, error) {
	return read(c.store, schema.Transmission, "Lifetime")
}

func (c *TransmissionClient) SetLifetime(tbl *table.Table) error {
	return write(c.store, schema.Transmission, "Lifetime", nil, tbl)
}

// orderTypeAndPeriod moves the Type and Period columns to the front when both
// exist and the table arrived reordered.
func orderTypeAndPeriod(tbl *table.Table) *table.Table {
	if !tbl.HasColumn(ColTransmissionType) || !tbl.HasColumn(ColPeriod) {
		return tbl
	}
	if len(tbl.Columns) > 0 && tbl.Columns[0] == ColTransmissionType {
		return tbl
	}
	order := []string{ColTransmissionType, ColPeriod}
	for _, col := range tbl.Columns {
		if col != ColTransmissionType && col != ColPeriod {
			order = append(order, col)
		}
	}
	out := table.New(order...)
	for r := range tbl.Rows {
		cells := make([]string, len(order))
		for i, col := range order {
			v, _ := tbl.Value(r, col)
			cells[i] = v
		}
		out.AppendRow(cells...)
	}
	return out
}
