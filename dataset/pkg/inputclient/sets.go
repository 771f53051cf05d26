package inputclient

import (
	"github.com/expanse-model/expanse/dataset/pkg/schema"
	"github.com/expanse-model/expanse/dataset/pkg/table"
	"github.com/expanse-model/expanse/dataset/pkg/workbook"
)

// SetsClient accesses the Sets workbook: the topology tables naming nodes,
// technologies, lines and their relations. These sheets have no fixed value
// columns, so setters accept any layout.
type SetsClient struct {
	store *workbook.Store
}

func (c *SetsClient) Nodes() (*table.Table, error) {
	return read(c.store, schema.Sets, "Nodes")
}

func (c *SetsClient) SetNodes(tbl *table.Table) error {
	return write(c.store, schema.Sets, "Nodes", nil, tbl)
}

func (c *SetsClient) OffshoreNodes() (*table.Table, error) {
	return read(c.store, schema.Sets, "OffshoreNodes")
}

func (c *SetsClient) SetOffshoreNodes(tbl *table.Table) error {
	return write(c.store, schema.Sets, "OffshoreNodes", nil, tbl)
}

func (c *SetsClient) Horizon() (*table.Table, error) {
	return read(c.store, schema.Sets, "Horizon")
}

func (c *SetsClient) SetHorizon(tbl *table.Table) error {
	return write(c.store, schema.Sets, "Horizon", nil, tbl)
}

func (c *SetsClient) Storage() (*table.Table, error) {
	return read(c.store, schema.Sets, "Storage")
}

func (c *SetsClient) SetStorage(tbl *table.Table) error {
	return write(c.store, schema.Sets, "Storage", nil, tbl)
}

func (c *SetsClient) Technology() (*table.Table, error) {
	return read(c.store, schema.Sets, "Technology")
}

func (c *SetsClient) SetTechnology(tbl *table.Table) error {
	return write(c.store, schema.Sets, "Technology", nil, tbl)
}

func (c *SetsClient) Generators() (*table.Table, error) {
	return read(c.store, schema.Sets, "Generators")
}

func (c *SetsClient) SetGenerators(tbl *table.Table) error {
	return write(c.store, schema.Sets, "Generators", nil, tbl)
}

func (c *SetsClient) LineType() (*table.Table, error) {
	return read(c.store, schema.Sets, "LineType")
}

func (c *SetsClient) SetLineType(tbl *table.Table) error {
	return write(c.store, schema.Sets, "LineType", nil, tbl)
}

func (c *SetsClient) HourOfSeason() (*table.Table, error) {
	return read(c.store, schema.Sets, "HourOfSeason")
}

func (c *SetsClient) SetHourOfSeason(tbl *table.Table) error {
	return write(c.store, schema.Sets, "HourOfSeason", nil, tbl)
}

func (c *SetsClient) StorageOfNodes() (*table.Table, error) {
	return read(c.store, schema.Sets, "StorageOfNodes")
}

func (c *SetsClient) SetStorageOfNodes(tbl *table.Table) error {
	return write(c.store, schema.Sets, "StorageOfNodes", nil, tbl)
}

func (c *SetsClient) DirectionalLines() (*table.Table, error) {
	return read(c.store, schema.Sets, "DirectionalLines")
}

func (c *SetsClient) SetDirectionalLines(tbl *table.Table) error {
	return write(c.store, schema.Sets, "DirectionalLines", nil, tbl)
}

func (c *SetsClient) LineTypeOfDirectionalLines() (*table.Table, error) {
	return read(c.store, schema.Sets, "LineTypeOfDirectionalLines")
}

func (c *SetsClient) SetLineTypeOfDirectionalLines(tbl *table.Table) error {
	return write(c.store, schema.Sets, "LineTypeOfDirectionalLines", nil, tbl)
}

func (c *SetsClient) GeneratorsOfNode() (*table.Table, error) {
	return read(c.store, schema.Sets, "GeneratorsOfNode")
}

func (c *SetsClient) SetGeneratorsOfNode(tbl *table.Table) error {
	return write(c.store, schema.Sets, "GeneratorsOfNode", nil, tbl)
}

func (c *SetsClient) GeneratorsOfTechnology() (*table.Table, error) {
	return read(c.store, schema.Sets, "GeneratorsOfTechnology")
}

func (c *SetsClient) SetGeneratorsOfTechnology(tbl *table.Table) error {
	return write(c.store, schema.Sets, "GeneratorsOfTechnology", nil, tbl)
}

func (c *SetsClient) Coordinates() (*table.Table, error) {
	return read(c.store, schema.Sets, "Coords")
}

func (c *SetsClient) SetCoordinates(tbl *table.Table) error {
	return write(c.store, schema.Sets, "Coords", nil, tbl)
}
