package inputclient

import (
	"github.com/expanse-model/expanse/dataset/pkg/schema"
	"github.com/expanse-model/expanse/dataset/pkg/table"
	"github.com/expanse-model/expanse/dataset/pkg/workbook"
)

// NodeClient accesses the Node workbook.
type NodeClient struct {
	store *workbook.Store
}

func (c *NodeClient) ElectricAnnualDemand() (*table.Table, error) {
	return read(c.store, schema.Node, "ElectricAnnualDemand")
}

func (c *NodeClient) SetElectricAnnualDemand(tbl *table.Table) error {
	return write(c.store, schema.Node, "ElectricAnnualDemand", []string{ColNodes, ColPeriod, ColElectricAdjustment}, tbl)
}

func (c *NodeClient) NodeLostLoadCost() (*table.Table, error) {
	return read(c.store, schema.Node, "NodeLostLoadCost")
}

func (c *NodeClient) SetNodeLostLoadCost(tbl *table.Table) error {
	return write(c.store, schema.Node, "NodeLostLoadCost", []string{ColNodes}, tbl)
}

func (c *NodeClient) HydroGeneratorsMaxAnnualProduction() (*table.Table, error) {
	return read(c.store, schema.Node, "HydroGenMaxAnnualProduction")
}

func (c *NodeClient) SetHydroGeneratorsMaxAnnualProduction(tbl *table.Table) error {
	return write(c.store, schema.Node, "HydroGenMaxAnnualProduction", []string{ColNodes}, tbl)
}
