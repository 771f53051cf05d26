package inputclient

import (
	"github.com/expanse-model/expanse/dataset/pkg/schema"
	"github.com/expanse-model/expanse/dataset/pkg/table"
	"github.com/expanse-model/expanse/dataset/pkg/workbook"
)

// GeneralClient accesses the General workbook.
type GeneralClient struct {
	store *workbook.Store
}

func (c *GeneralClient) SeasonScale() (*table.Table, error) {
	return read(c.store, schema.General, "seasonScale")
}

func (c *GeneralClient) SetSeasonScale(tbl *table.Table) error {
	return write(c.store, schema.General, "seasonScale", nil, tbl)
}

func (c *GeneralClient) CO2Cap() (*table.Table, error) {
	return read(c.store, schema.General, "CO2Cap")
}

func (c *GeneralClient) SetCO2Cap(tbl *table.Table) error {
	return write(c.store, schema.General, "CO2Cap", []string{ColPeriod}, tbl)
}

func (c *GeneralClient) CO2Price() (*table.Table, error) {
	return read(c.store, schema.General, "CO2Price")
}

func (c *GeneralClient) SetCO2Price(tbl *table.Table) error {
	return write(c.store, schema.General, "CO2Price", []string{ColPeriod, ColCO2Price}, tbl)
}
