package inputclient

import (
	"github.com/expanse-model/expanse/dataset/pkg/schema"
	"github.com/expanse-model/expanse/dataset/pkg/table"
	"github.com/expanse-model/expanse/dataset/pkg/workbook"
)

// StorageClient accesses the Storage workbook.
type StorageClient struct {
	store *workbook.Store
}

const colStorageTypes = "StorageTypes"

func (c *StorageClient) InitialPowerCapacity() (*table.Table, error) {
	return read(c.store, schema.Storage, "InitialPowerCapacity")
}

func (c *StorageClient) SetInitialPowerCapacity(tbl *table.Table) error {
	return write(c.store, schema.Storage, "InitialPowerCapacity", []string{colStorageTypes}, tbl)
}

func (c *StorageClient) PowerCapitalCost() (*table.Table, error) {
	return read(c.store, schema.Storage, "PowerCapitalCost")
}

func (c *StorageClient) SetPowerCapitalCost(tbl *table.Table) error {
	return write(c.store, schema.Storage, "PowerCapitalCost", []string{colStorageTypes}, tbl)
}

func (c *StorageClient) PowerFixedOMCost() (*table.Table, error) {
	return read(c.store, schema.Storage, "PowerFixedOMCost")
}

func (c *StorageClient) SetPowerFixedOMCost(tbl *table.Table) error {
	return write(c.store, schema.Storage, "PowerFixedOMCost", []string{colStorageTypes}, tbl)
}

func (c *StorageClient) PowerMaxBuiltCapacity() (*table.Table, error) {
	return read(c.store, schema.Storage, "PowerMaxBuiltCapacity")
}

func (c *StorageClient) SetPowerMaxBuiltCapacity(tbl *table.Table) error {
	return write(c.store, schema.Storage, "PowerMaxBuiltCapacity", []string{colStorageTypes}, tbl)
}

func (c *StorageClient) EnergyCapitalCost() (*table.Table, error) {
	return read(c.store, schema.Storage, "EnergyCapitalCost")
}

func (c *StorageClient) SetEnergyCapitalCost(tbl *table.Table) error {
	return write(c.store, schema.Storage, "EnergyCapitalCost", []string{colStorageTypes}, tbl)
}

func (c *StorageClient) EnergyFixedOMCost() (*table.Table, error) {
	return read(c.store, schema.Storage, "EnergyFixedOMCost")
}

func (c *StorageClient) SetEnergyFixedOMCost(tbl *table.Table) error {
	return write(c.store, schema.Storage, "EnergyFixedOMCost", []string{colStorageTypes}, tbl)
}

func (c *StorageClient) InitialEnergyCapacity() (*table.Table, error) {
	return read(c.store, schema.Storage, "EnergyInitialCapacity")
}

func (c *StorageClient) SetInitialEnergyCapacity(tbl *table.Table) error {
	return write(c.store, schema.Storage, "EnergyInitialCapacity", []string{colStorageTypes}, tbl)
}

func (c *StorageClient) EnergyMaxBuiltCapacity() (*table.Table, error) {
	return read(c.store, schema.Storage, "EnergyMaxBuiltCapacity")
}

func (c *StorageClient) SetEnergyMaxBuiltCapacity(tbl *table.Table) error {
	return write(c.store, schema.Storage, "EnergyMaxBuiltCapacity", []string{colStorageTypes}, tbl)
}

func (c *StorageClient) EnergyMaxInstalledCapacity() (*table.Table, error) {
	return read(c.store, schema.Storage, "EnergyMaxInstalledCapacity")
}

func (c *StorageClient) SetEnergyMaxInstalledCapacity(tbl *table.Table) error {
	return write(c.store, schema.Storage, "EnergyMaxInstalledCapacity", []string{colStorageTypes}, tbl)
}

func (c *StorageClient) PowerMaxInstalledCapacity() (*table.Table, error) {
	return read(c.store, schema.Storage, "PowerMaxInstalledCapacity")
}

func (c *StorageClient) SetPowerMaxInstalledCapacity(tbl *table.Table) error {
	return write(c.store, schema.Storage, "PowerMaxInstalledCapacity", []string{colStorageTypes}, tbl)
}

func (c *StorageClient) StorageInitialEnergyLevel() (*table.Table, error) {
	return read(c.store, schema.Storage, "StorageInitialEnergyLevel")
}

func (c *StorageClient) SetStorageInitialEnergyLevel(tbl *table.Table) error {
	return write(c.store, schema.Storage, "StorageInitialEnergyLevel", []string{colStorageTypes}, tbl)
}

func (c *StorageClient) StorageChargeEfficiency() (*table.Table, error) {
	return read(c.store, schema.Storage, "StorageChargeEff")
}

func (c *StorageClient) SetStorageChargeEfficiency(tbl *table.Table) error {
	return write(c.store, schema.Storage, "StorageChargeEff", []string{colStorageTypes}, tbl)
}

func (c *StorageClient) StorageDischargeEfficiency() (*table.Table, error) {
	return read(c.store, schema.Storage, "StorageDischargeEff")
}

func (c *StorageClient) SetStorageDischargeEfficiency(tbl *table.Table) error {
	return write(c.store, schema.Storage, "StorageDischargeEff", []string{colStorageTypes}, tbl)
}

func (c *StorageClient) StoragePowerToEnergy() (*table.Table, error) {
	return read(c.store, schema.Storage, "StoragePowToEnergy")
}

func (c *StorageClient) SetStoragePowerToEnergy(tbl *table.Table) error {
	return write(c.store, schema.Storage, "StoragePowToEnergy", []string{colStorageTypes}, tbl)
}

func (c *StorageClient) StorageBleedEfficiency() (*table.Table, error) {
	return read(c.store, schema.Storage, "StorageBleedEfficiency")
}

func (c *StorageClient) SetStorageBleedEfficiency(tbl *table.Table) error {
	return write(c.store, schema.Storage, "StorageBleedEfficiency", []string{colStorageTypes}, tbl)
}

func (c *StorageClient) Lifetime() (*table.Table, error) {
	return read(c.store, schema.Storage, "Lifetime")
}

func (c *StorageClient) SetLifetime(tbl *table.Table) error {
	return write(c.store, schema.Storage, "Lifetime", []string{colStorageTypes}, tbl)
}
