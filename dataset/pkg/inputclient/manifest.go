package inputclient

import "github.com/expanse-model/expanse/dataset/pkg/table"

// Binding ties one logical table to its getter/setter pair. The manifest is
// the static enumeration of the whole accessor catalogue, used by bulk
// tooling (dataset export/import) instead of reflecting over method names.
type Binding struct {
	Client string
	Table  string
	Get    func(*Client) (*table.Table, error)
	Set    func(*Client, *table.Table) error
}

// Bindings returns the full accessor manifest in a stable order.
func Bindings() []Binding {
	return []Binding{
		{"sets", "Nodes", func(c *Client) (*table.Table, error) { return c.Sets.Nodes() }, func(c *Client, t *table.Table) error { return c.Sets.SetNodes(t) }},
		{"sets", "OffshoreNodes", func(c *Client) (*table.Table, error) { return c.Sets.OffshoreNodes() }, func(c *Client, t *table.Table) error { return c.Sets.SetOffshoreNodes(t) }},
		{"sets", "Horizon", func(c *Client) (*table.Table, error) { return c.Sets.Horizon() }, func(c *Client, t *table.Table) error { return c.Sets.SetHorizon(t) }},
		{"sets", "Storage", func(c *Client) (*table.Table, error) { return c.Sets.Storage() }, func(c *Client, t *table.Table) error { return c.Sets.SetStorage(t) }},
		{"sets", "Technology", func(c *Client) (*table.Table, error) { return c.Sets.Technology() }, func(c *Client, t *table.Table) error { return c.Sets.SetTechnology(t) }},
		{"sets", "Generators", func(c *Client) (*table.Table, error) { return c.Sets.Generators() }, func(c *Client, t *table.Table) error { return c.Sets.SetGenerators(t) }},
		{"sets", "LineType", func(c *Client) (*table.Table, error) { return c.Sets.LineType() }, func(c *Client, t *table.Table) error { return c.Sets.SetLineType(t) }},
		{"sets", "HourOfSeason", func(c *Client) (*table.Table, error) { return c.Sets.HourOfSeason() }, func(c *Client, t *table.Table) error { return c.Sets.SetHourOfSeason(t) }},
		{"sets", "StorageOfNodes", func(c *Client) (*table.Table, error) { return c.Sets.StorageOfNodes() }, func(c *Client, t *table.Table) error { return c.Sets.SetStorageOfNodes(t) }},
		{"sets", "DirectionalLines", func(c *Client) (*table.Table, error) { return c.Sets.DirectionalLines() }, func(c *Client, t *table.Table) error { return c.Sets.SetDirectionalLines(t) }},
		{"sets", "LineTypeOfDirectionalLines", func(c *Client) (*table.Table, error) { return c.Sets.LineTypeOfDirectionalLines() }, func(c *Client, t *table.Table) error { return c.Sets.SetLineTypeOfDirectionalLines(t) }},
		{"sets", "GeneratorsOfNode", func(c *Client) (*table.Table, error) { return c.Sets.GeneratorsOfNode() }, func(c *Client, t *table.Table) error { return c.Sets.SetGeneratorsOfNode(t) }},
		{"sets", "GeneratorsOfTechnology", func(c *Client) (*table.Table, error) { return c.Sets.GeneratorsOfTechnology() }, func(c *Client, t *table.Table) error { return c.Sets.SetGeneratorsOfTechnology(t) }},
		{"sets", "Coords", func(c *Client) (*table.Table, error) { return c.Sets.Coordinates() }, func(c *Client, t *table.Table) error { return c.Sets.SetCoordinates(t) }},

		{"generator", "CapitalCosts", func(c *Client) (*table.Table, error) { return c.Generator.CapitalCosts() }, func(c *Client, t *table.Table) error { return c.Generator.SetCapitalCosts(t) }},
		{"generator", "FixedOMCosts", func(c *Client) (*table.Table, error) { return c.Generator.FixedOMCosts() }, func(c *Client, t *table.Table) error { return c.Generator.SetFixedOMCosts(t) }},
		{"generator", "VariableOMCosts", func(c *Client) (*table.Table, error) { return c.Generator.VariableOMCosts() }, func(c *Client, t *table.Table) error { return c.Generator.SetVariableOMCosts(t) }},
		{"generator", "FuelCosts", func(c *Client) (*table.Table, error) { return c.Generator.FuelCosts() }, func(c *Client, t *table.Table) error { return c.Generator.SetFuelCosts(t) }},
		{"generator", "CCSCostTSVariable", func(c *Client) (*table.Table, error) { return c.Generator.CCSCostTSVariable() }, func(c *Client, t *table.Table) error { return c.Generator.SetCCSCostTSVariable(t) }},
		{"generator", "Efficiency", func(c *Client) (*table.Table, error) { return c.Generator.Efficiency() }, func(c *Client, t *table.Table) error { return c.Generator.SetEfficiency(t) }},
		{"generator", "RefInitialCap", func(c *Client) (*table.Table, error) { return c.Generator.RefInitialCapacity() }, func(c *Client, t *table.Table) error { return c.Generator.SetRefInitialCapacity(t) }},
		{"generator", "ScaleFactorInitialCap", func(c *Client) (*table.Table, error) { return c.Generator.ScaleFactorInitialCapacity() }, func(c *Client, t *table.Table) error { return c.Generator.SetScaleFactorInitialCapacity(t) }},
		{"generator", "InitialCapacity", func(c *Client) (*table.Table, error) { return c.Generator.InitialCapacity() }, func(c *Client, t *table.Table) error { return c.Generator.SetInitialCapacity(t) }},
		{"generator", "MaxBuiltCapacity", func(c *Client) (*table.Table, error) { return c.Generator.MaxBuiltCapacity() }, func(c *Client, t *table.Table) error { return c.Generator.SetMaxBuiltCapacity(t) }},
		{"generator", "MaxInstalledCapacity", func(c *Client) (*table.Table, error) { return c.Generator.MaxInstalledCapacity() }, func(c *Client, t *table.Table) error { return c.Generator.SetMaxInstalledCapacity(t) }},
		{"generator", "RampRate", func(c *Client) (*table.Table, error) { return c.Generator.RampRate() }, func(c *Client, t *table.Table) error { return c.Generator.SetRampRate(t) }},
		{"generator", "GeneratorTypeAvailability", func(c *Client) (*table.Table, error) { return c.Generator.GeneratorTypeAvailability() }, func(c *Client, t *table.Table) error { return c.Generator.SetGeneratorTypeAvailability(t) }},
		{"generator", "CO2Content", func(c *Client) (*table.Table, error) { return c.Generator.CO2Content() }, func(c *Client, t *table.Table) error { return c.Generator.SetCO2Content(t) }},
		{"generator", "Lifetime", func(c *Client) (*table.Table, error) { return c.Generator.Lifetime() }, func(c *Client, t *table.Table) error { return c.Generator.SetLifetime(t) }},

		{"nodes", "ElectricAnnualDemand", func(c *Client) (*table.Table, error) { return c.Nodes.ElectricAnnualDemand() }, func(c *Client, t *table.Table) error { return c.Nodes.SetElectricAnnualDemand(t) }},
		{"nodes", "NodeLostLoadCost", func(c *Client) (*table.Table, error) { return c.Nodes.NodeLostLoadCost() }, func(c *Client, t *table.Table) error { return c.Nodes.SetNodeLostLoadCost(t) }},
		{"nodes", "HydroGenMaxAnnualProduction", func(c *Client) (*table.Table, error) { return c.Nodes.HydroGeneratorsMaxAnnualProduction() }, func(c *Client, t *table.Table) error { return c.Nodes.SetHydroGeneratorsMaxAnnualProduction(t) }},

		{"transmission", "lineEfficiency", func(c *Client) (*table.Table, error) { return c.Transmission.LineEfficiency() }, func(c *Client, t *table.Table) error { return c.Transmission.SetLineEfficiency(t) }},
		{"transmission", "MaxBuiltCapacity", func(c *Client) (*table.Table, error) { return c.Transmission.MaxBuiltCapacity() }, func(c *Client, t *table.Table) error { return c.Transmission.SetMaxBuiltCapacity(t) }},
		{"transmission", "Length", func(c *Client) (*table.Table, error) { return c.Transmission.Length() }, func(c *Client, t *table.Table) error { return c.Transmission.SetLength(t) }},
		{"transmission", "TypeCapitalCost", func(c *Client) (*table.Table, error) { return c.Transmission.TypeCapitalCost() }, func(c *Client, t *table.Table) error { return c.Transmission.SetTypeCapitalCost(t) }},
		{"transmission", "TypeFixedOMCost", func(c *Client) (*table.Table, error) { return c.Transmission.TypeFixedOMCost() }, func(c *Client, t *table.Table) error { return c.Transmission.SetTypeFixedOMCost(t) }},
		{"transmission", "InitialCapacity", func(c *Client) (*table.Table, error) { return c.Transmission.InitialCapacity() }, func(c *Client, t *table.Table) error { return c.Transmission.SetInitialCapacity(t) }},
		{"transmission", "MaxInstallCapacityRaw", func(c *Client) (*table.Table, error) { return c.Transmission.MaxInstallCapacityRaw() }, func(c *Client, t *table.Table) error { return c.Transmission.SetMaxInstallCapacityRaw(t) }},
		{"transmission", "Lifetime", func(c *Client) (*table.Table, error) { return c.Transmission.Lifetime() }, func(c *Client, t *table.Table) error { return c.Transmission.SetLifetime(t) }},

		{"storage", "InitialPowerCapacity", func(c *Client) (*table.Table, error) { return c.Storage.InitialPowerCapacity() }, func(c *Client, t *table.Table) error { return c.Storage.SetInitialPowerCapacity(t) }},
		{"storage", "PowerCapitalCost", func(c *Client) (*table.Table, error) { return c.Storage.PowerCapitalCost() }, func(c *Client, t *table.Table) error { return c.Storage.SetPowerCapitalCost(t) }},
		{"storage", "PowerFixedOMCost", func(c *Client) (*table.Table, error) { return c.Storage.PowerFixedOMCost() }, func(c *Client, t *table.Table) error { return c.Storage.SetPowerFixedOMCost(t) }},
		{"storage", "PowerMaxBuiltCapacity", func(c *Client) (*table.Table, error) { return c.Storage.PowerMaxBuiltCapacity() }, func(c *Client, t *table.Table) error { return c.Storage.SetPowerMaxBuiltCapacity(t) }},
		{"storage", "EnergyCapitalCost", func(c *Client) (*table.Table, error) { return c.Storage.EnergyCapitalCost() }, func(c *Client, t *table.Table) error { return c.Storage.SetEnergyCapitalCost(t) }},
		{"storage", "EnergyFixedOMCost", func(c *Client) (*table.Table, error) { return c.Storage.EnergyFixedOMCost() }, func(c *Client, t *table.Table) error { return c.Storage.SetEnergyFixedOMCost(t) }},
		{"storage", "EnergyInitialCapacity", func(c *Client) (*table.Table, error) { return c.Storage.InitialEnergyCapacity() }, func(c *Client, t *table.Table) error { return c.Storage.SetInitialEnergyCapacity(t) }},
		{"storage", "EnergyMaxBuiltCapacity", func(c *Client) (*table.Table, error) { return c.Storage.EnergyMaxBuiltCapacity() }, func(c *Client, t *table.Table) error { return c.Storage.SetEnergyMaxBuiltCapacity(t) }},
		{"storage", "EnergyMaxInstalledCapacity", func(c *Client) (*table.Table, error) { return c.Storage.EnergyMaxInstalledCapacity() }, func(c *Client, t *table.Table) error { return c.Storage.SetEnergyMaxInstalledCapacity(t) }},
		{"storage", "PowerMaxInstalledCapacity", func(c *Client) (*table.Table, error) { return c.Storage.PowerMaxInstalledCapacity() }, func(c *Client, t *table.Table) error { return c.Storage.SetPowerMaxInstalledCapacity(t) }},
		{"storage", "StorageInitialEnergyLevel", func(c *Client) (*table.Table, error) { return c.Storage.StorageInitialEnergyLevel() }, func(c *Client, t *table.Table) error { return c.Storage.SetStorageInitialEnergyLevel(t) }},
		{"storage", "StorageChargeEff", func(c *Client) (*table.Table, error) { return c.Storage.StorageChargeEfficiency() }, func(c *Client, t *table.Table) error { return c.Storage.SetStorageChargeEfficiency(t) }},
		{"storage", "StorageDischargeEff", func(c *Client) (*table.Table, error) { return c.Storage.StorageDischargeEfficiency() }, func(c *Client, t *table.Table) error { return c.Storage.SetStorageDischargeEfficiency(t) }},
		{"storage", "StoragePowToEnergy", func(c *Client) (*table.Table, error) { return c.Storage.StoragePowerToEnergy() }, func(c *Client, t *table.Table) error { return c.Storage.SetStoragePowerToEnergy(t) }},
		{"storage", "StorageBleedEfficiency", func(c *Client) (*table.Table, error) { return c.Storage.StorageBleedEfficiency() }, func(c *Client, t *table.Table) error { return c.Storage.SetStorageBleedEfficiency(t) }},
		{"storage", "Lifetime", func(c *Client) (*table.Table, error) { return c.Storage.Lifetime() }, func(c *Client, t *table.Table) error { return c.Storage.SetLifetime(t) }},

		{"general", "seasonScale", func(c *Client) (*table.Table, error) { return c.General.SeasonScale() }, func(c *Client, t *table.Table) error { return c.General.SetSeasonScale(t) }},
		{"general", "CO2Cap", func(c *Client) (*table.Table, error) { return c.General.CO2Cap() }, func(c *Client, t *table.Table) error { return c.General.SetCO2Cap(t) }},
		{"general", "CO2Price", func(c *Client) (*table.Table, error) { return c.General.CO2Price() }, func(c *Client, t *table.Table) error { return c.General.SetCO2Price(t) }},
	}
}
