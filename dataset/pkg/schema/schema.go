// Package schema declares the logical layout of an input dataset: the
// workbook groups and the sheets each group contains. The registry is static;
// it drives dataset scaffolding and bulk enumeration of the accessor
// catalogue.
package schema

// Group names one workbook of the dataset.
type Group string

const (
	Sets         Group = "Sets"
	Generator    Group = "Generator"
	Node         Group = "Node"
	Transmission Group = "Transmission"
	Storage      Group = "Storage"
	General      Group = "General"
)

var groups = []Group{Sets, Generator, Node, Transmission, Storage, General}

var sheets = map[Group][]string{
	Sets: {
		"Nodes",
		"OffshoreNodes",
		"Horizon",
		"Storage",
		"Technology",
		"Generators",
		"LineType",
		"HourOfSeason",
		"StorageOfNodes",
		"DirectionalLines",
		"LineTypeOfDirectionalLines",
		"GeneratorsOfNode",
		"GeneratorsOfTechnology",
		"Coords",
	},
	Generator: {
		"CapitalCosts",
		"FixedOMCosts",
		"VariableOMCosts",
		"FuelCosts",
		"CCSCostTSVariable",
		"Efficiency",
		"RefInitialCap",
		"ScaleFactorInitialCap",
		"InitialCapacity",
		"MaxBuiltCapacity",
		"MaxInstalledCapacity",
		"RampRate",
		"GeneratorTypeAvailability",
		"CO2Content",
		"Lifetime",
	},
	Node: {
		"ElectricAnnualDemand",
		"NodeLostLoadCost",
		"HydroGenMaxAnnualProduction",
	},
	Transmission: {
		"lineEfficiency",
		"MaxBuiltCapacity",
		"Length",
		"TypeCapitalCost",
		"TypeFixedOMCost",
		"InitialCapacity",
		"MaxInstallCapacityRaw",
		"Lifetime",
	},
	Storage: {
		"InitialPowerCapacity",
		"PowerCapitalCost",
		"PowerFixedOMCost",
		"PowerMaxBuiltCapacity",
		"EnergyCapitalCost",
		"EnergyFixedOMCost",
		"EnergyInitialCapacity",
		"EnergyMaxBuiltCapacity",
		"EnergyMaxInstalledCapacity",
		"PowerMaxInstalledCapacity",
		"StorageInitialEnergyLevel",
		"StorageChargeEff",
		"StorageDischargeEff",
		"StoragePowToEnergy",
		"StorageBleedEfficiency",
		"Lifetime",
	},
	General: {
		"seasonScale",
		"CO2Cap",
		"CO2Price",
	},
}

// Groups returns every workbook group in canonical order.
func Groups() []Group {
	return append([]Group(nil), groups...)
}

// SheetsOf returns the sheet names of one group in canonical order.
func SheetsOf(g Group) []string {
	return append([]string(nil), sheets[g]...)
}

// Tables returns the full registry, group by group.
func Tables() map[Group][]string {
	out := make(map[Group][]string, len(sheets))
	for g := range sheets {
		out[g] = SheetsOf(g)
	}
	return out
}

// Contains reports whether the group declares the named sheet.
func Contains(g Group, sheet string) bool {
	for _, s := range sheets[g] {
		if s == sheet {
			return true
		}
	}
	return false
}

// Filename returns the workbook filename of a group.
func (g Group) Filename() string {
	return string(g) + ".xlsx"
}
