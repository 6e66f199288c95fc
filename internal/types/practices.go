package types

// TillageSystem describes how intensively the soil is worked.
type TillageSystem string

const (
	TillageNoTill       TillageSystem = "NoTill"
	TillageReduced      TillageSystem = "ReducedTillage"
	TillageConventional TillageSystem = "ConventionalTillage"
)

// TillageSystems lists all valid tillage systems.
var TillageSystems = []TillageSystem{
	TillageNoTill, TillageReduced, TillageConventional,
}

// ApplicationMethod describes how fertilizer reaches the field.
type ApplicationMethod string

const (
	MethodBroadcasting  ApplicationMethod = "Broadcasting"
	MethodBandPlacement ApplicationMethod = "BandPlacement"
	MethodFoliarSpray   ApplicationMethod = "FoliarSpray"
	MethodFertigation   ApplicationMethod = "Fertigation"
	MethodDeepPlacement ApplicationMethod = "DeepPlacement"
)

// ApplicationMethods lists all valid fertilizer application methods.
var ApplicationMethods = []ApplicationMethod{
	MethodBroadcasting, MethodBandPlacement, MethodFoliarSpray,
	MethodFertigation, MethodDeepPlacement,
}

// PestApproach describes the overall pest control strategy.
type PestApproach string

const (
	PestIntegratedIPM     PestApproach = "IntegratedIPM"
	PestChemicalControl   PestApproach = "ChemicalControl"
	PestBiologicalControl PestApproach = "BiologicalControl"
	PestCulturalControl   PestApproach = "CulturalControl"
	PestNoControl         PestApproach = "NoControl"
)

// PestApproaches lists all valid pest management approaches.
var PestApproaches = []PestApproach{
	PestIntegratedIPM, PestChemicalControl, PestBiologicalControl,
	PestCulturalControl, PestNoControl,
}

// MaintenanceFrequency describes how often equipment is serviced.
type MaintenanceFrequency string

const (
	MaintenanceDaily     MaintenanceFrequency = "Daily"
	MaintenanceWeekly    MaintenanceFrequency = "Weekly"
	MaintenanceMonthly   MaintenanceFrequency = "Monthly"
	MaintenanceQuarterly MaintenanceFrequency = "Quarterly"
	MaintenanceBiannual  MaintenanceFrequency = "Biannual"
	MaintenanceAnnual    MaintenanceFrequency = "Annual"
	MaintenanceIrregular MaintenanceFrequency = "Irregular"
)

// MaintenanceFrequencies lists all valid maintenance frequencies.
var MaintenanceFrequencies = []MaintenanceFrequency{
	MaintenanceDaily, MaintenanceWeekly, MaintenanceMonthly,
	MaintenanceQuarterly, MaintenanceBiannual, MaintenanceAnnual,
	MaintenanceIrregular,
}

// SystemBoundary delimits which life-cycle phases the assessment covers.
type SystemBoundary string

const (
	BoundaryCradleToGate  SystemBoundary = "CradleToGate"
	BoundaryCradleToGrave SystemBoundary = "CradleToGrave"
	BoundaryGateToGate    SystemBoundary = "GateToGate"
	BoundaryFarmToFork    SystemBoundary = "FarmToFork"
)

// SystemBoundaries lists all valid system boundaries.
var SystemBoundaries = []SystemBoundary{
	BoundaryCradleToGate, BoundaryCradleToGrave,
	BoundaryGateToGate, BoundaryFarmToFork,
}

// AllocationMethod describes how impacts split across co-products.
type AllocationMethod string

const (
	AllocationMass            AllocationMethod = "Mass"
	AllocationEconomic        AllocationMethod = "Economic"
	AllocationSystemExpansion AllocationMethod = "SystemExpansion"
	AllocationCausal          AllocationMethod = "Causal"
)

// AllocationMethods lists all valid allocation methods.
var AllocationMethods = []AllocationMethod{
	AllocationMass, AllocationEconomic, AllocationSystemExpansion, AllocationCausal,
}

// CharacterizationMethod names the impact characterization model.
type CharacterizationMethod string

const (
	CharacterizationIpccAr6    CharacterizationMethod = "IpccAr6"
	CharacterizationIpccAr5    CharacterizationMethod = "IpccAr5"
	CharacterizationReCiPe2016 CharacterizationMethod = "ReCiPe2016"
	CharacterizationReCiPe2008 CharacterizationMethod = "ReCiPe2008"
	CharacterizationTRACI      CharacterizationMethod = "TRACI"
	CharacterizationCML        CharacterizationMethod = "CML"
)

// CharacterizationMethods lists all valid characterization methods.
var CharacterizationMethods = []CharacterizationMethod{
	CharacterizationIpccAr6, CharacterizationIpccAr5, CharacterizationReCiPe2016,
	CharacterizationReCiPe2008, CharacterizationTRACI, CharacterizationCML,
}
