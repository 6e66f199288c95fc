package types

import (
	"time"
)

// Country identifies the assessment region. The LCA engine carries
// country-specific impact factors for Ghana and Nigeria and falls back to
// global averages otherwise.
type Country string

const (
	CountryGhana   Country = "Ghana"
	CountryNigeria Country = "Nigeria"
	CountryGlobal  Country = "Global"
)

// Countries lists all valid countries in display order.
var Countries = []Country{CountryGhana, CountryNigeria, CountryGlobal}

// CurrencyCode returns the ISO currency code used for cost fields in this
// country.
func (c Country) CurrencyCode() string {
	switch c {
	case CountryGhana:
		return "GHS"
	case CountryNigeria:
		return "NGN"
	default:
		return "USD"
	}
}

// CurrencySymbol returns the display symbol for the country's currency.
func (c Country) CurrencySymbol() string {
	switch c {
	case CountryGhana:
		return "GH₵"
	case CountryNigeria:
		return "₦"
	default:
		return "$"
	}
}

// FoodCategory classifies a crop for impact-factor lookup.
type FoodCategory string

const (
	CategoryCereals    FoodCategory = "Cereals"
	CategoryLegumes    FoodCategory = "Legumes"
	CategoryVegetables FoodCategory = "Vegetables"
	CategoryFruits     FoodCategory = "Fruits"
	CategoryMeat       FoodCategory = "Meat"
	CategoryPoultry    FoodCategory = "Poultry"
	CategoryFish       FoodCategory = "Fish"
	CategoryDairy      FoodCategory = "Dairy"
	CategoryEggs       FoodCategory = "Eggs"
	CategoryOils       FoodCategory = "Oils"
	CategoryNuts       FoodCategory = "Nuts"
	CategoryRoots      FoodCategory = "Roots"
	CategoryOther      FoodCategory = "Other"
)

// FoodCategories lists all valid food categories.
var FoodCategories = []FoodCategory{
	CategoryCereals, CategoryLegumes, CategoryVegetables, CategoryFruits,
	CategoryMeat, CategoryPoultry, CategoryFish, CategoryDairy, CategoryEggs,
	CategoryOils, CategoryNuts, CategoryRoots, CategoryOther,
}

// FarmType classifies the scale and structure of the farm operation.
type FarmType string

const (
	FarmSmallholder    FarmType = "Smallholder"
	FarmSmallScale     FarmType = "SmallScale"
	FarmMediumScale    FarmType = "MediumScale"
	FarmCommercial     FarmType = "Commercial"
	FarmCooperative    FarmType = "Cooperative"
	FarmMixedLivestock FarmType = "MixedLivestock"
)

// FarmTypes lists all valid farm types.
var FarmTypes = []FarmType{
	FarmSmallholder, FarmSmallScale, FarmMediumScale,
	FarmCommercial, FarmCooperative, FarmMixedLivestock,
}

// FarmingSystem describes the primary production philosophy of the farm.
type FarmingSystem string

const (
	SystemSubsistence       FarmingSystem = "Subsistence"
	SystemSemiCommercial    FarmingSystem = "SemiCommercial"
	SystemCommercial        FarmingSystem = "Commercial"
	SystemOrganic           FarmingSystem = "Organic"
	SystemAgroecological    FarmingSystem = "Agroecological"
	SystemConventional      FarmingSystem = "Conventional"
	SystemIntegratedFarming FarmingSystem = "IntegratedFarming"
)

// FarmingSystems lists all valid farming systems.
var FarmingSystems = []FarmingSystem{
	SystemSubsistence, SystemSemiCommercial, SystemCommercial, SystemOrganic,
	SystemAgroecological, SystemConventional, SystemIntegratedFarming,
}

// ProductionSystem describes how a single crop is produced.
type ProductionSystem string

const (
	ProductionIntensive    ProductionSystem = "Intensive"
	ProductionExtensive    ProductionSystem = "Extensive"
	ProductionSmallholder  ProductionSystem = "Smallholder"
	ProductionAgroforestry ProductionSystem = "Agroforestry"
	ProductionIrrigated    ProductionSystem = "Irrigated"
	ProductionRainfed      ProductionSystem = "Rainfed"
	ProductionOrganic      ProductionSystem = "Organic"
	ProductionConventional ProductionSystem = "Conventional"
)

// ProductionSystems lists all valid production systems.
var ProductionSystems = []ProductionSystem{
	ProductionIntensive, ProductionExtensive, ProductionSmallholder,
	ProductionAgroforestry, ProductionIrrigated, ProductionRainfed,
	ProductionOrganic, ProductionConventional,
}

// SeasonalFactor describes when during the year the crop is grown.
type SeasonalFactor string

const (
	SeasonWet       SeasonalFactor = "WetSeason"
	SeasonDry       SeasonalFactor = "DrySeason"
	SeasonYearRound SeasonalFactor = "YearRound"
)

// SeasonalFactors lists all valid seasonal factors.
var SeasonalFactors = []SeasonalFactor{SeasonWet, SeasonDry, SeasonYearRound}

// CroppingPattern describes the spatial arrangement of crops on the field.
type CroppingPattern string

const (
	PatternMonoculture   CroppingPattern = "Monoculture"
	PatternIntercropping CroppingPattern = "Intercropping"
	PatternRelayCropping CroppingPattern = "RelayCropping"
	PatternAgroforestry  CroppingPattern = "Agroforestry"
	PatternCropRotation  CroppingPattern = "CropRotation"
)

// CroppingPatterns lists all valid cropping patterns.
var CroppingPatterns = []CroppingPattern{
	PatternMonoculture, PatternIntercropping, PatternRelayCropping,
	PatternAgroforestry, PatternCropRotation,
}

// SoilType classifies the dominant soil texture of the farm.
type SoilType string

const (
	SoilSandy     SoilType = "Sandy"
	SoilClay      SoilType = "Clay"
	SoilLoam      SoilType = "Loam"
	SoilSandyLoam SoilType = "SandyLoam"
	SoilClayLoam  SoilType = "ClayLoam"
	SoilSiltLoam  SoilType = "SiltLoam"
	SoilLateritic SoilType = "Lateritic"
	SoilVolcanic  SoilType = "Volcanic"
)

// SoilTypes lists all valid soil types.
var SoilTypes = []SoilType{
	SoilSandy, SoilClay, SoilLoam, SoilSandyLoam,
	SoilClayLoam, SoilSiltLoam, SoilLateritic, SoilVolcanic,
}

// --- Draft model ---
//
// The draft is the in-progress wizard input tree. Every substructure is
// optional; nothing is assumed present until the step owning it has passed
// validation. Scalars that must be distinguishable from their zero value
// (costs, pH) are pointers.

// Draft holds the partially filled wizard inputs for one session.
type Draft struct {
	FarmProfile     *DraftFarmProfile      `json:"farm_profile,omitempty"`
	Crops           []DraftCrop            `json:"crops,omitempty"`
	Soil            *DraftSoil             `json:"soil,omitempty"`
	Fertilization   *DraftFertilization    `json:"fertilization,omitempty"`
	Water           *DraftWater            `json:"water,omitempty"`
	Pest            *DraftPest             `json:"pest,omitempty"`
	EquipmentEnergy *DraftEquipmentEnergy  `json:"equipment_energy,omitempty"`
	Parameters      *DraftAssessmentParams `json:"assessment_params,omitempty"`
}

// DraftFarmProfile captures the Farm Profile step.
type DraftFarmProfile struct {
	CompanyName          string   `json:"company_name"`
	FarmerName           string   `json:"farmer_name"`
	FarmName             string   `json:"farm_name"`
	Country              string   `json:"country"`
	Region               string   `json:"region,omitempty"`
	TotalFarmSize        float64  `json:"total_farm_size"`
	FarmingExperience    int      `json:"farming_experience"`
	FarmType             string   `json:"farm_type"`
	PrimaryFarmingSystem string   `json:"primary_farming_system"`
	Certifications       []string `json:"certifications,omitempty"`
	Programs             []string `json:"participates_in_programs,omitempty"`
}

// DraftCrop captures one entry of the Crop Details step.
type DraftCrop struct {
	Name                  string   `json:"name"`
	Category              string   `json:"category"`
	QuantityKg            float64  `json:"quantity_kg"`
	CropType              string   `json:"crop_type,omitempty"`
	Variety               string   `json:"variety,omitempty"`
	AreaAllocated         *float64 `json:"area_allocated,omitempty"`
	ProductionSystem      string   `json:"production_system,omitempty"`
	SeasonalFactor        string   `json:"seasonal_factor,omitempty"`
	CroppingPattern       string   `json:"cropping_pattern,omitempty"`
	IntercroppingPartners []string `json:"intercropping_partners,omitempty"`
	PostHarvestLosses     *float64 `json:"post_harvest_losses,omitempty"`
	HarvestMonth          *int     `json:"harvest_month,omitempty"`
}

// DraftSoil captures soil management inputs of the Management Practices step.
type DraftSoil struct {
	SoilType              string   `json:"soil_type,omitempty"`
	SoilPH                *float64 `json:"soil_ph,omitempty"`
	TillageSystem         string   `json:"tillage_system,omitempty"`
	UsesCompost           bool     `json:"uses_compost"`
	CompostSource         string   `json:"compost_source,omitempty"`
	ConservationPractices []string `json:"conservation_practices,omitempty"`
	SoilTestingFrequency  string   `json:"soil_testing_frequency,omitempty"`
}

// DraftFertilization captures fertilization inputs of the Management
// Practices step.
type DraftFertilization struct {
	UsesFertilizers     bool                         `json:"uses_fertilizers"`
	Applications        []DraftFertilizerApplication `json:"fertilizer_applications,omitempty"`
	SoilTestBased       bool                         `json:"soil_test_based"`
	FollowsNutrientPlan bool                         `json:"follows_nutrient_plan"`
}

// DraftFertilizerApplication is one fertilizer product applied per season.
type DraftFertilizerApplication struct {
	FertilizerType        string   `json:"fertilizer_type"`
	NPKRatio              string   `json:"npk_ratio,omitempty"`
	ApplicationRate       float64  `json:"application_rate"`
	ApplicationsPerSeason int      `json:"applications_per_season"`
	ApplicationMethod     string   `json:"application_method,omitempty"`
	Cost                  *float64 `json:"cost,omitempty"`
}

// DraftWater captures water management inputs of the Management Practices
// step.
type DraftWater struct {
	WaterSources          []string `json:"water_source,omitempty"`
	IrrigationSystem      string   `json:"irrigation_system,omitempty"`
	ConservationPractices []string `json:"water_conservation_practices,omitempty"`
}

// DraftPest captures the Pest Management step.
type DraftPest struct {
	ManagementApproach  string                      `json:"management_approach,omitempty"`
	UsesIPM             bool                        `json:"uses_ipm"`
	Pesticides          []DraftPesticideApplication `json:"pesticides,omitempty"`
	MonitoringFrequency string                      `json:"pest_monitoring_frequency,omitempty"`
}

// DraftPesticideApplication is one pesticide product applied per season.
type DraftPesticideApplication struct {
	PesticideType         string   `json:"pesticide_type"`
	ActiveIngredient      string   `json:"active_ingredient"`
	ApplicationRate       float64  `json:"application_rate"`
	ApplicationsPerSeason int      `json:"applications_per_season"`
	TargetPests           []string `json:"target_pests,omitempty"`
	Cost                  *float64 `json:"cost,omitempty"`
}

// DraftEquipmentEnergy captures the Equipment & Energy step.
type DraftEquipmentEnergy struct {
	Equipment     []DraftEquipment    `json:"equipment,omitempty"`
	EnergySources []DraftEnergySource `json:"energy_sources,omitempty"`
	FuelUse       []DraftFuelUsage    `json:"fuel_consumption,omitempty"`
}

// DraftEquipment is one piece of farm machinery.
type DraftEquipment struct {
	EquipmentType        string   `json:"equipment_type"`
	PowerSource          string   `json:"power_source"`
	Age                  int      `json:"age"`
	HoursPerYear         float64  `json:"hours_per_year"`
	FuelEfficiency       *float64 `json:"fuel_efficiency,omitempty"`
	MaintenanceFrequency string   `json:"maintenance_frequency,omitempty"`
}

// DraftEnergySource is one energy input with its monthly consumption.
type DraftEnergySource struct {
	EnergyType         string   `json:"energy_type"`
	MonthlyConsumption float64  `json:"monthly_consumption"`
	PrimaryUse         string   `json:"primary_use,omitempty"`
	Cost               *float64 `json:"cost,omitempty"`
}

// DraftFuelUsage is one fuel input with its monthly consumption in liters.
type DraftFuelUsage struct {
	FuelType           string   `json:"fuel_type"`
	MonthlyConsumption float64  `json:"monthly_consumption"`
	PrimaryUse         string   `json:"primary_use,omitempty"`
	Cost               *float64 `json:"cost,omitempty"`
}

// DraftAssessmentParams captures the assessment methodology inputs owned by
// the Equipment & Energy step.
type DraftAssessmentParams struct {
	SystemBoundary         string `json:"system_boundary,omitempty"`
	AllocationMethod       string `json:"allocation_method,omitempty"`
	CharacterizationMethod string `json:"characterization_method,omitempty"`
}

// --- Canonical request ---
//
// The fully defaulted object sent to the LCA engine. Field names follow the
// engine's snake_case contract. Fields the engine marks required are plain
// values; optional-to-engine fields are pointers with omitempty.

// AssessmentRequest is the canonical submission payload.
type AssessmentRequest struct {
	CompanyName         string               `json:"company_name"`
	Country             string               `json:"country"`
	Region              *string              `json:"region,omitempty"`
	Foods               []FoodItem           `json:"foods"`
	FarmProfile         *FarmProfile         `json:"farm_profile,omitempty"`
	ManagementPractices *ManagementPractices `json:"management_practices,omitempty"`
	EquipmentEnergy     *EquipmentEnergy     `json:"equipment_energy,omitempty"`
	Methodology         *LCAMethodology      `json:"methodology,omitempty"`
}

// LCAMethodology pins the calculation method the engine should apply.
type LCAMethodology struct {
	FunctionalUnit         string `json:"functional_unit"`
	SystemBoundary         string `json:"system_boundary"`
	AllocationMethod       string `json:"allocation_method"`
	CharacterizationMethod string `json:"characterization_method"`
}

// FoodItem is one crop production entry in the canonical request.
type FoodItem struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	QuantityKg            float64   `json:"quantity_kg"`
	Category              string    `json:"category"`
	CropType              *string   `json:"crop_type,omitempty"`
	OriginCountry         *string   `json:"origin_country,omitempty"`
	ProductionSystem      *string   `json:"production_system,omitempty"`
	SeasonalFactor        *string   `json:"seasonal_factor,omitempty"`
	Variety               *string   `json:"variety,omitempty"`
	AreaAllocated         *float64  `json:"area_allocated,omitempty"`
	CroppingPattern       *string   `json:"cropping_pattern,omitempty"`
	IntercroppingPartners *[]string `json:"intercropping_partners,omitempty"`
	PostHarvestLosses     *float64  `json:"post_harvest_losses,omitempty"`
}

// FarmProfile is the canonical farm identity block.
type FarmProfile struct {
	FarmerName           string   `json:"farmer_name"`
	FarmName             string   `json:"farm_name"`
	TotalFarmSize        float64  `json:"total_farm_size"`
	FarmingExperience    int      `json:"farming_experience"`
	FarmType             string   `json:"farm_type"`
	PrimaryFarmingSystem string   `json:"primary_farming_system"`
	Certifications       []string `json:"certifications"`
	Programs             []string `json:"participates_in_programs"`
}

// ManagementPractices groups the canonical management blocks.
type ManagementPractices struct {
	SoilManagement  SoilManagement         `json:"soil_management"`
	Fertilization   FertilizationPractices `json:"fertilization"`
	WaterManagement WaterManagement        `json:"water_management"`
	PestManagement  PestManagement         `json:"pest_management"`
}

// SoilManagement is the canonical soil block.
type SoilManagement struct {
	SoilType              *string  `json:"soil_type,omitempty"`
	SoilPH                float64  `json:"soil_ph"`
	TillageSystem         string   `json:"tillage_system"`
	UsesCompost           bool     `json:"uses_compost"`
	CompostSource         *string  `json:"compost_source,omitempty"`
	ConservationPractices []string `json:"conservation_practices"`
	SoilTestingFrequency  *string  `json:"soil_testing_frequency,omitempty"`
}

// FertilizationPractices is the canonical fertilization block.
type FertilizationPractices struct {
	UsesFertilizers     bool                    `json:"uses_fertilizers"`
	Applications        []FertilizerApplication `json:"fertilizer_applications"`
	SoilTestBased       bool                    `json:"soil_test_based"`
	FollowsNutrientPlan bool                    `json:"follows_nutrient_plan"`
}

// FertilizerApplication is one canonical fertilizer entry.
type FertilizerApplication struct {
	FertilizerType        string  `json:"fertilizer_type"`
	NPKRatio              *string `json:"npk_ratio,omitempty"`
	ApplicationRate       float64 `json:"application_rate"`
	ApplicationsPerSeason int     `json:"applications_per_season"`
	ApplicationMethod     string  `json:"application_method"`
	Cost                  float64 `json:"cost"`
}

// WaterManagement is the canonical water block.
type WaterManagement struct {
	WaterSources          []string `json:"water_source"`
	IrrigationSystem      *string  `json:"irrigation_system,omitempty"`
	ConservationPractices []string `json:"water_conservation_practices"`
}

// PestManagement is the canonical pest block.
type PestManagement struct {
	ManagementApproach  string                 `json:"management_approach"`
	UsesIPM             bool                   `json:"uses_ipm"`
	Pesticides          []PesticideApplication `json:"pesticides"`
	MonitoringFrequency string                 `json:"pest_monitoring_frequency"`
}

// PesticideApplication is one canonical pesticide entry.
type PesticideApplication struct {
	PesticideType         string   `json:"pesticide_type"`
	ActiveIngredient      string   `json:"active_ingredient"`
	ApplicationRate       float64  `json:"application_rate"`
	ApplicationsPerSeason int      `json:"applications_per_season"`
	TargetPests           []string `json:"target_pests"`
	Cost                  float64  `json:"cost"`
}

// EquipmentEnergy is the canonical equipment and energy block.
type EquipmentEnergy struct {
	Equipment     []FarmEquipment `json:"equipment"`
	EnergySources []EnergyUsage   `json:"energy_sources"`
	FuelUse       []FuelUsage     `json:"fuel_consumption"`
}

// FarmEquipment is one canonical machinery entry.
type FarmEquipment struct {
	EquipmentType        string   `json:"equipment_type"`
	PowerSource          string   `json:"power_source"`
	Age                  int      `json:"age"`
	HoursPerYear         float64  `json:"hours_per_year"`
	FuelEfficiency       *float64 `json:"fuel_efficiency,omitempty"`
	MaintenanceFrequency string   `json:"maintenance_frequency"`
}

// EnergyUsage is one canonical energy entry.
type EnergyUsage struct {
	EnergyType         string  `json:"energy_type"`
	MonthlyConsumption float64 `json:"monthly_consumption"`
	PrimaryUse         string  `json:"primary_use"`
	Cost               float64 `json:"cost"`
}

// FuelUsage is one canonical fuel entry.
type FuelUsage struct {
	FuelType           string  `json:"fuel_type"`
	MonthlyConsumption float64 `json:"monthly_consumption"`
	PrimaryUse         string  `json:"primary_use"`
	Cost               float64 `json:"cost"`
}

// --- Assessment result ---

// AssessmentResult is the payload returned by the LCA engine's retrieval
// endpoint. Impact values arrive in mixed shapes and decode through
// ImpactValue.
type AssessmentResult struct {
	ID              string                            `json:"id"`
	CompanyName     string                            `json:"company_name"`
	Country         string                            `json:"country"`
	AssessmentDate  time.Time                         `json:"assessment_date"`
	MidpointImpacts map[string]ImpactValue            `json:"midpoint_impacts"`
	EndpointImpacts map[string]ImpactValue            `json:"endpoint_impacts"`
	SingleScore     ImpactValue                       `json:"single_score"`
	DataQuality     DataQuality                       `json:"data_quality"`
	BreakdownByFood map[string]map[string]ImpactValue `json:"breakdown_by_food"`
	Recommendations []Recommendation                  `json:"recommendations,omitempty"`
}

// DataQuality describes the engine's confidence in the result.
type DataQuality struct {
	OverallConfidence               string   `json:"overall_confidence"`
	RegionalAdaptation              bool     `json:"regional_adaptation"`
	CompletenessScore               float64  `json:"completeness_score"`
	TemporalRepresentativeness      float64  `json:"temporal_representativeness"`
	GeographicRepresentativeness    float64  `json:"geographical_representativeness"`
	TechnologicalRepresentativeness float64  `json:"technological_representativeness"`
	Warnings                        []string `json:"warnings"`
	Recommendations                 []string `json:"recommendations"`
}

// Recommendation is one engine-supplied improvement suggestion.
type Recommendation struct {
	Category                 string             `json:"category"`
	Title                    string             `json:"title"`
	Description              string             `json:"description"`
	PotentialImpactReduction map[string]float64 `json:"potential_impact_reduction,omitempty"`
	ImplementationDifficulty string             `json:"implementation_difficulty"`
	CostCategory             string             `json:"cost_category"`
	Priority                 string             `json:"priority"`
}
