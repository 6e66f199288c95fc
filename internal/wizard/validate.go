package wizard

import (
	"fmt"

	"github.com/Amankrah/green-means-go-sub001/internal/types"
	"github.com/Amankrah/green-means-go-sub001/internal/validation"
)

// Outcome is the result of validating one step against the draft.
type Outcome struct {
	Valid  bool                         `json:"valid"`
	Errors []validation.ValidationError `json:"errors,omitempty"`
}

// FieldMap returns the outcome's errors keyed by field name.
func (o Outcome) FieldMap() map[string]string {
	m := make(map[string]string, len(o.Errors))
	for _, e := range o.Errors {
		if _, ok := m[e.Field]; !ok {
			m[e.Field] = e.Message
		}
	}
	return m
}

// ValidateStep validates only the draft fields owned by the given step.
// It is a pure function: the draft is never mutated and fields owned by
// other steps never contribute errors. The review step validates the full
// draft across all steps.
func ValidateStep(step Step, draft *types.Draft) Outcome {
	var c validation.Collector
	if draft == nil {
		draft = &types.Draft{}
	}

	switch step {
	case StepFarmProfile:
		validateFarmProfile(&c, draft)
	case StepCropDetails:
		validateCropDetails(&c, draft)
	case StepManagement:
		validateManagement(&c, draft)
	case StepPestManagement:
		validatePestManagement(&c, draft)
	case StepEquipmentEnergy:
		validateEquipmentEnergy(&c, draft)
	case StepReview:
		validateFarmProfile(&c, draft)
		validateCropDetails(&c, draft)
		validateManagement(&c, draft)
		validatePestManagement(&c, draft)
		validateEquipmentEnergy(&c, draft)
	default:
		c.Add(&validation.ValidationError{Field: "step", Message: "unknown wizard step"})
	}

	return Outcome{Valid: !c.HasErrors(), Errors: c.Errors()}
}

func validateFarmProfile(c *validation.Collector, draft *types.Draft) {
	fp := draft.FarmProfile
	if fp == nil {
		c.Add(&validation.ValidationError{Field: "farm_profile", Message: "section is required"})
		return
	}

	c.Add(validation.ValidateRequired("farm_profile.company_name", fp.CompanyName))
	c.Add(validation.ValidateUTF8("farm_profile.company_name", fp.CompanyName))
	c.Add(validation.ValidateMaxLength("farm_profile.company_name", fp.CompanyName, 200))
	c.Add(validation.ValidateRequired("farm_profile.farmer_name", fp.FarmerName))
	c.Add(validation.ValidateMaxLength("farm_profile.farmer_name", fp.FarmerName, 200))
	c.Add(validation.ValidateRequired("farm_profile.farm_name", fp.FarmName))
	c.Add(validation.ValidateMaxLength("farm_profile.farm_name", fp.FarmName, 200))

	c.Add(validation.ValidateRequired("farm_profile.country", fp.Country))
	c.Add(validation.ValidateEnum("farm_profile.country", fp.Country, enumStrings(types.Countries)))

	c.Add(validation.ValidatePositive("farm_profile.total_farm_size", fp.TotalFarmSize))
	c.Add(validation.ValidateIntRange("farm_profile.farming_experience", fp.FarmingExperience, 0, 80))

	c.Add(validation.ValidateRequired("farm_profile.farm_type", fp.FarmType))
	c.Add(validation.ValidateEnum("farm_profile.farm_type", fp.FarmType, enumStrings(types.FarmTypes)))
	c.Add(validation.ValidateRequired("farm_profile.primary_farming_system", fp.PrimaryFarmingSystem))
	c.Add(validation.ValidateEnum("farm_profile.primary_farming_system", fp.PrimaryFarmingSystem, enumStrings(types.FarmingSystems)))
}

func validateCropDetails(c *validation.Collector, draft *types.Draft) {
	if len(draft.Crops) == 0 {
		c.Add(&validation.ValidationError{Field: "crops", Message: "at least one crop is required"})
		return
	}

	for i, crop := range draft.Crops {
		prefix := fmt.Sprintf("crops[%d]", i)
		c.Add(validation.ValidateRequired(prefix+".name", crop.Name))
		c.Add(validation.ValidateMaxLength(prefix+".name", crop.Name, 120))
		c.Add(validation.ValidateRequired(prefix+".category", crop.Category))
		c.Add(validation.ValidateEnum(prefix+".category", crop.Category, enumStrings(types.FoodCategories)))
		c.Add(validation.ValidatePositive(prefix+".quantity_kg", crop.QuantityKg))
		c.Add(validation.ValidateEnum(prefix+".production_system", crop.ProductionSystem, enumStrings(types.ProductionSystems)))
		c.Add(validation.ValidateEnum(prefix+".seasonal_factor", crop.SeasonalFactor, enumStrings(types.SeasonalFactors)))
		c.Add(validation.ValidateEnum(prefix+".cropping_pattern", crop.CroppingPattern, enumStrings(types.CroppingPatterns)))
		if crop.AreaAllocated != nil {
			c.Add(validation.ValidatePositive(prefix+".area_allocated", *crop.AreaAllocated))
		}
		if crop.PostHarvestLosses != nil {
			c.Add(validation.ValidateRange(prefix+".post_harvest_losses", *crop.PostHarvestLosses, 0, 100))
		}
		c.Add(validation.ValidateMonth(prefix+".harvest_month", crop.HarvestMonth))
	}
}

func validateManagement(c *validation.Collector, draft *types.Draft) {
	soil := draft.Soil
	if soil == nil {
		c.Add(&validation.ValidationError{Field: "soil", Message: "section is required"})
	} else {
		c.Add(validation.ValidateEnum("soil.soil_type", soil.SoilType, enumStrings(types.SoilTypes)))
		c.Add(validation.ValidateEnum("soil.tillage_system", soil.TillageSystem, enumStrings(types.TillageSystems)))
		if soil.SoilPH != nil {
			c.Add(validation.ValidateRange("soil.soil_ph", *soil.SoilPH, 3, 10))
		}
		if soil.UsesCompost {
			c.Add(validation.ValidateRequired("soil.compost_source", soil.CompostSource))
		}
	}

	fert := draft.Fertilization
	if fert == nil {
		c.Add(&validation.ValidationError{Field: "fertilization", Message: "section is required"})
	} else {
		if fert.UsesFertilizers && len(fert.Applications) == 0 {
			c.Add(&validation.ValidationError{
				Field:   "fertilization.fertilizer_applications",
				Message: "at least one application is required when fertilizers are used",
			})
		}
		for i, app := range fert.Applications {
			prefix := fmt.Sprintf("fertilization.fertilizer_applications[%d]", i)
			c.Add(validation.ValidateRequired(prefix+".fertilizer_type", app.FertilizerType))
			c.Add(validation.ValidatePositive(prefix+".application_rate", app.ApplicationRate))
			c.Add(validation.ValidateIntRange(prefix+".applications_per_season", app.ApplicationsPerSeason, 1, 20))
			c.Add(validation.ValidateEnum(prefix+".application_method", app.ApplicationMethod, enumStrings(types.ApplicationMethods)))
			if app.Cost != nil {
				c.Add(validation.ValidateNonNegative(prefix+".cost", *app.Cost))
			}
		}
	}

	if draft.Water == nil {
		c.Add(&validation.ValidationError{Field: "water", Message: "section is required"})
	}
}

func validatePestManagement(c *validation.Collector, draft *types.Draft) {
	pest := draft.Pest
	if pest == nil {
		c.Add(&validation.ValidationError{Field: "pest", Message: "section is required"})
		return
	}

	c.Add(validation.ValidateEnum("pest.management_approach", pest.ManagementApproach, enumStrings(types.PestApproaches)))

	for i, p := range pest.Pesticides {
		prefix := fmt.Sprintf("pest.pesticides[%d]", i)
		c.Add(validation.ValidateRequired(prefix+".pesticide_type", p.PesticideType))
		c.Add(validation.ValidateRequired(prefix+".active_ingredient", p.ActiveIngredient))
		c.Add(validation.ValidatePositive(prefix+".application_rate", p.ApplicationRate))
		c.Add(validation.ValidateIntRange(prefix+".applications_per_season", p.ApplicationsPerSeason, 1, 20))
		if p.Cost != nil {
			c.Add(validation.ValidateNonNegative(prefix+".cost", *p.Cost))
		}
	}
}

// validateEquipmentEnergy also covers the assessment parameters owned by
// the same step. The whole section is optional; entries validate
// individually when present.
func validateEquipmentEnergy(c *validation.Collector, draft *types.Draft) {
	if ee := draft.EquipmentEnergy; ee != nil {
		for i, eq := range ee.Equipment {
			prefix := fmt.Sprintf("equipment_energy.equipment[%d]", i)
			c.Add(validation.ValidateRequired(prefix+".equipment_type", eq.EquipmentType))
			c.Add(validation.ValidateRequired(prefix+".power_source", eq.PowerSource))
			c.Add(validation.ValidateIntRange(prefix+".age", eq.Age, 0, 100))
			c.Add(validation.ValidateNonNegative(prefix+".hours_per_year", eq.HoursPerYear))
			c.Add(validation.ValidateEnum(prefix+".maintenance_frequency", eq.MaintenanceFrequency, enumStrings(types.MaintenanceFrequencies)))
			if eq.FuelEfficiency != nil {
				c.Add(validation.ValidatePositive(prefix+".fuel_efficiency", *eq.FuelEfficiency))
			}
		}
		for i, es := range ee.EnergySources {
			prefix := fmt.Sprintf("equipment_energy.energy_sources[%d]", i)
			c.Add(validation.ValidateRequired(prefix+".energy_type", es.EnergyType))
			c.Add(validation.ValidateNonNegative(prefix+".monthly_consumption", es.MonthlyConsumption))
			if es.Cost != nil {
				c.Add(validation.ValidateNonNegative(prefix+".cost", *es.Cost))
			}
		}
		for i, fu := range ee.FuelUse {
			prefix := fmt.Sprintf("equipment_energy.fuel_consumption[%d]", i)
			c.Add(validation.ValidateRequired(prefix+".fuel_type", fu.FuelType))
			c.Add(validation.ValidateNonNegative(prefix+".monthly_consumption", fu.MonthlyConsumption))
			if fu.Cost != nil {
				c.Add(validation.ValidateNonNegative(prefix+".cost", *fu.Cost))
			}
		}
	}

	if p := draft.Parameters; p != nil {
		c.Add(validation.ValidateEnum("assessment_params.system_boundary", p.SystemBoundary, enumStrings(types.SystemBoundaries)))
		c.Add(validation.ValidateEnum("assessment_params.allocation_method", p.AllocationMethod, enumStrings(types.AllocationMethods)))
		c.Add(validation.ValidateEnum("assessment_params.characterization_method", p.CharacterizationMethod, enumStrings(types.CharacterizationMethods)))
	}
}

// enumStrings converts a typed enum slice to the plain strings the
// validation primitives expect.
func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
