package transform

import (
	"fmt"

	"github.com/Amankrah/green-means-go-sub001/internal/types"
)

// Result is the outcome of one transform pass: the canonical request plus
// the audit trail of every default that was substituted for missing input.
type Result struct {
	Request         types.AssessmentRequest `json:"request"`
	AppliedDefaults []AppliedDefault        `json:"applied_defaults"`
	DefaultsVersion string                  `json:"defaults_version"`
}

// Transform maps a fully validated draft into the canonical request. It is
// total: by contract the draft has passed review validation, and anything
// the engine requires that the draft still lacks is filled from the default
// table, never left undefined.
func Transform(draft *types.Draft) Result {
	if draft == nil {
		draft = &types.Draft{}
	}

	var audit auditor
	req := fromDraft(draft, &audit)
	applied := ApplyDefaults(&req)

	return Result{
		Request:         req,
		AppliedDefaults: append(audit.applied, applied...),
		DefaultsVersion: DefaultsVersion,
	}
}

// fromDraft copies present draft values verbatim into request shape. The
// only defaulting done here concerns pointer-typed cost fields, where nil
// (not supplied) and zero (supplied as free) are distinguishable; the
// substitution is audited at this point because the distinction is lost in
// the canonical shape.
func fromDraft(draft *types.Draft, audit *auditor) types.AssessmentRequest {
	var req types.AssessmentRequest

	if fp := draft.FarmProfile; fp != nil {
		req.CompanyName = fp.CompanyName
		req.Country = fp.Country
		req.Region = optString(fp.Region)
		req.FarmProfile = &types.FarmProfile{
			FarmerName:           fp.FarmerName,
			FarmName:             fp.FarmName,
			TotalFarmSize:        fp.TotalFarmSize,
			FarmingExperience:    fp.FarmingExperience,
			FarmType:             fp.FarmType,
			PrimaryFarmingSystem: fp.PrimaryFarmingSystem,
			Certifications:       nonNil(fp.Certifications),
			Programs:             nonNil(fp.Programs),
		}
	}

	req.Foods = make([]types.FoodItem, len(draft.Crops))
	for i, crop := range draft.Crops {
		item := types.FoodItem{
			Name:              crop.Name,
			QuantityKg:        crop.QuantityKg,
			Category:          crop.Category,
			CropType:          optString(crop.CropType),
			ProductionSystem:  optString(crop.ProductionSystem),
			SeasonalFactor:    optString(crop.SeasonalFactor),
			Variety:           optString(crop.Variety),
			AreaAllocated:     crop.AreaAllocated,
			CroppingPattern:   optString(crop.CroppingPattern),
			PostHarvestLosses: crop.PostHarvestLosses,
			OriginCountry:     optString(req.Country),
		}
		if len(crop.IntercroppingPartners) > 0 {
			partners := crop.IntercroppingPartners
			item.IntercroppingPartners = &partners
		}
		req.Foods[i] = item
	}

	mp := types.ManagementPractices{}
	if soil := draft.Soil; soil != nil {
		mp.SoilManagement = types.SoilManagement{
			SoilType:              optString(soil.SoilType),
			TillageSystem:         soil.TillageSystem,
			UsesCompost:           soil.UsesCompost,
			CompostSource:         optString(soil.CompostSource),
			ConservationPractices: nonNil(soil.ConservationPractices),
			SoilTestingFrequency:  optString(soil.SoilTestingFrequency),
		}
		if soil.SoilPH != nil {
			mp.SoilManagement.SoilPH = *soil.SoilPH
		}
	}
	if fert := draft.Fertilization; fert != nil {
		mp.Fertilization = types.FertilizationPractices{
			UsesFertilizers:     fert.UsesFertilizers,
			SoilTestBased:       fert.SoilTestBased,
			FollowsNutrientPlan: fert.FollowsNutrientPlan,
		}
		mp.Fertilization.Applications = make([]types.FertilizerApplication, len(fert.Applications))
		for i, app := range fert.Applications {
			out := types.FertilizerApplication{
				FertilizerType:        app.FertilizerType,
				NPKRatio:              optString(app.NPKRatio),
				ApplicationRate:       app.ApplicationRate,
				ApplicationsPerSeason: app.ApplicationsPerSeason,
				ApplicationMethod:     app.ApplicationMethod,
			}
			if app.Cost != nil {
				out.Cost = *app.Cost
			} else {
				audit.record(fmt.Sprintf("fertilizer_applications[%d].cost", i), 0)
			}
			mp.Fertilization.Applications[i] = out
		}
	}
	if water := draft.Water; water != nil {
		mp.WaterManagement = types.WaterManagement{
			WaterSources:          nonNil(water.WaterSources),
			IrrigationSystem:      optString(water.IrrigationSystem),
			ConservationPractices: nonNil(water.ConservationPractices),
		}
	}
	if pest := draft.Pest; pest != nil {
		mp.PestManagement = types.PestManagement{
			ManagementApproach:  pest.ManagementApproach,
			UsesIPM:             pest.UsesIPM,
			MonitoringFrequency: pest.MonitoringFrequency,
		}
		mp.PestManagement.Pesticides = make([]types.PesticideApplication, len(pest.Pesticides))
		for i, p := range pest.Pesticides {
			out := types.PesticideApplication{
				PesticideType:         p.PesticideType,
				ActiveIngredient:      p.ActiveIngredient,
				ApplicationRate:       p.ApplicationRate,
				ApplicationsPerSeason: p.ApplicationsPerSeason,
				TargetPests:           nonNil(p.TargetPests),
			}
			if p.Cost != nil {
				out.Cost = *p.Cost
			} else {
				audit.record(fmt.Sprintf("pesticides[%d].cost", i), 0)
			}
			mp.PestManagement.Pesticides[i] = out
		}
	}
	req.ManagementPractices = &mp

	if ee := draft.EquipmentEnergy; ee != nil {
		out := types.EquipmentEnergy{
			Equipment:     make([]types.FarmEquipment, len(ee.Equipment)),
			EnergySources: make([]types.EnergyUsage, len(ee.EnergySources)),
			FuelUse:       make([]types.FuelUsage, len(ee.FuelUse)),
		}
		for i, eq := range ee.Equipment {
			out.Equipment[i] = types.FarmEquipment{
				EquipmentType:        eq.EquipmentType,
				PowerSource:          eq.PowerSource,
				Age:                  eq.Age,
				HoursPerYear:         eq.HoursPerYear,
				FuelEfficiency:       eq.FuelEfficiency,
				MaintenanceFrequency: eq.MaintenanceFrequency,
			}
		}
		for i, es := range ee.EnergySources {
			usage := types.EnergyUsage{
				EnergyType:         es.EnergyType,
				MonthlyConsumption: es.MonthlyConsumption,
				PrimaryUse:         es.PrimaryUse,
			}
			if es.Cost != nil {
				usage.Cost = *es.Cost
			} else {
				audit.record(fmt.Sprintf("energy_sources[%d].cost", i), 0)
			}
			out.EnergySources[i] = usage
		}
		for i, fu := range ee.FuelUse {
			usage := types.FuelUsage{
				FuelType:           fu.FuelType,
				MonthlyConsumption: fu.MonthlyConsumption,
				PrimaryUse:         fu.PrimaryUse,
			}
			if fu.Cost != nil {
				usage.Cost = *fu.Cost
			} else {
				audit.record(fmt.Sprintf("fuel_consumption[%d].cost", i), 0)
			}
			out.FuelUse[i] = usage
		}
		req.EquipmentEnergy = &out
	}

	if p := draft.Parameters; p != nil {
		req.Methodology = &types.LCAMethodology{
			SystemBoundary:         p.SystemBoundary,
			AllocationMethod:       p.AllocationMethod,
			CharacterizationMethod: p.CharacterizationMethod,
		}
	}

	return req
}

// ApplyDefaults fills every engine-required field still missing from the
// request with its documented default and returns the audit entries.
// Applying it to an already fully defaulted request changes nothing and
// returns an empty audit.
func ApplyDefaults(req *types.AssessmentRequest) []AppliedDefault {
	var audit auditor

	if req.Country == "" {
		req.Country = string(types.CountryGlobal)
		audit.record("country", types.CountryGlobal)
	}

	for i := range req.Foods {
		food := &req.Foods[i]
		if food.ID == "" {
			food.ID = fmt.Sprintf("crop-%d", i+1)
			audit.record(fmt.Sprintf("foods[%d].id", i), food.ID)
		}
	}

	if fp := req.FarmProfile; fp != nil {
		fp.Certifications = nonNil(fp.Certifications)
		fp.Programs = nonNil(fp.Programs)
	}

	if mp := req.ManagementPractices; mp != nil {
		soil := &mp.SoilManagement
		if soil.SoilPH == 0 {
			soil.SoilPH = DefaultSoilPH
			audit.record("soil_management.soil_ph", DefaultSoilPH)
		}
		if soil.TillageSystem == "" {
			soil.TillageSystem = string(DefaultTillage)
			audit.record("soil_management.tillage_system", DefaultTillage)
		}
		soil.ConservationPractices = nonNil(soil.ConservationPractices)

		fert := &mp.Fertilization
		fert.Applications = nonNilApps(fert.Applications)
		for i := range fert.Applications {
			app := &fert.Applications[i]
			if app.ApplicationMethod == "" {
				app.ApplicationMethod = string(DefaultApplicationMethod)
				audit.record(fmt.Sprintf("fertilizer_applications[%d].application_method", i), DefaultApplicationMethod)
			}
		}

		water := &mp.WaterManagement
		water.WaterSources = nonNil(water.WaterSources)
		water.ConservationPractices = nonNil(water.ConservationPractices)

		pest := &mp.PestManagement
		if pest.ManagementApproach == "" {
			pest.ManagementApproach = string(DefaultPestApproach)
			audit.record("pest_management.management_approach", DefaultPestApproach)
		}
		if pest.MonitoringFrequency == "" {
			pest.MonitoringFrequency = DefaultMonitoringFrequency
			audit.record("pest_management.pest_monitoring_frequency", DefaultMonitoringFrequency)
		}
		if pest.Pesticides == nil {
			pest.Pesticides = []types.PesticideApplication{}
		}
		for i := range pest.Pesticides {
			pest.Pesticides[i].TargetPests = nonNil(pest.Pesticides[i].TargetPests)
		}
	}

	if ee := req.EquipmentEnergy; ee != nil {
		for i := range ee.Equipment {
			eq := &ee.Equipment[i]
			if eq.MaintenanceFrequency == "" {
				eq.MaintenanceFrequency = string(DefaultMaintenanceFrequency)
				audit.record(fmt.Sprintf("equipment[%d].maintenance_frequency", i), DefaultMaintenanceFrequency)
			}
		}
		for i := range ee.EnergySources {
			es := &ee.EnergySources[i]
			if es.PrimaryUse == "" {
				es.PrimaryUse = DefaultPrimaryUse
				audit.record(fmt.Sprintf("energy_sources[%d].primary_use", i), DefaultPrimaryUse)
			}
		}
		for i := range ee.FuelUse {
			fu := &ee.FuelUse[i]
			if fu.PrimaryUse == "" {
				fu.PrimaryUse = DefaultPrimaryUse
				audit.record(fmt.Sprintf("fuel_consumption[%d].primary_use", i), DefaultPrimaryUse)
			}
		}
	}

	if req.Methodology == nil {
		req.Methodology = &types.LCAMethodology{}
		audit.record("methodology", "default methodology block")
	}
	m := req.Methodology
	if m.FunctionalUnit == "" {
		m.FunctionalUnit = DefaultFunctionalUnit
		audit.record("methodology.functional_unit", DefaultFunctionalUnit)
	}
	if m.SystemBoundary == "" {
		m.SystemBoundary = string(DefaultSystemBoundary)
		audit.record("methodology.system_boundary", DefaultSystemBoundary)
	}
	if m.AllocationMethod == "" {
		m.AllocationMethod = string(DefaultAllocationMethod)
		audit.record("methodology.allocation_method", DefaultAllocationMethod)
	}
	if m.CharacterizationMethod == "" {
		m.CharacterizationMethod = string(DefaultCharacterization)
		audit.record("methodology.characterization_method", DefaultCharacterization)
	}

	return audit.applied
}

// optString returns nil for an empty string so optional fields stay absent
// on the wire.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nonNil normalizes a nil string slice to an empty one so it marshals as
// [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilApps(s []types.FertilizerApplication) []types.FertilizerApplication {
	if s == nil {
		return []types.FertilizerApplication{}
	}
	return s
}
