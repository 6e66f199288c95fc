// Package transform maps a fully validated draft into the canonical
// assessment request. Defaulting is deterministic: every substitution comes
// from the versioned table below and is recorded in the transform audit so
// defaulted values stay distinguishable from user input.
package transform

import (
	"fmt"

	"github.com/Amankrah/green-means-go-sub001/internal/types"
)

// DefaultsVersion identifies the default table in force. Bump when any
// entry changes so archived requests remain auditable.
const DefaultsVersion = "2025-03"

// Documented defaults. Each constant backs exactly one substitution rule;
// the audit entry for a substitution names the field it filled.
const (
	// DefaultSoilPH is a neutral-leaning pH typical of West African loam
	// cropland, used when no soil test value was supplied.
	DefaultSoilPH = 6.5

	// DefaultTillage assumes conventional tillage, the regionally dominant
	// practice and the conservative (highest-impact) choice.
	DefaultTillage = types.TillageConventional

	// DefaultApplicationMethod assumes broadcast application, the most
	// common smallholder practice.
	DefaultApplicationMethod = types.MethodBroadcasting

	// DefaultPestApproach mirrors the engine's own fallback approach.
	DefaultPestApproach = types.PestIntegratedIPM

	// DefaultMonitoringFrequency is applied to pest monitoring when the
	// farmer did not report one.
	DefaultMonitoringFrequency = "Monthly"

	// DefaultMaintenanceFrequency is applied to equipment entries lacking
	// a service schedule.
	DefaultMaintenanceFrequency = types.MaintenanceMonthly

	// DefaultPrimaryUse labels energy and fuel entries with no stated use.
	DefaultPrimaryUse = "General farm operations"

	// DefaultFunctionalUnit is the engine's reference flow.
	DefaultFunctionalUnit = "1 kg of product at farm gate"

	// DefaultSystemBoundary is cradle-to-gate, matching the engine's
	// production assessment scope.
	DefaultSystemBoundary = types.BoundaryCradleToGate

	// DefaultAllocationMethod allocates by economic value.
	DefaultAllocationMethod = types.AllocationEconomic

	// DefaultCharacterization is ReCiPe 2016, the engine's midpoint model.
	DefaultCharacterization = types.CharacterizationReCiPe2016
)

// AppliedDefault records one substitution made during transformation.
type AppliedDefault struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// auditor accumulates applied defaults during a transform pass.
type auditor struct {
	applied []AppliedDefault
}

func (a *auditor) record(field string, value any) {
	a.applied = append(a.applied, AppliedDefault{
		Field: field,
		Value: fmt.Sprintf("%v", value),
	})
}
