package engine

import (
	"kitchenlog.xyz/kitchen-compliance-service/pkg/models"
)

type ComplianceStatus string

const (
	StatusInRange      ComplianceStatus = "in_range"
	StatusBelowMin     ComplianceStatus = "below_min"
	StatusAboveMax     ComplianceStatus = "above_max"
	StatusUnconfigured ComplianceStatus = "unconfigured"
)

// Classify compares a reading temperature against the equipment's configured
// range. Absent bounds are a valid state, not an error: either bound missing
// yields StatusUnconfigured. Equipment whose bounds fail validation
// (min > max) is likewise treated as unconfigured rather than rejected.
// Boundary values equal to min or max are in range.
func Classify(tempC float64, eq *models.Equipment) ComplianceStatus {
	if eq == nil || !eq.HasThresholds() || !eq.ConfigurationValid() {
		return StatusUnconfigured
	}
	switch {
	case tempC < *eq.MinTempC:
		return StatusBelowMin
	case tempC > *eq.MaxTempC:
		return StatusAboveMax
	default:
		return StatusInRange
	}
}
