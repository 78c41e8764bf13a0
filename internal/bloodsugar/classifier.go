// Package bloodsugar classifies glucose values against fixed thresholds.
package bloodsugar

import (
	"math"

	"github.com/vladimiradmaev/glucose-tracker/internal/domain"
	apperrors "github.com/vladimiradmaev/glucose-tracker/internal/errors"
)

// Glucose thresholds in mg/dL. Fixed for the lifetime of the process;
// the settings screen renders threshold fields but they are display-only.
const (
	ThresholdLow  = 70
	ThresholdHigh = 180
)

// Classify maps a glucose value to its status. Callers must validate the
// value first; Classify assumes a finite input.
func Classify(value float64) domain.Status {
	if value < ThresholdLow {
		return domain.StatusLow
	}
	if value > ThresholdHigh {
		return domain.StatusHigh
	}
	return domain.StatusNormal
}

// ValidateValue rejects values that cannot represent a glucose measurement.
// NaN and infinities are rejected before classification, as are values at
// or below zero.
func ValidateValue(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return apperrors.NewValidationError("blood sugar value must be a finite number")
	}
	if value <= 0 {
		return apperrors.NewValidationError("blood sugar value must be greater than zero")
	}
	return nil
}

// MgdlToMmol converts mg/dL to mmol/L, rounded to one decimal place.
func MgdlToMmol(mgdl float64) float64 {
	return math.Round(mgdl/18.0182*10) / 10
}
