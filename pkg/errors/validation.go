package errors

import (
	"math"
)

// ValidateExtent validates a width or height in cells.
// Extents are counts of character cells and can never be negative.
func ValidateExtent(name string, v int) error {
	if v < 0 {
		return New(ErrCodeInvalidGeometry, "%s must be >= 0, got %d", name, v)
	}
	return nil
}

// ValidateSpacing validates the main-axis spacing of a flex container.
func ValidateSpacing(v int) error {
	if v < 0 {
		return New(ErrCodeInvalidGeometry, "spacing must be >= 0, got %d", v)
	}
	return nil
}

// ValidateFlexFactor validates a flex factor. Factors are positive integers.
func ValidateFlexFactor(v int) error {
	if v <= 0 {
		return New(ErrCodeInvalidGeometry, "flex factor must be > 0, got %d", v)
	}
	return nil
}

// ValidateFactor validates a size factor (width or height factor of an
// align box). Factors must be finite and non-negative.
func ValidateFactor(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return New(ErrCodeInvalidGeometry, "%s must be a finite value >= 0, got %v", name, v)
	}
	return nil
}

// ValidateAlignmentComponent validates one component of a fractional
// alignment point. Components must lie within [-1, 1].
func ValidateAlignmentComponent(name string, v float64) error {
	if math.IsNaN(v) || v < -1 || v > 1 {
		return New(ErrCodeAlignmentRange, "alignment %s must be within [-1, 1], got %v", name, v)
	}
	return nil
}

// ValidateMaxLines validates an optional line limit. Zero means unset.
func ValidateMaxLines(v int) error {
	if v < 0 {
		return New(ErrCodeInvalidInput, "max lines must be > 0 when set, got %d", v)
	}
	return nil
}
