// Package polarization provides unit 3-vectors describing the polarization of
// the electric fields that drive dipole transitions.
//
// Named labels cover the lab-frame axes "x", "y" and "z"; arbitrary
// directions are built from spherical angles with FromSpherical.
package polarization

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownLabel indicates a polarization label outside {"x", "y", "z"}.
var ErrUnknownLabel = errors.New("polarization: unknown label")

// MagicAngle is arccos(1/sqrt(3)) in radians, the pump-probe angle at which
// orientational averaging cancels anisotropic contributions.
const MagicAngle = 0.9553166181245093

// Vector returns the unit vector for a named lab-frame axis.
// Complexity: O(1).
func Vector(label string) ([3]float64, error) {
	switch label {
	case "x":
		return [3]float64{1, 0, 0}, nil
	case "y":
		return [3]float64{0, 1, 0}, nil
	case "z":
		return [3]float64{0, 0, 1}, nil
	default:
		return [3]float64{}, fmt.Errorf("label %q: %w", label, ErrUnknownLabel)
	}
}

// FromSpherical returns the unit vector with the given polar angle from the
// z axis and azimuth from the x axis, both in radians.
// Complexity: O(1).
func FromSpherical(polar, azimuth float64) [3]float64 {
	s := math.Sin(polar)

	return [3]float64{s * math.Cos(azimuth), s * math.Sin(azimuth), math.Cos(polar)}
}
