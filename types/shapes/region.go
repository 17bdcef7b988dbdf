package shapes

import "fmt"

// ValidRegion is the sub-rectangle of a tensor that holds meaningful
// data: an anchor offset plus a shape, both per-axis.
type ValidRegion struct {
	Anchor Coordinates
	Shape  TensorShape
}

// MakeValidRegion returns a ValidRegion with the given anchor and shape.
func MakeValidRegion(anchor Coordinates, shape TensorShape) ValidRegion {
	return ValidRegion{Anchor: anchor, Shape: shape}
}

// End returns the exclusive upper bound of the region on the given axis,
// Anchor+Shape.
func (vr ValidRegion) End(axis int) int {
	return vr.Anchor.At(axis) + vr.Shape.At(axis)
}

// Contains reports whether other fits inside vr on every axis.
func (vr ValidRegion) Contains(other ValidRegion) bool {
	for axis := 0; axis < MaxAxes; axis++ {
		if other.Anchor.At(axis) < vr.Anchor.At(axis) || other.End(axis) > vr.End(axis) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (vr ValidRegion) String() string {
	return fmt.Sprintf("%s+%s", vr.Anchor, vr.Shape)
}
