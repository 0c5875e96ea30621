package geodata

import (
	"github.com/qubit-modeling/geodata/geo1d"
	"github.com/qubit-modeling/geodata/geo2d"
	"github.com/qubit-modeling/geodata/geo3d"
)

// Compile-time checks that every registry satisfies the Geometry interface.
var (
	_ Geometry = (*geo1d.Geometry)(nil)
	_ Geometry = (*geo2d.Geometry)(nil)
	_ Geometry = (*geo3d.Geometry)(nil)
)

// NewGeo1D creates an empty 1D geometry with the given label.
func NewGeo1D(label string) *geo1d.Geometry {
	return geo1d.New(label)
}

// NewGeo2D creates an empty 2D geometry with the given label.
func NewGeo2D(label string) *geo2d.Geometry {
	return geo2d.New(label)
}

// NewGeo3D creates an empty 3D geometry with the given label.
func NewGeo3D(label string) *geo3d.Geometry {
	return geo3d.New(label)
}
