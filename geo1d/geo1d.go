// Package geo1d holds a 1D geometry specification: named intervals along the
// device axis, used as an intermediate container in the modeling pipeline.
package geo1d

import (
	"sort"

	"github.com/qubit-modeling/geodata/geoerr"
)

// Interval is a closed 1D extent with Start <= End.
type Interval struct {
	Start float64
	End   float64
}

// NewInterval returns the interval spanning a and b, normalized so that
// Start <= End regardless of argument order.
func NewInterval(a, b float64) Interval {
	if b < a {
		a, b = b, a
	}
	return Interval{Start: a, End: b}
}

// Length returns the extent of the interval.
func (iv Interval) Length() float64 {
	return iv.End - iv.Start
}

// Geometry is a registry of named 1D parts.
//
// A Geometry instance is owned by a single pipeline stage; all operations
// are synchronous in-memory mutations.
type Geometry struct {
	// Label identifies this geometry within the pipeline.
	Label string

	// Parts maps part name to its interval.
	Parts map[string]Interval
}

// New creates an empty 1D geometry with the given label.
func New(label string) *Geometry {
	return &Geometry{
		Label: label,
		Parts: make(map[string]Interval),
	}
}

// GeometryLabel returns the label of this geometry.
func (g *Geometry) GeometryLabel() string { return g.Label }

// Dimension returns 1.
func (g *Geometry) Dimension() int { return 1 }

// AddPart registers a part spanning start and end. The endpoints are
// normalized by ascending sort before storage.
//
// Returns a duplicate-name error if the name is already registered and
// overwrite is false. On overwrite the stored interval is replaced.
func (g *Geometry) AddPart(name string, start, end float64, overwrite bool) error {
	if _, exists := g.Parts[name]; exists && !overwrite {
		return geoerr.NewDuplicateName("Geo1D.AddPart", name)
	}
	g.Parts[name] = NewInterval(start, end)
	return nil
}

// RemovePart deletes the named part.
//
// Returns a not-found error if the name is not registered and
// ignoreIfAbsent is false; with ignoreIfAbsent the removal is a no-op.
func (g *Geometry) RemovePart(name string, ignoreIfAbsent bool) error {
	if _, exists := g.Parts[name]; !exists {
		if ignoreIfAbsent {
			return nil
		}
		return geoerr.NewNotFound("Geo1D.RemovePart", name)
	}
	delete(g.Parts, name)
	return nil
}

// Part returns the interval stored under name.
func (g *Geometry) Part(name string) (Interval, bool) {
	iv, ok := g.Parts[name]
	return iv, ok
}

// Len returns the number of registered parts.
func (g *Geometry) Len() int { return len(g.Parts) }

// PartNames returns the registered part names in sorted order.
func (g *Geometry) PartNames() []string {
	names := make([]string, 0, len(g.Parts))
	for name := range g.Parts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
