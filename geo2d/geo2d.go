// Package geo2d holds a 2D geometry specification.
//
// A Geometry keeps two registries: parts (planar domains) and edges
// (boundary curves used for boundary and surface conditions). The two
// registries have disjoint namespaces but share a single build order that
// records insertion sequence for downstream construction replay.
//
// The concrete polygon and line types are supplied by the caller; this
// package only requires a validity predicate on polygons and stores lines
// opaquely.
package geo2d

import (
	"github.com/qubit-modeling/geodata/geoerr"
)

// Polygon is a planar domain. The only operation this package relies on is
// the validity predicate; intersection and area semantics stay with the
// geometry library that produced the value.
type Polygon interface {
	// IsValid reports whether the polygon is well formed (closed,
	// non-self-intersecting).
	IsValid() bool
}

// LineString is an opaque boundary curve. Nothing beyond storage is
// required of it.
type LineString any

// Geometry is a registry of named 2D parts and edges with a shared build
// order.
type Geometry struct {
	// Label identifies this geometry within the pipeline.
	Label string

	// Parts maps part name to its polygon.
	Parts map[string]Polygon

	// Edges maps edge name to its line. Edge names are a separate
	// namespace from part names.
	Edges map[string]LineString

	// BuildOrder records the insertion sequence of part and edge names,
	// consumed by the construction step.
	BuildOrder []string
}

// New creates an empty 2D geometry with the given label.
func New(label string) *Geometry {
	return &Geometry{
		Label: label,
		Parts: make(map[string]Polygon),
		Edges: make(map[string]LineString),
	}
}

// GeometryLabel returns the label of this geometry.
func (g *Geometry) GeometryLabel() string { return g.Label }

// Dimension returns 2.
func (g *Geometry) Dimension() int { return 2 }

// AddPart registers a polygon part and appends its name to the build order.
//
// The polygon must pass its validity check; an invalid polygon is rejected
// and the registry is left unchanged. Returns a duplicate-name error if the
// name is already registered and overwrite is false.
//
// An overwrite replaces the stored polygon but still appends the name to
// the build order a second time; the recorded sequence is replayed as-is by
// the construction step.
func (g *Geometry) AddPart(name string, part Polygon, overwrite bool) error {
	if part == nil || !part.IsValid() {
		return geoerr.NewInvalidGeometry("Geo2D.AddPart", name)
	}
	if _, exists := g.Parts[name]; exists && !overwrite {
		return geoerr.NewDuplicateName("Geo2D.AddPart", name)
	}
	g.Parts[name] = part
	g.BuildOrder = append(g.BuildOrder, name)
	return nil
}

// RemovePart deletes the named part and removes the first occurrence of its
// name from the build order.
//
// Returns a not-found error if the name is not registered and
// ignoreIfAbsent is false; with ignoreIfAbsent the removal is a no-op.
func (g *Geometry) RemovePart(name string, ignoreIfAbsent bool) error {
	if _, exists := g.Parts[name]; !exists {
		if ignoreIfAbsent {
			return nil
		}
		return geoerr.NewNotFound("Geo2D.RemovePart", name)
	}
	delete(g.Parts, name)
	g.BuildOrder = removeFirst(g.BuildOrder, name)
	return nil
}

// AddEdge registers a line edge and appends its name to the build order.
// Edges carry no validity check.
//
// Returns a duplicate-name error if the name is already registered and
// overwrite is false. Overwrites append to the build order the same way
// AddPart does.
func (g *Geometry) AddEdge(name string, edge LineString, overwrite bool) error {
	if _, exists := g.Edges[name]; exists && !overwrite {
		return geoerr.NewDuplicateName("Geo2D.AddEdge", name)
	}
	g.Edges[name] = edge
	g.BuildOrder = append(g.BuildOrder, name)
	return nil
}

// RemoveEdge deletes the named edge and removes the first occurrence of its
// name from the build order.
//
// Returns a not-found error if the name is not registered and
// ignoreIfAbsent is false; with ignoreIfAbsent the removal is a no-op.
func (g *Geometry) RemoveEdge(name string, ignoreIfAbsent bool) error {
	if _, exists := g.Edges[name]; !exists {
		if ignoreIfAbsent {
			return nil
		}
		return geoerr.NewNotFound("Geo2D.RemoveEdge", name)
	}
	delete(g.Edges, name)
	g.BuildOrder = removeFirst(g.BuildOrder, name)
	return nil
}

// Part returns the polygon stored under name.
func (g *Geometry) Part(name string) (Polygon, bool) {
	p, ok := g.Parts[name]
	return p, ok
}

// Edge returns the line stored under name.
func (g *Geometry) Edge(name string) (LineString, bool) {
	e, ok := g.Edges[name]
	return e, ok
}

// PartCount returns the number of registered parts.
func (g *Geometry) PartCount() int { return len(g.Parts) }

// EdgeCount returns the number of registered edges.
func (g *Geometry) EdgeCount() int { return len(g.Edges) }

// removeFirst removes the first occurrence of name from names, preserving
// the order of the remaining entries.
func removeFirst(names []string, name string) []string {
	for i, n := range names {
		if n == name {
			return append(names[:i], names[i+1:]...)
		}
	}
	return names
}
