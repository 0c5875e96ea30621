// Package geo3d holds a 3D geometry specification: a registry of named,
// externally constructed 3D parts, the construction build order, and the
// serialized FreeCAD document that the construction step attaches for
// export.
package geo3d

import (
	"os"

	"github.com/qubit-modeling/geodata/freecad"
	"github.com/qubit-modeling/geodata/geoerr"
)

// Part is an opaque 3D solid constructed outside this module. Nothing
// beyond storage is required of it.
type Part any

// Geometry is a registry of named 3D parts.
type Geometry struct {
	// Label identifies this geometry within the pipeline and names the
	// default export file.
	Label string

	// Parts maps part name to the constructed part.
	Parts map[string]Part

	// BuildOrder records the construction sequence of part names.
	//
	// TODO: populate BuildOrder from the FreeCAD construction step; the
	// registry operations below do not maintain it.
	BuildOrder []string

	doc *freecad.Document
}

// New creates an empty 3D geometry with the given label.
func New(label string) *Geometry {
	return &Geometry{
		Label: label,
		Parts: make(map[string]Part),
	}
}

// GeometryLabel returns the label of this geometry.
func (g *Geometry) GeometryLabel() string { return g.Label }

// Dimension returns 3.
func (g *Geometry) Dimension() int { return 3 }

// AddPart registers a constructed part. BuildOrder is not updated.
//
// Returns a duplicate-name error if the name is already registered and
// overwrite is false; on overwrite the stored part is replaced.
func (g *Geometry) AddPart(name string, part Part, overwrite bool) error {
	if _, exists := g.Parts[name]; exists && !overwrite {
		return geoerr.NewDuplicateName("Geo3D.AddPart", name)
	}
	g.Parts[name] = part
	return nil
}

// RemovePart deletes the named part. BuildOrder is not updated.
//
// Returns a not-found error if the name is not registered and
// ignoreIfAbsent is false; with ignoreIfAbsent the removal is a no-op.
func (g *Geometry) RemovePart(name string, ignoreIfAbsent bool) error {
	if _, exists := g.Parts[name]; !exists {
		if ignoreIfAbsent {
			return nil
		}
		return geoerr.NewNotFound("Geo3D.RemovePart", name)
	}
	delete(g.Parts, name)
	return nil
}

// Part returns the part stored under name.
func (g *Geometry) Part(name string) (Part, bool) {
	p, ok := g.Parts[name]
	return p, ok
}

// Len returns the number of registered parts.
func (g *Geometry) Len() int { return len(g.Parts) }

// AttachDocument stores the serialized FreeCAD document produced by the
// construction step. A later attach replaces an earlier one.
func (g *Geometry) AttachDocument(doc *freecad.Document) {
	g.doc = doc
}

// Document returns the attached serialized document, or nil.
func (g *Geometry) Document() *freecad.Document {
	return g.doc
}

// WriteFCStd writes the attached document to path and returns the resolved
// file path. An empty path defaults to "<Label>.fcstd" in the working
// directory.
//
// The file content is exactly the decoded document bytes; no header or
// metadata is added. Fails if no document is attached, if the document
// payload cannot be decoded, or on I/O failure.
func (g *Geometry) WriteFCStd(path string) (string, error) {
	const op = "Geo3D.WriteFCStd"

	if g.doc == nil {
		return "", geoerr.NewNoDocument(op)
	}
	if path == "" {
		path = g.Label + ".fcstd"
	}

	raw, err := g.doc.Decode()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", geoerr.NewIO(op, err)
	}
	return path, nil
}
