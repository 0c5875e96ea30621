// Package geodata provides the in-memory geometry containers used between
// stages of the device-modeling pipeline.
//
// A device model is specified at up to three dimensionalities, each with its
// own registry package:
//
//   - geo1d: named intervals along the device axis
//   - geo2d: named polygon parts and line edges with a shared build order
//   - geo3d: named constructed 3D parts plus the serialized FreeCAD
//     document used for export
//
// All registries share the same contract: adds are guarded against silent
// overwrites, removals are guarded against absent names, and both guards can
// be relaxed explicitly by the caller. Violations surface as structured
// errors from the geoerr package.
//
// # Workspace
//
// The root package adds a Workspace that owns the geometry documents of a
// single pipeline run, keyed by label:
//
//	ws, err := geodata.NewWorkspace(
//	    geodata.WithConfig("workspace.yaml"),
//	    geodata.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	g := geodata.NewGeo2D("gate_layer")
//	if err := g.AddPart("plunger", poly, false); err != nil {
//	    return err
//	}
//	if err := ws.Add(g); err != nil {
//	    return err
//	}
//
// # Export
//
// 3D geometries carry an opaque serialized FreeCAD document attached by the
// construction step. ExportFCStd resolves the output path against the
// configured output directory and writes the decoded document bytes
// verbatim:
//
//	path, err := ws.ExportFCStd(ctx, "chip0", "")
//
// The registries themselves perform no geometry computation; polygons,
// lines, and solids are opaque values owned by external geometry and CAD
// libraries.
package geodata
