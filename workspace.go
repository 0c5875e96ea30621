package geodata

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/qubit-modeling/geodata/geo3d"
	"github.com/qubit-modeling/geodata/geoerr"
)

// Geometry is a dimensioned geometry document held by a Workspace.
// It is implemented by *geo1d.Geometry, *geo2d.Geometry, and
// *geo3d.Geometry.
type Geometry interface {
	// GeometryLabel returns the label identifying the document.
	GeometryLabel() string

	// Dimension returns the dimensionality of the document (1, 2, or 3).
	Dimension() int
}

// Record wraps a geometry document with its workspace bookkeeping.
type Record struct {
	// ID is the unique identifier assigned when the document was added.
	ID string

	// AddedAt is the timestamp when the document was added.
	AddedAt time.Time

	// Geometry is the document itself.
	Geometry Geometry
}

// Workspace owns the geometry documents of a single pipeline run, keyed by
// label. The workspace layer is safe for concurrent readers and writers;
// the geometry documents themselves remain single-owner and must not be
// mutated from multiple goroutines.
type Workspace struct {
	logger    *slog.Logger
	tracer    trace.Tracer
	name      string
	units     string
	outputDir string

	mu   sync.RWMutex
	docs map[string]*Record
}

// NewWorkspace creates a workspace with the provided options.
//
// Example:
//
//	ws, err := geodata.NewWorkspace(
//	    geodata.WithConfig("workspace.yaml"),
//	    geodata.WithOutputDir("/tmp/run42"),
//	)
func NewWorkspace(opts ...Option) (*Workspace, error) {
	cfg := &workspaceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var fileCfg *Config
	if cfg.configPath != "" {
		var err error
		fileCfg, err = LoadConfig(cfg.configPath)
		if err != nil {
			return nil, err
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: fileCfg.GetLogLevel(),
		}))
	}

	outputDir := cfg.outputDir
	if outputDir == "" && fileCfg != nil {
		outputDir = fileCfg.OutputDir
	}

	w := &Workspace{
		logger:    logger,
		tracer:    cfg.tracer,
		units:     fileCfg.GetUnits(),
		outputDir: outputDir,
		docs:      make(map[string]*Record),
	}
	if fileCfg != nil {
		w.name = fileCfg.Name
	}
	return w, nil
}

// Name returns the configured workspace name, or "".
func (w *Workspace) Name() string { return w.name }

// Units returns the length unit coordinates are expressed in.
func (w *Workspace) Units() string { return w.units }

// OutputDir returns the directory relative export paths resolve against.
func (w *Workspace) OutputDir() string { return w.outputDir }

// Add registers a geometry document under its label.
// Returns a duplicate-name error if a document with the same label is
// already registered.
func (w *Workspace) Add(g Geometry) error {
	const op = "Workspace.Add"

	if g == nil {
		return fmt.Errorf("geodata: %s: geometry is nil", op)
	}
	label := g.GeometryLabel()
	if label == "" {
		return fmt.Errorf("geodata: %s: geometry has no label", op)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.docs[label]; exists {
		return geoerr.NewDuplicateName(op, label)
	}

	w.docs[label] = &Record{
		ID:       uuid.New().String(),
		AddedAt:  time.Now(),
		Geometry: g,
	}

	w.logger.Info("geometry added",
		slog.String("label", label),
		slog.Int("dimension", g.Dimension()),
	)
	return nil
}

// Get retrieves a geometry document by label.
func (w *Workspace) Get(label string) (Geometry, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	rec, ok := w.docs[label]
	if !ok {
		return nil, geoerr.NewNotFound("Workspace.Get", label)
	}
	return rec.Geometry, nil
}

// Remove deletes the document registered under label.
// Returns a not-found error if the label is not registered and
// ignoreIfAbsent is false; with ignoreIfAbsent the removal is a no-op.
func (w *Workspace) Remove(label string, ignoreIfAbsent bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.docs[label]; !exists {
		if ignoreIfAbsent {
			return nil
		}
		return geoerr.NewNotFound("Workspace.Remove", label)
	}

	delete(w.docs, label)
	w.logger.Info("geometry removed", slog.String("label", label))
	return nil
}

// Records returns the registered documents ordered by insertion time.
func (w *Workspace) Records() []*Record {
	w.mu.RLock()
	defer w.mu.RUnlock()

	records := make([]*Record, 0, len(w.docs))
	for _, rec := range w.docs {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].AddedAt.Equal(records[j].AddedAt) {
			return records[i].Geometry.GeometryLabel() < records[j].Geometry.GeometryLabel()
		}
		return records[i].AddedAt.Before(records[j].AddedAt)
	})
	return records
}

// Len returns the number of registered documents.
func (w *Workspace) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.docs)
}

// ExportFCStd writes the serialized FreeCAD document of the 3D geometry
// registered under label and returns the resolved file path.
//
// An empty path defaults to "<label>.fcstd". Relative paths resolve against
// the configured output directory.
func (w *Workspace) ExportFCStd(ctx context.Context, label, path string) (string, error) {
	const op = "Workspace.ExportFCStd"

	var span trace.Span
	if w.tracer != nil {
		ctx, span = w.tracer.Start(ctx, "geodata.export_fcstd",
			trace.WithAttributes(attribute.String("geometry.label", label)),
		)
		defer span.End()
	}

	g, err := w.Get(label)
	if err != nil {
		return "", err
	}

	g3, ok := g.(*geo3d.Geometry)
	if !ok {
		return "", geoerr.NewDocument(op,
			fmt.Errorf("geometry %q is %dD, export requires a 3D geometry", label, g.Dimension()))
	}

	if path == "" {
		path = g3.Label + ".fcstd"
	}
	if !filepath.IsAbs(path) && w.outputDir != "" {
		path = filepath.Join(w.outputDir, path)
	}

	out, err := g3.WriteFCStd(path)
	if err != nil {
		if span != nil {
			span.RecordError(err)
		}
		w.logger.Error("fcstd export failed",
			slog.String("label", label),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	w.logger.Info("fcstd exported",
		slog.String("label", label),
		slog.String("path", out),
	)
	return out, nil
}
