package geodata

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option configures a Workspace.
type Option func(*workspaceConfig)

// workspaceConfig holds configuration collected from options before the
// Workspace is constructed.
type workspaceConfig struct {
	configPath string
	logger     *slog.Logger
	tracer     trace.Tracer
	outputDir  string
}

// WithConfig sets the workspace configuration file path. The file is loaded
// and validated by NewWorkspace.
func WithConfig(path string) Option {
	return func(c *workspaceConfig) {
		c.configPath = path
	}
}

// WithLogger sets a custom logger for the workspace.
// If not provided, a default JSON logger is created.
func WithLogger(logger *slog.Logger) Option {
	return func(c *workspaceConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for the workspace. When set, a
// span is recorded around each export operation.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *workspaceConfig) {
		c.tracer = tracer
	}
}

// WithOutputDir sets the directory relative export paths resolve against.
// Takes precedence over the output_dir value of the config file.
func WithOutputDir(dir string) Option {
	return func(c *workspaceConfig) {
		c.outputDir = dir
	}
}
