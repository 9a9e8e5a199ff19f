package builder

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wouterj/oopbuilder/umlparser"
)

// Project is the result of rendering one diagram source.
type Project struct {
	ID          uuid.UUID              `json:"id" yaml:"id"`
	Name        string                 `json:"name" yaml:"name"`
	Notation    string                 `json:"notation" yaml:"notation"`
	Diagram     *umlparser.Diagram     `json:"diagram" yaml:"diagram"`
	Diagnostics []umlparser.Diagnostic `json:"-" yaml:"-"`
	RenderedAt  time.Time              `json:"rendered_at" yaml:"rendered_at"`
}

// HasErrors reports whether any diagnostic has error severity.
func (p *Project) HasErrors() bool {
	for _, d := range p.Diagnostics {
		if d.Severity == umlparser.Error {
			return true
		}
	}
	return false
}

// Builder wires a configuration to a notation registry and renders projects.
// A Builder is safe for concurrent use once configured.
type Builder struct {
	config   *Config
	registry *NotationRegistry
	emitter  *EventEmitter
	logger   *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithRegistry replaces the default notation registry.
func WithRegistry(r *NotationRegistry) Option {
	return func(b *Builder) { b.registry = r }
}

// WithEventEmitter sets the emitter that receives render events.
func WithEventEmitter(e *EventEmitter) Option {
	return func(b *Builder) { b.emitter = e }
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// New creates a Builder. config must be a *Config; anything else is rejected
// with a *ConfigTypeError naming the type that was given.
func New(config any, opts ...Option) (*Builder, error) {
	cfg, ok := config.(*Config)
	if !ok || cfg == nil {
		return nil, &ConfigTypeError{
			Expected: fmt.Sprintf("%T", (*Config)(nil)),
			Got:      fmt.Sprintf("%T", config),
		}
	}

	b := &Builder{
		config:   cfg,
		registry: NewDefaultRegistry(),
		emitter:  NewEventEmitter(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Config returns the builder's configuration.
func (b *Builder) Config() *Config { return b.config }

// Events returns the builder's event emitter.
func (b *Builder) Events() *EventEmitter { return b.emitter }

// RenderProject parses src with the notation resolved for name (usually the
// source path) and lints the result. Lint findings are returned on the
// project; in strict mode error-severity findings also fail the render.
func (b *Builder) RenderProject(name string, src []byte) (*Project, error) {
	id := uuid.New()
	start := time.Now()

	notation, err := b.registry.Resolve(b.config.Notation, name)
	if err != nil {
		b.fail(id, name, err)
		return nil, fmt.Errorf("resolving notation: %w", err)
	}

	b.logger.Debug("render started", "id", id, "name", name, "notation", notation.Name())
	b.emitter.Emit(RenderStartedEvent(id.String(), name, notation.Name()))

	diagram := notation.Parse(string(src))

	diagnostics, lintErr := umlparser.LintOrError(diagram)
	for _, d := range diagnostics {
		b.logDiagnostic(name, d)
		b.emitter.Emit(DiagnosticEvent(id.String(), d))
	}

	project := &Project{
		ID:          id,
		Name:        name,
		Notation:    notation.Name(),
		Diagram:     diagram,
		Diagnostics: diagnostics,
		RenderedAt:  start,
	}

	if b.config.Strict && lintErr != nil {
		b.fail(id, name, lintErr)
		return project, fmt.Errorf("rendering %s: %w", name, lintErr)
	}

	duration := time.Since(start)
	b.logger.Debug("render completed",
		"id", id,
		"name", name,
		"types", len(diagram.Types),
		"diagnostics", len(diagnostics),
		"duration", duration,
	)
	b.emitter.Emit(RenderCompletedEvent(id.String(), len(diagram.Types), len(diagnostics), duration))

	return project, nil
}

func (b *Builder) fail(id uuid.UUID, name string, err error) {
	b.logger.Error("render failed", "id", id, "name", name, "error", err)
	b.emitter.Emit(RenderFailedEvent(id.String(), err.Error()))
}

func (b *Builder) logDiagnostic(name string, d umlparser.Diagnostic) {
	level := slog.LevelInfo
	switch d.Severity {
	case umlparser.Error:
		level = slog.LevelError
	case umlparser.Warning:
		level = slog.LevelWarn
	}
	b.logger.Log(context.Background(), level, d.Message, "rule", d.Rule, "name", name, "type", d.Type, "line", d.Line)
}
