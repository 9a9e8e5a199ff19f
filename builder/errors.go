package builder

import "fmt"

// ConfigTypeError is returned by New when the configuration is not a *Config.
type ConfigTypeError struct {
	Expected string
	Got      string
}

func (e *ConfigTypeError) Error() string {
	return fmt.Sprintf("builder.New: config must be an instance of %s, %s given", e.Expected, e.Got)
}

// NotationError is returned when no notation can be resolved for a source.
type NotationError struct {
	Name string // requested notation name (optional)
	Path string // source path (optional)
}

func (e *NotationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("no notation registered for name %q", e.Name)
	}
	return fmt.Sprintf("no notation found for %q and no default notation", e.Path)
}
