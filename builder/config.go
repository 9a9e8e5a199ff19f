package builder

// DefaultNotation is the notation used when none is configured.
const DefaultNotation = "uml"

// Config holds the settings for a Builder. It is usually decoded by viper
// from flags, environment and an optional config file.
type Config struct {
	// Notation is the registry name of the text notation to parse with.
	// If empty, the notation is picked from the source file extension,
	// then falls back to the registry default.
	Notation string `mapstructure:"notation"`

	// Strict makes RenderProject fail when lint reports error-severity
	// diagnostics.
	Strict bool `mapstructure:"strict"`
}

// DefaultConfig returns a Config with default settings.
func DefaultConfig() *Config {
	return &Config{}
}
