package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wouterj/oopbuilder/builder"
)

var rootCmd = &cobra.Command{
	Use:   "oopbuilder",
	Short: "Text UML diagram parser",
	Long:  "oopbuilder parses indented text UML class and interface diagrams into a structured model.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "Config file (YAML, TOML or JSON)")
	rootCmd.PersistentFlags().StringP("notation", "n", "", "Diagram notation (detected from the file extension if empty)")
	rootCmd.PersistentFlags().StringP("format", "f", "summary", "Output format: summary, json or yaml")
	rootCmd.PersistentFlags().Bool("strict", false, "Fail when lint reports errors")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("notation", rootCmd.PersistentFlags().Lookup("notation"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	viper.SetEnvPrefix("OOPBUILDER")
	viper.AutomaticEnv()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: reading config %s: %v\n", cfgFile, err)
		}
	}
}

// newLogger returns a text logger on stderr honoring --verbose and --debug.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	switch {
	case viper.GetBool("debug"):
		level = slog.LevelDebug
	case viper.GetBool("verbose"):
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newBuilder creates a Builder from the merged flag, env and file settings.
func newBuilder(opts ...builder.Option) (*builder.Builder, error) {
	cfg := builder.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	opts = append([]builder.Option{builder.WithLogger(newLogger())}, opts...)
	return builder.New(cfg, opts...)
}
