package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultOutputFilename is the suggested download name for a bundle.
const DefaultOutputFilename = "professional_bundle.pdf"

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: "8080",
		},
		Limits: LimitsConfig{
			MaxUploadMB: 200,
			MaxFiles:    50,
		},
		Defaults: OptionDefaults{
			GenerateTOC:    true,
			AddPageNumbers: true,
		},
		Output: OutputConfig{
			Filename: DefaultOutputFilename,
		},
	}
}

// WriteDefault writes a starter config file with the default values.
// Fails if the file already exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	header := []byte("# binder configuration\n# Values can be overridden with BINDER_* environment variables.\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
