package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"enumfrom/internal/gen"
)

const (
	maxWalkDepth = 25
)

// ConfigFileNames are the file names looked up during auto-discovery.
var ConfigFileNames = []string{".enumfrom.yaml", ".enumfrom.yml"}

// Config represents the enumfrom configuration from .enumfrom.yaml.
type Config struct {
	Gen GenConfig `mapstructure:"gen"`
}

// GenConfig holds code generation settings shared by gen and check.
type GenConfig struct {
	// Output is the generated file name in each package.
	Output string `mapstructure:"output"`
	// Tags are extra comma-separated build tags.
	Tags string `mapstructure:"tags"`
	// Directives is the YAML directive file. A relative path in the config
	// file is relative to that file.
	Directives string   `mapstructure:"directives"`
	Types      []string `mapstructure:"types"`
	Debug      bool     `mapstructure:"debug"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	// 1. Set defaults first (lowest precedence)
	setDefaults(v)

	// 2. Set up environment variable binding
	v.SetEnvPrefix("ENUMFROM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 3. Find and load config file
	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	// 4. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	if configPath != "" && v.InConfig("gen.directives") && os.Getenv("ENUMFROM_GEN_DIRECTIVES") == "" {
		cfg.Gen.Directives = resolveRelative(filepath.Dir(configPath), cfg.Gen.Directives)
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("gen.output", gen.DefaultOutputFile)
	v.SetDefault("gen.tags", "")
	v.SetDefault("gen.directives", "")
	v.SetDefault("gen.types", []string{})
	v.SetDefault("gen.debug", false)
}

func resolveRelative(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(dir, path)
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for .enumfrom.yaml or .enumfrom.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}

		return explicitPath, nil
	}

	// Auto-discovery: walk up to .git or maxWalkDepth
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for range maxWalkDepth {
		for _, name := range ConfigFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		// Check for repo boundary (.git file or directory)
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break // Stop at repo root
		}

		// Move up
		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached filesystem root
		}

		dir = parent
	}

	return "", nil // No config found, use defaults
}
