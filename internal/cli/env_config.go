package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-textclean/internal/assets"
	"github.com/alnah/go-textclean/internal/config"
)

// envPrefix starts every recognized environment variable.
const envPrefix = "TEXTCLEAN_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // TEXTCLEAN_CONFIG: config file name or path
	Profile    string // TEXTCLEAN_PROFILE: filter profile name
	Style      string // TEXTCLEAN_STYLE: HTML preview style name or path
	AssetPath  string // TEXTCLEAN_ASSET_PATH: custom asset directory
	InputDir   string // TEXTCLEAN_INPUT_DIR: default input directory
	OutputDir  string // TEXTCLEAN_OUTPUT_DIR: default output directory
	Workers    int    // TEXTCLEAN_WORKERS: parallel workers
}

// knownEnvVars lists valid TEXTCLEAN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TEXTCLEAN_CONFIG":     true,
	"TEXTCLEAN_PROFILE":    true,
	"TEXTCLEAN_STYLE":      true,
	"TEXTCLEAN_ASSET_PATH": true,
	"TEXTCLEAN_INPUT_DIR":  true,
	"TEXTCLEAN_OUTPUT_DIR": true,
	"TEXTCLEAN_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("TEXTCLEAN_CONFIG"),
		Profile:    os.Getenv("TEXTCLEAN_PROFILE"),
		Style:      os.Getenv("TEXTCLEAN_STYLE"),
		AssetPath:  os.Getenv("TEXTCLEAN_ASSET_PATH"),
		InputDir:   os.Getenv("TEXTCLEAN_INPUT_DIR"),
		OutputDir:  os.Getenv("TEXTCLEAN_OUTPUT_DIR"),
	}

	// Parse int for workers; invalid values are ignored
	if workers := os.Getenv("TEXTCLEAN_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized TEXTCLEAN_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// A value is applied only when the config still holds its default, so the
// order stays: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Profile != "" && (cfg.Filters.Profile == "" || cfg.Filters.Profile == assets.DefaultProfileName) {
		cfg.Filters.Profile = env.Profile
	}
	if env.Style != "" && (cfg.HTML.Style == "" || cfg.HTML.Style == assets.DefaultStyleName) {
		cfg.HTML.Style = env.Style
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
}
