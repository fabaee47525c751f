package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/deployergen/internal/domain/config"
)

const defaultArtifactsDir = "out"

// FoundryTOML represents the raw foundry.toml structure
type FoundryTOML struct {
	Profile map[string]map[string]any `toml:"profile"`
}

// loadEnvFiles loads .env files from the project root. Existing variables win.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadFoundryConfig loads and parses foundry.toml. A project without
// foundry.toml gets an empty config so artifact paths fall back to defaults.
func loadFoundryConfig(projectRoot string) (*config.FoundryConfig, error) {
	cfg := &config.FoundryConfig{
		Profiles: make(map[string]config.ProfileConfig),
	}

	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	if _, err := os.Stat(foundryPath); os.IsNotExist(err) {
		return cfg, nil
	}

	var raw FoundryTOML
	if _, err := toml.DecodeFile(foundryPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	for profileName, profileData := range raw.Profile {
		cfg.Profiles[profileName] = config.ProfileConfig{
			Out: stringField(profileData, "out"),
		}
	}

	return cfg, nil
}

// artifactsDir returns the `out` directory for profile, falling back to the
// default profile and then to foundry's own default.
func artifactsDir(cfg *config.FoundryConfig, profile string) string {
	if p, ok := cfg.Profiles[profile]; ok && p.Out != "" {
		return p.Out
	}
	if p, ok := cfg.Profiles["default"]; ok && p.Out != "" {
		return p.Out
	}
	return defaultArtifactsDir
}

func stringField(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return os.ExpandEnv(v)
	}
	return ""
}
