package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/deployergen/internal/domain/config"
)

// Defaults for the generated library
const (
	DefaultLibraryName   = "Deployer"
	DefaultPragma        = "^0.8.0"
	DefaultConfigSource  = "src/Config.sol"
	DefaultConfigLibrary = "Config"
	DefaultConfigLookup  = "getChainConfig"
	DefaultDeployHelper  = "_deploy"
	DefaultNetworkID     = "block.chainid"
	DefaultVMImport      = "forge-std/Vm.sol"
	DefaultOutputName    = "Deployer.sol"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	// Get project root from viper
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	loadEnvFiles(absRoot)

	cfg := &config.RuntimeConfig{
		ProjectRoot:    absRoot,
		Profile:        v.GetString("profile"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Generator: config.GeneratorConfig{
			LibraryName:   v.GetString("library_name"),
			Pragma:        v.GetString("pragma"),
			ConfigSource:  v.GetString("config_source"),
			ConfigLibrary: v.GetString("config_library"),
			ConfigLookup:  v.GetString("config_lookup"),
			DeployHelper:  v.GetString("deploy_helper"),
			NetworkID:     v.GetString("network_id"),
			VMImport:      v.GetString("vm_import"),
			OutputName:    v.GetString("output_name"),
		},
	}

	// Load foundry config
	foundryConfig, err := loadFoundryConfig(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}
	cfg.FoundryConfig = foundryConfig
	cfg.ArtifactsDir = artifactsDir(foundryConfig, cfg.Profile)

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find foundry.toml.
// Outside a Foundry project the working directory is the root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		foundryToml := filepath.Join(dir, "foundry.toml")
		if _, err := os.Stat(foundryToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("deployergen")
	v.SetConfigType("toml")
	v.AddConfigPath(projectRoot)

	// Set up environment variables
	v.SetEnvPrefix("DEPLOYERGEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("project_root", projectRoot)
	v.SetDefault("profile", defaultProfile())
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("library_name", DefaultLibraryName)
	v.SetDefault("pragma", DefaultPragma)
	v.SetDefault("config_source", DefaultConfigSource)
	v.SetDefault("config_library", DefaultConfigLibrary)
	v.SetDefault("config_lookup", DefaultConfigLookup)
	v.SetDefault("deploy_helper", DefaultDeployHelper)
	v.SetDefault("network_id", DefaultNetworkID)
	v.SetDefault("vm_import", DefaultVMImport)
	v.SetDefault("output_name", DefaultOutputName)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		bindFlags(v, cmd.Flags())
	}

	return v
}

// bindFlags binds every flag that was set on the command line under its
// snake_case key.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})
}

func defaultProfile() string {
	if p := os.Getenv("FOUNDRY_PROFILE"); p != "" {
		return p
	}
	return "default"
}
