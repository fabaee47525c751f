package config

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	Profile     string // foundry profile used to resolve the artifacts directory

	// Execution settings
	Debug          bool
	NonInteractive bool

	// Resolved paths
	ArtifactsDir string // foundry `out` directory, relative to the base directory

	// Generated source settings
	Generator GeneratorConfig

	// Resolved configurations
	FoundryConfig *FoundryConfig
}

// GeneratorConfig holds the names the generated library refers to
type GeneratorConfig struct {
	LibraryName   string // name of the emitted library
	Pragma        string // solidity version constraint
	ConfigSource  string // project-relative path of the config helper contract
	ConfigLibrary string // symbol imported from ConfigSource
	ConfigLookup  string // chain config lookup function on ConfigLibrary
	DeployHelper  string // deploy-from-bytecode function on ConfigLibrary
	NetworkID     string // solidity expression identifying the network
	VMImport      string // import path of the Vm cheat-code interface
	OutputName    string // file name of the generated library
}

// FoundryConfig is the part of foundry.toml the generator needs
type FoundryConfig struct {
	Profiles map[string]ProfileConfig
}

// ProfileConfig is one `[profile.<name>]` section of foundry.toml
type ProfileConfig struct {
	Out string
}
