package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/deployergen/internal/usecase"
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	var (
		dev        bool
		network    string
		selectCfg  bool
		outputPath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:     "generate <root>",
		Aliases: []string{"gen"},
		Short:   "Generate the deployer library for a script namespace",
		Long: `Generate the deployer library for a script namespace.

The network configuration is read from script/<root>/config/. Without
--network the first JSON file in that directory is used. Artifacts are read
from the foundry out directory and the library is written to
script/<root>/Deployer.sol, replacing any previous version.

Examples:
  # Generate script/token/Deployer.sol
  deployergen generate token

  # Use the anvil config explicitly
  deployergen generate token --network 31337

  # Resolve everything under ./test
  deployergen generate token --dev

  # Print the library instead of writing it
  deployergen generate token --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.GenerateDeployerParams{
				Root:       args[0],
				Dev:        dev,
				Network:    network,
				Select:     selectCfg,
				OutputPath: outputPath,
				DryRun:     dryRun,
			}

			result, err := app.GenerateDeployer.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return app.GenerateRenderer.Render(result)
		},
	}

	cmd.Flags().BoolVar(&dev, "dev", false, "Resolve scripts and artifacts under the test directory")
	cmd.Flags().StringVarP(&network, "network", "n", "", "Config file (chain id) under script/<root>/config")
	cmd.Flags().BoolVar(&selectCfg, "select", false, "Pick the config file interactively when --network is not set")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Custom path for the generated library")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the library to stdout without writing it")

	return cmd
}
