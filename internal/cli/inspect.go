package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/deployergen/internal/usecase"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var (
		dev       bool
		network   string
		selectCfg bool
		format    string
	)

	cmd := &cobra.Command{
		Use:   "inspect <root>",
		Short: "Show how each constructor is split between config and arguments",
		Long: `Show how each constructor is split between config and arguments.

For every contract in the network configuration, lists its constructor
parameters, whether each one is static (decoded from chain config) or
dynamic (a deploy function argument), and the resulting deploy signature.
Nothing is written.

Use --format yaml for machine-readable output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "yaml" {
				return fmt.Errorf("unsupported format %q (want table or yaml)", format)
			}

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			plan, err := app.PlanDeployer.Run(cmd.Context(), usecase.PlanParams{
				Root:    args[0],
				Dev:     dev,
				Network: network,
				Select:  selectCfg,
			})
			if err != nil {
				return err
			}

			if format == "yaml" {
				return app.InspectRenderer.RenderYAML(plan)
			}
			return app.InspectRenderer.Render(plan)
		},
	}

	cmd.Flags().BoolVar(&dev, "dev", false, "Resolve scripts and artifacts under the test directory")
	cmd.Flags().StringVarP(&network, "network", "n", "", "Config file (chain id) under script/<root>/config")
	cmd.Flags().BoolVar(&selectCfg, "select", false, "Pick the config file interactively when --network is not set")
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table, yaml)")

	return cmd
}
