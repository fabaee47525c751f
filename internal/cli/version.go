package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, set with -ldflags "-X ...cli.Version=..."
var (
	Version = "dev"
	Commit  = "none"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of deployergen",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "deployergen version %s (commit %s, %s/%s)\n",
				Version, Commit, runtime.GOOS, runtime.GOARCH)
		},
	}
}
