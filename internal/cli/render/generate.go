package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/deployergen/internal/usecase"
)

// GenerateRenderer renders generate command results
type GenerateRenderer struct {
	out io.Writer
}

// NewGenerateRenderer creates a new generate renderer
func NewGenerateRenderer(out io.Writer) *GenerateRenderer {
	return &GenerateRenderer{out: out}
}

func (r *GenerateRenderer) Render(result *usecase.GenerateDeployerResult) error {
	// Dry runs print the library itself so it can be piped
	if result.DryRun {
		_, err := fmt.Fprint(r.out, result.Content)
		return err
	}

	fmt.Fprintf(r.out, "\n%s\n", FormatSuccess(fmt.Sprintf("Generated deployer library: %s", result.OutputPath)))
	fmt.Fprintf(r.out, "  config:    %s\n", result.ConfigPath)
	fmt.Fprintf(r.out, "  contracts: %d\n", len(result.Contracts))
	for _, name := range result.Contracts {
		fmt.Fprintf(r.out, "    - %s\n", color.New(color.FgCyan).Sprint(name))
	}
	return nil
}

var _ Renderer[*usecase.GenerateDeployerResult] = (*GenerateRenderer)(nil)
