package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/trebuchet-org/deployergen/internal/domain"
	"github.com/trebuchet-org/deployergen/internal/usecase"
)

var (
	contractStyle = color.New(color.FgGreen, color.Bold)
	staticStyle   = color.New(color.FgYellow)
	dynamicStyle  = color.New(color.FgCyan)
	faintStyle    = color.New(color.Faint)
)

// InspectRenderer renders the partition of every contract in a plan
type InspectRenderer struct {
	out io.Writer
}

// NewInspectRenderer creates a new inspect renderer
func NewInspectRenderer(out io.Writer) *InspectRenderer {
	return &InspectRenderer{out: out}
}

func (r *InspectRenderer) Render(plan *usecase.DeployerPlan) error {
	fmt.Fprintf(r.out, "Root:   %s\n", plan.Root)
	fmt.Fprintf(r.out, "Config: %s\n", plan.ConfigPath)

	if len(plan.Contracts) == 0 {
		fmt.Fprintln(r.out, "\nNo contracts configured.")
		return nil
	}

	for _, contract := range plan.Contracts {
		fmt.Fprintf(r.out, "\n%s  %s\n", contractStyle.Sprint(contract.Name), faintStyle.Sprint(contract.ArtifactPath))

		if len(contract.Parameters) == 0 {
			fmt.Fprintln(r.out, "  (no constructor parameters)")
		} else {
			fmt.Fprintln(r.out, r.parameterTable(contract))
		}

		signature := lo.Map(contract.Partition.Dynamic, func(p domain.ConstructorParameter, _ int) string {
			return p.Type + " " + p.Name
		})
		fmt.Fprintf(r.out, "  deploy%s(%s)\n", contract.Name, strings.Join(signature, ", "))

		if len(contract.UnusedKeys) > 0 {
			fmt.Fprintf(r.out, "  %s\n", FormatWarning("unused config keys: "+strings.Join(contract.UnusedKeys, ", ")))
		}
	}

	return nil
}

func (r *InspectRenderer) parameterTable(contract usecase.ContractPlan) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Options.SeparateHeader = false
	t.Style().Box = table.BoxStyle{
		PaddingLeft:  "  ",
		PaddingRight: " ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft},
	})

	t.AppendHeader(table.Row{"PARAMETER", "TYPE", "SOURCE", "VALUE"})
	for _, param := range contract.Parameters {
		source := dynamicStyle.Sprint("dynamic")
		value := faintStyle.Sprint("-")
		if contract.Values.Has(param.Name) {
			source = staticStyle.Sprint("static")
			value = contract.Values.Value(param.Name)
		}
		t.AppendRow(table.Row{param.Name, param.Type, source, value})
	}

	return t.Render()
}

var _ Renderer[*usecase.DeployerPlan] = (*InspectRenderer)(nil)
