package render

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/trebuchet-org/deployergen/internal/domain"
	"github.com/trebuchet-org/deployergen/internal/usecase"
	"gopkg.in/yaml.v3"
)

type inspectDocument struct {
	Root      string            `yaml:"root"`
	Config    string            `yaml:"config"`
	Contracts []inspectContract `yaml:"contracts"`
}

type inspectContract struct {
	Name     string         `yaml:"name"`
	Artifact string         `yaml:"artifact"`
	Static   []inspectParam `yaml:"static"`
	Dynamic  []inspectParam `yaml:"dynamic"`
	Unused   []string       `yaml:"unused,omitempty"`
}

type inspectParam struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Value string `yaml:"value,omitempty"`
}

// RenderYAML writes the plan as a YAML document. Static parameters keep ABI
// order and carry their raw JSON value.
func (r *InspectRenderer) RenderYAML(plan *usecase.DeployerPlan) error {
	doc := inspectDocument{
		Root:      plan.Root,
		Config:    plan.ConfigPath,
		Contracts: make([]inspectContract, 0, len(plan.Contracts)),
	}

	for _, contract := range plan.Contracts {
		doc.Contracts = append(doc.Contracts, inspectContract{
			Name:     contract.Name,
			Artifact: contract.ArtifactPath,
			Static: lo.Map(contract.Partition.Static, func(p domain.StaticParam, _ int) inspectParam {
				return inspectParam{Name: p.Name, Type: p.Type, Value: contract.Values.Value(p.Name)}
			}),
			Dynamic: lo.Map(contract.Partition.Dynamic, func(p domain.ConstructorParameter, _ int) inspectParam {
				return inspectParam{Name: p.Name, Type: p.Type}
			}),
			Unused: contract.UnusedKeys,
		})
	}

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode inspect output: %w", err)
	}
	return enc.Close()
}
