package template

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/trebuchet-org/deployergen/internal/domain"
	"github.com/trebuchet-org/deployergen/internal/domain/config"
	"github.com/trebuchet-org/deployergen/internal/usecase"
)

const structTemplate = `    struct {{.Name}}Config {
{{- range .Params}}
        {{.Type}} {{.Name}};
{{- end}}
    }`

// The body order is fixed: lookup, decode, encode, bytecode, deploy.
const functionTemplate = `    function deploy{{.Name}}({{.DynamicParams}}) internal returns (address) {
        bytes memory chainConfig = {{.ConfigLibrary}}.{{.ConfigLookup}}(ROOT, {{.NetworkID}}, "{{.Name}}");
        {{.Decode}}
        bytes memory args = abi.encode({{.ArgNames}});
        bytes memory bytecode = vm.getCode("{{.Name}}");
        return {{.ConfigLibrary}}.{{.DeployHelper}}(abi.encodePacked(bytecode, args));
    }`

const libraryTemplate = `// SPDX-License-Identifier: MIT
pragma solidity {{.Pragma}};

import { {{- .ConfigLibrary -}} } from "{{.ConfigImport}}";
import {Vm} from "{{.VMImport}}";

library {{.Name}} {
    Vm internal constant vm = Vm(address(uint160(uint256(keccak256("hevm cheat code")))));

    string internal constant ROOT = "{{.Root}}";
{{- range .Fragments}}

{{.Struct}}

{{.Function}}
{{- end}}
}
`

var (
	structTmpl   = template.Must(template.New("struct").Parse(structTemplate))
	functionTmpl = template.Must(template.New("function").Parse(functionTemplate))
	libraryTmpl  = template.Must(template.New("library").Parse(libraryTemplate))
)

// DeployerGeneratorAdapter renders deployer libraries using Go templates
type DeployerGeneratorAdapter struct {
	opts domain.GeneratorOptions
}

// NewDeployerGeneratorAdapter creates a new deployer generator adapter
func NewDeployerGeneratorAdapter(cfg *config.RuntimeConfig) *DeployerGeneratorAdapter {
	return &DeployerGeneratorAdapter{
		opts: domain.GeneratorOptions{
			ConfigLibrary: cfg.Generator.ConfigLibrary,
			ConfigLookup:  cfg.Generator.ConfigLookup,
			DeployHelper:  cfg.Generator.DeployHelper,
			NetworkID:     cfg.Generator.NetworkID,
		},
	}
}

// GenerateFragment renders the config struct and deploy function for one contract
func (g *DeployerGeneratorAdapter) GenerateFragment(ctx context.Context, contract string, params []domain.ConstructorParameter, partition domain.Partition) (domain.Fragment, error) {
	if err := g.checkReserved(params); err != nil {
		return domain.Fragment{}, err
	}

	structSrc, err := g.generateStruct(contract, params)
	if err != nil {
		return domain.Fragment{}, err
	}

	functionSrc, err := g.generateFunction(contract, partition)
	if err != nil {
		return domain.Fragment{}, err
	}

	return domain.Fragment{
		Contract: contract,
		Struct:   structSrc,
		Function: functionSrc,
	}, nil
}

// GenerateLibrary wraps the fragments in the library template
func (g *DeployerGeneratorAdapter) GenerateLibrary(ctx context.Context, lib *domain.DeployerLibrary) (string, error) {
	var buf bytes.Buffer
	if err := libraryTmpl.Execute(&buf, lib); err != nil {
		return "", fmt.Errorf("failed to execute library template: %w", err)
	}
	return buf.String(), nil
}

// checkReserved rejects parameters that would shadow a local of the deploy
// function or a name the function body refers to
func (g *DeployerGeneratorAdapter) checkReserved(params []domain.ConstructorParameter) error {
	reserved := []string{"chainConfig", "args", "bytecode", "vm", "abi", "ROOT", g.opts.ConfigLibrary}
	for _, p := range params {
		if lo.Contains(reserved, p.Name) {
			return fmt.Errorf("%w: constructor parameter %q clashes with the generated deploy function", domain.ErrReservedName, p.Name)
		}
	}
	return nil
}

// generateStruct lists every constructor parameter in ABI order
func (g *DeployerGeneratorAdapter) generateStruct(contract string, params []domain.ConstructorParameter) (string, error) {
	data := struct {
		Name   string
		Params []domain.ConstructorParameter
	}{
		Name:   contract,
		Params: params,
	}

	var buf bytes.Buffer
	if err := structTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute struct template: %w", err)
	}
	return buf.String(), nil
}

func (g *DeployerGeneratorAdapter) generateFunction(contract string, partition domain.Partition) (string, error) {
	dynamicParams := lo.Map(partition.Dynamic, func(p domain.ConstructorParameter, _ int) string {
		return p.Type + " " + p.Name
	})

	data := struct {
		domain.GeneratorOptions
		Name          string
		DynamicParams string
		Decode        string
		ArgNames      string
	}{
		GeneratorOptions: g.opts,
		Name:             contract,
		DynamicParams:    strings.Join(dynamicParams, ", "),
		Decode:           decodeStatement(partition.SortedStatic()),
		ArgNames:         strings.Join(partition.ArgNames, ", "),
	}

	var buf bytes.Buffer
	if err := functionTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute function template: %w", err)
	}
	return buf.String(), nil
}

// decodeStatement destructures the chain config into the sorted static
// params. With nothing to decode the type tuple is empty.
func decodeStatement(static []domain.StaticParam) string {
	if len(static) == 0 {
		return "abi.decode(chainConfig, ());"
	}

	decls := lo.Map(static, func(p domain.StaticParam, _ int) string {
		if isReferenceType(p.Type) {
			return p.Type + " memory " + p.Name
		}
		return p.Type + " " + p.Name
	})
	types := lo.Map(static, func(p domain.StaticParam, _ int) string {
		return p.Type
	})

	return fmt.Sprintf("(%s) = abi.decode(chainConfig, (%s));",
		strings.Join(decls, ", "), strings.Join(types, ", "))
}

// isReferenceType reports whether a local of this type needs a data location
func isReferenceType(solType string) bool {
	return solType == "string" ||
		solType == "bytes" ||
		strings.HasSuffix(solType, "]") ||
		strings.HasPrefix(solType, "tuple")
}

// Ensure the adapter implements the interface
var _ usecase.DeployerGenerator = (*DeployerGeneratorAdapter)(nil)
