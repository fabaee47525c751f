package abi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/trebuchet-org/deployergen/internal/domain"
	"github.com/trebuchet-org/deployergen/internal/usecase"
)

// abiEntry is one element of a contract ABI. Only constructors are read.
type abiEntry struct {
	Type   string                   `json:"type"`
	Inputs []abi.ArgumentMarshaling `json:"inputs"`
}

// ConstructorResolverAdapter extracts constructor inputs from a raw ABI
type ConstructorResolverAdapter struct{}

// NewConstructorResolverAdapter creates a new constructor resolver
func NewConstructorResolverAdapter() *ConstructorResolverAdapter {
	return &ConstructorResolverAdapter{}
}

// ResolveConstructor returns the inputs of the ABI entry typed "constructor",
// in declaration order. Each input type must be a valid ABI type.
func (r *ConstructorResolverAdapter) ResolveConstructor(ctx context.Context, artifact *domain.Artifact) ([]domain.ConstructorParameter, error) {
	var entries []abiEntry
	if err := json.Unmarshal(artifact.ABI, &entries); err != nil {
		return nil, fmt.Errorf("%w: abi: %v", domain.ErrJSONParse, err)
	}

	for _, entry := range entries {
		if entry.Type != "constructor" {
			continue
		}
		return convertInputs(entry.Inputs)
	}

	return nil, domain.ErrMissingConstructor
}

// convertInputs validates inputs with go-ethereum's type parser and keeps
// the declared type strings for interpolation
func convertInputs(inputs []abi.ArgumentMarshaling) ([]domain.ConstructorParameter, error) {
	params := make([]domain.ConstructorParameter, 0, len(inputs))
	for i, input := range inputs {
		if _, err := abi.NewType(input.Type, input.InternalType, input.Components); err != nil {
			return nil, fmt.Errorf("%w: constructor input %d (%s): %v", domain.ErrJSONParse, i, input.Name, err)
		}

		name := input.Name
		if name == "" {
			name = fmt.Sprintf("_arg%d", i)
		}

		params = append(params, domain.ConstructorParameter{
			Name:         name,
			Type:         input.Type,
			InternalType: input.InternalType,
		})
	}
	return params, nil
}

// Ensure the adapter implements the interface
var _ usecase.ConstructorResolver = (*ConstructorResolverAdapter)(nil)
