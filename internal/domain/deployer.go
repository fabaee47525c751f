package domain

import (
	"encoding/json"
	"sort"
)

// ConstructorParameter is one constructor input as declared in the ABI
type ConstructorParameter struct {
	Name         string
	Type         string
	InternalType string
}

// FieldValues maps constructor parameter names to their configured JSON literals
type FieldValues map[string]json.RawMessage

// Has reports whether name is configured. A nil FieldValues has no keys.
func (f FieldValues) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Value returns the configured literal for name as text
func (f FieldValues) Value(name string) string {
	raw, ok := f[name]
	if !ok {
		return ""
	}
	return string(raw)
}

// ContractConfig is one top-level entry of a network configuration document
type ContractConfig struct {
	Name   string
	Values FieldValues
}

// NetworkConfig is a parsed network configuration document. Contracts keep
// the key order of the source document.
type NetworkConfig struct {
	Path      string
	Contracts []ContractConfig
}

// Names returns the contract names in document order
func (c *NetworkConfig) Names() []string {
	names := make([]string, 0, len(c.Contracts))
	for _, contract := range c.Contracts {
		names = append(names, contract.Name)
	}
	return names
}

// Artifact is the subset of a compiled contract artifact the generator reads
type Artifact struct {
	Path string
	ABI  json.RawMessage
}

// StaticParam is a constructor parameter whose value comes from chain config
type StaticParam struct {
	Type string
	Name string
}

// Partition splits a constructor's parameters into static and dynamic lists
type Partition struct {
	Static   []StaticParam
	Dynamic  []ConstructorParameter
	ArgNames []string
}

// SortedStatic returns a copy of the static list ordered by name.
// The decode tuple in the generated source depends on this order.
func (p Partition) SortedStatic() []StaticParam {
	sorted := make([]StaticParam, len(p.Static))
	copy(sorted, p.Static)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// Fragment is the rendered source for a single contract
type Fragment struct {
	Contract string
	Struct   string
	Function string
}

// DeployerLibrary is everything needed to render the final library file
type DeployerLibrary struct {
	Name          string
	Pragma        string
	Root          string
	ConfigImport  string
	ConfigLibrary string
	VMImport      string
	Fragments     []Fragment
}

// GeneratorOptions names the external helpers the generated source calls
type GeneratorOptions struct {
	ConfigLibrary string
	ConfigLookup  string
	DeployHelper  string
	NetworkID     string
}
