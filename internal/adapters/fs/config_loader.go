package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/trebuchet-org/deployergen/internal/domain"
	"github.com/trebuchet-org/deployergen/internal/usecase"
)

// ConfigLoaderAdapter reads network configs and compiled artifacts from disk
type ConfigLoaderAdapter struct{}

// NewConfigLoaderAdapter creates a new config loader adapter
func NewConfigLoaderAdapter() *ConfigLoaderAdapter {
	return &ConfigLoaderAdapter{}
}

// LoadNetworkConfig parses a network configuration document. The top level
// must be an object of objects; contract order follows the document.
func (l *ConfigLoaderAdapter) LoadNetworkConfig(ctx context.Context, path string) (*domain.NetworkConfig, error) {
	data, err := readJSON(path)
	if err != nil {
		return nil, err
	}

	contracts, err := decodeContracts(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, domain.ErrJSONParse, err)
	}

	return &domain.NetworkConfig{
		Path:      path,
		Contracts: contracts,
	}, nil
}

// LoadArtifact parses a foundry artifact and keeps its raw ABI
func (l *ConfigLoaderAdapter) LoadArtifact(ctx context.Context, path string) (*domain.Artifact, error) {
	data, err := readJSON(path)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			if suggestions := suggestArtifacts(path); len(suggestions) > 0 {
				return nil, fmt.Errorf("%w (did you mean %s?)", err, strings.Join(suggestions, ", "))
			}
		}
		return nil, err
	}

	var artifact struct {
		ABI json.RawMessage `json:"abi"`
	}
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, domain.ErrJSONParse, err)
	}

	abi := bytes.TrimSpace(artifact.ABI)
	if len(abi) == 0 || abi[0] != '[' {
		return nil, fmt.Errorf("%s: %w: abi must be an array", path, domain.ErrJSONParse)
	}

	return &domain.Artifact{
		Path: path,
		ABI:  artifact.ABI,
	}, nil
}

// readJSON reads the whole file and checks it is well-formed UTF-8 JSON
func readJSON(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrFileNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w: not valid UTF-8", path, domain.ErrJSONParse)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s: %w: malformed JSON", path, domain.ErrJSONParse)
	}

	return data, nil
}

// decodeContracts walks the top-level object token by token so contract
// order survives. A repeated key keeps its first position and last value.
func decodeContracts(data []byte) ([]domain.ContractConfig, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected an object of contracts")
	}

	contracts := []domain.ContractConfig{}
	index := make(map[string]int)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var values map[string]json.RawMessage
		if err := dec.Decode(&values); err != nil {
			return nil, fmt.Errorf("contract %q: expected an object of parameter values: %v", name, err)
		}
		if values == nil {
			return nil, fmt.Errorf("contract %q: expected an object of parameter values, got null", name)
		}

		if i, dup := index[name]; dup {
			contracts[i].Values = values
			continue
		}
		index[name] = len(contracts)
		contracts = append(contracts, domain.ContractConfig{
			Name:   name,
			Values: values,
		})
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level object")
	}

	return contracts, nil
}

// Ensure the adapter implements the interface
var _ usecase.ConfigLoader = (*ConfigLoaderAdapter)(nil)
