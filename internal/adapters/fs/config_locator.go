package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/deployergen/internal/domain"
	"github.com/trebuchet-org/deployergen/internal/usecase"
)

// ConfigLocatorAdapter finds the network configuration file in a directory
type ConfigLocatorAdapter struct{}

// NewConfigLocatorAdapter creates a new config locator adapter
func NewConfigLocatorAdapter() *ConfigLocatorAdapter {
	return &ConfigLocatorAdapter{}
}

// Locate returns <dir>/<network>.json when network is set, otherwise the
// first JSON file in dir by name.
func (l *ConfigLocatorAdapter) Locate(ctx context.Context, dir string, network string) (string, error) {
	if network != "" {
		name := network
		if filepath.Ext(name) != ".json" {
			name += ".json"
		}
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("%s: %w", path, domain.ErrFileNotFound)
			}
			return "", err
		}
		if info.IsDir() {
			return "", fmt.Errorf("%s is a directory: %w", path, domain.ErrFileNotFound)
		}
		return path, nil
	}

	candidates, err := l.List(ctx, dir)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no JSON config in %s: %w", dir, domain.ErrFileNotFound)
	}
	return candidates[0], nil
}

// List returns every JSON file in dir, sorted by name
func (l *ConfigLocatorAdapter) List(ctx context.Context, dir string) ([]string, error) {
	// os.ReadDir returns entries sorted by filename
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config directory %s: %w", dir, domain.ErrFileNotFound)
		}
		return nil, fmt.Errorf("failed to read config directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// Ensure the adapter implements the interface
var _ usecase.ConfigLocator = (*ConfigLocatorAdapter)(nil)
