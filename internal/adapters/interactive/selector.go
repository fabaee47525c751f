package interactive

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/deployergen/internal/domain/config"
	"github.com/trebuchet-org/deployergen/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectConfig prompts for one of the network config files
func (s *SelectorAdapter) SelectConfig(ctx context.Context, paths []string) (string, error) {
	// In non-interactive mode, we can't select
	if s.config.NonInteractive {
		return "", fmt.Errorf("interactive selection not available in non-interactive mode, pass --network")
	}

	if len(paths) == 0 {
		return "", fmt.Errorf("no config files provided for selection")
	}
	if len(paths) == 1 {
		return paths[0], nil
	}

	options := FormatConfigOptions(paths)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             "Select network config",
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          FuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}

	return paths[index], nil
}

// FormatConfigOptions shows each config by its network name, e.g. "31337 (31337.json)"
func FormatConfigOptions(paths []string) []string {
	options := make([]string, len(paths))
	for i, path := range paths {
		base := filepath.Base(path)
		options[i] = fmt.Sprintf("%s (%s)", strings.TrimSuffix(base, filepath.Ext(base)), base)
	}
	return options
}

// FuzzySearchFunc creates a fuzzy search function for promptui
func FuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.ConfigSelector = (*SelectorAdapter)(nil)
