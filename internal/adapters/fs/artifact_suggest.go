package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

const maxSuggestions = 3

// suggestArtifacts returns compiled contract names close to the one a
// missing artifact path refers to. Paths follow <out>/<Name>.sol/<Name>.json.
func suggestArtifacts(artifactPath string) []string {
	want := strings.TrimSuffix(filepath.Base(artifactPath), ".json")
	outDir := filepath.Dir(filepath.Dir(artifactPath))

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasSuffix(entry.Name(), ".sol") {
			names = append(names, strings.TrimSuffix(entry.Name(), ".sol"))
		}
	}

	lower := lo.Map(names, func(name string, _ int) string {
		return strings.ToLower(name)
	})

	matches := fuzzy.Find(strings.ToLower(want), lower)
	suggestions := make([]string, 0, maxSuggestions)
	for _, match := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, names[match.Index])
	}
	return suggestions
}
