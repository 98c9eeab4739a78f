package file

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scriptvault-labs/scriptvault-cli/internal/classifier"
)

// rulesFile is the YAML shape of a user-provided category table.
type rulesFile struct {
	Categories []classifier.CategoryRule `yaml:"categories"`
}

// LoadRules reads a category rule table from a YAML file. Declaration
// order in the file is preserved, since classification is
// first-match-wins. An empty path returns the built-in defaults.
func LoadRules(path string) (*classifier.RuleTable, error) {
	if path == "" {
		return classifier.DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var parsed rulesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}
	if len(parsed.Categories) == 0 {
		return nil, fmt.Errorf("rules file %s defines no categories", path)
	}

	for i, rule := range parsed.Categories {
		if rule.Category == "" {
			return nil, fmt.Errorf("rules file %s: category %d has no name", path, i)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("rules file %s: category %q has no keywords", path, rule.Category)
		}
	}

	return classifier.NewRuleTable(parsed.Categories), nil
}
