package providers

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NameMap translates upstream team names to the names a tracked league was
// declared with. Providers disagree on spelling ("Man United" vs
// "Manchester United FC"), so merges go through this map first.
type NameMap struct {
	aliases map[string]string
}

// NewNameMap builds a map from explicit alias pairs
func NewNameMap(aliases map[string]string) *NameMap {
	m := make(map[string]string, len(aliases))
	for k, v := range aliases {
		m[k] = v
	}
	return &NameMap{aliases: m}
}

// LoadNameMap reads an alias map from a YAML file of "upstream: canonical"
// pairs. An empty path yields an identity map.
func LoadNameMap(path string) (*NameMap, error) {
	if path == "" {
		return NewNameMap(nil), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read team name map: %w", err)
	}
	var aliases map[string]string
	if err := yaml.Unmarshal(data, &aliases); err != nil {
		return nil, fmt.Errorf("failed to parse team name map: %w", err)
	}
	return NewNameMap(aliases), nil
}

// Canonical returns the declared name for an upstream name, or the input
// unchanged when no alias is registered.
func (m *NameMap) Canonical(name string) string {
	if mapped, ok := m.aliases[name]; ok {
		return mapped
	}
	return name
}
