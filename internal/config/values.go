package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ValuesFile is the content of a measurements file. The file is either a
// bare YAML list of numbers or a mapping with a unit and a values list.
type ValuesFile struct {
	Unit   string    `yaml:"unit"`
	Values []float64 `yaml:"values"`
}

// LoadValues reads a measurements file.
func LoadValues(path string) (ValuesFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ValuesFile{}, fmt.Errorf("config: read values file: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return ValuesFile{}, fmt.Errorf("config: parse values file %s: %w", path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return ValuesFile{}, fmt.Errorf("config: values file %s is empty", path)
	}

	var vf ValuesFile
	switch root := doc.Content[0]; root.Kind {
	case yaml.SequenceNode:
		err = root.Decode(&vf.Values)
	case yaml.MappingNode:
		err = root.Decode(&vf)
	default:
		err = fmt.Errorf("expected a list or a mapping, line %d", root.Line)
	}
	if err != nil {
		return ValuesFile{}, fmt.Errorf("config: decode values file %s: %w", path, err)
	}
	return vf, nil
}
