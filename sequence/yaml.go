package sequence

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// datasetFile mirrors the on-disk layout of a labeled dataset file:
//
//	sequences:
//	  gatlin: [15.2, 16.9, 15.3]
//	  control: [1, 2, 3]
type datasetFile struct {
	Sequences map[string][]any `yaml:"sequences"`
}

// LoadYAML loads labeled sequences from a YAML dataset file.
func LoadYAML(filename string) (map[string][]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadYAMLFromReader(file)
}

// LoadYAMLFromReader loads labeled sequences from an io.Reader. Every
// element of every sequence must be a number; anything else fails with
// ErrNonNumeric. A file with no sequences fails with ErrNoData.
func LoadYAMLFromReader(r io.Reader) (map[string][]float64, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var file datasetFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	if len(file.Sequences) == 0 {
		return nil, fmt.Errorf("no sequences in dataset: %w", ErrNoData)
	}

	out := make(map[string][]float64, len(file.Sequences))
	for name, values := range file.Sequences {
		floats, err := Floats(values)
		if err != nil {
			return nil, fmt.Errorf("sequence %q: %w", name, err)
		}
		out[name] = floats
	}
	return out, nil
}
