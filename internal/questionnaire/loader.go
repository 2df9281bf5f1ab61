package questionnaire

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a questionnaire from a YAML file. The file layout mirrors
// the struct tags: a top-level sections list, each with its questions.
func Load(path string) (*Questionnaire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questionnaire: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML questionnaire content.
func Parse(data []byte) (*Questionnaire, error) {
	var q Questionnaire
	if err := yaml.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("parse questionnaire: %w", err)
	}
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("invalid questionnaire: %w", err)
	}
	return &q, nil
}
