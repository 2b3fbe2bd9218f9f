package formats

import (
	"fmt"

	"github.com/vovakirdan/frotz/internal/games/frotz/core"
	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML puzzle file and checks it against the puzzle schema.
func ParseYAML(data []byte) (core.Data, error) {
	var d core.Data
	if err := yaml.Unmarshal(data, &d); err != nil {
		return core.Data{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := Validate(d); err != nil {
		return core.Data{}, err
	}
	return d, nil
}

// EncodeYAML renders d as YAML with positions in flow style.
func EncodeYAML(d core.Data) ([]byte, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return out, nil
}
