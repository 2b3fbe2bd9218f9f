package formats

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/vovakirdan/frotz/internal/games/frotz/core"
)

// ParseTOML parses a TOML puzzle file. Entities are an array of tables:
//
//	[[entities]]
//	type = "WIZARD"
//	pos = [0, 0, 1]
func ParseTOML(data []byte) (core.Data, error) {
	var d core.Data
	md, err := toml.Decode(string(data), &d)
	if err != nil {
		return core.Data{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return core.Data{}, fmt.Errorf("toml decode: unknown key %q", undecoded[0].String())
	}
	if err := Validate(d); err != nil {
		return core.Data{}, err
	}
	return d, nil
}

// EncodeTOML renders d as TOML.
func EncodeTOML(d core.Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(d); err != nil {
		return nil, fmt.Errorf("toml encode: %w", err)
	}
	return buf.Bytes(), nil
}
