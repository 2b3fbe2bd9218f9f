// Package formats provides pluggable puzzle file format parsers and encoders.
// Every format decodes to core.Data; a ".zst" suffix on any of them marks a
// zstd-compressed file.
package formats

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/frotz/internal/games/frotz/core"
)

// CompressedSuffix marks a zstd-compressed puzzle file.
const CompressedSuffix = ".zst"

// FormatExtensions returns supported base file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml", ".toml"}
}

// Ext returns the format extension of path and whether it is compressed.
// "intro.yaml.zst" yields (".yaml", true).
func Ext(path string) (string, bool) {
	name := strings.ToLower(filepath.Base(path))
	compressed := strings.HasSuffix(name, CompressedSuffix)
	if compressed {
		name = strings.TrimSuffix(name, CompressedSuffix)
	}
	return filepath.Ext(name), compressed
}

// IsSupported reports whether path names a puzzle file this package reads.
func IsSupported(path string) bool {
	ext, _ := Ext(path)
	return slices.Contains(FormatExtensions(), ext)
}

// Parse decodes a puzzle file, choosing the format from its name.
func Parse(data []byte, path string) (core.Data, error) {
	ext, compressed := Ext(path)
	if compressed {
		raw, err := Decompress(data)
		if err != nil {
			return core.Data{}, err
		}
		data = raw
	}
	switch ext {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return core.Data{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// Encode renders d in the format named by path.
func Encode(d core.Data, path string) ([]byte, error) {
	ext, compressed := Ext(path)
	var (
		out []byte
		err error
	)
	switch ext {
	case ".json":
		out, err = EncodeJSON(d)
	case ".yaml", ".yml":
		out, err = EncodeYAML(d)
	case ".toml":
		out, err = EncodeTOML(d)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return nil, err
	}
	if compressed {
		return Compress(out)
	}
	return out, nil
}
