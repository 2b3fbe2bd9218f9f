package formats_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/frotz/internal/games/frotz/core"
	"github.com/vovakirdan/frotz/internal/games/frotz/levels/formats"
)

var sample = core.Data{
	ID:   "sample",
	Name: "Sample",
	Next: "other",
	Hint: "Push it.",
	Entities: []core.EntityData{
		{Type: "BLOCK_1", Pos: [3]int{0, 0, 0}},
		{Type: "MIRROR_2_SE", Pos: [3]int{3, -1, 0}},
		{Type: "WIZARD", Pos: [3]int{0, 0, 1}},
	},
}

func TestSameDocumentInEveryFormat(t *testing.T) {
	docs := map[string]string{
		"a.json": `{
  "id": "sample", "name": "Sample", "next": "other", "hint": "Push it.",
  "entities": [
    {"type": "BLOCK_1", "pos": [0, 0, 0]},
    {"type": "MIRROR_2_SE", "pos": [3, -1, 0]},
    {"type": "WIZARD", "pos": [0, 0, 1]}
  ]
}`,
		"a.yml": `id: sample
name: Sample
next: other
hint: Push it.
entities:
  - {type: BLOCK_1, pos: [0, 0, 0]}
  - {type: MIRROR_2_SE, pos: [3, -1, 0]}
  - {type: WIZARD, pos: [0, 0, 1]}
`,
		"a.toml": `id = "sample"
name = "Sample"
next = "other"
hint = "Push it."

[[entities]]
type = "BLOCK_1"
pos = [0, 0, 0]

[[entities]]
type = "MIRROR_2_SE"
pos = [3, -1, 0]

[[entities]]
type = "WIZARD"
pos = [0, 0, 1]
`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			got, err := formats.Parse([]byte(doc), name)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, sample) {
				t.Errorf("got %+v, expected %+v", got, sample)
			}
		})
	}
}

func TestEncodeThenParse(t *testing.T) {
	for _, name := range []string{"x.json", "x.yaml", "x.toml", "x.yaml.zst", "x.toml.zst"} {
		t.Run(name, func(t *testing.T) {
			data, err := formats.Encode(sample, name)
			if err != nil {
				t.Fatal(err)
			}
			got, err := formats.Parse(data, name)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, sample) {
				t.Errorf("got %+v, expected %+v", got, sample)
			}
		})
	}
}

func TestSchemaRejectsMalformedDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"short position", `{"name": "x", "entities": [{"type": "BOX", "pos": [1, 2]}]}`},
		{"fractional position", `{"name": "x", "entities": [{"type": "BOX", "pos": [1, 2.5, 0]}]}`},
		{"missing name", `{"entities": []}`},
		{"unknown field", `{"name": "x", "entities": [], "width": 3}`},
		{"entity without type", `{"name": "x", "entities": [{"pos": [0, 0, 0]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := formats.ParseJSON([]byte(tt.doc))
			var se *formats.SchemaError
			if !errors.As(err, &se) {
				t.Errorf("expected SchemaError, got %v", err)
			}
		})
	}
}

func TestYAMLGoesThroughSchema(t *testing.T) {
	_, err := formats.ParseYAML([]byte("name: \"\"\nentities: []\n"))
	var se *formats.SchemaError
	if !errors.As(err, &se) {
		t.Errorf("expected SchemaError for empty name, got %v", err)
	}
}

func TestTOMLRejectsUnknownKeys(t *testing.T) {
	if _, err := formats.ParseTOML([]byte("name = \"x\"\ncolor = \"red\"\nentities = []\n")); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		path       string
		ext        string
		compressed bool
		supported  bool
	}{
		{"levels/a.yaml", ".yaml", false, true},
		{"A.JSON", ".json", false, true},
		{"b.toml.zst", ".toml", true, true},
		{"c.zst", "", true, false},
		{"readme.md", ".md", false, false},
	}
	for _, tt := range tests {
		ext, compressed := formats.Ext(tt.path)
		if ext != tt.ext || compressed != tt.compressed {
			t.Errorf("Ext(%q) = (%q, %v), expected (%q, %v)", tt.path, ext, compressed, tt.ext, tt.compressed)
		}
		if got := formats.IsSupported(tt.path); got != tt.supported {
			t.Errorf("IsSupported(%q) = %v, expected %v", tt.path, got, tt.supported)
		}
	}
}

func TestDecompressRejectsGarbage(t *testing.T) {
	if _, err := formats.Decompress([]byte("plainly not zstd")); err == nil {
		t.Error("expected error")
	}
}
