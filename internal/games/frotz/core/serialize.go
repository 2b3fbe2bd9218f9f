package core

import (
	"slices"
)

// Data is the persisted form of a puzzle.
type Data struct {
	ID       string       `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Name     string       `json:"name" yaml:"name" toml:"name"`
	Next     string       `json:"next,omitempty" yaml:"next,omitempty" toml:"next,omitempty"`
	Hint     string       `json:"hint,omitempty" yaml:"hint,omitempty" toml:"hint,omitempty"`
	Entities []EntityData `json:"entities" yaml:"entities" toml:"entities"`
}

// EntityData is one serialized entity: its kind tag and cell.
type EntityData struct {
	Type string `json:"type" yaml:"type" toml:"type"`
	Pos  [3]int `json:"pos" yaml:"pos,flow" toml:"pos"`
}

// Serialize returns the puzzle's persisted form. Pulses and destroyed
// entities are transient and skipped. Entities are listed bottom layer
// first, then by row and column.
func (p *Puzzle) Serialize() Data {
	d := Data{
		ID:   p.ID,
		Name: p.Name,
		Next: p.Next,
		Hint: p.Hint,
	}
	live := make([]*Entity, 0, p.world.Len())
	for _, e := range p.world.Entities() {
		if e.Destroyed || e.Kind == KindPulse {
			continue
		}
		live = append(live, e)
	}
	slices.SortStableFunc(live, func(a, b *Entity) int {
		switch {
		case a.Pos.Less(b.Pos):
			return -1
		case b.Pos.Less(a.Pos):
			return 1
		default:
			return 0
		}
	})
	d.Entities = make([]EntityData, 0, len(live))
	for _, e := range live {
		d.Entities = append(d.Entities, EntityData{
			Type: e.Kind.Tag(),
			Pos:  [3]int{e.Pos.X, e.Pos.Y, e.Pos.Z},
		})
	}
	return d
}

// Deserialize builds a fresh, initialized puzzle from d. Entities are
// created in listed order, so a later entry replaces an earlier one at the
// same cell. An unknown type tag fails the whole load.
func Deserialize(d Data, opts ...Option) (*Puzzle, error) {
	kinds := make([]Kind, len(d.Entities))
	for i, ed := range d.Entities {
		k, ok := ParseKind(ed.Type)
		if !ok {
			return nil, &UnknownKindError{Tag: ed.Type, Index: i}
		}
		kinds[i] = k
	}

	p := New(opts...)
	p.ID = d.ID
	if d.Name != "" {
		p.Name = d.Name
	}
	p.Next = d.Next
	p.Hint = d.Hint
	for i, ed := range d.Entities {
		if _, err := p.spawn(kinds[i], V(ed.Pos[0], ed.Pos[1], ed.Pos[2])); err != nil {
			return nil, err
		}
	}
	p.Init()
	return p, nil
}
