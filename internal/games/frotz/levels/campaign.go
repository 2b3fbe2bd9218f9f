package levels

import (
	"fmt"
	"sort"
)

// Campaign is an ordered set of levels with unique IDs.
type Campaign []Level

// Merge combines level sets into one campaign sorted by ID. When two sets
// carry the same ID, the later set wins.
func Merge(sets ...[]Level) Campaign {
	byID := make(map[string]Level)
	for _, set := range sets {
		for _, lvl := range set {
			byID[lvl.ID] = lvl
		}
	}
	c := make(Campaign, 0, len(byID))
	for _, lvl := range byID {
		c = append(c, lvl)
	}
	sort.Slice(c, func(i, j int) bool {
		return c[i].ID < c[j].ID
	})
	return c
}

// Resolve looks a reference up as an ID first, then as a display name.
func (c Campaign) Resolve(ref string) (Level, error) {
	return resolve(c, ref)
}

// Index returns the position of the level with id, or -1.
func (c Campaign) Index(id string) int {
	for i, lvl := range c {
		if lvl.ID == id {
			return i
		}
	}
	return -1
}

// Next returns the level that follows cur: its explicit next reference when
// set, otherwise the following level in ID order.
func (c Campaign) Next(cur Level) (Level, error) {
	if cur.Next != "" {
		return c.Resolve(cur.Next)
	}
	if i := c.Index(cur.ID); i >= 0 && i+1 < len(c) {
		return c[i+1], nil
	}
	return Level{}, fmt.Errorf("%w: nothing after %s", ErrNotFound, cur.ID)
}

// IDs returns the level IDs in campaign order.
func (c Campaign) IDs() []string {
	ids := make([]string, len(c))
	for i, lvl := range c {
		ids[i] = lvl.ID
	}
	return ids
}
