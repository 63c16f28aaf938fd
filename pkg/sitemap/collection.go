package sitemap

import "github.com/samber/lo"

// Collection is an ordered set of entries keyed by location.
// Insertion order drives iteration and chunk boundaries.
// It is not safe for concurrent mutation.
type Collection struct {
	items []*Entry
}

// NewCollection creates a collection holding entries as given.
// Callers are responsible for the entries having distinct locations.
func NewCollection(entries ...*Entry) *Collection {
	return &Collection{items: append([]*Entry(nil), entries...)}
}

// add appends unconditionally. Only used where uniqueness is already guaranteed.
func (c *Collection) add(e *Entry) {
	c.items = append(c.items, e)
}

// AddIfAbsent appends e unless an entry with the same location exists.
// It reports whether e was added.
func (c *Collection) AddIfAbsent(e *Entry) bool {
	if c.Exists(e) {
		return false
	}
	c.add(e)
	return true
}

// AddOrUpdate replaces the entry with the same location in place, or appends e.
// It reports whether an existing entry was replaced.
func (c *Collection) AddOrUpdate(e *Entry) bool {
	if i, found := c.search(e.Location()); found {
		c.items[i] = e
		return true
	}
	c.add(e)
	return false
}

// Remove deletes the first entry whose location matches e. Absent entries are ignored.
// It reports whether an entry was removed.
func (c *Collection) Remove(e *Entry) bool {
	i, found := c.search(e.Location())
	if !found {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// Exists reports whether an entry with the same location as e is present.
func (c *Collection) Exists(e *Entry) bool {
	_, found := c.search(e.Location())
	return found
}

// Get returns the entry stored under location.
func (c *Collection) Get(location string) (*Entry, bool) {
	i, found := c.search(location)
	if !found {
		return nil, false
	}
	return c.items[i], true
}

// Count returns the number of live entries.
func (c *Collection) Count() int {
	return len(c.items)
}

// First returns the earliest entry, or false when the collection is empty.
func (c *Collection) First() (*Entry, bool) {
	if len(c.items) == 0 {
		return nil, false
	}
	return c.items[0], true
}

// Entries returns the entries in insertion order. The slice is a copy.
func (c *Collection) Entries() []*Entry {
	return append([]*Entry(nil), c.items...)
}

// Chunk partitions the collection into consecutive collections of at most size entries.
// A collection that already fits (or a non-positive size) is returned as the only chunk.
func (c *Collection) Chunk(size int) []*Collection {
	if size <= 0 || c.Count() <= size {
		return []*Collection{c}
	}

	groups := lo.Chunk(c.items, size)
	chunks := make([]*Collection, 0, len(groups))
	for _, group := range groups {
		chunk := &Collection{items: make([]*Entry, 0, len(group))}
		for _, e := range group {
			chunk.add(e)
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}

// search returns the position of location with an explicit found flag,
// so position 0 is never mistaken for "absent".
func (c *Collection) search(location string) (int, bool) {
	_, i, found := lo.FindIndexOf(c.items, func(item *Entry) bool {
		return item.Location() == location
	})
	return i, found
}
