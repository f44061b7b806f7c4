package models

import (
	"slices"

	"github.com/cespare/xxhash/v2"

	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/fields"
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/observability/log"
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/pkg/sequence"
)

// Option configures a Collection.
type Option func(*Collection)

// WithLogger sets the logger used by the collection and every entity it creates.
func WithLogger(logger log.Log) Option {
	return func(c *Collection) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Collection is an ordered, growable set of entities supporting aggregate
// queries over a single field. Entities returned by AddEntity and Add are the
// ones stored in the collection, so later mutation through them is visible to
// subsequent queries. A Collection is not safe for concurrent mutation.
type Collection struct {
	items  []*Entity
	logger log.Log
}

func NewCollection(opts ...Option) *Collection {
	c := &Collection{
		logger: log.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddEntity appends an entity without fields and returns it.
func (c *Collection) AddEntity(id string) *Entity {
	return c.Add(id, nil)
}

// Add appends an entity holding a copy of values and returns it.
func (c *Collection) Add(id string, values map[string]fields.Number) *Entity {
	e := newEntity(id, values, c.logger)
	c.items = append(c.items, e)
	c.logger.Debug("entity added",
		log.String("entity_id", id),
		log.Int("fields", e.Len()),
		log.Int("size", len(c.items)),
	)
	return e
}

// Items returns the entities in insertion order. The slice is a copy, the
// entities are shared.
func (c *Collection) Items() []*Entity {
	return slices.Clone(c.items)
}

func (c *Collection) Len() int {
	return len(c.items)
}

// At returns the i-th entity in insertion order.
func (c *Collection) At(i int) *Entity {
	return c.items[i]
}

// Values returns the value of field for every contributing entity, in
// insertion order.
func (c *Collection) Values(field string) []fields.Number {
	return c.contributing(field).Collect()
}

// FieldNames returns every field name held by at least one entity, sorted.
func (c *Collection) FieldNames() []string {
	seen := make(map[string]struct{})
	for _, e := range c.items {
		for name := range e.values {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (c *Collection) contributing(field string) *sequence.Iterator[fields.Number] {
	return sequence.FilterMap(sequence.From(c.items), func(e *Entity) (fields.Number, bool) {
		return e.Get(field)
	})
}

// Digest fingerprints the ids, field names and values of all entities in
// insertion order. Any mutation of the collection changes the digest.
func (c *Collection) Digest() uint64 {
	h := xxhash.New()
	for _, e := range c.items {
		_, _ = h.WriteString(e.id)
		_, _ = h.Write([]byte{0x1f})
		for _, name := range e.FieldNames() {
			v := e.values[name]
			_, _ = h.WriteString(name)
			_, _ = h.Write([]byte{'=', byte(v.Kind())})
			_, _ = h.WriteString(v.String())
			_, _ = h.Write([]byte{0x1e})
		}
		_, _ = h.Write([]byte{0x1d})
	}
	return h.Sum64()
}
