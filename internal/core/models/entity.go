package models

import (
	"maps"
	"slices"

	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/fields"
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/observability/log"
)

// Entity is a named record of numeric field values. The id is fixed at
// construction, fields are added or overwritten through Add and Set.
type Entity struct {
	id     string
	values map[string]fields.Number
	logger log.Log
}

// NewEntity creates an entity holding a copy of values. The initial mapping
// is taken as given.
func NewEntity(id string, values map[string]fields.Number) *Entity {
	return newEntity(id, values, log.NewNop())
}

func newEntity(id string, values map[string]fields.Number, logger log.Log) *Entity {
	v := maps.Clone(values)
	if v == nil {
		v = make(map[string]fields.Number)
	}
	return &Entity{
		id:     id,
		values: v,
		logger: logger,
	}
}

func (e *Entity) ID() string {
	return e.id
}

// Add stores value under name when it is numeric and reports whether it did.
// Non-numeric values are ignored and leave the entity untouched.
func (e *Entity) Add(name string, value any) bool {
	n, err := fields.Parse(value)
	if err != nil {
		e.logger.Debug("field value rejected",
			log.String("entity_id", e.id),
			log.String("field", name),
			log.Error(err),
		)
		return false
	}
	e.values[name] = n
	return true
}

// Set stores an already typed value.
func (e *Entity) Set(name string, value fields.Number) {
	e.values[name] = value
}

func (e *Entity) Get(name string) (fields.Number, bool) {
	v, ok := e.values[name]
	return v, ok
}

func (e *Entity) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Fields returns a copy of the field mapping.
func (e *Entity) Fields() map[string]fields.Number {
	return maps.Clone(e.values)
}

// FieldNames returns the field names in sorted order.
func (e *Entity) FieldNames() []string {
	return slices.Sorted(maps.Keys(e.values))
}

func (e *Entity) Len() int {
	return len(e.values)
}
