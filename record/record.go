// Package record defines the record abstraction served by a schedgo
// store: composite keys, verbatim field mappings with typed accessors,
// and the category-specific record variants.
package record

import (
	"fmt"
)

// Resolver resolves composite keys to records. *schedgo.Store implements
// it; record variants use it to follow foreign-key fields.
type Resolver interface {
	Fetch(key Key) (Record, error)
}

// Record is a single immutable dataset entry.
//
// Implementations are constructed once per key by the store and never
// mutated afterwards.
type Record interface {
	// Key returns the composite key identifying the record.
	Key() Key
	// Serial returns the numeric serial portion of the key.
	Serial() int64
	// Category returns the category discriminator portion of the key.
	Category() string
	// Fields returns the record's backing field mapping.
	Fields() Fields

	fmt.Stringer
}

// New constructs the category-appropriate record variant.
//
// The resolver is retained by variants with derived foreign-key fields
// (currently only "event"); other categories ignore it.
func New(key Key, fields Fields, resolver Resolver) Record {
	g := Generic{key: key, fields: fields}
	switch key.Category {
	case "event":
		return &Event{Generic: g, resolver: resolver}
	default:
		return &g
	}
}

// Generic is the default record variant: a key plus its verbatim fields.
type Generic struct {
	key    Key
	fields Fields
}

// Key returns the composite key identifying the record.
func (g *Generic) Key() Key { return g.key }

// Serial returns the numeric serial portion of the key.
func (g *Generic) Serial() int64 { return g.key.Serial }

// Category returns the category discriminator portion of the key.
func (g *Generic) Category() string { return g.key.Category }

// Fields returns the record's backing field mapping.
func (g *Generic) Fields() Fields { return g.fields }

// String returns the default display form, e.g. "<Record venue.1469>".
func (g *Generic) String() string {
	return fmt.Sprintf("<Record %s>", g.key)
}
