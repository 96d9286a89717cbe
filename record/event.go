package record

import (
	"fmt"
)

// Event is the record variant for the "event" category.
//
// Events carry a venue_serial foreign key; Venue resolves it to the
// referenced venue record through the store's fetch/cache path, so
// repeated resolutions return the same cached instance.
type Event struct {
	Generic
	resolver Resolver
}

// Venue resolves the event's venue_serial field to the venue record.
//
// It fails with a field error if the event has no venue_serial, and with
// the store's not-found error if the referenced venue is absent from the
// dataset.
func (e *Event) Venue() (Record, error) {
	serial, err := e.fields.Int("venue_serial")
	if err != nil {
		return nil, err
	}
	return e.resolver.Fetch(Key{Category: "venue", Serial: serial})
}

// String returns the event display form: the name field when present,
// e.g. "<Event 'There *Will* Be Bugs'>", otherwise a serial fallback
// like "<Event serial=33950>".
func (e *Event) String() string {
	if name, err := e.fields.String("name"); err == nil {
		return fmt.Sprintf("<Event '%s'>", name)
	}
	return fmt.Sprintf("<Event serial=%d>", e.Serial())
}
