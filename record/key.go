package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Key is the composite identifier of a record: a category discriminator
// plus a numeric serial, rendered as "<category>.<serial>".
type Key struct {
	Category string
	Serial   int64
}

// NewKey creates a Key from a category and serial.
func NewKey(category string, serial int64) Key {
	return Key{Category: category, Serial: serial}
}

// ErrInvalidKey is returned when a composite key string cannot be parsed.
var ErrInvalidKey = errors.New("invalid composite key")

// ParseKey parses a composite key string of the form "venue.1469".
//
// The category must be non-empty and the serial must be a decimal integer.
// The returned error satisfies errors.Is(err, ErrInvalidKey).
func ParseKey(s string) (Key, error) {
	i := strings.LastIndexByte(s, '.')
	if i <= 0 || i == len(s)-1 {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}

	serial, err := strconv.ParseInt(s[i+1:], 10, 64)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q: non-numeric serial", ErrInvalidKey, s)
	}

	return Key{Category: s[:i], Serial: serial}, nil
}

// String returns the composite form, e.g. "venue.1469".
func (k Key) String() string {
	return k.Category + "." + strconv.FormatInt(k.Serial, 10)
}

// IsZero reports whether the key is the zero value.
func (k Key) IsZero() bool {
	return k.Category == "" && k.Serial == 0
}
