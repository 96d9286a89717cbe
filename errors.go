package schedgo

import (
	"errors"
	"fmt"

	"github.com/schedgo/schedgo/record"
)

// ErrNotFound is returned when a composite key is absent from the
// dataset.
var ErrNotFound = errors.New("record not found")

// ErrUnknownKey reports which composite key failed to resolve.
//
// It satisfies errors.Is(err, ErrNotFound).
type ErrUnknownKey struct {
	Key record.Key
}

func (e *ErrUnknownKey) Error() string {
	return fmt.Sprintf("record %s: not found", e.Key)
}

func (e *ErrUnknownKey) Unwrap() error { return ErrNotFound }
