package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		key, err := ParseKey("venue.1469")
		require.NoError(t, err)
		assert.Equal(t, Key{Category: "venue", Serial: 1469}, key)
		assert.Equal(t, "venue.1469", key.String())
	})

	t.Run("CategoryWithDot", func(t *testing.T) {
		// Only the last dot separates category from serial.
		key, err := ParseKey("conference.track.77")
		require.NoError(t, err)
		assert.Equal(t, "conference.track", key.Category)
		assert.Equal(t, int64(77), key.Serial)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, s := range []string{"", "venue", "venue.", ".1469", "venue.abc"} {
			_, err := ParseKey(s)
			assert.ErrorIs(t, err, ErrInvalidKey, "input %q", s)
		}
	})
}

func TestKeyIsZero(t *testing.T) {
	assert.True(t, Key{}.IsZero())
	assert.False(t, NewKey("venue", 1469).IsZero())
}
