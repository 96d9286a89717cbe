package record

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapResolver is a minimal in-test Resolver.
type mapResolver map[Key]Record

func (m mapResolver) Fetch(key Key) (Record, error) {
	rec, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("record %s: not found", key)
	}
	return rec, nil
}

func TestFields(t *testing.T) {
	f := Fields{"spam": float64(99), "eggs": float64(12), "name": "Exhibit Hall C", "open": true}

	t.Run("Get", func(t *testing.T) {
		v, err := f.Get("spam")
		require.NoError(t, err)
		assert.Equal(t, float64(99), v)
	})

	t.Run("Int", func(t *testing.T) {
		n, err := f.Int("eggs")
		require.NoError(t, err)
		assert.Equal(t, int64(12), n)
	})

	t.Run("String", func(t *testing.T) {
		s, err := f.String("name")
		require.NoError(t, err)
		assert.Equal(t, "Exhibit Hall C", s)
	})

	t.Run("Bool", func(t *testing.T) {
		b, err := f.Bool("open")
		require.NoError(t, err)
		assert.True(t, b)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := f.Get("bacon")
		assert.ErrorIs(t, err, ErrFieldNotFound)

		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "bacon", fe.Name)
	})

	t.Run("WrongType", func(t *testing.T) {
		_, err := f.Int("name")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrFieldNotFound)
	})
}

func TestNewSelectsVariant(t *testing.T) {
	venue := New(NewKey("venue", 1469), Fields{"name": "Exhibit Hall C"}, nil)
	_, isEvent := venue.(*Event)
	assert.False(t, isEvent)
	assert.Equal(t, "<Record venue.1469>", venue.String())

	event := New(NewKey("event", 33950), Fields{"name": "There *Will* Be Bugs"}, nil)
	_, isEvent = event.(*Event)
	assert.True(t, isEvent)
}

func TestEventString(t *testing.T) {
	t.Run("WithName", func(t *testing.T) {
		event := New(NewKey("event", 33950), Fields{"name": "There *Will* Be Bugs"}, nil)
		assert.Equal(t, "<Event 'There *Will* Be Bugs'>", event.String())
	})

	t.Run("SerialFallback", func(t *testing.T) {
		event := New(NewKey("event", 77), Fields{"kind": "show"}, nil)
		assert.Equal(t, "<Event serial=77>", event.String())
	})
}

func TestEventVenue(t *testing.T) {
	resolver := mapResolver{}
	venue := New(NewKey("venue", 1449), Fields{"name": "Portland 251"}, resolver)
	resolver[venue.Key()] = venue

	event := New(NewKey("event", 33950), Fields{
		"name":         "There *Will* Be Bugs",
		"venue_serial": float64(1449),
	}, resolver)

	got, err := event.(*Event).Venue()
	require.NoError(t, err)
	assert.Same(t, venue, got)

	name, err := got.Fields().String("name")
	require.NoError(t, err)
	assert.Equal(t, "Portland 251", name)
}

func TestEventVenueMissingSerial(t *testing.T) {
	event := New(NewKey("event", 1), Fields{}, mapResolver{})
	_, err := event.(*Event).Venue()
	assert.ErrorIs(t, err, ErrFieldNotFound)
}
