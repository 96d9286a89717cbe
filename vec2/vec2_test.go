package vec2

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-8

func TestAccessors(t *testing.T) {
	v := New(3, 4)
	assert.Equal(t, 3.0, v.X())
	assert.Equal(t, 4.0, v.Y())

	x, y := v.XY()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 5.0, New(3, 4).Abs())
	assert.Equal(t, 0.0, New(0, 0).Abs())
}

func TestIsZero(t *testing.T) {
	assert.False(t, New(3, 4).IsZero())
	assert.True(t, New(0, 0).IsZero())
}

func TestAngle(t *testing.T) {
	assert.Equal(t, 0.0, New(0, 0).Angle())
	assert.Equal(t, 0.0, New(1, 0).Angle())
	assert.InDelta(t, math.Pi/2, New(0, 1).Angle(), epsilon)
	assert.InDelta(t, math.Pi/4, New(1, 1).Angle(), epsilon)
	// atan2 range is (-pi, pi].
	assert.InDelta(t, math.Pi, New(-1, 0).Angle(), epsilon)
}

func TestPolar(t *testing.T) {
	r, theta := New(1, 1).Polar()
	assert.InDelta(t, math.Sqrt2, r, epsilon)
	assert.InDelta(t, math.Pi/4, theta, epsilon)
}

func TestEqualAndHash(t *testing.T) {
	v1 := New(3, 4)
	v2 := New(3.1, 4.2)

	assert.True(t, v1.Equal(New(3, 4)))
	assert.False(t, v1.Equal(v2))

	// Equal vectors must hash equally.
	assert.Equal(t, v1.Hash(), New(3, 4).Hash())

	// Signed zero compares equal, so it must hash equally too.
	assert.True(t, New(0, 0).Equal(New(math.Copysign(0, -1), 0)))
	assert.Equal(t, New(0, 0).Hash(), New(math.Copysign(0, -1), 0).Hash())

	// Vec is a comparable value type: usable as a map key.
	set := map[Vec]struct{}{}
	set[v1] = struct{}{}
	set[New(3, 4)] = struct{}{}
	set[v2] = struct{}{}
	assert.Len(t, set, 2)
}

func TestString(t *testing.T) {
	assert.Equal(t, "(3, 4)", New(3, 4).String())
	assert.Equal(t, "(3.5, -4.25)", New(3.5, -4.25).String())
}

func TestGoStringRoundTrip(t *testing.T) {
	v := New(3, 4)
	assert.Equal(t, "vec2.New(3, 4)", v.GoString())
	assert.Equal(t, "vec2.New(3, 4)", fmt.Sprintf("%#v", v))

	// The String form re-parses to an equal instance.
	parsed, err := Parse(v.String())
	require.NoError(t, err)
	assert.True(t, v.Equal(parsed))
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{"", "3, 4", "(3; 4)", "(a, 4)", "(3, b)"} {
		_, err := Parse(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestFormat(t *testing.T) {
	v := New(3, 4)

	assert.Equal(t, "(3, 4)", fmt.Sprintf("%v", v))
	assert.Equal(t, "(3, 4)", fmt.Sprintf("%s", v))
	assert.Equal(t, "(3.00, 4.00)", fmt.Sprintf("%.2f", v))
	assert.Equal(t, "(3.000e+00, 4.000e+00)", fmt.Sprintf("%.3e", v))
	assert.Equal(t, "(  3.0,   4.0)", fmt.Sprintf("%5.1f", v))
}

func TestFormatPolar(t *testing.T) {
	got := fmt.Sprintf("%#g", New(1, 1))
	assert.Equal(t, "<1.4142135623730951, 0.7853981633974483>", got)

	assert.Equal(t, "<1.41, 0.785>", fmt.Sprintf("%#.3g", New(1, 1)))
	assert.Equal(t, "<1.41421, 0.78540>", fmt.Sprintf("%#.5f", New(1, 1)))
}

func TestBinaryRoundTrip(t *testing.T) {
	v := New(3, 4)

	data, err := v.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, BinarySize)

	got, err := FromBytes(data)
	require.NoError(t, err)
	assert.True(t, v.Equal(got))

	var u Vec
	require.NoError(t, u.UnmarshalBinary(data))
	assert.True(t, v.Equal(u))
}

func TestFromBytesInvalidLength(t *testing.T) {
	_, err := FromBytes(make([]byte, 8))
	assert.Error(t, err)
}
