// Package vec2 provides an immutable 2D vector value type.
//
// Vec is a plain value: copy it freely, compare it with ==, use it as a
// map key. Components are unexported and only reachable through
// accessors, so a constructed vector can never be rebound.
package vec2

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// BinarySize is the length in bytes of a serialized Vec: two consecutive
// native-endian IEEE-754 float64 values, no header.
const BinarySize = 16

// Vec is an immutable 2D vector of float64 components.
type Vec struct {
	x, y float64
}

// New creates a vector from its cartesian components.
func New(x, y float64) Vec {
	return Vec{x: x, y: y}
}

// FromBytes deserializes a vector produced by MarshalBinary.
func FromBytes(data []byte) (Vec, error) {
	if len(data) != BinarySize {
		return Vec{}, fmt.Errorf("vec2: invalid length %d, want %d", len(data), BinarySize)
	}
	return Vec{
		x: math.Float64frombits(binary.NativeEndian.Uint64(data[0:8])),
		y: math.Float64frombits(binary.NativeEndian.Uint64(data[8:16])),
	}, nil
}

// Parse parses the String form "(3, 4)".
func Parse(s string) (Vec, error) {
	inner, ok := strings.CutPrefix(s, "(")
	if ok {
		inner, ok = strings.CutSuffix(inner, ")")
	}
	if !ok {
		return Vec{}, fmt.Errorf("vec2: cannot parse %q", s)
	}

	xs, ys, ok := strings.Cut(inner, ",")
	if !ok {
		return Vec{}, fmt.Errorf("vec2: cannot parse %q", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Vec{}, fmt.Errorf("vec2: cannot parse %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Vec{}, fmt.Errorf("vec2: cannot parse %q: %w", s, err)
	}

	return Vec{x: x, y: y}, nil
}

// X returns the x component.
func (v Vec) X() float64 { return v.x }

// Y returns the y component.
func (v Vec) Y() float64 { return v.y }

// XY returns both components.
func (v Vec) XY() (x, y float64) { return v.x, v.y }

// Abs returns the Euclidean magnitude.
func (v Vec) Abs() float64 {
	return math.Hypot(v.x, v.y)
}

// Angle returns the angle against the positive x axis, atan2(y, x),
// in the range (-pi, pi].
func (v Vec) Angle() float64 {
	return math.Atan2(v.y, v.x)
}

// Polar returns the polar coordinates (magnitude, angle).
func (v Vec) Polar() (r, theta float64) {
	return v.Abs(), v.Angle()
}

// IsZero reports whether the magnitude is zero.
func (v Vec) IsZero() bool {
	return v.x == 0 && v.y == 0
}

// Equal reports component-wise equality. It is consistent with ==.
func (v Vec) Equal(o Vec) bool {
	return v == o
}

// Hash returns a hash combining both component bit patterns.
//
// Equal vectors hash equally: negative zero is normalized to positive
// zero before hashing, matching == on floats.
func (v Vec) Hash() uint64 {
	return hashComponent(v.x) ^ hashComponent(v.y)
}

func hashComponent(f float64) uint64 {
	if f == 0 {
		f = 0 // collapse -0.0 and +0.0
	}
	return math.Float64bits(f)
}

// String returns the cartesian display form, e.g. "(3, 4)".
func (v Vec) String() string {
	return "(" + formatFloat(v.x) + ", " + formatFloat(v.y) + ")"
}

// GoString returns a re-parseable constructor form, e.g. "vec2.New(3, 4)".
func (v Vec) GoString() string {
	return "vec2.New(" + formatFloat(v.x) + ", " + formatFloat(v.y) + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Format implements fmt.Formatter.
//
// The verbs f, F, e, E, g and G format each component with the given
// width and precision, wrapped as "(x, y)". The verbs v and s render the
// default cartesian form; %#v renders the GoString form. On the numeric
// verbs the # flag switches to polar coordinates, "<magnitude, angle>",
// with the same per-component formatting rules:
//
//	fmt.Sprintf("%.2f", vec2.New(3, 4))   // "(3.00, 4.00)"
//	fmt.Sprintf("%#.3g", vec2.New(1, 1))  // "<1.41, 0.785>"
func (v Vec) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v':
		if st.Flag('#') {
			io.WriteString(st, v.GoString())
			return
		}
		io.WriteString(st, v.String())
	case 's':
		io.WriteString(st, v.String())
	case 'f', 'F', 'e', 'E', 'g', 'G':
		if st.Flag('#') {
			r, theta := v.Polar()
			writePair(st, verb, "<", ">", r, theta)
			return
		}
		writePair(st, verb, "(", ")", v.x, v.y)
	default:
		fmt.Fprintf(st, "%%!%c(vec2.Vec=%s)", verb, v.String())
	}
}

func writePair(st fmt.State, verb rune, opening, closing string, a, b float64) {
	spec := componentSpec(st, verb)
	io.WriteString(st, opening)
	fmt.Fprintf(st, spec, a)
	io.WriteString(st, ", ")
	fmt.Fprintf(st, spec, b)
	io.WriteString(st, closing)
}

// componentSpec rebuilds the per-component format specifier from the
// outer formatting state.
func componentSpec(st fmt.State, verb rune) string {
	var sb strings.Builder
	sb.WriteByte('%')
	for _, flag := range []byte{'+', '-', ' ', '0'} {
		if st.Flag(int(flag)) {
			sb.WriteByte(flag)
		}
	}
	if w, ok := st.Width(); ok {
		sb.WriteString(strconv.Itoa(w))
	}
	if p, ok := st.Precision(); ok {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(p))
	}
	sb.WriteRune(verb)
	return sb.String()
}

// MarshalBinary serializes the vector as two consecutive native-endian
// float64 values (16 bytes). It never fails.
func (v Vec) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, BinarySize))
}

// AppendBinary appends the binary form to dst.
func (v Vec) AppendBinary(dst []byte) ([]byte, error) {
	dst = binary.NativeEndian.AppendUint64(dst, math.Float64bits(v.x))
	dst = binary.NativeEndian.AppendUint64(dst, math.Float64bits(v.y))
	return dst, nil
}

// UnmarshalBinary deserializes a vector produced by MarshalBinary.
func (v *Vec) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
