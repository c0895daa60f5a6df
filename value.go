package dlist

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Value is a value that can be stored in a list. The only
// implementations are [Int], [Float], and [Text].
type Value interface {
	// String renders the value the way it appears inside of a list's
	// string form. Text is quoted, numbers are not.
	String() string

	// Equal reports whether the value is equal to v. Integers and
	// floats compare numerically with each other, while text is only
	// ever equal to other text.
	Equal(v Value) bool

	value()
}

type (
	Int   int64
	Float float64
	Text  string
)

// ValueOf converts v to a Value. It accepts any of Go's integer and
// floating-point kinds, strings, and existing Values. Anything else,
// including bools, results in an error wrapping [ErrInvalidValueType].
func ValueOf(v any) (Value, error) {
	switch v := v.(type) {
	case Value:
		return v, nil
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint:
		return uintValue(uint64(v))
	case uint8:
		return Int(v), nil
	case uint16:
		return Int(v), nil
	case uint32:
		return Int(v), nil
	case uint64:
		return uintValue(v)
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil
	case string:
		return Text(v), nil
	}

	return nil, fmt.Errorf("%w: got %T", ErrInvalidValueType, v)
}

func uintValue(v uint64) (Value, error) {
	if v > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrInvalidValueType, v)
	}
	return Int(v), nil
}

func (Int) value()   {}
func (Float) value() {}
func (Text) value()  {}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (i Int) Equal(v Value) bool {
	switch v := v.(type) {
	case Int:
		return i == v
	case Float:
		return v.Equal(i)
	default:
		return false
	}
}

// String formats f with the shortest representation that round-trips.
// Fixed notation is used for decimal exponents in [-4, 16), with a
// trailing ".0" for whole numbers, and scientific notation otherwise.
func (f Float) String() string {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}

	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.LastIndexByte(e, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return e
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func (f Float) Equal(v Value) bool {
	switch v := v.(type) {
	case Float:
		return f == v
	case Int:
		// Converting v to a float can round, so go the other way when
		// f is a whole number that fits.
		x := float64(f)
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return false
		}
		return int64(x) == int64(v)
	default:
		return false
	}
}

// String quotes t. Single quotes are used unless t contains a single
// quote and no double quotes.
func (t Text) String() string {
	s := string(t)
	q := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var buf strings.Builder
	buf.Grow(len(s) + 2)
	buf.WriteRune(q)
	for _, r := range s {
		switch {
		case r == q || r == '\\':
			buf.WriteByte('\\')
			buf.WriteRune(r)
		case r == '\n':
			buf.WriteString(`\n`)
		case r == '\r':
			buf.WriteString(`\r`)
		case r == '\t':
			buf.WriteString(`\t`)
		case unicode.IsPrint(r):
			buf.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&buf, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&buf, `\u%04x`, r)
		default:
			fmt.Fprintf(&buf, `\U%08x`, r)
		}
	}
	buf.WriteRune(q)

	return buf.String()
}

func (t Text) Equal(v Value) bool {
	o, ok := v.(Text)
	return ok && t == o
}
