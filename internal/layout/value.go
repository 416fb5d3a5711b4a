package layout

import (
	"math"
	"strconv"
	"strings"
)

// Kind distinguishes the coerced attribute value types.
type Kind uint8

// Kind values enumerate the types an attribute value can coerce to.
const (
	KindInt Kind = iota
	KindFloat
	KindString
)

// Value keeps the coerced attribute types explicit instead of relying on
// runtime type inspection. Exactly one field is populated per Kind.
type Value struct {
	Kind  Kind    // Kind describes which value is populated.
	Int   int64   // Int holds the value when Kind == KindInt.
	Float float64 // Float holds the value when Kind == KindFloat.
	Str   string  // Str holds the value when Kind == KindString.
}

// IntValue creates an integer Value.
func IntValue(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

// FloatValue creates a floating-point Value.
func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// StringValue creates a string Value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Coerce converts a raw attribute value to its most specific type.
// Integer parse is attempted first, then floating-point; anything else
// stays a trimmed string. The chosen kind also determines how the value
// renders on serialization.
func Coerce(raw string) Value {
	trimmed := strings.TrimSpace(raw)

	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Value{Kind: KindInt, Int: n}
	}

	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Value{Kind: KindFloat, Float: f}
	}

	return Value{Kind: KindString, Str: trimmed}
}

// String renders the value in the client writer's format: integers
// without a decimal point, floats always with one, strings unquoted.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return formatFloat(v.Float)
	default:
		return v.Str
	}
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		// Keep the decimal point so the value stays float-typed on reparse.
		s += ".0"
	}

	return s
}
