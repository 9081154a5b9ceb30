// Package pandoc models the pandoc option surface: the schema registry of
// recognized options, directive value validation, binary detection, and the
// subprocess invocation boundary.
package pandoc

import (
	"fmt"
	"strconv"
)

// ValueKind discriminates the variants of a directive value.
type ValueKind int

const (
	// ValueNull represents an explicit null or absent value.
	ValueNull ValueKind = iota
	// ValueBool represents a boolean value.
	ValueBool
	// ValueNumber represents a numeric value.
	ValueNumber
	// ValueString represents a string value.
	ValueString
	// ValueList represents a sequence of values.
	ValueList
)

// Value is a tagged variant holding one decoded directive value. Directive
// values come from user-authored YAML, so the shape is open-ended; Value pins
// it down to the four shapes the compiler knows how to emit.
type Value struct {
	Kind   ValueKind
	Bool   bool
	Number float64
	Str    string
	List   []Value
}

// Null returns the null value.
func Null() Value { return Value{Kind: ValueNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{Kind: ValueBool, Bool: b} }

// Number wraps a number.
func Number(n float64) Value { return Value{Kind: ValueNumber, Number: n} }

// String wraps a string.
func String(s string) Value { return Value{Kind: ValueString, Str: s} }

// List wraps a sequence.
func List(vs ...Value) Value { return Value{Kind: ValueList, List: vs} }

// FromYAML converts a value decoded by yaml.v3 into a Value. Mappings and
// other non-scalar, non-sequence shapes are rejected: no pandoc option takes
// a structured value on the command line.
func FromYAML(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(v), nil
	case int:
		return Number(float64(v)), nil
	case int64:
		return Number(float64(v)), nil
	case uint64:
		return Number(float64(v)), nil
	case float64:
		return Number(v), nil
	case string:
		return String(v), nil
	case []any:
		list := make([]Value, 0, len(v))
		for _, el := range v {
			ev, err := FromYAML(el)
			if err != nil {
				return Value{}, err
			}
			list = append(list, ev)
		}
		return Value{Kind: ValueList, List: list}, nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}

// Format renders a scalar value as the text that goes after the equals sign
// in an argument token. Lists have no single-token rendering and panic;
// callers emit one token per element.
func (v Value) Format() string {
	switch v.Kind {
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	case ValueNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case ValueString:
		return v.Str
	case ValueNull:
		return ""
	default:
		panic("pandoc: Format called on a list value")
	}
}

// String implements fmt.Stringer for diagnostics.
func (k ValueKind) String() string {
	switch k {
	case ValueNull:
		return "null"
	case ValueBool:
		return "boolean"
	case ValueNumber:
		return "number"
	case ValueString:
		return "string"
	case ValueList:
		return "list"
	default:
		return "unknown"
	}
}
