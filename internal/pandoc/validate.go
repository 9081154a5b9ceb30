package pandoc

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationResult reports whether a (name, value) pair satisfies the
// registry. Invalid directives are dropped by the compiler with the
// diagnostic surfaced to the user; validation never aborts an export.
type ValidationResult struct {
	OK         bool
	Diagnostic string
}

func valid() ValidationResult { return ValidationResult{OK: true} }

func invalid(format string, args ...any) ValidationResult {
	return ValidationResult{OK: false, Diagnostic: fmt.Sprintf(format, args...)}
}

// Validate checks a directive value against the registry entry for name.
// Unknown names validate as OK: the registry is an open catalogue and
// uncatalogued options are passed through to pandoc untouched.
//
// A list value is validated element-wise with the scalar rule for the
// option; the result is invalid only if at least one element is invalid,
// and the diagnostic covers every failing element. The compiler still
// emits valid siblings of an invalid element.
func Validate(reg Registry, name string, v Value) ValidationResult {
	spec, known := reg.Lookup(name)
	if !known {
		return valid()
	}

	if v.Kind == ValueList {
		var problems []string
		for i, el := range v.List {
			if res := validateScalar(spec, el); !res.OK {
				problems = append(problems, fmt.Sprintf("element %d: %s", i, res.Diagnostic))
			}
		}
		if len(problems) > 0 {
			return invalid("%s", strings.Join(problems, "; "))
		}
		return valid()
	}

	return validateScalar(spec, v)
}

func validateScalar(spec OptionSpec, v Value) ValidationResult {
	// Null is skipped by the compiler before emission, never reported.
	if v.Kind == ValueNull {
		return valid()
	}

	switch spec.Kind {
	case KindBool:
		// false on a flag-only option is a silent no-op upstream, so the
		// only thing to reject here is a non-boolean value.
		if v.Kind != ValueBool {
			return invalid("option %q expects a boolean, got %s", spec.Name, v.Kind)
		}
		return valid()

	case KindNumber:
		switch v.Kind {
		case ValueNumber:
			return valid()
		case ValueString:
			if _, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64); err == nil {
				return valid()
			}
			return invalid("option %q expects a number, got %q", spec.Name, v.Str)
		default:
			return invalid("option %q expects a number, got %s", spec.Name, v.Kind)
		}

	case KindEnum:
		if v.Kind != ValueString {
			return invalid("option %q expects one of [%s], got %s",
				spec.Name, strings.Join(spec.Choices, ", "), v.Kind)
		}
		for _, c := range spec.Choices {
			if v.Str == c {
				return valid()
			}
		}
		return invalid("option %q expects one of [%s], got %q",
			spec.Name, strings.Join(spec.Choices, ", "), v.Str)

	case KindString, KindFile:
		if v.Kind != ValueString {
			return invalid("option %q expects a string, got %s", spec.Name, v.Kind)
		}
		return valid()

	default:
		return valid()
	}
}
