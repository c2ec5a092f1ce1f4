package convert

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies one conversion target from the closed set supported by the
// readers. The zero value is not valid; use TypeString or TypeAny for
// identity conversion.
type Type string

// Supported conversion targets.
const (
	// TypeAny performs no conversion; values pass through as-is.
	TypeAny Type = "any"

	// TypeString returns the token unchanged.
	TypeString Type = "string"

	// TypeInt converts a decimal integer token to int.
	TypeInt Type = "int"

	// TypeFloat converts a numeric token to float64.
	TypeFloat Type = "float"

	// TypeBool converts a boolean token ("true", "false", "1", "0", ...) to bool.
	TypeBool Type = "bool"

	// TypeOctal converts a base-8 integer token to int.
	TypeOctal Type = "octal"

	// TypeHex converts a base-16 integer token to int.
	TypeHex Type = "hex"

	// TypeLiteral converts a self-describing literal to the type it denotes:
	// quoted strings unquote, integers become int, floats become float64,
	// and booleans become bool.
	TypeLiteral Type = "literal"
)

// ParseType parses a textual type name (as it appears in placeholder files
// and configuration) into a Type. Matching is case-insensitive and accepts
// the common aliases "str", "integer", "float64", "double", and "boolean".
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "any", "":
		return TypeAny, nil
	case "string", "str":
		return TypeString, nil
	case "int", "integer":
		return TypeInt, nil
	case "float", "float64", "double":
		return TypeFloat, nil
	case "bool", "boolean":
		return TypeBool, nil
	case "octal", "oct":
		return TypeOctal, nil
	case "hex", "hexadecimal":
		return TypeHex, nil
	case "literal":
		return TypeLiteral, nil
	default:
		return "", fmt.Errorf("unknown conversion type %q", s)
	}
}

// Valid reports whether t is one of the supported conversion targets.
func (t Type) Valid() bool {
	switch t {
	case TypeAny, TypeString, TypeInt, TypeFloat, TypeBool, TypeOctal, TypeHex, TypeLiteral:
		return true
	default:
		return false
	}
}

// Token converts a single raw input token to the target type t.
func Token(t Type, s string) (any, error) {
	switch t {
	case TypeAny, TypeString:
		return s, nil
	case TypeInt:
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not a decimal integer", s)
		}
		return n, nil
	case TypeFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", s)
		}
		return f, nil
	case TypeBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not a boolean", s)
		}
		return b, nil
	case TypeOctal:
		n, err := strconv.ParseInt(s, 8, 0)
		if err != nil {
			return nil, fmt.Errorf("%q is not an octal integer", s)
		}
		return int(n), nil
	case TypeHex:
		n, err := strconv.ParseInt(s, 16, 0)
		if err != nil {
			return nil, fmt.Errorf("%q is not a hexadecimal integer", s)
		}
		return int(n), nil
	case TypeLiteral:
		return Literal(s)
	default:
		return nil, fmt.Errorf("unknown conversion type %q", string(t))
	}
}

// Literal converts a self-describing literal token to the Go value it
// denotes. Quoted strings (single, double, or backquoted) unquote; otherwise
// integer, float, and boolean representations are tried in that order.
func Literal(s string) (any, error) {
	if len(s) >= 2 {
		switch s[0] {
		case '"', '`':
			unquoted, err := strconv.Unquote(s)
			if err != nil {
				return nil, fmt.Errorf("%q is not a valid quoted string", s)
			}
			return unquoted, nil
		case '\'':
			if s[len(s)-1] != '\'' {
				return nil, fmt.Errorf("%q is not a valid quoted string", s)
			}
			return s[1 : len(s)-1], nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b, nil
	}
	return nil, fmt.Errorf("%q is not a recognized literal", s)
}

// Coerce converts an already-typed value v to the target type t. It handles
// the concrete numeric types an expression evaluator produces (int64, uint64,
// float64) as well as plain tokens, so evaluated results and raw strings go
// through the same conversion surface.
func Coerce(t Type, v any) (any, error) {
	switch t {
	case TypeAny:
		return v, nil
	case TypeString:
		switch s := v.(type) {
		case string:
			return s, nil
		default:
			return fmt.Sprint(v), nil
		}
	case TypeInt, TypeOctal, TypeHex:
		switch n := v.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		case uint64:
			return int(n), nil
		case float64:
			return int(n), nil
		case string:
			return Token(t, n)
		default:
			return nil, fmt.Errorf("cannot convert %T to integer", v)
		}
	case TypeFloat:
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case uint64:
			return float64(n), nil
		case string:
			return Token(TypeFloat, n)
		default:
			return nil, fmt.Errorf("cannot convert %T to float", v)
		}
	case TypeBool:
		switch b := v.(type) {
		case bool:
			return b, nil
		case string:
			return Token(TypeBool, b)
		default:
			return nil, fmt.Errorf("cannot convert %T to bool", v)
		}
	case TypeLiteral:
		if s, ok := v.(string); ok {
			return Literal(s)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown conversion type %q", string(t))
	}
}
