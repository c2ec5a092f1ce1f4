package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Type
		wantErr  bool
	}{
		{name: "int", input: "int", expected: TypeInt},
		{name: "integer alias", input: "integer", expected: TypeInt},
		{name: "float64 alias", input: "float64", expected: TypeFloat},
		{name: "case insensitive", input: "STRING", expected: TypeString},
		{name: "surrounding whitespace", input: "  bool ", expected: TypeBool},
		{name: "empty means any", input: "", expected: TypeAny},
		{name: "octal", input: "octal", expected: TypeOctal},
		{name: "hex", input: "hex", expected: TypeHex},
		{name: "literal", input: "literal", expected: TypeLiteral},
		{name: "unknown type", input: "complex128", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := ParseType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, typ)
		})
	}
}

func TestTypeValid(t *testing.T) {
	for _, typ := range []Type{TypeAny, TypeString, TypeInt, TypeFloat, TypeBool, TypeOctal, TypeHex, TypeLiteral} {
		assert.True(t, typ.Valid(), "expected %q to be valid", typ)
	}
	assert.False(t, Type("").Valid())
	assert.False(t, Type("rune").Valid())
}

func TestToken(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		token    string
		expected any
		wantErr  bool
	}{
		{name: "string identity", typ: TypeString, token: "hello", expected: "hello"},
		{name: "any identity", typ: TypeAny, token: "hello", expected: "hello"},
		{name: "decimal int", typ: TypeInt, token: "88", expected: 88},
		{name: "negative int", typ: TypeInt, token: "-7", expected: -7},
		{name: "int rejects float", typ: TypeInt, token: "1.5", wantErr: true},
		{name: "int rejects text", typ: TypeInt, token: "abc", wantErr: true},
		{name: "float", typ: TypeFloat, token: "12.3", expected: 12.3},
		{name: "float from integer token", typ: TypeFloat, token: "4", expected: 4.0},
		{name: "float rejects text", typ: TypeFloat, token: "twelve", wantErr: true},
		{name: "bool true", typ: TypeBool, token: "true", expected: true},
		{name: "bool numeric", typ: TypeBool, token: "0", expected: false},
		{name: "bool rejects text", typ: TypeBool, token: "yes", wantErr: true},
		{name: "octal", typ: TypeOctal, token: "777", expected: 511},
		{name: "octal rejects 8", typ: TypeOctal, token: "88", wantErr: true},
		{name: "hex lowercase", typ: TypeHex, token: "ff", expected: 255},
		{name: "hex uppercase", typ: TypeHex, token: "FF", expected: 255},
		{name: "hex rejects text", typ: TypeHex, token: "xyz", wantErr: true},
		{name: "unknown type", typ: Type("rune"), token: "a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Token(tt.typ, tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected any
		wantErr  bool
	}{
		{name: "double quoted string", token: `"hello"`, expected: "hello"},
		{name: "single quoted string", token: "'hi'", expected: "hi"},
		{name: "integer", token: "42", expected: 42},
		{name: "negative integer", token: "-42", expected: -42},
		{name: "float", token: "3.14", expected: 3.14},
		{name: "bool", token: "true", expected: true},
		{name: "unterminated quote", token: `"oops`, wantErr: true},
		{name: "bare identifier", token: "hello", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Literal(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		value    any
		expected any
		wantErr  bool
	}{
		{name: "any passes through", typ: TypeAny, value: int64(4), expected: int64(4)},
		{name: "any passes through nil", typ: TypeAny, value: nil, expected: nil},
		{name: "int64 to int", typ: TypeInt, value: int64(4), expected: 4},
		{name: "uint64 to int", typ: TypeInt, value: uint64(9), expected: 9},
		{name: "float64 to int truncates", typ: TypeInt, value: 4.9, expected: 4},
		{name: "string to int", typ: TypeInt, value: "17", expected: 17},
		{name: "bool to int fails", typ: TypeInt, value: true, wantErr: true},
		{name: "int64 to float", typ: TypeFloat, value: int64(4), expected: 4.0},
		{name: "float identity", typ: TypeFloat, value: 12.3, expected: 12.3},
		{name: "string to float", typ: TypeFloat, value: "2.5", expected: 2.5},
		{name: "list to float fails", typ: TypeFloat, value: []any{1}, wantErr: true},
		{name: "string identity", typ: TypeString, value: "hi", expected: "hi"},
		{name: "int to string", typ: TypeString, value: int64(7), expected: "7"},
		{name: "bool identity", typ: TypeBool, value: true, expected: true},
		{name: "string to bool", typ: TypeBool, value: "false", expected: false},
		{name: "literal from string", typ: TypeLiteral, value: `"x"`, expected: "x"},
		{name: "literal non-string passes through", typ: TypeLiteral, value: 5.0, expected: 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Coerce(tt.typ, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}
