package predicate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	type label string

	testCases := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "string", value: "hoge", expected: `"hoge"`},
		{name: "empty string", value: "", expected: `""`},
		{name: "int", value: 10, expected: "10"},
		{name: "negative int", value: -3, expected: "-3"},
		{name: "int64", value: int64(1 << 40), expected: "1099511627776"},
		{name: "uint8", value: uint8(7), expected: "7"},
		{name: "named string type", value: label("x"), expected: `"x"`},
		{name: "string list", value: []string{"apple", "banana", "orange"}, expected: `("apple","banana","orange")`},
		{name: "int list", value: []int{1, 2, 4}, expected: "(1,2,4)"},
		{name: "mixed list", value: []any{"a", 1, "NOW()"}, expected: `("a",1,NOW())`},
		{name: "array", value: [2]int{3, 4}, expected: "(3,4)"},
		{name: "empty list", value: []string{}, expected: "()"},
		{name: "nested list", value: []any{[]int{1}, "b"}, expected: `((1),"b")`},
		{name: "function", value: "NOW()", expected: "NOW()"},
		{name: "quote escaped", value: `ho"ge`, expected: `"ho\"ge"`},
		{name: "backslash untouched", value: `a\b`, expected: `"a\b"`},
		{name: "japanese", value: "レコード", expected: `"レコード"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := FormatValue(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestFormatValue_InvalidType(t *testing.T) {
	testCases := []struct {
		name  string
		value any
	}{
		{name: "nil", value: nil},
		{name: "float", value: 1.5},
		{name: "bool", value: true},
		{name: "byte slice", value: []byte("ab")},
		{name: "byte array", value: [2]byte{'a', 'b'}},
		{name: "map", value: map[string]int{"a": 1}},
		{name: "struct", value: struct{ A int }{1}},
		{name: "list with float", value: []any{"a", 2.5}},
		{name: "list with nil", value: []any{nil}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FormatValue(tc.value)
			require.Error(t, err)
			assert.True(t, IsInvalidValueType(err), "got %v", err)
		})
	}
}

func TestFormatValue_ErrorNamesValue(t *testing.T) {
	_, err := FormatValue(2.5)
	require.Error(t, err)

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrCodeInvalidValueType, pe.Code)
	assert.Contains(t, pe.Value, "2.5")
	assert.Contains(t, pe.Value, "float64")
	assert.Contains(t, err.Error(), "INVALID_VALUE_TYPE")
}

func TestEscapeDoubleQuote_PreservesCount(t *testing.T) {
	inputs := []string{`ho"ge`, `"""`, `no quotes`, `a"b"c"`, `piga"""`}

	for _, in := range inputs {
		out := EscapeDoubleQuote(in)
		assert.Equal(t, strings.Count(in, `"`), strings.Count(out, `\"`), "input %q", in)
		assert.Equal(t, strings.Count(in, `"`), strings.Count(out, `"`), "input %q", in)
	}
}

func TestGenWhereClause(t *testing.T) {
	testCases := []struct {
		name     string
		field    string
		op       string
		value    any
		expected string
	}{
		{name: "equals string", field: "name", op: "=", value: "hoge", expected: `name = "hoge"`},
		{name: "greater int", field: "age", op: ">", value: 10, expected: "age > 10"},
		{name: "like", field: "name", op: "like", value: "hog", expected: `name like "hog"`},
		{name: "in", field: "favorite", op: "in", value: []string{"apple", "banana", "orange"}, expected: `favorite in ("apple","banana","orange")`},
		{name: "not in", field: "favorite", op: "not in", value: []string{"kiwi", "cherry"}, expected: `favorite not in ("kiwi","cherry")`},
		{name: "system field", field: "$id", op: ">=", value: 100, expected: "$id >= 100"},
		{name: "japanese field", field: "レコード番号", op: "!=", value: 0, expected: "レコード番号 != 0"},
		{name: "function value", field: "time", op: "=", value: "NOW()", expected: "time = NOW()"},
		{name: "out of range function quoted", field: "time", op: "=", value: "THIS_MONTH(81)", expected: `time = "THIS_MONTH(81)"`},
		{name: "escaped list", field: "name", op: "in", value: []string{`ho"ge`, `po"ga`, `piga"""`}, expected: `name in ("ho\"ge","po\"ga","piga\"\"\"")`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := GenWhereClause(tc.field, tc.op, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestGenWhereClause_NormalizesFieldCode(t *testing.T) {
	// カ followed by a combining voiced sound mark composes to ガ
	decomposed := "\u30ab\u3099"
	out, err := GenWhereClause(decomposed, "=", 1)
	require.NoError(t, err)
	assert.Equal(t, "\u30ac = 1", out)
}

func TestGenWhereClause_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		field string
		op    string
		value any
		check func(error) bool
	}{
		{name: "in with scalar", field: "f", op: "in", value: "apple", check: IsInvalidOperandType},
		{name: "not in with int", field: "f", op: "not in", value: 3, check: IsInvalidOperandType},
		{name: "in with nil", field: "f", op: "in", value: nil, check: IsInvalidOperandType},
		{name: "bad value", field: "f", op: "=", value: 1.5, check: IsInvalidValueType},
		{name: "bad list element", field: "f", op: "in", value: []any{true}, check: IsInvalidValueType},
		{name: "byte slice", field: "f", op: "=", value: []byte("ab"), check: IsInvalidValueType},
		{name: "byte slice with in", field: "f", op: "in", value: []byte("ab"), check: IsInvalidValueType},
		{name: "injection in field", field: `レコード番号 = "1") or レコード番号 != "0" or (レコード番号`, op: "=", value: 1, check: IsInvalidFieldCode},
		{name: "empty field", field: "", op: "=", value: 1, check: IsInvalidFieldCode},
		{name: "field with space", field: "first name", op: "=", value: 1, check: IsInvalidFieldCode},
		{name: "injection in operator", field: "レコード番号", op: ") or レコード番号 != 0 or (", value: 1, check: IsInvalidOperator},
		{name: "unknown operator", field: "f", op: "==", value: 1, check: IsInvalidOperator},
		{name: "uppercase operator", field: "f", op: "IN", value: []int{1}, check: IsInvalidOperator},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := GenWhereClause(tc.field, tc.op, tc.value)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.True(t, tc.check(err), "unexpected error: %v", err)
		})
	}
}

func TestIsHelpers_Wrapped(t *testing.T) {
	_, err := GenWhereClause("f", "in", 1)
	wrapped := fmt.Errorf("building query: %w", err)

	assert.True(t, IsInvalidOperandType(wrapped))
	assert.False(t, IsInvalidValueType(wrapped))
	assert.False(t, IsInvalidOperandType(fmt.Errorf("plain")))
}

func TestValidateDirection(t *testing.T) {
	require.NoError(t, ValidateDirection("asc"))
	require.NoError(t, ValidateDirection("desc"))

	err := ValidateDirection("sideways")
	require.Error(t, err)
	assert.True(t, IsInvalidDirection(err))
}
