package predicate

import (
	"reflect"
	"strconv"
	"strings"
)

// GenWhereClause formats `field op value`.
//
// The field code and operator are validated first. `in` and `not in`
// require a sequence value. The returned text uses the NFC form of field.
func GenWhereClause(field, op string, value any) (string, error) {
	normalized, err := ValidateFieldCode(field)
	if err != nil {
		return "", err
	}
	if err := ValidateOperator(op); err != nil {
		return "", err
	}
	if isListOperator(op) && !isSequence(value) {
		return "", NewError(ErrCodeInvalidOperandType, value,
			"operator %q requires a list value", op)
	}

	formatted, err := FormatValue(value)
	if err != nil {
		return "", err
	}
	return normalized + " " + op + " " + formatted, nil
}

// FormatValue renders a predicate value.
//
//   - recognized function calls (see Functions) are emitted verbatim
//   - other strings are double-quoted with embedded `"` escaped as `\"`
//   - integers of any Go integer kind are emitted as decimal digits
//   - slices and arrays are formatted element-wise, comma-joined and
//     parenthesized; byte slices and arrays are rejected
//
// Anything else yields an INVALID_VALUE_TYPE error.
func FormatValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return formatString(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	}

	if value == nil {
		return "", NewError(ErrCodeInvalidValueType, value,
			"value must be a string, an integer, or a list of those")
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return formatString(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return "", NewError(ErrCodeInvalidValueType, value,
				"byte slices are not accepted; convert to string")
		}
		return formatList(rv)
	default:
		return "", NewError(ErrCodeInvalidValueType, value,
			"value must be a string, an integer, or a list of those")
	}
}

func formatString(s string) string {
	if IsFunction(s) {
		return s
	}
	return `"` + EscapeDoubleQuote(s) + `"`
}

// EscapeDoubleQuote prefixes every `"` with a backslash. Nothing else is
// escaped.
func EscapeDoubleQuote(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func formatList(rv reflect.Value) (string, error) {
	parts := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		part, err := FormatValue(rv.Index(i).Interface())
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	return "(" + strings.Join(parts, ",") + ")", nil
}

func isSequence(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}
