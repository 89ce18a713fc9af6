package predicate

import (
	"regexp"
	"slices"

	"golang.org/x/text/unicode/norm"
)

// Operators is the allow-list of comparison operators.
var Operators = []string{"=", "!=", ">", "<", ">=", "<=", "in", "not in", "like", "not like"}

// Directions is the allow-list of ordering directions.
var Directions = []string{"asc", "desc"}

// validFieldCode matches record-store field codes: an optional `$` (system
// fields such as $id), then letters, digits, `_`, `・`, `＄`, `￥`.
var validFieldCode = regexp.MustCompile(`^\$?[\p{L}\p{M}\p{N}_・＄￥]+$`)

// NormalizeFieldCode returns the NFC form of a field code.
func NormalizeFieldCode(field string) string {
	return norm.NFC.String(field)
}

// ValidateFieldCode checks a field code and returns its normalized form.
func ValidateFieldCode(field string) (string, error) {
	normalized := NormalizeFieldCode(field)
	if !validFieldCode.MatchString(normalized) {
		return "", NewError(ErrCodeInvalidFieldCode, field,
			"field code may only contain letters, digits, '_', '・', '＄', '￥' and a leading '$'")
	}
	return normalized, nil
}

// ValidateOperator checks op against the operator allow-list.
func ValidateOperator(op string) error {
	if !slices.Contains(Operators, op) {
		return NewError(ErrCodeInvalidOperator, op, "operator must be one of %v", Operators)
	}
	return nil
}

// ValidateDirection checks an ordering direction.
func ValidateDirection(dir string) error {
	if !slices.Contains(Directions, dir) {
		return NewError(ErrCodeInvalidDirection, dir, "direction must be one of %v", Directions)
	}
	return nil
}

// isListOperator reports whether op requires a sequence value.
func isListOperator(op string) bool {
	return op == "in" || op == "not in"
}
