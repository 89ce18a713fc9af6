package predicate

import (
	"errors"
	"fmt"
)

// Error is returned when a predicate, ordering, or paging argument cannot
// be turned into query text. Errors are detected before anything is
// appended, so the builder state is left unchanged.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Value is a textual description of the offending argument.
	Value string
}

// ErrorCode categorizes builder errors.
type ErrorCode string

const (
	// ErrCodeInvalidValueType indicates a value that is not a string,
	// an integer, or a sequence of those.
	ErrCodeInvalidValueType ErrorCode = "INVALID_VALUE_TYPE"

	// ErrCodeInvalidOperandType indicates `in`/`not in` used with a
	// non-sequence value, or a where argument that is neither a field
	// code nor a sub-expression.
	ErrCodeInvalidOperandType ErrorCode = "INVALID_OPERAND_TYPE"

	// ErrCodeInvalidFieldCode indicates a field code with characters the
	// record store does not allow.
	ErrCodeInvalidFieldCode ErrorCode = "INVALID_FIELD_CODE"

	// ErrCodeInvalidOperator indicates an operator outside the allow-list.
	ErrCodeInvalidOperator ErrorCode = "INVALID_OPERATOR"

	// ErrCodeInvalidDirection indicates an order direction other than
	// asc or desc.
	ErrCodeInvalidDirection ErrorCode = "INVALID_DIRECTION"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s (given %s)", e.Code, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates an Error describing value.
func NewError(code ErrorCode, value any, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Value:   describe(value),
	}
}

// describe renders a value and its Go type for error messages.
func describe(v any) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v (%T)", v, v)
}

// NewInvalidOperandError reports a where argument of an unsupported kind.
func NewInvalidOperandError(v any) *Error {
	return NewError(ErrCodeInvalidOperandType, v,
		"first argument must be a field code or a sub-expression")
}

func hasCode(err error, code ErrorCode) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

// IsInvalidValueType returns true if err is an INVALID_VALUE_TYPE error.
// Uses errors.As to handle wrapped errors.
func IsInvalidValueType(err error) bool {
	return hasCode(err, ErrCodeInvalidValueType)
}

// IsInvalidOperandType returns true if err is an INVALID_OPERAND_TYPE error.
func IsInvalidOperandType(err error) bool {
	return hasCode(err, ErrCodeInvalidOperandType)
}

// IsInvalidFieldCode returns true if err is an INVALID_FIELD_CODE error.
func IsInvalidFieldCode(err error) bool {
	return hasCode(err, ErrCodeInvalidFieldCode)
}

// IsInvalidOperator returns true if err is an INVALID_OPERATOR error.
func IsInvalidOperator(err error) bool {
	return hasCode(err, ErrCodeInvalidOperator)
}

// IsInvalidDirection returns true if err is an INVALID_DIRECTION error.
func IsInvalidDirection(err error) bool {
	return hasCode(err, ErrCodeInvalidDirection)
}
