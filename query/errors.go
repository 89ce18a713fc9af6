package query

import "github.com/roach88/kquery/internal/predicate"

// Error is returned by Err and Build when a where, order, limit, or offset
// call was rejected. Inspect Code or use the Is* helpers.
type Error = predicate.Error

// ErrorCode categorizes builder errors.
type ErrorCode = predicate.ErrorCode

const (
	ErrCodeInvalidValueType   = predicate.ErrCodeInvalidValueType
	ErrCodeInvalidOperandType = predicate.ErrCodeInvalidOperandType
	ErrCodeInvalidFieldCode   = predicate.ErrCodeInvalidFieldCode
	ErrCodeInvalidOperator    = predicate.ErrCodeInvalidOperator
	ErrCodeInvalidDirection   = predicate.ErrCodeInvalidDirection
)

// Error classification helpers. They see through wrapped errors.
var (
	IsInvalidValueType   = predicate.IsInvalidValueType
	IsInvalidOperandType = predicate.IsInvalidOperandType
	IsInvalidFieldCode   = predicate.IsInvalidFieldCode
	IsInvalidOperator    = predicate.IsInvalidOperator
	IsInvalidDirection   = predicate.IsInvalidDirection
)
