package query

import (
	"github.com/roach88/kquery/internal/predicate"
	"github.com/roach88/kquery/internal/tree"
)

// Expr accumulates where-conditions. It has no ordering or paging; use
// Builder for a complete query. An Expr passed to another builder's Where
// becomes a parenthesized group.
type Expr struct {
	root *tree.Group
	err  error
}

// New creates an empty Expr.
func New() *Expr {
	return &Expr{root: tree.NewGroup()}
}

// Where is an alias for AndWhere.
func (e *Expr) Where(fieldOrExpr any, args ...any) *Expr {
	return e.AndWhere(fieldOrExpr, args...)
}

// AndWhere joins a condition with "and".
//
// fieldOrExpr is either a field code followed by an operator and a value,
// or an *Expr / *Builder whose conditions are appended as one group. A
// sub-expression with a recorded error is rejected with that error. A
// *Builder must have no OrderBy, Limit, or Offset set.
func (e *Expr) AndWhere(fieldOrExpr any, args ...any) *Expr {
	e.record(e.appendWhere(tree.And, fieldOrExpr, args))
	return e
}

// OrWhere joins a condition with "or". Arguments are as for AndWhere.
func (e *Expr) OrWhere(fieldOrExpr any, args ...any) *Expr {
	e.record(e.appendWhere(tree.Or, fieldOrExpr, args))
	return e
}

// String renders the conditions. The outermost level is never
// parenthesized. An Expr without conditions renders "".
func (e *Expr) String() string {
	return e.root.Render(false)
}

// IsEmpty reports whether no condition has been appended.
func (e *Expr) IsEmpty() bool {
	return e.root.IsEmpty()
}

// Err returns the first error recorded by a rejected call, or nil.
func (e *Expr) Err() error {
	return e.err
}

func (e *Expr) record(err error) {
	if err != nil && e.err == nil {
		e.err = err
	}
}

// appendWhere dispatches on the first argument. Nothing is appended when
// an error is returned.
func (e *Expr) appendWhere(conj tree.Conjunction, fieldOrExpr any, args []any) error {
	switch v := fieldOrExpr.(type) {
	case *Expr:
		if v == nil {
			return predicate.NewInvalidOperandError(fieldOrExpr)
		}
		return e.appendExpr(conj, v, args)
	case *Builder:
		if v == nil {
			return predicate.NewInvalidOperandError(fieldOrExpr)
		}
		if v.hasClauses() {
			return predicate.NewError(predicate.ErrCodeInvalidOperandType, "*query.Builder",
				"a grafted builder must not carry order by, limit or offset")
		}
		return e.appendExpr(conj, v.expr, args)
	case string:
		return e.appendPredicate(conj, v, args)
	default:
		return predicate.NewInvalidOperandError(fieldOrExpr)
	}
}

// appendExpr grafts a deep copy of sub's conditions as one group. An
// empty sub-expression is silently ignored; a failed one passes its error up.
func (e *Expr) appendExpr(conj tree.Conjunction, sub *Expr, args []any) error {
	if sub.err != nil {
		return sub.err
	}
	if len(args) != 0 {
		return predicate.NewError(predicate.ErrCodeInvalidOperandType, args,
			"a sub-expression takes no operator or value")
	}
	if sub.root.IsEmpty() {
		return nil
	}
	e.root.Append(conj, sub.root.Clone())
	return nil
}

func (e *Expr) appendPredicate(conj tree.Conjunction, field string, args []any) error {
	if len(args) != 2 {
		return predicate.NewError(predicate.ErrCodeInvalidOperandType, args,
			"field code %q needs an operator and a value", field)
	}
	op, ok := args[0].(string)
	if !ok {
		return predicate.NewError(predicate.ErrCodeInvalidOperator, args[0],
			"operator must be a string")
	}

	clause, err := predicate.GenWhereClause(field, op, args[1])
	if err != nil {
		return err
	}
	e.root.Append(conj, tree.NewLeaf(clause))
	return nil
}
