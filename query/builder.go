package query

import (
	"strconv"
	"strings"

	"github.com/roach88/kquery/internal/predicate"
)

// Builder is an Expr plus ordering, limit, and offset. Clauses can be
// added in any order; Build always emits them as
//
//	<conditions> order by ... limit n offset m
type Builder struct {
	expr   *Expr
	orders []string
	limit  string
	offset string
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{expr: New()}
}

// Where is an alias for AndWhere.
func (b *Builder) Where(fieldOrExpr any, args ...any) *Builder {
	b.expr.Where(fieldOrExpr, args...)
	return b
}

// AndWhere joins a condition with "and". See Expr.AndWhere.
func (b *Builder) AndWhere(fieldOrExpr any, args ...any) *Builder {
	b.expr.AndWhere(fieldOrExpr, args...)
	return b
}

// OrWhere joins a condition with "or". See Expr.OrWhere.
func (b *Builder) OrWhere(fieldOrExpr any, args ...any) *Builder {
	b.expr.OrWhere(fieldOrExpr, args...)
	return b
}

// OrderBy adds a sort key. Repeated calls add further keys:
// `order by $id desc,name asc`.
func (b *Builder) OrderBy(field, direction string) *Builder {
	normalized, err := predicate.ValidateFieldCode(field)
	if err != nil {
		b.expr.record(err)
		return b
	}
	if err := predicate.ValidateDirection(direction); err != nil {
		b.expr.record(err)
		return b
	}
	b.orders = append(b.orders, normalized+" "+direction)
	return b
}

// Limit sets the maximum number of records. The last call wins.
func (b *Builder) Limit(n int) *Builder {
	if n < 0 {
		b.expr.record(predicate.NewError(predicate.ErrCodeInvalidValueType, n,
			"limit must not be negative"))
		return b
	}
	b.limit = "limit " + strconv.Itoa(n)
	return b
}

// Offset sets the number of records to skip. The last call wins.
func (b *Builder) Offset(n int) *Builder {
	if n < 0 {
		b.expr.record(predicate.NewError(predicate.ErrCodeInvalidValueType, n,
			"offset must not be negative"))
		return b
	}
	b.offset = "offset " + strconv.Itoa(n)
	return b
}

// hasClauses reports whether ordering or paging is set.
func (b *Builder) hasClauses() bool {
	return len(b.orders) > 0 || b.limit != "" || b.offset != ""
}

// Expr returns the condition half of the builder.
func (b *Builder) Expr() *Expr {
	return b.expr
}

// Err returns the first error recorded by a rejected call, or nil.
func (b *Builder) Err() error {
	return b.expr.Err()
}

// Build renders the query. Empty clauses are skipped, so a Builder with
// nothing set builds "". Build does not modify the builder and may be
// called repeatedly.
func (b *Builder) Build() (string, error) {
	if err := b.expr.Err(); err != nil {
		return "", err
	}

	var order string
	if len(b.orders) > 0 {
		order = "order by " + strings.Join(b.orders, ",")
	}

	parts := make([]string, 0, 4)
	for _, clause := range []string{b.expr.String(), order, b.limit, b.offset} {
		if clause != "" {
			parts = append(parts, clause)
		}
	}
	return strings.Join(parts, " "), nil
}
