// Package query builds kintone-style record query strings.
//
// Conditions are accumulated with Where, AndWhere, and OrWhere. A field
// code starts a predicate; an *Expr starts a parenthesized group:
//
//	sub := query.New().
//	    Where("piga", "<", 1).
//	    OrWhere("fuga", "<", 1)
//
//	q, err := query.NewBuilder().
//	    Where("huga", "<", 1).
//	    Where(sub).
//	    OrderBy("$id", "desc").
//	    Limit(50).
//	    Build()
//
//	// huga < 1 and (piga < 1 or fuga < 1) order by $id desc limit 50
//
// Appending a sub-expression copies its conditions; the sub-expression
// stays independent and can be reused. Appending an empty sub-expression
// is a no-op. Appending a sub-expression that has a recorded error records
// that error on the parent. A *Builder can be appended too, but only while
// it has no OrderBy, Limit, or Offset; those clauses belong to the
// outermost query.
//
// Calls chain, so errors are recorded instead of returned. The first
// rejected call sets the error reported by Err and Build and leaves the
// conditions untouched; later calls still apply.
package query
