package document

import (
	"fmt"

	"github.com/roach88/kquery/query"
)

// Document is a declarative description of one query.
//
// Example (YAML):
//
//	name: open-tickets
//	where:
//	  - field: status
//	    op: in
//	    value: [open, pending]
//	  - conj: or
//	    group:
//	      - {field: assignee, op: "=", value: "LOGINUSER()"}
//	      - {conj: and, field: priority, op: ">=", value: 3}
//	order_by:
//	  - {field: $id, direction: desc}
//	limit: 50
type Document struct {
	// Name identifies the document in journals and output. Optional.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Description is free text. Optional.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Where lists the top-level conditions in order.
	Where []Clause `yaml:"where,omitempty" json:"where,omitempty"`

	// OrderBy lists sort keys in order.
	OrderBy []Order `yaml:"order_by,omitempty" json:"order_by,omitempty"`

	// Limit and Offset are emitted only when set.
	Limit  *int `yaml:"limit,omitempty" json:"limit,omitempty"`
	Offset *int `yaml:"offset,omitempty" json:"offset,omitempty"`
}

// Clause is either a predicate (Field, Op, Value) or a nested Group.
type Clause struct {
	// Conj joins the clause to the one before it: "and" (default) or "or".
	Conj string `yaml:"conj,omitempty" json:"conj,omitempty"`

	Field string `yaml:"field,omitempty" json:"field,omitempty"`
	Op    string `yaml:"op,omitempty" json:"op,omitempty"`
	Value any    `yaml:"value,omitempty" json:"value,omitempty"`

	// Group holds nested clauses rendered in parentheses.
	Group []Clause `yaml:"group,omitempty" json:"group,omitempty"`
}

// Order is one sort key.
type Order struct {
	Field string `yaml:"field" json:"field"`
	// Direction is "asc" (default) or "desc".
	Direction string `yaml:"direction,omitempty" json:"direction,omitempty"`
}

// Conjunction values accepted in Clause.Conj.
const (
	ConjAnd = "and"
	ConjOr  = "or"
)

func (c Clause) isGroup() bool {
	return c.Group != nil
}

// Validate checks the document's shape. Field codes, operators, and values
// are checked later by the query builder.
func Validate(doc *Document) error {
	return validateClauses(doc.Where, "where")
}

func validateClauses(clauses []Clause, path string) error {
	for i, c := range clauses {
		at := fmt.Sprintf("%s[%d]", path, i)

		switch c.Conj {
		case "", ConjAnd, ConjOr:
		default:
			return fmt.Errorf("%s: conj must be %q or %q, got %q", at, ConjAnd, ConjOr, c.Conj)
		}

		hasPredicate := c.Field != "" || c.Op != "" || c.Value != nil
		if c.isGroup() && hasPredicate {
			return fmt.Errorf("%s: a clause has either field/op/value or group, not both", at)
		}
		if c.isGroup() {
			if err := validateClauses(c.Group, at+".group"); err != nil {
				return err
			}
			continue
		}
		if c.Field == "" {
			return fmt.Errorf("%s: field is required", at)
		}
		if c.Op == "" {
			return fmt.Errorf("%s: op is required", at)
		}
		if c.Value == nil {
			return fmt.Errorf("%s: value is required", at)
		}
	}
	return nil
}

// Builder turns the document into a query builder. The first rejected
// clause, order key, limit, or offset is returned as the error.
func (d *Document) Builder() (*query.Builder, error) {
	b := query.NewBuilder()
	for _, c := range d.Where {
		args, err := clauseArgs(c)
		if err != nil {
			return nil, err
		}
		if c.Conj == ConjOr {
			b.OrWhere(args[0], args[1:]...)
		} else {
			b.AndWhere(args[0], args[1:]...)
		}
	}
	for _, o := range d.OrderBy {
		dir := o.Direction
		if dir == "" {
			dir = "asc"
		}
		b.OrderBy(o.Field, dir)
	}
	if d.Limit != nil {
		b.Limit(*d.Limit)
	}
	if d.Offset != nil {
		b.Offset(*d.Offset)
	}
	if err := b.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

// Build renders the document as a query string. Documents built in code
// are shape-checked here; a failure is a *LoadError with ErrCodeInvalid,
// the same as from LoadFile.
func (d *Document) Build() (string, error) {
	if err := Validate(d); err != nil {
		return "", &LoadError{Code: ErrCodeInvalid, Message: err.Error()}
	}
	b, err := d.Builder()
	if err != nil {
		return "", fmt.Errorf("build %s: %w", d.label(), err)
	}
	return b.Build()
}

func (d *Document) label() string {
	if d.Name != "" {
		return fmt.Sprintf("query %q", d.Name)
	}
	return "query"
}

// clauseArgs returns the Where arguments for one clause. A group becomes
// a sub-expression built from its own clauses.
func clauseArgs(c Clause) ([]any, error) {
	if !c.isGroup() {
		return []any{c.Field, c.Op, c.Value}, nil
	}
	sub := query.New()
	for _, inner := range c.Group {
		args, err := clauseArgs(inner)
		if err != nil {
			return nil, err
		}
		if inner.Conj == ConjOr {
			sub.OrWhere(args[0], args[1:]...)
		} else {
			sub.AndWhere(args[0], args[1:]...)
		}
	}
	if err := sub.Err(); err != nil {
		return nil, err
	}
	return []any{sub}, nil
}
