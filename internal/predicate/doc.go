// Package predicate turns (field, operator, value) triples into the text of
// a single query predicate, e.g. `favorite in ("apple","banana")`.
//
// Field codes and operators are checked against fixed allow-lists before
// anything is formatted. String values that look like one of the record
// store's query functions (NOW(), FROM_TODAY(-3, DAYS), ...) are emitted
// unquoted; every other string is quoted.
package predicate
