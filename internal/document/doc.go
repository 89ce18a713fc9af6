// Package document loads declarative query documents and turns them into
// query builders.
//
// A document is a YAML or CUE file listing where-clauses, sort keys, and
// paging. CUE documents are checked against the embedded #Document schema
// (schema.cue) before decoding; YAML documents are decoded strictly.
package document
