// Package copybook parses copybook-style schema files describing fixed-length
// record layouts.
//
// # Schema File Format
//
// Schema files are line oriented:
//
//	Line 1    decimal record length
//	Line 2    reserved, ignored
//	Line 3+   one field: name,TYPE,numeric_attribute,byte_length,offset
//
// The numeric attribute may be empty; the declared offset is 1-based. Field
// offsets are recomputed from the running byte position, and the computed
// value is authoritative: a declared/computed mismatch is only a warning.
//
// # Fatal vs Skipped
//
// Three conditions fail a schema outright: a non-positive record length, a
// field whose computed end exceeds the record length, and a schema with zero
// accepted fields. Everything else (wrong part count, bad byte length, bad
// offset number) skips the one line with a warning.
//
// # Kind Resolution
//
// Each field's type token is classified once into a FieldKind during parsing,
// and packed-decimal scales are resolved at the same time. The decode hot
// path never re-parses tokens.
package copybook
