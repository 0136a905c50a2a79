// Package pipeline drives whole-file conversion: fixed-length binary
// records in, quoted CSV lines out.
//
// The output begins with a header line of quoted field names. Every record
// of exactly schema.RecordLength bytes becomes one CSV line; every field
// value is double-quoted with embedded quotes doubled, including error
// tokens.
//
// A conversion run is resilient by record: a field that cannot be decoded
// is rendered as an inline error token and counted in Result.FieldErrors,
// while the rest of the record and the rest of the file proceed normally.
// Only the input ending mid-record stops a run early, dropping the partial
// record and setting Result.Truncated.
//
// Given identical inputs, a run is deterministic: the same bytes and schema
// always produce byte-identical output.
package pipeline
