// Package recordconv decodes fixed-length legacy binary records into
// delimited text.
//
// Record layouts come from copybook-style schema files; field contents use
// mainframe numeric and text encodings: single-byte legacy text (EBCDIC),
// zoned decimal with implied scale, signed packed decimal, and double-byte
// text resolved through a caller-supplied code mapping table.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	recordconv/          Root package with TextCodec and PairLookup interfaces
//	├── copybook/        Schema parsing and field-kind resolution
//	├── codemap/         Double-byte code mapping table (load and lookup)
//	├── charset/         Named single-byte legacy codecs
//	├── decode/          Per-field decoding with failure isolation
//	├── pipeline/        Record-by-record binary to delimited-text conversion
//	├── errors/          Structured error types for debugging
//	└── cmd/convert/     Batch CLI for directory-based conversion runs
//
// # Quick Start
//
// Convert one binary file:
//
//	schema, err := copybook.ParseFile("CPY_CUSTOMER.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	table, err := codemap.Load("jef2uni.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dec := decode.New(charset.Default(), table)
//	proc := pipeline.New(schema, dec)
//
//	result, err := proc.Run(binFile, datFile)
//	fmt.Printf("records=%d errors=%d\n", result.Records, result.Errors())
//
// # Decode Model
//
// Each field's type token is resolved once, at schema-parse time, into a
// closed FieldKind. The per-record hot path dispatches on that kind and never
// re-inspects strings. Field-level failures never escalate: a bad field
// produces an inline error token in the output and bumps the file's error
// count, while the rest of the record decodes normally.
//
// # Concurrency
//
// Schema, Table, and Decoder are immutable after construction and safe to
// share. Processor carries no state between calls; the only mutable state of
// a conversion is the Result owned by that call.
package recordconv
