// Package errors provides structured error types for the recordconv library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, the field's
// type token, the offending raw bytes, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidDigit).
//		Path("AMOUNT").
//		Token("PS9(7)").
//		Bytes(data).
//		Detail("digit nibble outside 0-9").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidDigit("AMOUNT", data)
//	err := errors.Truncated(offset, want, got)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
