// Package decode converts raw field byte ranges into their text
// representation according to the field kind resolved by the copybook
// package.
//
// A Decoder is built once from a single-byte text codec and a double-byte
// mapping table, then applied field by field:
//
//	dec := decode.New(codec, table)
//	v := dec.DecodeField(&field, record[field.Offset:field.End()])
//	out := v.Render()
//
// # Field Kinds
//
//	Text            NUL-stripped codec decode, whitespace trimmed
//	ZonedInt        text decode with leading zeros removed
//	DoubleByte      two-byte table lookup, undefined pairs become ★
//	ZonedScaled     zoned digits with an implied decimal point
//	LeadingDecimal  all-fractional zoned digits ("0." prefix)
//	Packed          COMP-3 nibble unpacking with trailing sign nibble
//
// # Error Model
//
// DecodeField never fails the record. Every problem is confined to the
// field that caused it and returned as a Value carrying a structured
// *errors.Error; Render turns that into an inline token such as
// ERROR(INVALID_DIGIT):1f2a3c so surrounding fields and records continue
// unaffected.
package decode
