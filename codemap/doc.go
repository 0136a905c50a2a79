// Package codemap loads the double-byte code mapping table used to decode
// N-type fields.
//
// A mapping file is line-oriented text of SRC_HEX,DST_HEX pairs, e.g.
//
//	# JEF to Unicode
//	4040,3000
//	B0A1,4E9C
//
// where SRC_HEX is a big-endian double-byte source code and DST_HEX is a
// Unicode code point. Both sides are case-normalized to upper-case hex.
// The table is loaded once per run and is read-only afterwards.
package codemap
