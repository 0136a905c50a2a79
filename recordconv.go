package recordconv

// TextCodec converts bytes in a single-byte legacy encoding into UTF-8 text.
// Implementations discard bytes that have no mapping instead of failing, which
// matches how mainframe extract jobs treat stray control bytes.
type TextCodec interface {
	// Decode converts data into a UTF-8 string. NUL bytes and bytes without
	// a defined code point are dropped from the result.
	Decode(data []byte) (string, error)
	// Name reports the codec's registry name, e.g. "ibm037".
	Name() string
}

// PairLookup resolves a big-endian double-byte code, expressed as an
// upper-case 4-hex-digit string, to the hex form of a Unicode code point.
// A missing key is not an error; it signals an undefined character.
type PairLookup interface {
	Lookup(key string) (value string, ok bool)
}
