package copybook

import "strings"

// ScaleNone marks a packed field with no decimal point (pure integer).
const ScaleNone = -1

// Schema describes one fixed-length record layout. It is immutable after
// Parse returns it.
type Schema struct {
	RecordLength int
	Fields       []Field
}

// Field is one decoded field definition. Offset is the computed zero-based
// offset into the record; the computed value is authoritative even when the
// schema file declares something else.
type Field struct {
	Name       string
	Type       string // upper-cased type token, e.g. "PS9(5)V9(2)"
	Kind       FieldKind
	NumAttr    int  // explicit decimal-place count from the schema
	HasNumAttr bool // whether NumAttr was present
	Length     int
	Offset     int
	IntDigits  int
	DecDigits  int
	Scale      int  // packed decimal scale; ScaleNone for integer variants
	HasScale   bool // false when PV9/PSV9 lacks its numeric attribute
}

// End returns the exclusive end offset of the field within the record.
func (f *Field) End() int {
	return f.Offset + f.Length
}

// resolve classifies the type token and precomputes digit counts and, for
// packed fields, the decimal scale. Dispatch order mirrors the decode rules:
// exact matches first, then prefix/substring rules.
func resolve(f *Field) {
	f.IntDigits, f.DecDigits = Digits(f.Type)

	switch {
	case f.Type == "X":
		f.Kind = KindText
	case f.Type == "9":
		f.Kind = KindZonedInt
	case f.Type == "N":
		f.Kind = KindDoubleByte
	case strings.HasPrefix(f.Type, "9") && strings.Contains(f.Type, "V9"):
		f.Kind = KindZonedScaled
	case strings.HasPrefix(f.Type, "V9"):
		f.Kind = KindLeadingDecimal
	case isPackedToken(f.Type):
		f.Kind = KindPacked
		switch {
		case f.Type == "PV9" || f.Type == "PSV9":
			// Scale must come from the schema's numeric attribute. Absence
			// is a per-record field error, not a schema error.
			if f.HasNumAttr {
				f.Scale = f.NumAttr
				f.HasScale = true
			}
		case strings.Contains(f.Type, "V9"):
			f.Scale = f.DecDigits
			f.HasScale = true
		default:
			f.Scale = ScaleNone
			f.HasScale = true
		}
	default:
		f.Kind = KindUnsupported
	}
}

var packedPrefixes = []string{"P9", "PS9", "S9", "SP9"}

func isPackedToken(token string) bool {
	for _, p := range packedPrefixes {
		if strings.HasPrefix(token, p) {
			return true
		}
	}
	return token == "PV9" || token == "PSV9"
}
