package copybook

// FieldKind identifies the decode rule for a field. Kinds are resolved once
// at schema-parse time so the per-record path dispatches on a tag instead of
// re-inspecting type tokens.
type FieldKind uint8

const (
	KindUnsupported FieldKind = iota
	KindText                  // X: single-byte legacy text
	KindZonedInt              // 9: unsigned zoned integer
	KindDoubleByte            // N: double-byte text via mapping table
	KindZonedScaled           // 9(m)V9(n): zoned decimal with implied scale
	KindLeadingDecimal        // V9: zoned decimal, all digits fractional
	KindPacked                // P9/PS9/S9/SP9 and PV9/PSV9: packed decimal
)

var kindNames = [...]string{
	KindUnsupported:    "unsupported",
	KindText:           "text",
	KindZonedInt:       "zoned_int",
	KindDoubleByte:     "double_byte",
	KindZonedScaled:    "zoned_scaled",
	KindLeadingDecimal: "leading_decimal",
	KindPacked:         "packed",
}

func (k FieldKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Numeric reports whether the kind produces a numeric value.
func (k FieldKind) Numeric() bool {
	switch k {
	case KindZonedInt, KindZonedScaled, KindLeadingDecimal, KindPacked:
		return true
	default:
		return false
	}
}
