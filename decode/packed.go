package decode

import (
	"strings"

	"go.uber.org/zap"

	"github.com/legacykit/recordconv/copybook"
	"github.com/legacykit/recordconv/errors"
)

// packed decodes a packed-decimal (COMP-3) field. Every byte carries two
// digit nibbles except the last, whose low nibble is the sign.
func (d *Decoder) packed(f *copybook.Field, data []byte) Value {
	if !f.HasScale {
		Logger().Warn("packed field missing scale attribute",
			zap.String("field", f.Name),
			zap.String("type", f.Type))
		return Value{Err: errors.MissingScale(f.Name, f.Type, data)}
	}

	digits, negative, err := packedDigits(f, data)
	if err != nil {
		return Value{Err: err}
	}

	// Zero never carries a sign, whatever the sign nibble says.
	digits = strings.TrimLeft(digits, "0")
	text := applyScale(digits, f.Scale)
	if negative && digits != "" {
		text = "-" + text
	}
	return Value{Text: text}
}

// packedDigits unpacks the digit nibbles and the sign. Digit nibbles above 9
// are rejected as corruption; sign nibbles below 0xA are anomalous but have
// been observed in real extracts, so they are logged and read as positive.
func packedDigits(f *copybook.Field, data []byte) (string, bool, *errors.Error) {
	if len(data) == 0 {
		return "", false, errors.InvalidDigit(f.Name, data)
	}

	var sb strings.Builder
	last := len(data) - 1
	for i, b := range data {
		hi := b >> 4
		if hi > 9 {
			return "", false, errors.InvalidDigit(f.Name, data)
		}
		sb.WriteByte('0' + hi)

		lo := b & 0x0F
		if i == last {
			if lo < 0x0A {
				Logger().Warn("anomalous sign nibble in packed field",
					zap.String("field", f.Name),
					zap.Uint8("nibble", lo))
			}
			return sb.String(), lo == 0x0D, nil
		}
		if lo > 9 {
			return "", false, errors.InvalidDigit(f.Name, data)
		}
		sb.WriteByte('0' + lo)
	}
	return sb.String(), false, nil
}

// applyScale inserts the decimal point implied by scale into a digit string
// already stripped of leading zeros. A scale of copybook.ScaleNone means
// integer output.
func applyScale(s string, scale int) string {
	if s == "" {
		if scale == copybook.ScaleNone || scale == 0 {
			return "0"
		}
		return "0." + strings.Repeat("0", scale)
	}
	if scale == copybook.ScaleNone || scale == 0 {
		return s
	}
	if len(s) <= scale {
		return "0." + strings.Repeat("0", scale-len(s)) + s
	}
	cut := len(s) - scale
	return s[:cut] + "." + s[cut:]
}
