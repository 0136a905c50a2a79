package decode

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/japanese"

	"github.com/legacykit/recordconv"
	"github.com/legacykit/recordconv/copybook"
	"github.com/legacykit/recordconv/errors"
)

// Placeholder is emitted for undefined double-byte characters.
const Placeholder = '★'

// markerPair is the double-byte filler sequence some legacy extracts use
// where a full-width space belongs. It is rewritten to the EUC-JP bytes of
// U+3000 before table lookup, so the mapping file resolves it like any other
// pair.
var markerPair = []byte{0x42, 0x42}

var fullWidthSpace, _ = japanese.EUCJP.NewEncoder().Bytes([]byte("　"))

// Decoder interprets field byte ranges according to their resolved kind.
// It is immutable and safe to reuse across files.
type Decoder struct {
	codec recordconv.TextCodec
	table recordconv.PairLookup
}

// New creates a Decoder using the given single-byte codec and double-byte
// mapping table.
func New(codec recordconv.TextCodec, table recordconv.PairLookup) *Decoder {
	return &Decoder{codec: codec, table: table}
}

// Value is the outcome of decoding one field: either text or a structured
// error. Errors stay structured until the serialization boundary; Render
// converts them to inline error tokens.
type Value struct {
	Text string
	Err  *errors.Error
}

// Render returns the field's output representation. Successful values render
// as-is; failed values render as an error token embedding the error kind and
// the original bytes' hex form, so downstream text output is never blocked
// by a single bad field.
func (v Value) Render() string {
	if v.Err == nil {
		return v.Text
	}
	raw := hex.EncodeToString(v.Err.Bytes)
	if v.Err.Kind == errors.KindUnsupportedType {
		return fmt.Sprintf("UNSUPPORTED_TYPE(%s):%s", v.Err.Token, raw)
	}
	return fmt.Sprintf("ERROR(%s):%s", strings.ToUpper(string(v.Err.Kind)), raw)
}

// DecodeField decodes one field's byte range. Failures never propagate: any
// decode problem comes back as an error Value scoped to this field.
func (d *Decoder) DecodeField(f *copybook.Field, data []byte) Value {
	switch f.Kind {
	case copybook.KindText:
		return d.text(f, data)
	case copybook.KindZonedInt:
		return d.zonedInt(f, data)
	case copybook.KindDoubleByte:
		return d.doubleByte(f, data)
	case copybook.KindZonedScaled:
		return d.zonedScaled(f, data)
	case copybook.KindLeadingDecimal:
		return d.leadingDecimal(f, data)
	case copybook.KindPacked:
		return d.packed(f, data)
	default:
		Logger().Warn("unsupported field type",
			zap.String("field", f.Name),
			zap.String("type", f.Type))
		return Value{Err: errors.UnsupportedType(f.Name, f.Type, data)}
	}
}

// text decodes single-byte legacy text: NULs stripped, undecodable bytes
// discarded, surrounding whitespace trimmed.
func (d *Decoder) text(f *copybook.Field, data []byte) Value {
	s, err := d.codec.Decode(data)
	if err != nil {
		Logger().Warn("codec failure",
			zap.String("field", f.Name),
			zap.String("codec", d.codec.Name()),
			zap.Error(err))
		return Value{Err: errors.CodecFailure(f.Name, data, err)}
	}
	return Value{Text: strings.TrimSpace(s)}
}

// zonedInt decodes an unsigned zoned integer: text decode, then leading
// zeros stripped. All-zero input yields "0".
func (d *Decoder) zonedInt(f *copybook.Field, data []byte) Value {
	v := d.text(f, data)
	if v.Err != nil {
		return v
	}
	s := strings.TrimLeft(v.Text, "0")
	if s == "" {
		s = "0"
	}
	return Value{Text: s}
}

// doubleByte decodes N-type text two bytes at a time through the mapping
// table. Undefined pairs and unpaired trailing bytes become exactly one
// placeholder glyph each.
func (d *Decoder) doubleByte(f *copybook.Field, data []byte) Value {
	b := bytes.ReplaceAll(data, markerPair, fullWidthSpace)

	var sb strings.Builder
	for i := 0; i < len(b); i += 2 {
		if i+1 >= len(b) {
			Logger().Warn("unpaired trailing byte in double-byte field",
				zap.String("field", f.Name),
				zap.String("byte", fmt.Sprintf("%02X", b[i])))
			sb.WriteRune(Placeholder)
			break
		}

		key := fmt.Sprintf("%02X%02X", b[i], b[i+1])
		mapped, ok := d.table.Lookup(key)
		switch {
		case !ok:
			Logger().Debug("undefined double-byte code",
				zap.String("field", f.Name),
				zap.String("source", key))
			sb.WriteRune(Placeholder)
		case mapped == "":
			Logger().Warn("empty target in mapping table",
				zap.String("field", f.Name),
				zap.String("source", key))
			sb.WriteRune(Placeholder)
		default:
			cp, err := strconv.ParseUint(mapped, 16, 32)
			if err != nil {
				Logger().Warn("malformed code point in mapping table",
					zap.String("field", f.Name),
					zap.String("source", key),
					zap.String("target", mapped))
				sb.WriteRune(Placeholder)
			} else {
				sb.WriteRune(rune(cp))
			}
		}
	}

	return Value{Text: strings.TrimSpace(sb.String())}
}

// zonedScaled decodes a zoned decimal with an implied scale from the PIC
// token, e.g. 9(5)V9(2).
func (d *Decoder) zonedScaled(f *copybook.Field, data []byte) Value {
	v := d.text(f, data)
	if v.Err != nil {
		return v
	}
	digits := v.Text
	if digits == "" {
		return Value{Text: ""}
	}

	dd := f.DecDigits
	switch {
	case dd <= 0:
		return Value{Text: digits}
	case len(digits) <= dd:
		return Value{Text: "0." + strings.Repeat("0", dd-len(digits)) + digits}
	default:
		cut := len(digits) - dd
		return Value{Text: digits[:cut] + "." + digits[cut:]}
	}
}

// leadingDecimal decodes a V9-style zoned decimal where every digit is
// fractional. Empty input yields the fixed "0.0"; any declared scale is
// deliberately ignored, matching established output files.
func (d *Decoder) leadingDecimal(f *copybook.Field, data []byte) Value {
	v := d.text(f, data)
	if v.Err != nil {
		return v
	}
	digits := strings.TrimLeft(v.Text, "0")
	if digits == "" {
		return Value{Text: "0.0"}
	}
	return Value{Text: "0." + digits}
}
