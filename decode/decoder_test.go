package decode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/legacykit/recordconv/copybook"
	"github.com/legacykit/recordconv/errors"
)

// asciiCodec keeps test fixtures readable: input bytes are already ASCII,
// only the NUL stripping of a real codec is reproduced.
type asciiCodec struct{}

func (asciiCodec) Decode(data []byte) (string, error) {
	return string(bytes.ReplaceAll(data, []byte{0x00}, nil)), nil
}

func (asciiCodec) Name() string { return "ascii" }

type mapTable map[string]string

func (m mapTable) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func newTestDecoder(table mapTable) *Decoder {
	return New(asciiCodec{}, table)
}

func TestDecodeField_Text(t *testing.T) {
	dec := newTestDecoder(nil)
	f := &copybook.Field{Name: "NAME", Type: "X", Kind: copybook.KindText}

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"trims_padding", []byte("ALICE     "), "ALICE"},
		{"strips_nuls", []byte("BOB\x00\x00"), "BOB"},
		{"all_spaces", []byte("     "), ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := dec.DecodeField(f, tt.data)
			if v.Err != nil {
				t.Fatalf("DecodeField() error = %v", v.Err)
			}
			if v.Text != tt.want {
				t.Errorf("DecodeField() = %q, want %q", v.Text, tt.want)
			}
		})
	}
}

func TestDecodeField_ZonedInt(t *testing.T) {
	dec := newTestDecoder(nil)
	f := &copybook.Field{Name: "QTY", Type: "9", Kind: copybook.KindZonedInt}

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"leading_zeros", []byte("00123"), "123"},
		{"all_zeros", []byte("0000"), "0"},
		{"no_zeros", []byte("42"), "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := dec.DecodeField(f, tt.data)
			if v.Err != nil {
				t.Fatalf("DecodeField() error = %v", v.Err)
			}
			if v.Text != tt.want {
				t.Errorf("DecodeField() = %q, want %q", v.Text, tt.want)
			}
		})
	}
}

func TestDecodeField_DoubleByte(t *testing.T) {
	table := mapTable{
		"8140": "3042", // あ
		"8141": "3044", // い
		"A1A1": "3000", // full-width space
		"9999": "",     // empty target
		"8888": "ZZZZ", // malformed code point
	}
	dec := newTestDecoder(table)
	f := &copybook.Field{Name: "KANA", Type: "N", Kind: copybook.KindDoubleByte}

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"mapped_pairs", []byte{0x81, 0x40, 0x81, 0x41}, "あい"},
		{"undefined_pair", []byte{0x81, 0x40, 0xFF, 0xFF}, "あ★"},
		{"marker_becomes_full_width_space", []byte{0x81, 0x40, 0x42, 0x42, 0x81, 0x41}, "あ　い"},
		{"empty_target", []byte{0x81, 0x40, 0x99, 0x99}, "あ★"},
		{"malformed_code_point", []byte{0x81, 0x40, 0x88, 0x88}, "あ★"},
		{"odd_trailing_byte", []byte{0x81, 0x40, 0x81}, "あ★"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := dec.DecodeField(f, tt.data)
			if v.Err != nil {
				t.Fatalf("DecodeField() error = %v", v.Err)
			}
			if v.Text != tt.want {
				t.Errorf("DecodeField() = %q, want %q", v.Text, tt.want)
			}
		})
	}
}

func TestDecodeField_ZonedScaled(t *testing.T) {
	dec := newTestDecoder(nil)

	tests := []struct {
		name      string
		decDigits int
		data      []byte
		want      string
	}{
		{"insert_point", 2, []byte("0012345"), "00123.45"},
		{"all_fractional", 4, []byte("0123"), "0.0123"},
		{"pad_fraction", 4, []byte("12"), "0.0012"},
		{"empty", 2, []byte("   "), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &copybook.Field{
				Name:      "AMT",
				Type:      "9(5)V9(2)",
				Kind:      copybook.KindZonedScaled,
				DecDigits: tt.decDigits,
			}
			v := dec.DecodeField(f, tt.data)
			if v.Err != nil {
				t.Fatalf("DecodeField() error = %v", v.Err)
			}
			if v.Text != tt.want {
				t.Errorf("DecodeField() = %q, want %q", v.Text, tt.want)
			}
		})
	}
}

func TestDecodeField_LeadingDecimal(t *testing.T) {
	dec := newTestDecoder(nil)
	f := &copybook.Field{Name: "RATE", Type: "V9(3)", Kind: copybook.KindLeadingDecimal}

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"plain", []byte("125"), "0.125"},
		{"leading_zeros_stripped", []byte("005"), "0.5"},
		{"all_zeros", []byte("000"), "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := dec.DecodeField(f, tt.data)
			if v.Err != nil {
				t.Fatalf("DecodeField() error = %v", v.Err)
			}
			if v.Text != tt.want {
				t.Errorf("DecodeField() = %q, want %q", v.Text, tt.want)
			}
		})
	}
}

func TestDecodeField_Unsupported(t *testing.T) {
	dec := newTestDecoder(nil)
	f := &copybook.Field{Name: "MYSTERY", Type: "Z(4)", Kind: copybook.KindUnsupported}

	v := dec.DecodeField(f, []byte{0x1F, 0x2A})
	if v.Err == nil {
		t.Fatal("DecodeField() expected error for unsupported type")
	}
	if v.Err.Kind != errors.KindUnsupportedType {
		t.Errorf("Kind = %q, want %q", v.Err.Kind, errors.KindUnsupportedType)
	}
	got := v.Render()
	want := "UNSUPPORTED_TYPE(Z(4)):1f2a"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestValue_Render(t *testing.T) {
	ok := Value{Text: "hello"}
	if got := ok.Render(); got != "hello" {
		t.Errorf("Render() = %q, want %q", got, "hello")
	}

	bad := Value{Err: errors.InvalidDigit("AMT", []byte{0x1F, 0x2A, 0x3C})}
	got := bad.Render()
	if !strings.HasPrefix(got, "ERROR(INVALID_DIGIT):") {
		t.Errorf("Render() = %q, want ERROR(INVALID_DIGIT) prefix", got)
	}
	if !strings.HasSuffix(got, "1f2a3c") {
		t.Errorf("Render() = %q, want hex suffix 1f2a3c", got)
	}
}
