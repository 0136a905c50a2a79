// Package charset provides named single-byte legacy codecs for X-type and
// zoned-decimal field decoding.
//
// Codecs are backed by the EBCDIC code pages shipped with
// golang.org/x/text/encoding/charmap. The codec is always an explicit
// constructor argument to the decoder; there is no package-level default
// baked into decode paths.
package charset

import (
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/legacykit/recordconv"
	"github.com/legacykit/recordconv/errors"
)

var codePages = map[string]*charmap.Charmap{
	"ibm037":  charmap.CodePage037,
	"ibm1047": charmap.CodePage1047,
	"ibm1140": charmap.CodePage1140,
}

// DefaultName is the codec used when a run does not configure one.
const DefaultName = "ibm037"

type codec struct {
	name string
	cm   *charmap.Charmap
}

func (c *codec) Name() string {
	return c.name
}

// Decode converts legacy single-byte text to UTF-8. NUL bytes are stripped
// before decoding, and bytes without a defined code point are dropped rather
// than surfaced as replacement runes.
func (c *codec) Decode(data []byte) (string, error) {
	stripped := data
	if hasNUL(data) {
		stripped = make([]byte, 0, len(data))
		for _, b := range data {
			if b != 0x00 {
				stripped = append(stripped, b)
			}
		}
	}

	out, err := c.cm.NewDecoder().Bytes(stripped)
	if err != nil {
		return "", err
	}

	s := string(out)
	if strings.ContainsRune(s, '�') {
		s = strings.Map(dropReplacement, s)
	}
	return s, nil
}

func hasNUL(data []byte) bool {
	for _, b := range data {
		if b == 0x00 {
			return true
		}
	}
	return false
}

func dropReplacement(r rune) rune {
	if r == '�' {
		return -1
	}
	return r
}

// Lookup returns the codec registered under name.
func Lookup(name string) (recordconv.TextCodec, error) {
	cm, ok := codePages[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.New(errors.PhaseDecode, errors.KindNotFound).
			Detail("unknown charset %q (supported: %s)", name, strings.Join(Names(), ", ")).
			Build()
	}
	return &codec{name: strings.ToLower(strings.TrimSpace(name)), cm: cm}, nil
}

// Default returns the ibm037 codec.
func Default() recordconv.TextCodec {
	c, _ := Lookup(DefaultName)
	return c
}

// Names lists the supported codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(codePages))
	for name := range codePages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
