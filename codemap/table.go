package codemap

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/legacykit/recordconv/errors"
)

var hexPattern = regexp.MustCompile(`^[0-9A-F]+$`)

// Table maps upper-case 4-hex-digit double-byte source codes to the hex form
// of a Unicode code point. It is immutable after construction and safe to
// share across sequential file runs.
type Table struct {
	entries map[string]string
}

// Lookup resolves a source code to its mapped code point hex string.
// A missing key is not an error; it signals an undefined character.
func (t *Table) Lookup(key string) (string, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Parse reads mapping lines of the form SRC_HEX,DST_HEX. Blank lines and
// lines starting with '#' are ignored; both hex values are upper-cased.
// Malformed lines are skipped with a warning.
func Parse(r io.Reader) (*Table, error) {
	t := &Table{entries: make(map[string]string)}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			Logger().Warn("skipping malformed mapping line",
				zap.Int("line", lineNo),
				zap.String("text", line))
			continue
		}

		src := strings.ToUpper(strings.TrimSpace(parts[0]))
		dst := strings.ToUpper(strings.TrimSpace(parts[1]))
		if !hexPattern.MatchString(src) || !hexPattern.MatchString(dst) {
			Logger().Warn("skipping mapping line with non-hex value",
				zap.Int("line", lineNo),
				zap.String("text", line))
			continue
		}

		t.entries[src] = dst
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.PhaseMapping, errors.KindIO, err, "read mapping data")
	}

	return t, nil
}

// Load reads a mapping file from disk. Mapping files exported from legacy
// tooling are usually UTF-16 with a BOM; Load detects that and transcodes,
// otherwise the file is read as UTF-8.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(errors.PhaseMapping, "mapping file", path)
		}
		return nil, errors.Wrap(errors.PhaseMapping, errors.KindIO, err, "open mapping file")
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var r io.Reader = br

	head, _ := br.Peek(4)
	switch {
	case hasUTF16BOM(head):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		r = transform.NewReader(br, dec)
	case looksLikeUTF16LE(head):
		// No BOM but NUL high bytes after ASCII: legacy exports sometimes
		// omit the BOM and default to little endian.
		dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		r = transform.NewReader(br, dec)
	}

	return Parse(r)
}

func hasUTF16BOM(head []byte) bool {
	return len(head) >= 2 &&
		((head[0] == 0xFF && head[1] == 0xFE) || (head[0] == 0xFE && head[1] == 0xFF))
}

func looksLikeUTF16LE(head []byte) bool {
	return len(head) >= 4 && head[0] != 0x00 && head[1] == 0x00 && head[3] == 0x00
}
