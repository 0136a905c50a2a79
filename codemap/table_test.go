package codemap

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf16"

	rcerrors "github.com/legacykit/recordconv/errors"
)

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"# comment line",
		"",
		"4040,3000",
		"b0a1,4e9c",   // lower case normalized
		"  A1A1 , 30FB ", // whitespace trimmed
		"JUNK",          // no comma
		"a,b,c",         // too many parts
		"XYZZ,3000",     // non-hex source
		"4041,30GG",     // non-hex target
	}, "\n")

	table, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if table.Len() != 3 {
		t.Errorf("Len = %d, want 3", table.Len())
	}

	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{"4040", "3000", true},
		{"B0A1", "4E9C", true},
		{"A1A1", "30FB", true},
		{"FFFF", "", false},
	}
	for _, tt := range tests {
		got, ok := table.Lookup(tt.key)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLoad_UTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.csv")
	if err := os.WriteFile(path, []byte("4040,3000\nB0A1,4E9C\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Len = %d, want 2", table.Len())
	}
}

func TestLoad_UTF16WithBOM(t *testing.T) {
	content := "4040,3000\nB0A1,4E9C\n"
	units := utf16.Encode([]rune(content))

	raw := make([]byte, 0, 2+len(units)*2)
	raw = append(raw, 0xFF, 0xFE) // little-endian BOM
	for _, u := range units {
		raw = append(raw, byte(u), byte(u>>8))
	}

	path := filepath.Join(t.TempDir(), "map16.csv")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Len = %d, want 2", table.Len())
	}
	if v, ok := table.Lookup("4040"); !ok || v != "3000" {
		t.Errorf("Lookup(4040) = (%q, %v), want (3000, true)", v, ok)
	}
}

func TestLoad_UTF16NoBOM(t *testing.T) {
	content := "4040,3000\n"
	raw := make([]byte, 0, len(content)*2)
	for _, r := range content {
		raw = append(raw, byte(r), byte(r>>8))
	}

	path := filepath.Join(t.TempDir(), "map16nb.csv")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v, ok := table.Lookup("4040"); !ok || v != "3000" {
		t.Errorf("Lookup(4040) = (%q, %v), want (3000, true)", v, ok)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	var rcErr *rcerrors.Error
	if !errors.As(err, &rcErr) || rcErr.Kind != rcerrors.KindNotFound {
		t.Errorf("err = %v, want not_found", err)
	}
}
