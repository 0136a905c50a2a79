package charset

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func encodeEBCDIC(t *testing.T, s string) []byte {
	t.Helper()
	out, err := charmap.CodePage037.NewEncoder().Bytes([]byte(s))
	if err != nil {
		t.Fatalf("encode %q: %v", s, err)
	}
	return out
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, err := Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", name, err)
			}
			if c.Name() != name {
				t.Errorf("Name = %q, want %q", c.Name(), name)
			}
		})
	}

	if _, err := Lookup("cp9999"); err == nil {
		t.Error("Lookup(cp9999) should fail")
	}
}

func TestDecode(t *testing.T) {
	c, err := Lookup("ibm037")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("round_trip", func(t *testing.T) {
		data := encodeEBCDIC(t, "HELLO 123")
		got, err := c.Decode(data)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if got != "HELLO 123" {
			t.Errorf("Decode = %q, want %q", got, "HELLO 123")
		}
	})

	t.Run("nul_bytes_stripped", func(t *testing.T) {
		data := append([]byte{0x00, 0x00}, encodeEBCDIC(t, "AB")...)
		data = append(data, 0x00)
		got, err := c.Decode(data)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if got != "AB" {
			t.Errorf("Decode = %q, want %q", got, "AB")
		}
	})

	t.Run("empty", func(t *testing.T) {
		got, err := c.Decode(nil)
		if err != nil || got != "" {
			t.Errorf("Decode(nil) = (%q, %v), want (\"\", nil)", got, err)
		}
	})
}

func TestDefault(t *testing.T) {
	if Default().Name() != DefaultName {
		t.Errorf("Default().Name() = %q, want %q", Default().Name(), DefaultName)
	}
}
