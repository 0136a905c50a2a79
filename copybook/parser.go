package copybook

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/legacykit/recordconv/errors"
)

// Parse builds a Schema from the lines of a copybook-style schema file.
//
// Line 1 is the record length, line 2 is reserved and ignored, and every
// following line describes one field as five comma-separated parts:
// name, type token, numeric attribute (may be empty), byte length, declared
// 1-based offset. Malformed lines are skipped with a warning; a field that
// would run past the record length fails the whole schema.
func Parse(lines []string) (*Schema, error) {
	if len(lines) == 0 {
		return nil, errors.InvalidRecordLength("empty schema")
	}

	recordLength, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, errors.InvalidRecordLength("record length is not a number")
	}
	if recordLength <= 0 {
		return nil, errors.InvalidRecordLength("record length must be positive, got " + strconv.Itoa(recordLength))
	}

	schema := &Schema{RecordLength: recordLength}
	offset := 0

	for i := 2; i < len(lines); i++ {
		lineNo := i + 1
		line := lines[i]
		parts := strings.Split(line, ",")

		// A 4-part line with an empty third part is missing the numeric
		// attribute slot, not malformed. Normalize before validating.
		if len(parts) == 4 && strings.TrimSpace(parts[2]) == "" {
			normalized := make([]string, 0, 5)
			normalized = append(normalized, parts[:2]...)
			normalized = append(normalized, "")
			normalized = append(normalized, parts[2:]...)
			parts = normalized
		}

		if len(parts) != 5 {
			Logger().Warn("skipping malformed schema line",
				zap.Int("line", lineNo),
				zap.String("text", line),
				zap.Int("parts", len(parts)))
			continue
		}

		name := strings.TrimSpace(parts[0])
		token := strings.ToUpper(strings.TrimSpace(parts[1]))
		attr := strings.TrimSpace(parts[2])

		length, err := strconv.Atoi(strings.TrimSpace(parts[3]))
		if err != nil {
			Logger().Warn("skipping schema line with non-numeric byte length",
				zap.Int("line", lineNo),
				zap.String("text", line))
			continue
		}
		if length <= 0 {
			Logger().Warn("skipping schema line with invalid byte length",
				zap.Int("line", lineNo),
				zap.Int("length", length))
			continue
		}

		declared, err := strconv.Atoi(strings.TrimSpace(parts[4]))
		if err != nil {
			Logger().Warn("skipping schema line with non-numeric offset",
				zap.Int("line", lineNo),
				zap.String("text", line))
			continue
		}

		// The computed running offset always wins over the declared one.
		if declared != offset+1 {
			Logger().Warn("offset mismatch in schema, using computed offset",
				zap.Int("line", lineNo),
				zap.String("field", name),
				zap.Int("declared", declared),
				zap.Int("computed", offset+1))
		}

		if offset+length > recordLength {
			return nil, errors.FieldExceedsRecord(name, offset+length, recordLength)
		}

		f := Field{
			Name:   name,
			Type:   token,
			Length: length,
			Offset: offset,
		}
		if attr != "" && isDigits(attr) {
			f.NumAttr, _ = strconv.Atoi(attr)
			f.HasNumAttr = true
		}
		resolve(&f)

		schema.Fields = append(schema.Fields, f)
		offset += length
	}

	if offset != recordLength {
		Logger().Warn("total field length does not match declared record length",
			zap.Int("total", offset),
			zap.Int("declared", recordLength))
	}

	if len(schema.Fields) == 0 {
		return nil, errors.NoFields()
	}

	return schema, nil
}

// ParseFile reads a schema file as UTF-8 text, trims each line, and parses it.
func ParseFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(errors.PhaseParse, "schema file", path)
		}
		return nil, errors.Wrap(errors.PhaseParse, errors.KindIO, err, "open schema file")
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindIO, err, "read schema file")
	}

	return Parse(lines)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
