package pipeline

import (
	"os"

	"go.uber.org/zap"

	"github.com/legacykit/recordconv/copybook"
	"github.com/legacykit/recordconv/decode"
	"github.com/legacykit/recordconv/errors"
)

// ConvertFile converts one binary extract into a CSV file. The schema is
// read from cpyPath, records from binPath, and the output is written to
// outPath (replacing any existing file).
func ConvertFile(binPath, cpyPath, outPath string, dec *decode.Decoder) (Result, error) {
	var res Result

	schema, err := copybook.ParseFile(cpyPath)
	if err != nil {
		return res, err
	}

	in, err := os.Open(binPath)
	if err != nil {
		return res, errors.Wrap(errors.PhaseProcess, errors.KindIO, err, "open input")
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return res, errors.Wrap(errors.PhaseProcess, errors.KindIO, err, "create output")
	}

	res, err = New(schema, dec).Run(in, out)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = errors.Wrap(errors.PhaseProcess, errors.KindIO, cerr, "close output")
	}
	if err != nil {
		return res, err
	}

	Logger().Info("file converted",
		zap.String("input", binPath),
		zap.String("output", outPath),
		zap.Int("records", res.Records),
		zap.Int("field_errors", res.FieldErrors),
		zap.Bool("truncated", res.Truncated))
	return res, nil
}
