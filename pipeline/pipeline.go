package pipeline

import (
	"bufio"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/legacykit/recordconv/copybook"
	"github.com/legacykit/recordconv/decode"
	"github.com/legacykit/recordconv/errors"
)

// Processor converts a stream of fixed-length records into quoted CSV text
// using one schema and one decoder. It holds no per-run state, so a single
// Processor may convert any number of streams.
type Processor struct {
	schema *copybook.Schema
	dec    *decode.Decoder
}

// New creates a Processor for the given schema and decoder.
func New(schema *copybook.Schema, dec *decode.Decoder) *Processor {
	return &Processor{schema: schema, dec: dec}
}

// Result summarizes one conversion run.
type Result struct {
	Records     int  // records written, header excluded
	FieldErrors int  // fields rendered as error tokens
	Truncated   bool // input ended mid-record
}

// Errors returns the total problem count for the run. A truncated trailing
// record counts as one problem.
func (r Result) Errors() int {
	if r.Truncated {
		return r.FieldErrors + 1
	}
	return r.FieldErrors
}

// OK reports whether the run completed with no field errors and no
// truncation.
func (r Result) OK() bool {
	return r.Errors() == 0
}

// Run reads fixed-length records from r until EOF and writes one quoted CSV
// line per record to w, preceded by a header line of field names.
//
// Field-level decode failures are rendered inline as error tokens and
// counted; they never abort the run. A partial trailing record is dropped,
// flagged as truncation, and ends the run. Only I/O failures return an
// error.
func (p *Processor) Run(r io.Reader, w io.Writer) (Result, error) {
	var res Result

	bw := bufio.NewWriter(w)
	if err := p.writeHeader(bw); err != nil {
		return res, errors.Wrap(errors.PhaseProcess, errors.KindIO, err, "write header")
	}

	buf := make([]byte, p.schema.RecordLength)
	var offset int64
	for {
		n, err := io.ReadFull(r, buf)
		switch err {
		case nil:
		case io.EOF:
			if err := bw.Flush(); err != nil {
				return res, errors.Wrap(errors.PhaseProcess, errors.KindIO, err, "flush output")
			}
			return res, nil
		case io.ErrUnexpectedEOF:
			trunc := errors.Truncated(offset, p.schema.RecordLength, n)
			Logger().Warn("input ends mid-record, partial record dropped",
				zap.Int64("offset", offset),
				zap.Int("want", p.schema.RecordLength),
				zap.Int("got", n),
				zap.Error(trunc))
			res.Truncated = true
			if err := bw.Flush(); err != nil {
				return res, errors.Wrap(errors.PhaseProcess, errors.KindIO, err, "flush output")
			}
			return res, nil
		default:
			return res, errors.Wrap(errors.PhaseProcess, errors.KindIO, err, "read record")
		}

		if err := p.writeRecord(bw, buf, &res); err != nil {
			return res, errors.Wrap(errors.PhaseProcess, errors.KindIO, err, "write record")
		}
		res.Records++
		offset += int64(n)
	}
}

func (p *Processor) writeHeader(w *bufio.Writer) error {
	for i := range p.schema.Fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(quote(p.schema.Fields[i].Name)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

func (p *Processor) writeRecord(w *bufio.Writer, record []byte, res *Result) error {
	for i := range p.schema.Fields {
		f := &p.schema.Fields[i]
		v := p.dec.DecodeField(f, record[f.Offset:f.End()])
		if v.Err != nil {
			res.FieldErrors++
			Logger().Warn("field decode failed",
				zap.String("field", f.Name),
				zap.Int("record", res.Records+1),
				zap.Error(v.Err))
		}

		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(quote(v.Render())); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// quote wraps s in double quotes, doubling any embedded quote.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
