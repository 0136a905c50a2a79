package errors

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse   Phase = "parse"   // schema parsing
	PhaseMapping Phase = "mapping" // code mapping table loading
	PhaseDecode  Phase = "decode"  // field decoding
	PhaseProcess Phase = "process" // record pipeline / file IO
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidRecordLength Kind = "invalid_record_length"
	KindFieldExceedsRecord  Kind = "field_exceeds_record"
	KindNoFields            Kind = "no_fields"
	KindInvalidDigit        Kind = "invalid_digit"
	KindMissingScale        Kind = "missing_scale"
	KindUnsupportedType     Kind = "unsupported_type"
	KindInvalidCodePoint    Kind = "invalid_code_point"
	KindTruncatedRecord     Kind = "truncated_record"
	KindCodecFailure        Kind = "codec_failure"
	KindEmptyTable          Kind = "empty_table"
	KindNotFound            Kind = "not_found"
	KindInvalidInput        Kind = "invalid_input"
	KindIO                  Kind = "io"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Token  string // field type token, when relevant
	Detail string
	Path   []string
	Bytes  []byte // offending raw bytes, when relevant
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Token != "" {
		b.WriteString(": type ")
		b.WriteString(e.Token)
	}

	if e.Detail != "" {
		if e.Token != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if len(e.Bytes) > 0 {
		b.WriteString(" (bytes: ")
		b.WriteString(hex.EncodeToString(e.Bytes))
		b.WriteByte(')')
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Token sets the field type token
func (b *Builder) Token(t string) *Builder {
	b.err.Token = t
	return b
}

// Bytes sets the offending raw bytes
func (b *Builder) Bytes(data []byte) *Builder {
	b.err.Bytes = data
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidRecordLength creates a schema header error
func InvalidRecordLength(detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidRecordLength,
		Detail: detail,
	}
}

// FieldExceedsRecord creates a fatal schema layout error
func FieldExceedsRecord(field string, end, recordLength int) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindFieldExceedsRecord,
		Path:   []string{field},
		Detail: fmt.Sprintf("field ends at byte %d, record length is %d", end, recordLength),
	}
}

// NoFields creates an empty-schema error
func NoFields() *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindNoFields,
		Detail: "no valid field definitions found",
	}
}

// InvalidDigit creates a packed-decimal nibble error
func InvalidDigit(field string, data []byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidDigit,
		Path:   []string{field},
		Detail: "digit nibble outside 0-9",
		Bytes:  data,
	}
}

// MissingScale creates an error for packed types that require an explicit
// decimal-place attribute
func MissingScale(field, token string, data []byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMissingScale,
		Path:   []string{field},
		Token:  token,
		Detail: "numeric attribute (decimal places) required but absent",
		Bytes:  data,
	}
}

// UnsupportedType creates an error for an unrecognized type token
func UnsupportedType(field, token string, data []byte) *Error {
	return &Error{
		Phase: PhaseDecode,
		Kind:  KindUnsupportedType,
		Path:  []string{field},
		Token: token,
		Bytes: data,
	}
}

// CodecFailure creates a text codec error
func CodecFailure(field string, data []byte, cause error) *Error {
	return &Error{
		Phase: PhaseDecode,
		Kind:  KindCodecFailure,
		Path:  []string{field},
		Bytes: data,
		Cause: cause,
	}
}

// Truncated creates a truncated-record error
func Truncated(offset int64, want, got int) *Error {
	return &Error{
		Phase:  PhaseProcess,
		Kind:   KindTruncatedRecord,
		Detail: fmt.Sprintf("incomplete record at byte offset %d: expected %d bytes, got %d", offset, want, got),
	}
}

// EmptyTable creates an empty mapping table error
func EmptyTable(path string) *Error {
	return &Error{
		Phase:  PhaseMapping,
		Kind:   KindEmptyTable,
		Detail: fmt.Sprintf("mapping table %q contains no entries", path),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
