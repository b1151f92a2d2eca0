package apperr

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeInvalidDocument   = "INVALID_DOCUMENT"
	CodeInvalidArgument   = "INVALID_ARGUMENT"
)

var (
	// ErrUnsupportedFormat is returned when a document format is not known to the codec registry.
	ErrUnsupportedFormat = New(CodeUnsupportedFormat, "unsupported document format")

	// ErrInvalidDocument is returned when a document cannot be decoded into activities.
	ErrInvalidDocument = New(CodeInvalidDocument, "invalid document: content is not a well-formed activity document")

	// ErrInvalidArgument is returned when a command argument cannot be interpreted.
	ErrInvalidArgument = New(CodeInvalidArgument, "invalid argument")
)

type Extras map[string]interface{}

type AppError struct {
	Code    string
	Message string
	Extras  *Extras

	cause error
}

func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func (e AppError) Msg(format string, parts ...interface{}) *AppError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e AppError) WithExtras(extras Extras) *AppError {
	e.Extras = &extras
	return &e
}

// WithCause attaches the underlying error. The cause is reachable through errors.Unwrap.
func (e AppError) WithCause(err error) *AppError {
	e.cause = err
	return &e
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is reports errors carrying the same code as equal, so derived copies still match
// the package-level sentinels.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Fields returns the extras of the first AppError in err's chain, or nil when there are none.
func Fields(err error) map[string]interface{} {
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Extras == nil {
		return nil
	}
	return *appErr.Extras
}
