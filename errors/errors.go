package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Kind names an error category on the wire and in logs.
type Kind string

const (
	KindParse  Kind = "parse"
	KindRender Kind = "render"
	KindIO     Kind = "io"
	KindOther  Kind = "internal"
)

// ParseError reports a source document that is not valid JSON after comment
// stripping, or that does not have the shape of a VS Code theme.
type ParseError struct {
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError reports a failure to encode a Helix theme as TOML.
type RenderError struct {
	Err error
}

// NewRenderError constructs a RenderError.
func NewRenderError(err error) error {
	return &RenderError{Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IOError reports a file that could not be read or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// NewIOError constructs an IOError for op ("read", "write") on path.
func NewIOError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}

func (e *IOError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("io error: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("io error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf classifies err by the first typed error found in its chain.
func KindOf(err error) Kind {
	var parseErr *ParseError
	var renderErr *RenderError
	var ioErr *IOError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &parseErr):
		return KindParse
	case errors.As(err, &renderErr):
		return KindRender
	case errors.As(err, &ioErr):
		return KindIO
	default:
		return KindOther
	}
}
