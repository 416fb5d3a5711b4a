package layout

import (
	"errors"
	"fmt"
)

var (
	// Parse failures. All are returned wrapped in a *ParseError.
	ErrEmptyFile        = errors.New("file is empty")
	ErrMissingFrameName = errors.New("frame block missing name")
	ErrAttrOutsideFrame = errors.New("attribute line outside frame block")
	ErrMalformedLine    = errors.New("missing ':' separator")

	// Update failures.
	ErrFrameNotFound       = errors.New("frame not found")
	ErrInvalidKey          = errors.New("invalid key in --set")
	ErrInvalidOverride     = errors.New("invalid --set argument")
	ErrFrameTargetRequired = errors.New("--set requires at least Frame=<name>")

	// File failures.
	ErrWrite              = errors.New("write layout file")
	ErrNotLayoutFile      = errors.New("not a valid layout-local.txt file")
	ErrLayoutPathRequired = errors.New("layout file path is required")

	// Config failures.
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
)

// ParseError reports a malformed layout file with the offending line.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse layout: %v", e.Err)
	}

	return fmt.Sprintf("parse layout line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErr(line int, err error) error {
	return &ParseError{Line: line, Err: err}
}
