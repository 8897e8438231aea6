package setup

import (
	"errors"
	"strings"
)

// Kinds of configuration errors. Use errors.Is to test for them.
var (
	// ErrUnreadableFile indicates an input file which cannot be opened or read.
	ErrUnreadableFile = errors.New("please enter a valid filename")

	// ErrEmptyDictionary indicates a dictionary file without any lines.
	ErrEmptyDictionary = errors.New("a valid dictionary must be provided")

	// ErrBoardTooSmall indicates a board with fewer than 2 X 2 cells.
	ErrBoardTooSmall = errors.New("a valid board of at least 2 X 2 must be provided")

	// ErrMalformedBoard indicates a board file which does not follow the
	// board file format.
	ErrMalformedBoard = errors.New("malformed board")
)

// ConfigError reports a problem with the input files.
type ConfigError struct {
	// Kind is one of the Err... sentinels of this package.
	Kind error

	// Path is the file the error refers to, if any.
	Path string

	// Detail describes the problem more closely.
	Detail string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Path != "" {
		b.WriteString(" (")
		b.WriteString(e.Path)
		b.WriteString(")")
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the error kind and the cause.
func (e *ConfigError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func configError(kind error, path, detail string, cause error) *ConfigError {
	return &ConfigError{Kind: kind, Path: path, Detail: detail, Cause: cause}
}
