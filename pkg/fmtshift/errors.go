package fmtshift

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat indicates an extension without a registered parser or writer.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrSourceNotFound indicates the input file does not exist.
var ErrSourceNotFound = errors.New("source file not found")

// ErrIO indicates a read or write failure while converting.
var ErrIO = errors.New("io failure")

// Direction tells whether an extension was looked up as input or output.
type Direction string

const (
	DirectionInput  Direction = "input"
	DirectionOutput Direction = "output"
)

// UnsupportedFormatError names the offending extension together with every
// extension registered at the time of the lookup.
type UnsupportedFormatError struct {
	Extension string
	Direction Direction
	Inputs    []string
	Outputs   []string
}

func (e *UnsupportedFormatError) Error() string {
	ext := e.Extension
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Sprintf("unsupported %s format: %s (supported inputs: %s; supported outputs: %s)",
		e.Direction, ext, strings.Join(e.Inputs, ", "), strings.Join(e.Outputs, ", "))
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// IOError represents a failure to read the source or write the destination.
type IOError struct {
	Op   string // "parse" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError creates a new IOError.
func NewIOError(op, path string, err error) *IOError {
	return &IOError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}
