package bfvm

import (
	"errors"
	"fmt"
)

var (
	ErrUnmatchedClose  = errors.New("unmatched ]")
	ErrUnmatchedOpen   = errors.New("unmatched [")
	ErrProgramTooLarge = errors.New("program too large")
	ErrTapeBounds      = errors.New("tape cursor out of bounds")
	ErrNotOperation    = errors.New("jump target executed as operation")
	ErrNotTarget       = errors.New("operation read as jump target")
)

type Position struct {
	Offset int // byte offset, 0-based
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SyntaxError describes a translation failure and where in the source it was found.
type SyntaxError struct {
	Pos Position
	Err error
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Err.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Fault describes a run-time failure of an engine.
type Fault struct {
	PC  int
	Loc int
	Err error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%v at pc %d, loc %d", f.Err, f.PC, f.Loc)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
