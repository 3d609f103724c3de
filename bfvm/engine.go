package bfvm

import "io"

// Writer is the output capability of an engine. *bufio.Writer implements it.
type Writer interface {
	io.ByteWriter
	Flush() error
}

type Engine struct {
	Program Program
	PC      int
	Memory  []int8
	Loc     int

	in     io.ByteReader
	out    Writer
	halted bool
}

func NewEngine(program Program, tapeSize int, in io.ByteReader, out Writer) *Engine {
	return &Engine{
		Program: program,
		Memory:  make([]int8, tapeSize),
		in:      in,
		out:     out,
	}
}

func (e *Engine) Halted() bool {
	return e.halted
}

// Run calls the operation of each cell starting at PC until Halt runs.
// A cursor moved off the tape is reported as a *Fault once a cell is accessed through it.
func (e *Engine) Run() (err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if e.Loc < 0 || e.Loc >= len(e.Memory) {
			err = &Fault{
				PC:  e.PC,
				Loc: e.Loc,
				Err: ErrTapeBounds,
			}
			return
		}
		panic(p)
	}()

	for !e.halted {
		cell := e.Program[e.PC]
		if cell.Kind != KindOp {
			return &Fault{
				PC:  e.PC,
				Loc: e.Loc,
				Err: ErrNotOperation,
			}
		}
		cell.Op(e)
	}

	return nil
}
