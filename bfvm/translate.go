package bfvm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Translate reads program source from r and plants it into a threaded
// program of at most capacity cells, ending with a Halt cell.
//
// Each loop operation is followed by a target cell. The target after '['
// points one past the target cell of the matching ']', and the target after
// ']' points one past the target cell of the matching '['.
func Translate(r io.Reader, table OpTable, capacity int) (Program, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity %d", ErrProgramTooLarge, capacity)
	}

	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	t := &translator{
		program:  make(Program, 0, capacity),
		capacity: capacity,
		pos: Position{
			Line:   1,
			Column: 1,
		},
	}

	for {
		ch, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}
		if err := t.plant(table, ch); err != nil {
			return nil, err
		}
		t.advance(ch)
	}

	if n := len(t.opens); n > 0 {
		return nil, &SyntaxError{
			Pos: t.opens[n-1].pos,
			Err: ErrUnmatchedOpen,
		}
	}

	// room for Halt is always kept by emit
	t.program = append(t.program, OpCell(Halt))

	return t.program, nil
}

type translator struct {
	program  Program
	capacity int
	opens    []pendingOpen
	pos      Position
}

type pendingOpen struct {
	index int // the target cell reserved after '['
	pos   Position
}

func (t *translator) plant(table OpTable, ch byte) error {
	op, ok := table[ch]
	if !ok {
		return nil
	}
	if err := t.emit(OpCell(op)); err != nil {
		return err
	}

	switch ch {

	case '[':
		t.opens = append(t.opens, pendingOpen{
			index: len(t.program),
			pos:   t.pos,
		})
		// resolved by the matching ']'
		return t.emit(TargetCell(0))

	case ']':
		n := len(t.opens)
		if n == 0 {
			return &SyntaxError{
				Pos: t.pos,
				Err: ErrUnmatchedClose,
			}
		}
		start := t.opens[n-1].index
		t.opens = t.opens[:n-1]
		top := len(t.program)
		t.program[start].Target = top + 1
		return t.emit(TargetCell(start + 1))

	}

	return nil
}

func (t *translator) emit(cell Cell) error {
	// keep the last cell for Halt
	if len(t.program)+1 >= t.capacity {
		return &SyntaxError{
			Pos: t.pos,
			Err: ErrProgramTooLarge,
		}
	}
	t.program = append(t.program, cell)
	return nil
}

func (t *translator) advance(ch byte) {
	t.pos.Offset++
	if ch == '\n' {
		t.pos.Line++
		t.pos.Column = 1
		return
	}
	t.pos.Column++
}
