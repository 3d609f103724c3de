package bfvm

import "fmt"

type Kind uint8

const (
	KindOp Kind = iota + 1
	KindTarget
)

func (k Kind) String() string {
	switch k {
	case KindOp:
		return "op"
	case KindTarget:
		return "target"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Cell is one slot of a translated program: either an operation to call
// or the absolute jump target read by the loop operation before it.
type Cell struct {
	Kind   Kind
	Op     Op
	Target int
}

func OpCell(op Op) Cell {
	return Cell{
		Kind: KindOp,
		Op:   op,
	}
}

func TargetCell(target int) Cell {
	return Cell{
		Kind:   KindTarget,
		Target: target,
	}
}

// Jump returns the jump target. It panics on an operation cell.
func (c Cell) Jump() int {
	if c.Kind != KindTarget {
		panic(fmt.Errorf("%w: got %v cell", ErrNotTarget, c.Kind))
	}
	return c.Target
}

type Program []Cell
