package bfvm

type Op func(e *Engine)

func Increment(e *Engine) {
	e.Memory[e.Loc]++
	e.PC++
}

func Decrement(e *Engine) {
	e.Memory[e.Loc]--
	e.PC++
}

func MoveRight(e *Engine) {
	e.Loc++
	e.PC++
}

func MoveLeft(e *Engine) {
	e.Loc--
	e.PC++
}

func LoopOpen(e *Engine) {
	if e.Memory[e.Loc] == 0 {
		e.PC = e.Program[e.PC+1].Jump()
		return
	}
	e.PC += 2
}

func LoopClose(e *Engine) {
	if e.Memory[e.Loc] != 0 {
		e.PC = e.Program[e.PC+1].Jump()
		return
	}
	e.PC += 2
}

func Output(e *Engine) {
	// write errors are not reported to the program
	_ = e.out.WriteByte(byte(e.Memory[e.Loc]))
	e.PC++
}

func Input(e *Engine) {
	// pending output, like a prompt, is shown before blocking on input
	_ = e.out.Flush()
	// on EOF or error the cell keeps its value
	if b, err := e.in.ReadByte(); err == nil {
		e.Memory[e.Loc] = int8(b)
	}
	e.PC++
}

func Halt(e *Engine) {
	_ = e.out.Flush()
	e.halted = true
}
