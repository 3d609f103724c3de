package bfvm

type OpTable map[byte]Op

func NewOpTable() OpTable {
	return OpTable{
		'+': Increment,
		'-': Decrement,
		'>': MoveRight,
		'<': MoveLeft,
		'[': LoopOpen,
		']': LoopClose,
		'.': Output,
		',': Input,
	}
}
