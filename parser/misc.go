package parser

import "github.com/edwingeng/deque"

// frame is a pending operator application of the precedence climbing loop.
type frame struct {
	assoc  Assoc
	prec   int
	action func(any) any
}

// stacks reports whether an operator with precedence next binds tighter than f
// and so has to be applied before f.
func (f frame) stacks(next int) bool {
	switch f.assoc {
	case Left:
		return f.prec < next
	case Right, Prefix:
		return next <= f.prec
	default:
		panic(wrongAssocError(f.assoc))
	}
}

type frameStack struct {
	frames deque.Deque
}

func newFrameStack() *frameStack {
	return &frameStack{deque.NewDeque()}
}

func (s *frameStack) IsEmpty() bool {
	return s.frames.Empty()
}

func (s *frameStack) Push(f frame) {
	s.frames.PushBack(f)
}

func (s *frameStack) Pop() frame {
	return s.frames.PopBack().(frame)
}

func (s *frameStack) Top() frame {
	return s.frames.Back().(frame)
}
