package control

// Frame is an open container.
type Frame struct {
	Type Type

	// Count is the number of fields read directly inside the container.
	Count uint64
}

type Stack []*Frame

func (s *Stack) Push(f *Frame) {
	*s = append(*s, f)
}

func (s *Stack) Top() *Frame {
	if len(*s) == 0 {
		return nil
	}

	return (*s)[len(*s)-1]
}

func (s *Stack) Pop() (err error) {
	top := s.Top()
	if top == nil {
		return Error.New("no frame on stack")
	}

	*s = (*s)[:len(*s)-1]

	return nil
}

// Count adds fields to the innermost container.
func (s *Stack) Count(fields uint64) {
	top := s.Top()
	if top == nil {
		return
	}

	top.Count += fields
}
