package format

// FrameKind tags the construct that opened a frame.
type FrameKind int

const (
	// TopLevel is opened by a command (SELECT, WHERE) or a binary command (JOIN, UNION)
	// and lasts until the next clause at the same depth.
	TopLevel FrameKind = iota
	// ParenBlock is opened by a parenthesis that did not fit on one line.
	ParenBlock
	// BetweenOperand is opened by BETWEEN and closed by its AND.
	BetweenOperand
)

func (k FrameKind) String() string {
	switch k {
	case TopLevel:
		return "TOP_LEVEL"
	case ParenBlock:
		return "PAREN_BLOCK"
	case BetweenOperand:
		return "BETWEEN_OPERAND"
	default:
		return "UNKNOWN"
	}
}

// Frame is one entry of the indent stack. Indent is the level of the frame's body.
type Frame struct {
	Kind   FrameKind
	Indent int
}

// FrameStack is the indentation state of the engine. The zero value is an empty stack.
type FrameStack struct {
	frames []Frame
}

// Push adds f to the top of the stack.
func (s *FrameStack) Push(f Frame) {
	s.frames = append(s.frames, f)
}

// Pop removes and returns the top frame.
func (s *FrameStack) Pop() (Frame, bool) {
	f, ok := s.Top()
	if ok {
		s.frames = s.frames[:len(s.frames)-1]
	}
	return f, ok
}

// Top returns the top frame without removing it.
func (s *FrameStack) Top() (Frame, bool) {
	if len(s.frames) == 0 {
		return Frame{}, false
	}
	return s.frames[len(s.frames)-1], true
}

// Len returns the number of open frames.
func (s *FrameStack) Len() int {
	return len(s.frames)
}

// Reset drops every frame.
func (s *FrameStack) Reset() {
	s.frames = s.frames[:0]
}

// Enclosing returns the innermost frame that is not a BETWEEN operand.
func (s *FrameStack) Enclosing() (Frame, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].Kind != BetweenOperand {
			return s.frames[i], true
		}
	}
	return Frame{}, false
}

// Indent returns the body level of the enclosing frame, or 0 when no frame is open.
func (s *FrameStack) Indent() int {
	if f, ok := s.Enclosing(); ok {
		return f.Indent
	}
	return 0
}

// PopClauses closes the clauses of the current statement or subquery: it pops TopLevel
// and BetweenOperand frames down to the innermost ParenBlock and returns the level a new
// clause starts at.
func (s *FrameStack) PopClauses() int {
	for len(s.frames) > 0 {
		top := s.frames[len(s.frames)-1]
		if top.Kind == ParenBlock {
			return top.Indent
		}
		s.frames = s.frames[:len(s.frames)-1]
	}
	return 0
}

// PopParen pops every frame down to and including the innermost ParenBlock and returns
// it. The stack is left untouched when no ParenBlock is open.
func (s *FrameStack) PopParen() (Frame, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].Kind == ParenBlock {
			f := s.frames[i]
			s.frames = s.frames[:i]
			return f, true
		}
	}
	return Frame{}, false
}
