package eval

import (
	"fmt"
	"io"
)

// CallStack records the closures being applied by an Evaluator.
type CallStack struct {
	Frames []CallFrame
}

// CallFrame is one frame in the CallStack
type CallFrame struct {
	// Name is the symbol the closure was called through, or "lambda" for
	// anonymous calls.
	Name  string
	Arity int
}

// Height returns the number of frames on the stack.
func (s *CallStack) Height() int {
	if s == nil {
		return 0
	}
	return len(s.Frames)
}

// Copy creates a copy of the current stack so that it can be attached to a
// runtime error.
func (s *CallStack) Copy() *CallStack {
	frames := make([]CallFrame, len(s.Frames))
	copy(frames, s.Frames)
	return &CallStack{frames}
}

// Push pushes a new stack frame onto s.
func (s *CallStack) Push(name string, arity int) {
	s.Frames = append(s.Frames, CallFrame{Name: name, Arity: arity})
}

// Pop removes the top CallFrame from the stack and returns it.
func (s *CallStack) Pop() CallFrame {
	if len(s.Frames) < 1 {
		panic("pop called on an empty stack")
	}
	f := s.Frames[len(s.Frames)-1]
	s.Frames[len(s.Frames)-1] = CallFrame{}
	s.Frames = s.Frames[:len(s.Frames)-1]
	return f
}

// DebugPrint prints s, innermost frame first.
func (s *CallStack) DebugPrint(w io.Writer) (int, error) {
	n, err := fmt.Fprintf(w, "Stack Trace [%d frames -- entrypoint last]:\n", s.Height())
	if err != nil {
		return n, err
	}
	const indent = "  "
	for i := len(s.Frames) - 1; i >= 0; i-- {
		f := s.Frames[i]
		_n, err := fmt.Fprintf(w, "%sheight %d: %s/%d\n", indent, i, f.Name, f.Arity)
		n += _n
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// TraceError is an evaluation error annotated with the call stack at the
// point of failure.
type TraceError struct {
	Err   error
	Stack *CallStack
}

func (e *TraceError) Error() string {
	return e.Err.Error()
}

func (e *TraceError) Unwrap() error {
	return e.Err
}
