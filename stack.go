package gojsonpath

// stack is the work stack for recursive descent.
type stack struct {
	data []any
}

func (s *stack) push(v any) {
	s.data = append(s.data, v)
}

func (s *stack) pop() any {
	i := len(s.data) - 1
	v := s.data[i]
	s.data = s.data[:i]
	return v
}

func (s *stack) empty() bool {
	return len(s.data) == 0
}

// pushChildren pushes the child values of v in reverse so that they pop
// in document order.
func (s *stack) pushChildren(v any) {
	if vs, ok := childValues(v); ok {
		for i := len(vs) - 1; i >= 0; i-- {
			s.push(vs[i])
		}
	}
}
