package stack

import "errors"

// Capacity is the maximum call nesting depth.
const Capacity = 32

// ErrOverflow is returned by Push when the stack is full.
var ErrOverflow = errors.New("call stack overflow")

// Stack is a bounded LIFO of return addresses.
type Stack struct {
	data [Capacity]uint16
	ptr  int
}

// Push appends addr. It fails without modifying the stack when the stack
// already holds Capacity entries.
func (s *Stack) Push(addr uint16) error {
	if s.ptr == Capacity {
		return ErrOverflow
	}
	s.data[s.ptr] = addr
	s.ptr++
	return nil
}

// Pop removes and returns the most recently pushed address. The second
// result is false when the stack is empty.
func (s *Stack) Pop() (uint16, bool) {
	if s.ptr == 0 {
		return 0, false
	}
	s.ptr--
	return s.data[s.ptr], true
}

// Peek returns the top address without removing it.
func (s *Stack) Peek() (uint16, bool) {
	if s.ptr == 0 {
		return 0, false
	}
	return s.data[s.ptr-1], true
}

// Len returns the current depth.
func (s *Stack) Len() int {
	return s.ptr
}

// Full reports whether another Push would fail.
func (s *Stack) Full() bool {
	return s.ptr == Capacity
}
