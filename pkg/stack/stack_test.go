package stack

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestPushUntilFull(t *testing.T) {
	var s Stack
	for i := 0; i < Capacity; i++ {
		assert.NoError(t, s.Push(uint16(0x200+i*2)))
	}
	assert.Equal(t, Capacity, s.Len())
	assert.True(t, s.Full())

	err := s.Push(0x300)
	assert.True(t, errors.Is(err, ErrOverflow))
	assert.Equal(t, Capacity, s.Len())

	// the failed push did not clobber the top entry
	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x200+(Capacity-1)*2), top)
}

func TestPopEmpty(t *testing.T) {
	var s Stack
	addr, ok := s.Pop()
	assert.False(t, ok)
	assert.Equal(t, uint16(0), addr)

	_, ok = s.Peek()
	assert.False(t, ok)
}

func TestLIFOOrder(t *testing.T) {
	var s Stack
	assert.NoError(t, s.Push(0xA))
	assert.NoError(t, s.Push(0xB))
	assert.NoError(t, s.Push(0xC))

	for _, want := range []uint16{0xC, 0xB, 0xA} {
		got, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, s.Len())

	_, ok := s.Pop()
	assert.False(t, ok)
}
