package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingBufferFullAtCapacity(t *testing.T) {
	b := NewRingBuffer[int](2)

	assert.False(t, b.Full())
	b.Push(1)
	assert.False(t, b.Full())
	b.Push(2)
	assert.True(t, b.Full())

	v, ok := b.Shift()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.False(t, b.Full())
}

func TestRingBufferZeroCapacityNeverFull(t *testing.T) {
	b := NewRingBuffer[int](0)

	for i := 0; i < 50; i++ {
		assert.False(t, b.Full())
		b.Push(i)
	}
}

func TestRingBufferNegativeCapacityClampedToZero(t *testing.T) {
	b := NewRingBuffer[int](-3)
	assert.Equal(t, 0, b.Size())
	assert.False(t, b.Full())
}

func TestRingBufferShiftOnEmpty(t *testing.T) {
	b := NewRingBuffer[int](1)
	_, ok := b.Shift()
	assert.False(t, ok)
}
