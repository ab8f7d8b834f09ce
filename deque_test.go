package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDequePushShiftFIFO(t *testing.T) {
	d := newDeque[int]()

	for i := 0; i < 5; i++ {
		d.push(i)
	}

	for i := 0; i < 5; i++ {
		v, ok := d.shift()
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}

	_, ok := d.shift()
	assert.False(t, ok)
}

func TestDequeUnshiftPrepends(t *testing.T) {
	d := newDeque[int]()
	d.push(2)
	d.push(3)
	d.unshift(1)
	d.unshift(0)

	assert.Equal(t, []int{0, 1, 2, 3}, d.toSlice())
}

func TestDequeInterleavedPushUnshift(t *testing.T) {
	d := newDeque[string]()
	d.push("b")
	d.unshift("a")
	d.push("c")
	d.unshift("pre-a")

	assert.Equal(t, []string{"pre-a", "a", "b", "c"}, d.toSlice())
}

func TestDequeDrainInto(t *testing.T) {
	src := newDeque[int]()
	dst := newDeque[int]()

	for i := 0; i < 3; i++ {
		src.push(i)
	}
	dst.push(-1)

	src.drainInto(dst)

	assert.True(t, src.empty())
	assert.Equal(t, []int{-1, 0, 1, 2}, dst.toSlice())
}

func TestDequeEmptyAndLength(t *testing.T) {
	d := newDeque[int]()
	assert.True(t, d.empty())
	assert.Equal(t, 0, d.length())

	d.push(1)
	assert.False(t, d.empty())
	assert.Equal(t, 1, d.length())
}
