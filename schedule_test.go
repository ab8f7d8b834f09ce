package csp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCloseAfterClosesOnSchedule(t *testing.T) {
	ch := New[int]()

	CloseAfter(t.Context(), ch, 10*time.Millisecond)

	assert.Equal(t, Open, ch.State())
	assert.Eventually(t, func() bool {
		return ch.State() != Open
	}, 500*time.Millisecond, 5*time.Millisecond)
}

func TestCloseAfterCancelPreventsClose(t *testing.T) {
	ch := New[int]()

	cancel := CloseAfter(t.Context(), ch, 30*time.Millisecond)
	cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, Open, ch.State())
}

func TestQueueDepthJobReportsLength(t *testing.T) {
	ch := New[int](WithCapacity[int](5))
	ch.Put(t.Context(), 1)
	ch.Put(t.Context(), 2)

	var depth int
	job := NewQueueDepthJob(ch, func(d int) { depth = d })

	assert.NoError(t, job.Run(t.Context()))
	assert.Equal(t, 2, depth)
}
