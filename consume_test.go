package csp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsumeVisitsEveryValueInOrder(t *testing.T) {
	ch := FromSlice([]int{1, 2, 3})

	var got []int
	Consume(t.Context(), ch, func(_ context.Context, v int) error {
		got = append(got, v)

		return nil
	})

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestConsumeReportsCallbackErrorsAndContinues(t *testing.T) {
	var caught []error
	ch := FromSlice([]int{1, 2, 3}, WithErrorSink[int](func(err error) {
		caught = append(caught, err)
	}))

	var got []int
	Consume(t.Context(), ch, func(_ context.Context, v int) error {
		got = append(got, v)
		if v == 2 {
			return assert.AnError
		}

		return nil
	})

	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, []error{assert.AnError}, caught)
}

func TestConsumePanicsOnDoubleConsume(t *testing.T) {
	ch := New[int]()
	defer ch.Close()

	started := make(chan struct{})
	go func() {
		close(started)
		Consume(t.Context(), ch, func(_ context.Context, _ int) error {
			return nil
		})
	}()

	<-started
	assert.Eventually(t, func() bool {
		ch.mu.Lock()
		defer ch.mu.Unlock()

		return ch.consuming
	}, 200*time.Millisecond, 5*time.Millisecond)

	assert.Panics(t, func() {
		Consume(t.Context(), ch, func(_ context.Context, _ int) error {
			return nil
		})
	})
}
