package csp

import "context"

// Transform maps a single input value to zero, one, or many output
// values. Implementations call emit once per output value, in order;
// calling emit zero times drops the input, and calling it more than
// once expands it into a sequence that is spliced into the channel's
// pending output in place of the single input.
//
// ctx is the Channel's own lifetime context, cancelled once the channel
// reaches the Ended state. A transform runs while the Channel's lock is
// held, and the Channel cannot reach Ended while it runs, so ctx is
// never cancelled during a transform call.
type Transform[T any] func(ctx context.Context, v T, emit func(T))

// Identity returns a Transform that passes its input through unchanged.
// It is the default transform used by New when no WithTransform option
// is supplied.
func Identity[T any]() Transform[T] {
	return func(_ context.Context, v T, emit func(T)) {
		emit(v)
	}
}

// producerRecord pairs a value awaiting delivery with the promise used
// to report whether it was ultimately accepted. expanded marks a record
// as one of several values already produced by a prior call to the
// channel's transform, so the slide engine delivers its value as-is
// instead of running the transform on it again.
type producerRecord[T any] struct {
	value    T
	result   chan bool
	expanded bool
}

// takeRecord is a pending Take call: a slot waiting to receive the next
// delivered value, plus an ok flag reporting whether one arrived before
// the channel ended.
type takeRecord[T any] struct {
	result chan takeResult[T]
}

type takeResult[T any] struct {
	value T
	ok    bool
}

// runTransform applies fn to v, collecting every emitted output into a
// slice. It is used by the slide engine to materialize a transform's
// expansion before splicing it into the pending sequences.
func runTransform[T any](ctx context.Context, fn Transform[T], v T) []T {
	if fn == nil {
		return []T{v}
	}

	out := make([]T, 0, 1)
	fn(ctx, v, func(o T) {
		out = append(out, o)
	})

	return out
}
