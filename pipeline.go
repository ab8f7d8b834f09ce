package csp

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pipe registers children onto parent's pipeline: every value taken from
// parent is put to every currently registered child, all children's
// puts completing before the next take, before any further take occurs
// on parent. This is the one-to-many fan-out the teacher's pipeline
// package calls RegisterReceiver, generalized from a single callback
// per pipeline to many child Channels.
//
// The first call to Pipe on a given parent starts its forwarding loop;
// later calls just add children to the existing loop. If parent was
// closed with CloseAll, the forwarding loop closes every still-registered
// child once parent reaches Ended. The loop's cancel handle is stored on
// parent and is only ever invoked by Unpipe, once the pipeline empties.
//
// Pipe returns the last child passed in (or nil if none), mirroring the
// source's chaining return.
func Pipe[T any](parent *Channel[T], children ...*Channel[T]) *Channel[T] {
	parent.mu.Lock()
	parent.pipeline = append(parent.pipeline, children...)

	if parent.pipeCancel == nil {
		loopCtx, cancel := context.WithCancel(context.Background())
		parent.pipeCancel = cancel

		go parent.pipeLoop(loopCtx)
	}
	parent.mu.Unlock()

	if len(children) == 0 {
		return nil
	}

	return children[len(children)-1]
}

// Unpipe removes children from parent's pipeline. Once the pipeline is
// empty, the forwarding loop's cancel handle is invoked, stopping it
// without any further take on parent. Returns parent, mirroring the
// source's chaining return.
func Unpipe[T any](parent *Channel[T], children ...*Channel[T]) *Channel[T] {
	parent.mu.Lock()
	defer parent.mu.Unlock()

	remove := make(map[*Channel[T]]bool, len(children))
	for _, ch := range children {
		remove[ch] = true
	}

	kept := parent.pipeline[:0]
	for _, ch := range parent.pipeline {
		if !remove[ch] {
			kept = append(kept, ch)
		}
	}
	parent.pipeline = kept

	if len(parent.pipeline) == 0 && parent.pipeCancel != nil {
		parent.pipeCancel()
		parent.pipeCancel = nil
	}

	return parent
}

// pipeLoop is the single forwarding loop shared by every child
// registered on c via Pipe. It takes from c and fans each value out to
// every currently registered child, waiting for all of them to accept
// the value before taking the next one, so no child ever observes value
// N+1 before value N.
func (c *Channel[T]) pipeLoop(ctx context.Context) {
	for {
		v, ok := c.Take(ctx)
		if !ok {
			if ctx.Err() != nil {
				return
			}

			c.mu.Lock()
			children := append([]*Channel[T]{}, c.pipeline...)
			shouldClose := c.shouldClose
			c.mu.Unlock()

			if shouldClose {
				for _, child := range children {
					child.Close()
				}
			}

			return
		}

		c.mu.Lock()
		children := append([]*Channel[T]{}, c.pipeline...)
		c.mu.Unlock()

		group, gctx := errgroup.WithContext(ctx)
		for _, child := range children {
			child := child
			group.Go(func() error {
				child.Put(gctx, v)

				return nil
			})
		}
		_ = group.Wait()
	}
}

// Pipeline builds one Channel per stage, each running the given
// Transform, wires them head-to-tail with Pipe, and returns the head and
// tail. Putting to head therefore runs every stage's transform in turn
// before the result reaches tail. Given no stages, head and tail are the
// same plain channel.
func Pipeline[T any](stages ...Transform[T]) (head, tail *Channel[T]) {
	if len(stages) == 0 {
		ch := New[T]()

		return ch, ch
	}

	chans := make([]*Channel[T], len(stages))
	for i, fn := range stages {
		chans[i] = New[T](WithTransform(fn))
	}

	for i := 0; i < len(chans)-1; i++ {
		Pipe(chans[i], chans[i+1])
	}

	return chans[0], chans[len(chans)-1]
}

// Merge pipes every src into a single new Channel, closing it
// automatically once every src has reached Ended.
func Merge[T any](srcs ...*Channel[T]) *Channel[T] {
	out := New[T]()

	for _, src := range srcs {
		Pipe(src, out)
	}

	go func() {
		for _, src := range srcs {
			<-src.Done()
		}
		out.Close()
	}()

	return out
}

// Map returns a new Channel carrying fn applied to every value taken
// from src, closing automatically once src reaches Ended.
func Map[T, U any](ctx context.Context, src *Channel[T], fn func(T) U) *Channel[U] {
	out := New[U]()

	go func() {
		for {
			v, ok := src.Take(ctx)
			if !ok {
				break
			}
			if !out.Put(ctx, fn(v)) {
				break
			}
		}
		out.Close()
	}()

	return out
}

// ToArray drains src, collecting every value in order until it reaches
// Ended or ctx is cancelled. It blocks the calling goroutine until then.
func ToArray[T any](ctx context.Context, src *Channel[T]) []T {
	out := make([]T, 0)

	for {
		v, ok := src.Take(ctx)
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
