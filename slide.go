package csp

// slideLocked runs the channel's matchmaking loop: it repeatedly tries
// to pair buffered or pending values with waiting takers, feed new puts
// into the buffer (or directly to a waiting taker, if unbuffered),
// splice tail values in once the put queue drains, and finally
// transition to Ended once nothing remains to deliver. It must be
// called with c.mu held, and it returns once no further progress can be
// made without a new Put, Take, Tail, or Close call.
func (c *Channel[T]) slideLocked() {
	for c.stepLocked() {
	}
}

func (c *Channel[T]) stepLocked() bool {
	progressed := false

	if c.buf != nil {
		if c.deliverFromBufLocked() {
			progressed = true
		}
		if c.produceToBufLocked() {
			progressed = true
		}
	} else if c.rendezvousLocked() {
		progressed = true
	}

	if c.spliceTailsLocked() {
		progressed = true
	}

	if c.finishLocked() {
		progressed = true
	}

	return progressed
}

// deliverFromBufLocked hands buffered values to waiting takers in FIFO
// order.
func (c *Channel[T]) deliverFromBufLocked() bool {
	progressed := false

	for !c.buf.Empty() && !c.takes.empty() {
		v, _ := c.buf.Shift()
		t, _ := c.takes.shift()
		t.result <- takeResult[T]{value: v, ok: true}
		progressed = true

		if c.metrics != nil {
			c.metrics.observeTake(c.name)
		}
	}

	return progressed
}

// produceToBufLocked applies the transform to the oldest pending put and
// pushes every value it emits into the buffer. A transform that expands
// one input into several outputs may transiently push the buffer past
// its configured capacity; no further put is accepted into the buffer
// until it drains back under capacity.
func (c *Channel[T]) produceToBufLocked() bool {
	if c.puts.empty() || c.buf.Full() {
		return false
	}

	rec, _ := c.puts.shift()
	outputs := runTransform(c.ctx, c.transform, rec.value)

	for _, o := range outputs {
		c.buf.Push(o)
	}

	if rec.result != nil {
		rec.result <- true
	}

	if c.metrics != nil {
		c.metrics.observePut(c.name)
	}

	return true
}

// rendezvousLocked is the unbuffered matchmaking step: a put only
// succeeds once a taker is already waiting for it. When the put's
// transform expands into more than one value, the first is delivered to
// the waiting taker and the rest are unshifted back onto the front of
// the put queue so they are the next values offered to takers, ahead of
// any put queued after the original.
func (c *Channel[T]) rendezvousLocked() bool {
	progressed := false

	for !c.puts.empty() && !c.takes.empty() {
		rec, _ := c.puts.shift()

		var outputs []T
		if rec.expanded {
			outputs = []T{rec.value}
		} else {
			outputs = runTransform(c.ctx, c.transform, rec.value)
		}

		if len(outputs) == 0 {
			if rec.result != nil {
				rec.result <- true
			}
			progressed = true

			continue
		}

		t, _ := c.takes.shift()
		t.result <- takeResult[T]{value: outputs[0], ok: true}

		if rec.result != nil {
			rec.result <- true
		}

		for i := len(outputs) - 1; i >= 1; i-- {
			c.puts.unshift(producerRecord[T]{value: outputs[i], expanded: true})
		}

		progressed = true

		if c.metrics != nil {
			c.metrics.observePut(c.name)
			c.metrics.observeTake(c.name)
		}
	}

	return progressed
}

// spliceTailsLocked moves tail values onto the put queue once the
// channel has closed and every regular put has drained, so they are
// delivered last but still before the channel ends.
func (c *Channel[T]) spliceTailsLocked() bool {
	if c.state == Open || c.puts.empty() == false || c.tails.empty() {
		return false
	}

	c.tails.drainInto(c.puts)

	return true
}

// finishLocked transitions a Closed, fully-drained channel to Ended: it
// rejects every still-waiting taker with ok=false and cancels the
// channel's context, which Done observes.
func (c *Channel[T]) finishLocked() bool {
	if c.state != Closed || !c.puts.empty() || !c.tails.empty() {
		return false
	}
	if c.buf != nil && !c.buf.Empty() {
		return false
	}

	c.state = Ended

	for {
		t, ok := c.takes.shift()
		if !ok {
			break
		}

		var zero T
		t.result <- takeResult[T]{value: zero, ok: false}
	}

	c.log.Debug("channel ended", "name", c.name)
	c.cancel()

	return true
}
