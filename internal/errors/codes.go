package errors

// Programmer-facing error codes raised by the csp package's constructors
// and lifecycle helpers. These are distinct from the channel's own
// DONE/not-OPEN control flow, which spec.md treats as a non-error
// outcome and which this package never reports through Error.
var (
	ErrNegativeCapacity = New(1, "channel capacity must not be negative")
	ErrDoubleConsume    = New(2, "consume already active on this channel")
	ErrDoubleProduce    = New(3, "produce already active on this channel")
	ErrFlushNonEmpty    = New(4, "flush invoked on a non-empty channel")
	ErrPutRejected      = New(5, "put rejected, channel not accepting values")
)
