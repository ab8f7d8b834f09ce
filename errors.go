package csp

import "github.com/ezex-io/gopkg/csp/internal/logger"

// ErrorSink receives errors raised outside the normal Put/Take control
// flow: an error returned by a Produce loop's Producer, or by a Consume
// callback. It is never called for the channel's
// own DONE / not-Open outcomes, which callers observe directly through
// Put, Take, and Tail's bool results.
type ErrorSink func(err error)

// defaultErrorSink logs the error at Error level and takes no further
// action. It does not panic or otherwise crash the process, since a
// library embedded in a larger service should not bring the service
// down over an error in one channel's consumer.
func defaultErrorSink(log logger.Logger) ErrorSink {
	return func(err error) {
		if err == nil {
			return
		}
		log.Error("channel error", "error", err)
	}
}

// PanicErrorSink re-panics with err instead of logging it. Use it via
// WithErrorSink for callers that want an unhandled producer or
// consumer error to crash loudly rather than be swallowed.
func PanicErrorSink(err error) {
	if err == nil {
		return
	}
	panic(err)
}
