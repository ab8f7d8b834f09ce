package csp

// State represents the lifecycle stage of a Channel. A Channel moves
// monotonically forward through these stages: it starts Open, becomes
// Closed once no more values may be put onto it, and finally becomes
// Ended once every pending put and tail value has been delivered.
type State int

const (
	// Open is the initial state. Put, Take, and Tail all succeed.
	Open State = iota
	// Closed means Put no longer succeeds, but values already queued
	// (including tails) are still being drained to waiting takers.
	Closed
	// Ended means the channel has fully drained and Done has fired.
	// Take on an Ended channel always reports no value.
	Ended
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}
