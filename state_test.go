package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "ended", Ended.String())
	assert.Equal(t, "unknown", State(99).String())
}
