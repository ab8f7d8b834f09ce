package csputil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomCodeLength(t *testing.T) {
	code, err := GenerateRandomCode(10, AlphaNumeric)
	assert.NoError(t, err)
	assert.Len(t, code, 10)
}

func TestGenerateRandomCodeUsesCharset(t *testing.T) {
	code, err := GenerateRandomCode(20, Digits)
	assert.NoError(t, err)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(Digits, r))
	}
}

func TestGenerateRandomCodeZeroLengthErrors(t *testing.T) {
	_, err := GenerateRandomCode(0, AlphaNumeric)
	assert.Error(t, err)
}

func TestGenerateRandomCodeEmptyCharsetDefaultsToDigits(t *testing.T) {
	code, err := GenerateRandomCode(5, "")
	assert.NoError(t, err)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(Digits, r))
	}
}
