package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumber(t *testing.T) {
	for b := byte('0'); b <= '9'; b++ {
		assert.True(t, IsNumber(b))
	}
	assert.False(t, IsNumber('a'))
	assert.False(t, IsNumber('+'))
	assert.False(t, IsNumber(' '))
}

func TestIsSpace(t *testing.T) {
	for _, b := range []byte{' ', '\t', '\n', '\r'} {
		assert.True(t, IsSpace(b))
	}
	assert.False(t, IsSpace('0'))
	assert.False(t, IsSpace('('))
}
