package io

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	assert := assert.New(t)

	match := &Match{Expect: []uint8{0, 3, 5}}
	assert.False(match.Complete())

	assert.NoError(match.Send(0))
	assert.NoError(match.Send(3))
	assert.Equal(2, match.Matched())
	assert.False(match.Complete())
	assert.NoError(match.Send(5))
	assert.True(match.Complete())

	err := match.Send(1)
	var mismatch *ErrMismatch
	assert.True(errors.As(err, &mismatch))
	assert.Equal(3, mismatch.Index)
	assert.Equal(-1, mismatch.Want)
	assert.Equal(1, mismatch.Got)

	match.Rewind()
	assert.Equal(0, match.Matched())
	err = match.Send(4)
	assert.True(errors.Is(err, &ErrMismatch{}))
	assert.True(errors.As(err, &mismatch))
	assert.Equal(0, mismatch.Index)
	assert.Equal(0, mismatch.Want)
	assert.Equal(4, mismatch.Got)
}

func TestMatchEmpty(t *testing.T) {
	assert := assert.New(t)

	match := &Match{}
	assert.True(match.Complete())
	assert.Error(match.Send(0))
}
