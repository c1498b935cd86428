package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinDigits(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", JoinDigits(nil))
	assert.Equal("2", JoinDigits([]uint8{2}))
	assert.Equal("0,1,5,4,3,0", JoinDigits([]uint8{0, 1, 5, 4, 3, 0}))
}

func TestSplitDigits(t *testing.T) {
	assert := assert.New(t)

	digits, err := SplitDigits(" 0, 1,5 ,4,3,0\n")
	assert.NoError(err)
	assert.Equal([]uint8{0, 1, 5, 4, 3, 0}, digits)

	digits, err = SplitDigits("")
	assert.NoError(err)
	assert.Empty(digits)

	_, err = SplitDigits("1,x")
	assert.Error(err)

	_, err = SplitDigits("1,,2")
	assert.Error(err)

	// Range checking against 0..7 is the program's job, not the parser's.
	digits, err = SplitDigits("9")
	assert.NoError(err)
	assert.Equal([]uint8{9}, digits)
}

func TestOctal(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]uint8{0}, Octal(0))
	assert.Equal([]uint8{7}, Octal(7))
	assert.Equal([]uint8{1, 0}, Octal(8))
	assert.Equal([]uint8{3, 4, 5, 3, 0, 0}, Octal(117440))
}
