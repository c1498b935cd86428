package io

// Match compares emitted digits against an expected sequence.
// Send fails with ErrMismatch as soon as a digit differs from the
// expectation, or when more digits arrive than were expected.
type Match struct {
	Expect []uint8

	index int
}

var _ Channel = (*Match)(nil)

// Rewind restarts the comparison at the first expected digit.
func (mc *Match) Rewind() {
	mc.index = 0
}

// Send checks the next digit.
func (mc *Match) Send(digit uint8) (err error) {
	if mc.index >= len(mc.Expect) {
		return &ErrMismatch{Index: mc.index, Want: -1, Got: int(digit)}
	}

	want := mc.Expect[mc.index]
	if want != digit {
		return &ErrMismatch{Index: mc.index, Want: int(want), Got: int(digit)}
	}

	mc.index++

	return
}

// Matched returns the count of digits that have matched so far.
func (mc *Match) Matched() int {
	return mc.index
}

// Complete is true when every expected digit has been matched.
func (mc *Match) Complete() bool {
	return mc.index == len(mc.Expect)
}
