// Package seed finds the smallest initial value of register A that makes a
// program print its own cells.
//
// The search relies on the shape of a self-looping program: each pass of
// the loop emits one digit and shifts A right by three bits, and the only
// jump is the `jnz 0` that closes the loop. Under that shape the last
// digit printed depends only on the most significant octal digits of the
// seed, so the seed is built most significant digit first, matching the
// program read back to front. Programs without that shape are rejected by
// CheckStructure rather than searched.
package seed
