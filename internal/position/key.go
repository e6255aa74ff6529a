// Package position holds the small value types the rest of the module is
// built on: button keys, touch sensors, the dihedral symmetry group acting
// on them, and durations expressed either in beats or seconds.
package position

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is wrapped by the error NewKey returns for an out-of-range index.
var ErrInvalidKey = errors.New("invalid key")

// Key is one of the eight button positions, stored zero-indexed internally
// (displayed one-indexed, matching the chart text where keys are "1".."8").
type Key int

// NewKey checks n is in [0,7] and returns the corresponding Key.
func NewKey(n int) (Key, error) {
	if n < 0 || n > 7 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidKey, n)
	}
	return Key(n), nil
}

// KeyFromDigit converts a one-indexed chart digit ('1'..'8') to a Key.
func KeyFromDigit(digit int) (Key, error) {
	return NewKey(digit - 1)
}

// Digit returns the one-indexed chart representation of k.
func (k Key) Digit() int { return int(k) + 1 }

func (k Key) String() string { return fmt.Sprintf("%d", k.Digit()) }

// CWDistance returns the clockwise distance in key-steps from k to other,
// always in [0,7].
func (k Key) CWDistance(other Key) int {
	return ((int(other) - int(k)) % 8 + 8) % 8
}
