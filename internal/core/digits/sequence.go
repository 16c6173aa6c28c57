// Package digits converts between decimal input strings and digit sequences.
package digits

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Input bounds (inclusive).
const (
	MinInput uint64 = 0
	MaxInput uint64 = math.MaxInt64
)

var (
	// ErrEmpty is returned for an empty input string.
	ErrEmpty = errors.New("input is empty")

	// ErrMalformed is returned when input is not a canonical decimal integer.
	ErrMalformed = errors.New("input is not a non-negative decimal integer")

	// ErrOutOfRange is returned when input exceeds MaxInput.
	ErrOutOfRange = errors.New("input is out of range")
)

// Sequence is an ordered list of decimal digits, most significant first.
type Sequence []uint8

// Parse validates raw and splits it into digits.
// raw must be "0" or a string of ASCII digits without a leading zero,
// no greater than MaxInput.
func Parse(raw string) (Sequence, error) {
	if raw == "" {
		return nil, ErrEmpty
	}

	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return nil, fmt.Errorf("%w: unexpected character %q at position %d", ErrMalformed, raw[i], i)
		}
	}
	if len(raw) > 1 && raw[0] == '0' {
		return nil, fmt.Errorf("%w: leading zero", ErrMalformed)
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v > MaxInput {
		// only ErrRange is possible once the characters are checked
		return nil, fmt.Errorf("%w: %s is not in range %d - %d", ErrOutOfRange, raw, MinInput, MaxInput)
	}

	seq := make(Sequence, len(raw))
	for i := 0; i < len(raw); i++ {
		seq[i] = raw[i] - '0'
	}
	return seq, nil
}

// String renders the digits verbatim.
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, d := range s {
		b.WriteByte('0' + d)
	}
	return b.String()
}

// Clone returns an independent copy of s.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}
