package digits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	cases := map[string]Sequence{
		"0":                   {0},
		"7":                   {7},
		"123":                 {1, 2, 3},
		"230241":              {2, 3, 0, 2, 4, 1},
		"9223372036854775807": {9, 2, 2, 3, 3, 7, 2, 0, 3, 6, 8, 5, 4, 7, 7, 5, 8, 0, 7},
	}

	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			got, err := Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, raw, got.String())
		})
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParse_Malformed(t *testing.T) {
	for _, raw := range []string{"-1", "+5", "12a", " 12", "1.5", "007", "00", "１２"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParse_OutOfRange(t *testing.T) {
	for _, raw := range []string{
		"9223372036854775808",
		"18446744073709551615",
		"18446744073709551616",
		"123456789012345678901234567890",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestClone_Independent(t *testing.T) {
	orig := Sequence{1, 2, 3}
	cp := orig.Clone()
	cp[0] = 9

	assert.Equal(t, Sequence{1, 2, 3}, orig)
	assert.Nil(t, Sequence(nil).Clone())
}
