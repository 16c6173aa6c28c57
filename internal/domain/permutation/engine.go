// Package permutation computes the next greater arrangement of a number's digits.
package permutation

import "nextperm/internal/core/digits"

// Next rearranges d in place into the smallest sequence of the same digits
// that is strictly greater than d, and returns it.
// It returns false when d is already the greatest arrangement (including
// single-digit and all-equal sequences); d is left untouched in that case.
//
// d must be non-empty with every element in [0,9].
func Next(d digits.Sequence) (digits.Sequence, bool) {
	n := len(d)
	if n <= 1 {
		return d, false
	}

	// pivot: rightmost p with d[p] < d[p+1]
	p := n - 2
	for p >= 0 && d[p] >= d[p+1] {
		p--
	}
	if p < 0 {
		return d, false
	}

	// d[p+1:] is non-increasing, so the first larger digit from the right
	// is the smallest digit greater than d[p].
	q := n - 1
	for d[q] <= d[p] {
		q--
	}

	d[p], d[q] = d[q], d[p]
	reverse(d[p+1:])

	return d, true
}

func reverse(s digits.Sequence) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
