// SPDX-License-Identifier: MIT

// Package qr - Permutation: direct index mapping for column pivoting.
//
// Purpose:
//   - Turn the per-step column transpositions recorded by the decomposition
//     into a single mapping p, where column k of A·Π is column p[k] of A.
//   - Keep the representation a plain []int so callers can range over it.

package qr

import "github.com/cockroachdb/errors"

// Permutation maps position k to the original index p[k].
// A valid Permutation of length n is a bijection on [0, n).
type Permutation []int

// Identity returns the identity permutation of length n (n ≥ 0).
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// PermutationFromTranspositions starts from Identity(n) and applies, in
// order, the transposition (k, t[k]) on the right for every k in t.
//
// Errors:
//   - errors.AssertionFailedf when len(t) > n or an entry is outside [0, n).
//
// Complexity:
//   - Time O(n), Space O(n).
func PermutationFromTranspositions(n int, t []int) (Permutation, error) {
	if len(t) > n {
		return nil, errors.AssertionFailedf("qr: %d transpositions for a permutation of length %d", len(t), n)
	}
	p := Identity(n)
	for k, tk := range t {
		if err := p.ApplyTranspositionOnTheRight(k, tk); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// ApplyTranspositionOnTheRight composes p with the transposition (i, j)
// on the right, which exchanges the images p[i] and p[j].
func (p Permutation) ApplyTranspositionOnTheRight(i, j int) error {
	if i < 0 || i >= len(p) || j < 0 || j >= len(p) {
		return errors.AssertionFailedf("qr: transposition (%d,%d) outside permutation of length %d", i, j, len(p))
	}
	p[i], p[j] = p[j], p[i]

	return nil
}

// IsBijection reports whether p maps [0, len(p)) onto itself.
func (p Permutation) IsBijection() bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// Inverse returns q with q[p[k]] = k. p must be a bijection.
func (p Permutation) Inverse() Permutation {
	q := make(Permutation, len(p))
	for k, v := range p {
		q[v] = k
	}

	return q
}

// Clone returns an independent copy of p.
func (p Permutation) Clone() Permutation {
	return append(Permutation(nil), p...)
}
