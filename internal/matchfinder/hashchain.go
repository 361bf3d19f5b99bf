// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress (adapted from woozymasta/lzo's sliding_window.go)

// Package matchfinder implements the 2-byte hash chain match finder shared
// by every optimal-parse codec (spec section 9, "Design Notes — linked
// match chains"): one int32 array of chain heads keyed by the next two
// source bytes, and one int32 array of "previous position with the same
// key" links, avoiding per-node allocation and pointer chasing the way the
// teacher's sliding window dictionary avoids them with uint16 arrays.
package matchfinder

// Chain is a 2-byte hash chain over a fixed source buffer, built once per
// compress call and walked newest-to-oldest when searching for match
// candidates at a given position.
type Chain struct {
	src  []byte
	head [1 << 16]int32
	prev []int32
}

// NewChain returns a Chain ready to index src. Insert must be called at each
// position in increasing order before Candidates(pos) sees it as a
// candidate for positions after it.
func NewChain(src []byte) *Chain {
	c := acquireChain()

	if cap(c.prev) >= len(src) {
		c.prev = c.prev[:len(src)]
	} else {
		c.prev = make([]int32, len(src))
	}

	for i := range c.head {
		c.head[i] = -1
	}
	for i := range c.prev {
		c.prev[i] = -1
	}

	c.src = src
	return c
}

// Release returns the Chain's backing arrays to the pool. The Chain must
// not be used again after Release.
func (c *Chain) Release() {
	releaseChain(c)
}

func key2(src []byte, pos int) int {
	return int(src[pos])<<8 | int(src[pos+1])
}

// Insert records pos in the chain for the 2-byte key at src[pos:pos+2].
// Positions within 1 byte of the end of src (no full key) are not indexed.
func (c *Chain) Insert(pos int) {
	if pos < 0 || pos+1 >= len(c.src) {
		return
	}

	k := key2(c.src, pos)
	c.prev[pos] = c.head[k]
	c.head[k] = int32(pos)
}

// Candidates walks the chain for the key at src[pos:pos+2] from newest to
// oldest, invoking yield(candidatePos) for each node whose offset (pos -
// candidatePos) is within (0, maxOffset]. The walk stops when yield returns
// false, maxOffset is exceeded, or maxChain nodes have been visited
// (maxChain <= 0 means unbounded).
func (c *Chain) Candidates(pos, maxOffset, maxChain int, yield func(candPos int) bool) {
	if pos < 0 || pos+1 >= len(c.src) {
		return
	}

	k := key2(c.src, pos)
	node := c.head[k]
	visited := 0

	for node >= 0 {
		offset := pos - int(node)
		if offset <= 0 || offset > maxOffset {
			break
		}

		if !yield(int(node)) {
			return
		}

		visited++
		if maxChain > 0 && visited >= maxChain {
			return
		}

		node = c.prev[node]
	}
}

// MatchLength returns how many bytes starting at candPos and pos agree,
// capped at maxLen (and at the end of src).
func (c *Chain) MatchLength(pos, candPos, maxLen int) int {
	n := 0
	limit := len(c.src) - pos
	if maxLen < limit {
		limit = maxLen
	}

	for n < limit && c.src[candPos+n] == c.src[pos+n] {
		n++
	}

	return n
}
