// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

// Package gamma implements the standard and interlaced Elias-gamma coders
// shared by the LZ codecs (spec section 4.2): a prefix code for positive
// integers used to encode match lengths and, in some codecs, offsets.
package gamma

import (
	"math/bits"

	"github.com/woozymasta/retrocompress/internal/bitio"
)

// Bits returns the number of bits standard Elias-gamma uses to encode value
// (value must be >= 1): 2*floor(log2(value)) + 1.
func Bits(value uint) int {
	n := bits.Len(value) - 1
	return 2*n + 1
}

// Write emits value (>= 1) as standard Elias-gamma: floor(log2(value)) zero
// bits, then the binary representation of value, MSB-first.
func Write(w *bitio.Writer, value uint) {
	n := bits.Len(value) - 1
	for i := 0; i < n; i++ {
		w.WriteBit(false)
	}

	w.WriteBits(uint64(value), n+1)
}

// Read decodes a standard Elias-gamma value (>= 1).
func Read(r *bitio.Reader) (uint, error) {
	n := 0
	for {
		b, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if b {
			break
		}
		n++
	}

	if n == 0 {
		return 1, nil
	}

	tail, err := r.ReadBits(n)
	if err != nil {
		return 0, err
	}

	return uint(1)<<uint(n) | uint(tail), nil
}

// ReadCounted is like Read but also returns how many leading zero bits were
// seen. If maxZeros consecutive zero bits are seen without a terminating 1,
// ReadCounted stops there and returns zeros == maxZeros, value == 0, err ==
// nil without consuming a terminating bit: DAN1/DAN3 reserve that zero-run
// length as a sentinel for "this is not a match, read a RAW/END token" and
// decode the following bit(s) themselves.
func ReadCounted(r *bitio.Reader, maxZeros int) (value uint, zeros int, err error) {
	n := 0
	for {
		if maxZeros > 0 && n >= maxZeros {
			return 0, n, nil
		}

		b, err := r.ReadBit()
		if err != nil {
			return 0, n, err
		}
		if b {
			break
		}
		n++
	}

	if n == 0 {
		return 1, 0, nil
	}

	tail, err := r.ReadBits(n)
	if err != nil {
		return 0, n, err
	}

	return uint(1)<<uint(n) | uint(tail), n, nil
}
