// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

package bitio

import "github.com/woozymasta/retrocompress/internal/ccerr"

// Reader mirrors Writer: it consumes bits MSB-first from a reserved bit
// byte, and ReadByte consumes a whole byte directly (never remaining bits
// of the current bit byte).
type Reader struct {
	src      []byte
	pos      int  // next unread index into src
	bitIndex int  // index into src of the current bit byte
	bitMask  byte // 0 means the next ReadBit must fetch a fresh bit byte
}

// NewReader returns a Reader over src starting at offset 0.
func NewReader(src []byte) *Reader {
	return &Reader{src: src}
}

// Pos returns the index of the next unread byte in src.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining reports how many unread bytes remain in src.
func (r *Reader) Remaining() int {
	return len(r.src) - r.pos
}

// ReadBit reads one bit, MSB-first, reserving a fresh bit byte from src when
// the previous one is exhausted.
func (r *Reader) ReadBit() (bool, error) {
	if r.bitMask == 0 {
		if r.pos >= len(r.src) {
			return false, ccerr.ErrTruncatedStream
		}

		r.bitIndex = r.pos
		r.pos++
		r.bitMask = 0x80
	}

	v := r.src[r.bitIndex]&r.bitMask != 0
	r.bitMask >>= 1

	return v, nil
}

// ReadBits reads size bits MSB-first and assembles them into a uint64.
func (r *Reader) ReadBits(size int) (uint64, error) {
	var v uint64

	for i := 0; i < size; i++ {
		b, err := r.ReadBit()
		if err != nil {
			return 0, err
		}

		v <<= 1
		if b {
			v |= 1
		}
	}

	return v, nil
}

// ReadByte reads one whole byte directly from src, independent of any
// partially-consumed bit byte. The next ReadBit reserves a new bit byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.src) {
		return 0, ccerr.ErrTruncatedStream
	}

	v := r.src[r.pos]
	r.pos++
	r.bitMask = 0

	return v, nil
}
