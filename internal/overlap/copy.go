// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress (adapted from woozymasta/lzo's copy.go)

// Package overlap implements the overlap-capable back-reference copy shared
// by every codec's decoder (spec section 3): copying length bytes from
// dst[pos-offset:] to dst[pos:] where offset may be smaller than length, in
// which case newly written bytes become valid source for the remainder of
// the copy.
package overlap

import "github.com/woozymasta/retrocompress/internal/ccerr"

// Copy copies length bytes from dst[pos-offset:pos-offset+length] to
// dst[pos:pos+length]. When offset >= length this is a plain copy; when
// offset < length the match produces a repeating pattern, reconstructed by
// seeding one offset-sized chunk and then doubling the copied region.
func Copy(dst []byte, pos, offset, length int) error {
	src := pos - offset
	if src < 0 {
		return ccerr.ErrInvalidBackReference
	}

	if pos+length > len(dst) {
		return ccerr.ErrInvalidBackReference
	}

	if offset >= length {
		copy(dst[pos:pos+length], dst[src:src+length])
		return nil
	}

	// Seed with one original-distance chunk, then grow the copied region
	// exponentially: each step can copy from the output already produced by
	// the previous steps, since copy() inside the same slice only reads
	// bytes that are already valid.
	copy(dst[pos:pos+offset], dst[src:pos])
	copied := offset

	for copied < length {
		n := copy(dst[pos+copied:pos+length], dst[pos:pos+copied])
		copied += n
	}

	return nil
}
