// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

package zx0

// CompressOptions configures ZX0 compression (spec section 6).
type CompressOptions struct {
	// Classic disables MSB inversion on the new-offset interlaced gamma
	// field. Off by default (the default mode inverts).
	Classic bool

	// Backwards compresses with the input reversed and emits the reversed
	// output, flipping the interlaced-gamma continuation-bit sense to
	// match. Used to build self-extracting blocks that decompress toward
	// lower addresses.
	Backwards bool

	// Quick caps MaxOffset at the ZX7 value (2176) instead of ZX0's wider
	// default, trading ratio for a smaller/faster decoder.
	Quick bool

	// Skip is the number of leading bytes forced into the optimal parse's
	// literal seed: they are never considered as the start of a match,
	// though later positions may still reference them as sources.
	Skip int
}

// DefaultCompressOptions returns the default (non-classic, non-backwards,
// non-quick) options with Skip == 0.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// DecompressOptions configures ZX0 decompression; it must mirror the
// Classic/Backwards flags used to compress the stream. Backwards compression
// always runs with Classic forced on, so a Backwards stream is decoded with
// both Backwards and Classic set.
type DecompressOptions struct {
	Classic   bool
	Backwards bool
}

// DefaultDecompressOptions returns the zero-value options.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
