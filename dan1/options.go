// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

package dan1

// CompressOptions configures DAN1 compression.
type CompressOptions struct {
	// RLE makes the optimal parse consider RAW literal blocks (27..282
	// bytes copied verbatim under a single token) as an alternative to
	// chains of single-byte literals. Off by default, matching the
	// reference encoder's conservative default (spec section 6).
	RLE bool

	// Verbose enables diagnostic trace output during parsing. It has no
	// effect on the encoded format.
	Verbose bool
}

// DefaultCompressOptions returns RLE disabled, Verbose disabled.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// DecompressOptions configures DAN1 decompression. DAN1 decoding is fully
// determined by the stream; there is nothing to tune.
type DecompressOptions struct {
	Verbose bool
}

// DefaultDecompressOptions returns the zero-value options.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
