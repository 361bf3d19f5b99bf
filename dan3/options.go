// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

package dan3

// CompressOptions configures DAN3 compression. The subset (0..7), which
// controls the width of the widest offset tier, is always chosen by
// exhaustive trial (spec section 4.8); there is nothing to tune there.
type CompressOptions struct {
	// Verbose enables diagnostic trace output during parsing. It has no
	// effect on the encoded format.
	Verbose bool
}

// DefaultCompressOptions returns Verbose disabled.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// DecompressOptions configures DAN3 decompression.
type DecompressOptions struct {
	Verbose bool
}

// DefaultDecompressOptions returns the zero-value options.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
