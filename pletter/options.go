// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

package pletter

// CompressOptions configures Pletter compression. The offset-subset q is
// always chosen by exhaustive trial (spec section 4.6); there is nothing
// for the caller to tune.
type CompressOptions struct{}

// DefaultCompressOptions returns the zero-value options.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// DecompressOptions configures Pletter decompression.
type DecompressOptions struct {
	// Dsk2Rom assumes q = 2 and reads neither the 3-bit q header nor the
	// has-data bit. The EOF sentinel (gamma value 131072) is the same in
	// both formats; there is no separate 34-continuation-bit end marker.
	Dsk2Rom bool
}

// DefaultDecompressOptions returns options for the standard (non-dsk2rom) format.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
