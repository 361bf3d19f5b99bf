// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

package mdkrle

// CompressOptions configures MDK-RLE compression. MDK-RLE recognizes no
// tuning options (spec section 6); the type exists for symmetry with the
// other codec packages and to leave room for future options without
// breaking callers.
type CompressOptions struct{}

// DefaultCompressOptions returns the zero-value options.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// DecompressOptions configures MDK-RLE decompression. MDK-RLE recognizes no
// tuning options.
type DecompressOptions struct{}

// DefaultDecompressOptions returns the zero-value options.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
