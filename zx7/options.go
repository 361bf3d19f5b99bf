// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

package zx7

// CompressOptions configures ZX7 compression. ZX7 recognizes no tuning
// options (spec section 6).
type CompressOptions struct{}

// DefaultCompressOptions returns the zero-value options.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// DecompressOptions configures ZX7 decompression.
type DecompressOptions struct{}

// DefaultDecompressOptions returns the zero-value options.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
