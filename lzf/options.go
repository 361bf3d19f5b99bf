// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

package lzf

// CompressOptions configures LZF compression. LZF recognizes no tuning
// options (spec section 6).
type CompressOptions struct{}

// DefaultCompressOptions returns the zero-value options.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// DecompressOptions configures LZF decompression. LZF recognizes no tuning
// options.
type DecompressOptions struct{}

// DefaultDecompressOptions returns the zero-value options.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
