// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

package bitbuster

// DefaultMaxInputSize is BitBuster's default declared maximum input size
// (spec section 6); CompressOptions.MaxInputSize overrides it.
const DefaultMaxInputSize = 524288

// CompressOptions configures BitBuster compression.
type CompressOptions struct {
	// MaxInputSize overrides DefaultMaxInputSize when non-zero.
	MaxInputSize int
}

// DefaultCompressOptions returns MaxInputSize == DefaultMaxInputSize.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{MaxInputSize: DefaultMaxInputSize}
}

// DecompressOptions configures BitBuster decompression. The uncompressed
// length is read from the stream's own header, so there is nothing to tune.
type DecompressOptions struct{}

// DefaultDecompressOptions returns the zero-value options.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
