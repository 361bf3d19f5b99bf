// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

/*
Package retrocompress is a dispatch layer over eight 8-bit-era compression
codecs, each implemented in its own subpackage: mdkrle, lzf, pletter, dan1,
dan3, zx7, zx0, bitbuster. Every codec exposes the same pair of functions,
Compress(src []byte, opts *CompressOptions) ([]byte, error) and
Decompress(src []byte, opts *DecompressOptions) ([]byte, error), plus
MaxInput() int reporting its declared input ceiling (0 meaning unbounded by
the format itself).

Call a codec package directly when you know which format you need:

	out, err := zx0.Compress(data, nil)
	back, err := zx0.Decompress(out, nil)

Use this package's Codec enum and Capability trait when the format is
selected dynamically, e.g. from a file extension:

	cap, ok := retrocompress.ForExtension(".zx0")
	if !ok {
		return fmt.Errorf("unrecognized extension")
	}
	out, err := cap.Compress(data, nil)

ForExtension matches case-insensitively against the extensions spec section
6 assigns each format (.mdkrle/.mdk/.rle, .lzf, .dan1, .dan3, .plet5/.pck,
.zx7, .zx0); BitBuster has no assigned extension and is reachable only via
For(BitBuster).
*/
package retrocompress
