// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

// Package mdkrle implements the MDK-RLE byte-oriented run/raw packet codec
// (spec section 4.4): a control byte selects a RAW packet (literal bytes),
// an RLE packet (one byte repeated), or the end-of-data marker 0xFF.
package mdkrle

import "github.com/woozymasta/retrocompress/internal/ccerr"

const (
	endMarker   = 0xFF
	maxRawLen   = 128 // control byte 0x00..0x7F encodes length-1
	maxRLELen   = 127 // control byte 0x80..0xFE encodes length-1 in low 7 bits
	minRLERun   = 3
	rleBaseByte = 0x80
)

// Compress encodes src as an MDK-RLE stream. Empty input encodes to the
// single byte 0xFF. MDK-RLE has no declared MaxInput.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	out := make([]byte, 0, len(src)/2+4)

	n := len(src)
	i := 0
	var raw []byte

	flushRaw := func() {
		for len(raw) > 0 {
			chunk := raw
			if len(chunk) > maxRawLen {
				chunk = chunk[:maxRawLen]
			}

			out = append(out, byte(len(chunk)-1))
			out = append(out, chunk...)
			raw = raw[len(chunk):]
		}
	}

	for i < n {
		runLen := 1
		for i+runLen < n && src[i+runLen] == src[i] && runLen < maxRLELen {
			runLen++
		}

		if runLen >= minRLERun {
			flushRaw()
			out = append(out, byte(rleBaseByte+runLen-1), src[i])
			i += runLen
			continue
		}

		raw = append(raw, src[i])
		i++
	}

	flushRaw()
	out = append(out, endMarker)

	return out, nil
}

// Decompress decodes an MDK-RLE stream produced by Compress.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	var out []byte

	pos := 0
	for {
		if pos >= len(src) {
			return nil, ccerr.ErrTruncatedStream
		}

		ctrl := src[pos]
		pos++

		switch {
		case ctrl == endMarker:
			return out, nil

		case ctrl < rleBaseByte:
			length := int(ctrl) + 1
			if pos+length > len(src) {
				return nil, ccerr.ErrTruncatedStream
			}

			out = append(out, src[pos:pos+length]...)
			pos += length

		default:
			length := int(ctrl&0x7f) + 1
			if pos >= len(src) {
				return nil, ccerr.ErrTruncatedStream
			}

			value := src[pos]
			pos++

			for k := 0; k < length; k++ {
				out = append(out, value)
			}
		}
	}
}

// MaxInput reports the declared maximum input size, 0 meaning unbounded.
func MaxInput() int {
	return 0
}
