// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

// Package lzf implements the simplified, end-marker variant of LZF (spec
// section 4.5): a byte-aligned LZ77 codec with a literal-run control byte
// and two match tiers (short and long), terminated by the byte 0xFF.
package lzf

import (
	"github.com/woozymasta/retrocompress/internal/ccerr"
	"github.com/woozymasta/retrocompress/internal/dpparse"
	"github.com/woozymasta/retrocompress/internal/matchfinder"
	"github.com/woozymasta/retrocompress/internal/overlap"
)

const (
	endMarker = 0xFF

	maxLiteralRun = 32
	minMatch      = 3
	shortMaxLen   = 8
	longMaxLen    = 264 // 255 + 9
	maxOffset     = (0x1F << 8) | (0xFF + 1)

	ctrlLongMatch = 7 // control == 7 selects the long-match form
	maxChainProbe = 64
)

// Compress encodes src as an LZF stream via an optimal parse minimizing
// total encoded byte count under the literal-run / short-match / long-match
// cost model (spec section 4.5).
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	n := len(src)
	if n == 0 {
		return []byte{}, nil
	}

	table := dpparse.NewTable(n)

	chain := matchfinder.NewChain(src)
	defer chain.Release()

	for i := 0; i < n; i++ {
		maxLit := maxLiteralRun
		if i+maxLit > n {
			maxLit = n - i
		}
		for l := 1; l <= maxLit; l++ {
			dpparse.Relax(table, i, l, 0, 1+l)
		}

		chain.Candidates(i, maxOffset, maxChainProbe, func(candPos int) bool {
			length := chain.MatchLength(i, candPos, longMaxLen)
			if length < minMatch {
				return true
			}

			offset := i - candPos

			shortLen := length
			if shortLen > shortMaxLen {
				shortLen = shortMaxLen
			}
			dpparse.Relax(table, i, shortLen, offset, 2)

			if length > shortMaxLen {
				dpparse.Relax(table, i, length, offset, 3)
			}

			return true
		})

		chain.Insert(i)
	}

	tokens := dpparse.Walk(table)

	return emit(src, tokens)
}

func emit(src []byte, tokens []dpparse.Entry) ([]byte, error) {
	out := make([]byte, 0, len(src)+len(src)/16+4)
	pos := 0

	for _, tok := range tokens {
		if tok.Offset == 0 {
			length := tok.Length
			out = append(out, byte(length-1))
			out = append(out, src[pos:pos+length]...)
			pos += length
			continue
		}

		length := tok.Length
		distance := tok.Offset - 1

		if length <= shortMaxLen {
			ctrl := byte((length-2)<<5) | byte((distance>>8)&0x1f)
			out = append(out, ctrl, byte(distance&0xff))
		} else {
			ctrl := byte(ctrlLongMatch<<5) | byte((distance>>8)&0x1f)
			out = append(out, ctrl, byte(length-9), byte(distance&0xff))
		}

		pos += length
	}

	out = append(out, endMarker)

	return out, nil
}

// Decompress decodes an LZF stream produced by Compress.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if len(src) == 0 {
		return []byte{}, nil
	}

	var out []byte
	pos := 0

	for {
		if pos >= len(src) {
			return nil, ccerr.ErrTruncatedStream
		}

		ctrl := src[pos]
		pos++

		if ctrl == endMarker {
			return out, nil
		}

		control := ctrl >> 5

		switch control {
		case 0:
			length := int(ctrl&0x1f) + 1
			if pos+length > len(src) {
				return nil, ccerr.ErrTruncatedStream
			}

			out = append(out, src[pos:pos+length]...)
			pos += length

		case ctrlLongMatch:
			if pos+2 > len(src) {
				return nil, ccerr.ErrTruncatedStream
			}

			length := int(src[pos]) + 9
			lowByte := src[pos+1]
			pos += 2

			offset := (int(ctrl&0x1f)<<8 | int(lowByte)) + 1

			var err error
			out, err = growMatch(out, offset, length)
			if err != nil {
				return nil, err
			}

		default:
			if pos >= len(src) {
				return nil, ccerr.ErrTruncatedStream
			}

			length := int(control) + 2
			lowByte := src[pos]
			pos++

			offset := (int(ctrl&0x1f)<<8 | int(lowByte)) + 1

			var err error
			out, err = growMatch(out, offset, length)
			if err != nil {
				return nil, err
			}
		}
	}
}

func growMatch(out []byte, offset, length int) ([]byte, error) {
	start := len(out)
	out = append(out, make([]byte, length)...)

	if err := overlap.Copy(out, start, offset, length); err != nil {
		return nil, err
	}

	return out, nil
}

// MaxInput reports the declared maximum input size, 0 meaning unbounded.
func MaxInput() int {
	return 0
}
