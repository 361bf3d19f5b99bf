// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

// Package zx7 implements the ZX7 codec (spec section 4.9): a bit-packed
// LZ77 variant with a two-tier byte-plus-nibble offset encoding and an
// Elias-gamma length field, widely used in 8-bit-era loaders for its small
// decoder footprint.
package zx7

import (
	"github.com/woozymasta/retrocompress/internal/bitio"
	"github.com/woozymasta/retrocompress/internal/ccerr"
	"github.com/woozymasta/retrocompress/internal/dpparse"
	"github.com/woozymasta/retrocompress/internal/gamma"
	"github.com/woozymasta/retrocompress/internal/matchfinder"
	"github.com/woozymasta/retrocompress/internal/overlap"
)

const (
	// MaxOffset1 is the largest offset encodable in the single-byte tier.
	MaxOffset1 = 128
	// MaxOffset2 is the largest offset encodable in the byte+nibble tier.
	MaxOffset2 = 2176

	minMatch      = 2
	maxMatchLen   = 1 << 15
	maxChainProbe = 64
	sentinelZeros = 16
)

func offsetBits(offset int) int {
	if offset <= MaxOffset1 {
		return 8
	}
	return 12
}

func writeOffset(w *bitio.Writer, offset int) {
	if offset <= MaxOffset1 {
		w.WriteByte(byte(offset - 1))
		return
	}

	v := offset - MaxOffset1 - 1
	low := byte(v & 0x7f)
	high := byte((v >> 7) & 0x0f)
	w.WriteByte(0x80 | low)
	w.WriteBits(uint64(high), 4)
}

func readOffset(r *bitio.Reader) (int, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	if b&0x80 == 0 {
		return int(b) + 1, nil
	}

	high, err := r.ReadBits(4)
	if err != nil {
		return 0, err
	}

	low := int(b & 0x7f)
	return (int(high)<<7 | low) + MaxOffset1 + 1, nil
}

// Compress encodes src as a ZX7 stream via an optimal parse over literal and
// match tokens (spec section 4.9).
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
		dpparse.Relax(table, i, 1, 0, 9)

		maxLen := n - i
		if maxLen > maxMatchLen {
			maxLen = maxMatchLen
		}

		chain.Candidates(i, MaxOffset2, maxChainProbe, func(candPos int) bool {
			offset := i - candPos
			length := chain.MatchLength(i, candPos, maxLen)
			if length < minMatch {
				return true
			}

			cost := 1 + gamma.Bits(uint(length-1)) + 1 + offsetBits(offset)
			dpparse.Relax(table, i, length, offset, cost)

			if length > minMatch {
				shortCost := 1 + gamma.Bits(uint(minMatch-1)) + 1 + offsetBits(offset)
				dpparse.Relax(table, i, minMatch, offset, shortCost)
			}

			return true
		})

		chain.Insert(i)
	}

	tokens := dpparse.Walk(table)

	w := bitio.NewWriter()
	w.WriteByte(src[0])

	// tokens[0] is the literal covering position 0, already written above as
	// the stream's first byte.
	pos := 1
	for _, tok := range tokens[1:] {
		if tok.Offset == 0 {
			w.WriteBit(false)
			w.WriteByte(src[pos])
			pos++
			continue
		}

		w.WriteBit(true)
		gamma.Write(w, uint(tok.Length-1))
		writeOffset(w, tok.Offset)
		pos += tok.Length
	}

	w.WriteBit(true)
	for k := 0; k < sentinelZeros; k++ {
		w.WriteBit(false)
	}
	w.WriteBit(true)

	return w.Bytes(), nil
}

// Decompress decodes a ZX7 stream produced by Compress.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if len(src) == 0 {
		return []byte{}, nil
	}

	r := bitio.NewReader(src)

	first, err := r.ReadByte()
	if err != nil {
		return nil, ccerr.ErrTruncatedStream
	}
	out := []byte{first}

	for {
		tag, err := r.ReadBit()
		if err != nil {
			return nil, ccerr.ErrTruncatedStream
		}

		if !tag {
			b, err := r.ReadByte()
			if err != nil {
				return nil, ccerr.ErrTruncatedStream
			}
			out = append(out, b)
			continue
		}

		value, zeros, err := gamma.ReadCounted(r, sentinelZeros)
		if err != nil {
			return nil, ccerr.ErrTruncatedStream
		}

		if zeros == sentinelZeros {
			endBit, err := r.ReadBit()
			if err != nil {
				return nil, ccerr.ErrTruncatedStream
			}
			if !endBit {
				return nil, ccerr.ErrInvalidHeader
			}
			return out, nil
		}

		length := int(value) + 1

		offset, err := readOffset(r)
		if err != nil {
			return nil, ccerr.ErrTruncatedStream
		}

		start := len(out)
		if offset > start {
			return nil, ccerr.ErrInvalidBackReference
		}

		out = append(out, make([]byte, length)...)
		if err := overlap.Copy(out, start, offset, length); err != nil {
			return nil, err
		}
	}
}

// MaxInput reports the declared maximum input size, 0 meaning unbounded
// apart from the offset field's range and available memory.
func MaxInput() int {
	return 0
}
