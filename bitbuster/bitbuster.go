// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

// Package bitbuster implements BitBuster v1.2 (spec section 4.11): an
// explicit-length-header LZ77 variant whose bit stream opens with a reserved
// bit-holder byte and whose match length field uses interlaced Elias-gamma,
// the same coder ZX0 and Pletter use for their length fields.
package bitbuster

import (
	"encoding/binary"

	"github.com/woozymasta/retrocompress/internal/bitio"
	"github.com/woozymasta/retrocompress/internal/ccerr"
	"github.com/woozymasta/retrocompress/internal/dpparse"
	"github.com/woozymasta/retrocompress/internal/gamma"
	"github.com/woozymasta/retrocompress/internal/matchfinder"
	"github.com/woozymasta/retrocompress/internal/overlap"
)

const (
	minMatch      = 3 // length - 2 >= 1, the smallest interlaced-gamma value
	maxMatchLen   = 1 << 15
	maxChainProbe = 64
	maxOffset     = 2047

	// eofSentinelValue is an out-of-range length-field value: no real match
	// (bounded by maxMatchLen) ever needs 16 interlaced-gamma continuation
	// steps to encode length-2.
	eofSentinelValue = 1 << 16
)

func distanceBits(offset int) int {
	if offset <= 128 {
		return 8
	}
	return 12
}

func writeDistance(w *bitio.Writer, offset int) {
	v := offset - 1
	if v < 128 {
		w.WriteByte(byte(v))
		return
	}

	w.WriteByte(0x80 | byte(v&0x7f))
	w.WriteBits(uint64(v>>7), 4)
}

func readDistance(r *bitio.Reader) (int, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	if b&0x80 == 0 {
		return int(b) + 1, nil
	}

	hi, err := r.ReadBits(4)
	if err != nil {
		return 0, err
	}

	low := int(b & 0x7f)
	return (low | int(hi)<<7) + 1, nil
}

// Compress encodes src as a BitBuster v1.2 stream: a 4-byte little-endian
// uncompressed length, then a bit-packed optimal parse over literal and
// match tokens.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	limit := opts.MaxInputSize
	if limit == 0 {
		limit = DefaultMaxInputSize
	}

	n := len(src)
	if n > limit {
		return nil, ccerr.ErrInputTooLarge
	}

	header := make([]byte, 4)
	binary.LittleEndian.PutUint32(header, uint32(n))

	if n == 0 {
		return header, nil
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

		chain.Candidates(i, maxOffset, maxChainProbe, func(candPos int) bool {
			offset := i - candPos
			length := chain.MatchLength(i, candPos, maxLen)
			if length < minMatch {
				return true
			}

			cost := 1 + gamma.Bits(uint(length-2)) + distanceBits(offset)
			dpparse.Relax(table, i, length, offset, cost)

			if length > minMatch {
				shortCost := 1 + gamma.Bits(uint(minMatch-2)) + distanceBits(offset)
				dpparse.Relax(table, i, minMatch, offset, shortCost)
			}

			return true
		})

		chain.Insert(i)
	}

	tokens := dpparse.Walk(table)

	w := bitio.NewWriter()
	w.ReserveBitByte()

	pos := 0
	for _, tok := range tokens {
		if tok.Offset == 0 {
			w.WriteBit(false)
			w.WriteByte(src[pos])
			pos++
			continue
		}

		w.WriteBit(true)
		writeDistance(w, tok.Offset)
		gamma.WriteInterlaced(w, uint(tok.Length-2), false, false)
		pos += tok.Length
	}

	// The EOF sentinel reuses distance byte 0 (decoded offset 1, same as a
	// real (offset=1) match): the two are disambiguated only by the length
	// field that follows, which real matches can never drive up to
	// eofSentinelValue (spec section 9, open question (c)).
	w.WriteBit(true)
	writeDistance(w, 1)
	gamma.WriteInterlaced(w, eofSentinelValue, false, false)

	return append(header, w.Bytes()...), nil
}

// Decompress decodes a BitBuster v1.2 stream produced by Compress.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if len(src) < 4 {
		return nil, ccerr.ErrTruncatedStream
	}

	length := binary.LittleEndian.Uint32(src[:4])
	if length == 0 {
		return []byte{}, nil
	}

	r := bitio.NewReader(src[4:])
	out := make([]byte, 0, length)

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

		offset, err := readDistance(r)
		if err != nil {
			return nil, ccerr.ErrTruncatedStream
		}

		value, err := gamma.ReadInterlaced(r, false, false)
		if err != nil {
			return nil, ccerr.ErrTruncatedStream
		}

		if value == eofSentinelValue {
			return out, nil
		}

		matchLen := int(value) + 2

		start := len(out)
		if offset > start {
			return nil, ccerr.ErrInvalidBackReference
		}

		out = append(out, make([]byte, matchLen)...)
		if err := overlap.Copy(out, start, offset, matchLen); err != nil {
			return nil, err
		}
	}
}

// MaxInput reports the default declared maximum input size (spec section
// 6); per-call overrides are passed via CompressOptions.MaxInputSize.
func MaxInput() int {
	return DefaultMaxInputSize
}
