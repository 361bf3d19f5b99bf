// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

// Package pletter implements Pletter v0.5 (spec section 4.6): a bit-packed
// LZ77 codec with a compile-time choice of offset-subset q (1..7) selected
// by exhaustive trial over q in 1..6 during compression.
package pletter

import (
	"github.com/woozymasta/retrocompress/internal/bitio"
	"github.com/woozymasta/retrocompress/internal/ccerr"
	"github.com/woozymasta/retrocompress/internal/dpparse"
	"github.com/woozymasta/retrocompress/internal/gamma"
	"github.com/woozymasta/retrocompress/internal/matchfinder"
	"github.com/woozymasta/retrocompress/internal/overlap"
)

// MaxInputSize is Pletter's declared maximum input size (spec section 6).
const MaxInputSize = 65536

const (
	minMatch = 2

	// eofSentinelValue is an out-of-range length-field value (no real match,
	// bounded by MaxInputSize, ever needs 17 interlaced-gamma continuation
	// steps) used to signal end-of-stream in both the default and dsk2rom
	// decoder variants.
	eofSentinelValue = 131072

	maxChainProbe = 64
)

// qParams holds the extra-bits width and effective max offset for one q (1..7).
type qParams struct {
	extraWidth int
	maxOffset  int
}

var qTable = [8]qParams{
	{}, // unused, q is 1-based
	{extraWidth: 0, maxOffset: 128},
	{extraWidth: 1, maxOffset: 256},
	{extraWidth: 2, maxOffset: 512},
	{extraWidth: 3, maxOffset: 1024},
	{extraWidth: 4, maxOffset: 2048},
	{extraWidth: 5, maxOffset: 4096},
	{extraWidth: 6, maxOffset: 8192},
}

// Compress encodes src with Pletter v0.5, picking the offset-subset q in
// 1..6 that minimizes total encoded bits (spec section 4.6; q == 7 is
// decodable but never chosen by the encoder).
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	n := len(src)
	if n > MaxInputSize {
		return nil, ccerr.ErrInputTooLarge
	}

	if n == 0 {
		w := bitio.NewWriter()
		w.WriteBits(uint64(0), 3) // q = 1
		w.WriteBit(false)         // no data follows
		return w.Bytes(), nil
	}

	chain := matchfinder.NewChain(src)
	defer chain.Release()

	type candidate struct {
		offset int
		length int
	}
	candidatesByPos := make([][]candidate, n)
	chain.Insert(0)
	for i := 1; i < n; i++ {
		chain.Candidates(i, qTable[7].maxOffset, maxChainProbe, func(candPos int) bool {
			length := chain.MatchLength(i, candPos, n-i)
			if length >= minMatch {
				candidatesByPos[i] = append(candidatesByPos[i], candidate{offset: i - candPos, length: length})
			}
			return true
		})
		chain.Insert(i)
	}

	var bestQ int
	var bestTable []dpparse.Entry
	bestBits := -1

	for q := 1; q <= 6; q++ {
		params := qTable[q]
		table := dpparse.NewTable(n - 1) // positions 1..n-1 relative to index 0 == source position 1

		for i := 1; i < n; i++ {
			rel := i - 1
			dpparse.Relax(table, rel, 1, 0, 9)

			for _, c := range candidatesByPos[i] {
				if c.offset > params.maxOffset {
					continue
				}

				cost := 1 + gamma.Bits(uint(c.length-1)) + offsetCostBits(c.offset, params.extraWidth)
				dpparse.Relax(table, rel, c.length, c.offset, cost)
			}
		}

		total := dpparse.TotalBits(table)
		if bestBits == -1 || total < bestBits {
			bestBits = total
			bestQ = q
			bestTable = table
		}
	}

	tokens := dpparse.Walk(bestTable)

	w := bitio.NewWriter()
	w.WriteBits(uint64(bestQ-1), 3)
	w.WriteBit(true)
	w.WriteByte(src[0])

	params := qTable[bestQ]
	pos := 1
	for _, tok := range tokens {
		if tok.Offset == 0 {
			w.WriteBit(false)
			w.WriteByte(src[pos])
			pos++
			continue
		}

		w.WriteBit(true)
		gamma.WriteInterlaced(w, uint(tok.Length-1), false, false)
		writeOffset(w, tok.Offset, params.extraWidth)
		pos += tok.Length
	}

	w.WriteBit(true)
	gamma.WriteInterlaced(w, eofSentinelValue, false, false)

	return w.Bytes(), nil
}

func offsetCostBits(offset, extraWidth int) int {
	if offset <= 128 {
		return 8
	}
	return 8 + extraWidth
}

func writeOffset(w *bitio.Writer, offset, extraWidth int) {
	v := offset - 1
	if v <= 127 {
		w.WriteByte(byte(v))
		return
	}

	w.WriteByte(0x80 | byte(v&0x7f))
	w.WriteBits(uint64(v>>7), extraWidth)
}

func readOffset(r *bitio.Reader, extraWidth int) (int, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	if b < 128 {
		return int(b) + 1, nil
	}

	extra, err := r.ReadBits(extraWidth)
	if err != nil {
		return 0, err
	}

	return (int(b&0x7f) | (int(extra) << 7)) + 1, nil
}

// readLength decodes a match length (ℓ, returned as ℓ) or reports eof. Both
// the default and dsk2rom variants use the same out-of-range sentinel value;
// they differ only in the header framing handled by Decompress.
func readLength(r *bitio.Reader) (length int, eof bool, err error) {
	value, err := gamma.ReadInterlaced(r, false, false)
	if err != nil {
		return 0, false, err
	}
	if value == eofSentinelValue {
		return 0, true, nil
	}
	return int(value) + 1, false, nil
}

// Decompress decodes a Pletter v0.5 stream produced by Compress.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	r := bitio.NewReader(src)

	q := 2
	if !opts.Dsk2Rom {
		qBits, err := r.ReadBits(3)
		if err != nil {
			return nil, ccerr.ErrInvalidHeader
		}
		q = int(qBits) + 1
	}

	if q < 1 || q > 7 {
		return nil, ccerr.ErrInvalidQValue
	}
	extraWidth := qTable[q].extraWidth

	if !opts.Dsk2Rom {
		hasData, err := r.ReadBit()
		if err != nil {
			return nil, ccerr.ErrInvalidHeader
		}
		if !hasData {
			return []byte{}, nil
		}
	}

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

		length, eof, err := readLength(r)
		if err != nil {
			return nil, err
		}
		if eof {
			return out, nil
		}

		offset, err := readOffset(r, extraWidth)
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

// MaxInput reports the declared maximum input size.
func MaxInput() int {
	return MaxInputSize
}
