// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

// Package dan1 implements the DAN1 codec (spec section 4.7): a bit-packed
// LZ77 variant with a four-tier offset scheme (1, 4, 8, or 12 extra bits
// depending on distance), single-byte literals, optional RAW literal blocks,
// and an explicit end token.
package dan1

import (
	"github.com/woozymasta/retrocompress/internal/bitio"
	"github.com/woozymasta/retrocompress/internal/ccerr"
	"github.com/woozymasta/retrocompress/internal/dpparse"
	"github.com/woozymasta/retrocompress/internal/gamma"
	"github.com/woozymasta/retrocompress/internal/matchfinder"
	"github.com/woozymasta/retrocompress/internal/overlap"
	"github.com/woozymasta/retrocompress/internal/trace"
)

const (
	minMatch      = 1
	maxChainProbe = 64

	// maxMatchLen keeps every real match length's gamma code under 16
	// leading zero bits, so it can never collide with the RAW/END sentinel.
	maxMatchLen = 1 << 15

	rawMinLen       = 27
	rawMaxLen       = rawMinLen + 255
	sentinelZeros   = 16
	rawOffsetMarker = -1
)

type offsetTier struct {
	width int
	base  int
	max   int
}

var tiers = [4]offsetTier{
	{width: 1, base: 0, max: 2},
	{width: 4, base: 2, max: 18},
	{width: 8, base: 18, max: 274},
	{width: 12, base: 274, max: 4370},
}

func tierFor(offset int) (int, bool) {
	for idx, t := range tiers {
		if offset <= t.max {
			return idx, true
		}
	}
	return 0, false
}

// maxTierForLength returns the highest offset-tier index a match of the given
// length may use. Selector bits beyond this cap are never written, since the
// decoder can infer them are unreachable from length alone (spec section
// 4.7's suppression rule: length 1 omits the two outer selectors, leaving a
// single tier0-vs-tier1 bit; length 2 omits the outermost selector, leaving a
// tier0/tier1/tier2 cascade with tier3 excluded).
func maxTierForLength(length int) int {
	switch length {
	case 1:
		return 1
	case 2:
		return 2
	default:
		return 3
	}
}

func selectorBits(tierIdx, length int) int {
	maxTier := maxTierForLength(length)
	if tierIdx >= maxTier {
		return maxTier
	}
	return tierIdx + 1
}

func writeSelector(w *bitio.Writer, tierIdx, length int) {
	maxTier := maxTierForLength(length)
	for t := 0; t < maxTier; t++ {
		w.WriteBit(tierIdx == t)
		if tierIdx == t {
			return
		}
	}
}

func readSelector(r *bitio.Reader, length int) (int, error) {
	maxTier := maxTierForLength(length)
	for t := 0; t < maxTier; t++ {
		b, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if b {
			return t, nil
		}
	}
	return maxTier, nil
}

func writeOffset(w *bitio.Writer, tierIdx, offset int) {
	t := tiers[tierIdx]
	w.WriteBits(uint64(offset-1-t.base), t.width)
}

func readOffset(r *bitio.Reader, tierIdx int) (int, error) {
	t := tiers[tierIdx]
	v, err := r.ReadBits(t.width)
	if err != nil {
		return 0, err
	}
	return int(v) + 1 + t.base, nil
}

// matchCost returns the bit cost of a (offset, length) match token, and
// whether that token is representable at all. A match of length 1 or 2 is
// capped to the offset tiers its suppressed selector can still address (spec
// section 4.7's DP cost note).
func matchCost(offset, length int) (int, bool) {
	tierIdx, ok := tierFor(offset)
	if !ok {
		return 0, false
	}
	if tierIdx > maxTierForLength(length) {
		return 0, false
	}

	return 1 + gamma.Bits(uint(length)) + selectorBits(tierIdx, length) + tiers[tierIdx].width, true
}

// candidateLengths returns a small set of lengths worth trying for a match
// that extends up to maxLen bytes: the full length plus the lengths just
// below each Elias-gamma bit-width boundary, since cost is a non-decreasing
// step function of length and only those boundaries can change the optimal
// split.
func candidateLengths(maxLen int) []int {
	lens := []int{maxLen}
	for b := 1; b < maxLen; b <<= 1 {
		if b-1 >= minMatch && b-1 != maxLen {
			lens = append(lens, b-1)
		}
	}
	return lens
}

// Compress encodes src as a DAN1 stream via an optimal parse over literal,
// match, and (when opts.RLE is set) RAW-block tokens.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	n := len(src)
	if n > MaxInput() {
		return nil, ccerr.ErrInputTooLarge
	}
	if n == 0 {
		return []byte{}, nil
	}

	table := dpparse.NewTable(n)
	chain := matchfinder.NewChain(src)
	defer chain.Release()

	for i := 0; i < n; i++ {
		dpparse.Relax(table, i, 1, 0, 9)

		if i >= 1 && src[i-1] == src[i] {
			if cost, ok := matchCost(1, 1); ok {
				dpparse.Relax(table, i, 1, 1, cost)
			}
		}

		maxLen := n - i
		if maxLen > maxMatchLen {
			maxLen = maxMatchLen
		}

		chain.Candidates(i, tiers[3].max, maxChainProbe, func(candPos int) bool {
			offset := i - candPos
			length := chain.MatchLength(i, candPos, maxLen)
			if length < 2 {
				return true
			}

			for _, l := range candidateLengths(length) {
				if cost, ok := matchCost(offset, l); ok {
					dpparse.Relax(table, i, l, offset, cost)
				}
			}
			return true
		})

		if opts.RLE {
			maxRaw := rawMaxLen
			if i+maxRaw > n {
				maxRaw = n - i
			}
			for l := rawMinLen; l <= maxRaw; l++ {
				cost := 1 + sentinelZeros + 1 + 8 + 8*l
				dpparse.Relax(table, i, l, rawOffsetMarker, cost)
			}
		}

		chain.Insert(i)
	}

	trace.Logf(opts.Verbose, "dan1: compressed %d bytes, %d total bits", n, dpparse.TotalBits(table))

	tokens := dpparse.Walk(table)

	w := bitio.NewWriter()
	pos := 0
	for _, tok := range tokens {
		switch {
		case tok.Offset == 0:
			w.WriteBit(true)
			w.WriteByte(src[pos])
			pos++

		case tok.Offset == rawOffsetMarker:
			w.WriteBit(false)
			for k := 0; k < sentinelZeros; k++ {
				w.WriteBit(false)
			}
			w.WriteBit(true)
			w.WriteByte(byte(tok.Length - rawMinLen))
			for k := 0; k < tok.Length; k++ {
				w.WriteByte(src[pos+k])
			}
			pos += tok.Length

		default:
			tierIdx, _ := tierFor(tok.Offset)
			w.WriteBit(false)
			gamma.Write(w, uint(tok.Length))
			writeSelector(w, tierIdx, tok.Length)
			writeOffset(w, tierIdx, tok.Offset)
			pos += tok.Length
		}
	}

	w.WriteBit(false)
	for k := 0; k < sentinelZeros; k++ {
		w.WriteBit(false)
	}
	w.WriteBit(false)

	return w.Bytes(), nil
}

// Decompress decodes a DAN1 stream produced by Compress.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if len(src) == 0 {
		return []byte{}, nil
	}

	r := bitio.NewReader(src)
	var out []byte

	for {
		tag, err := r.ReadBit()
		if err != nil {
			return nil, ccerr.ErrTruncatedStream
		}

		if tag {
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
			isRaw, err := r.ReadBit()
			if err != nil {
				return nil, ccerr.ErrTruncatedStream
			}

			if !isRaw {
				trace.Logf(opts.Verbose, "dan1: decoded %d bytes", len(out))
				return out, nil
			}

			b, err := r.ReadByte()
			if err != nil {
				return nil, ccerr.ErrTruncatedStream
			}
			length := int(b) + rawMinLen

			for k := 0; k < length; k++ {
				bb, err := r.ReadByte()
				if err != nil {
					return nil, ccerr.ErrTruncatedStream
				}
				out = append(out, bb)
			}
			continue
		}

		length := int(value)

		tierIdx, err := readSelector(r, length)
		if err != nil {
			return nil, ccerr.ErrTruncatedStream
		}

		offset, err := readOffset(r, tierIdx)
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

// MaxInput reports the declared maximum input size (spec section 6).
func MaxInput() int {
	return 262144
}
