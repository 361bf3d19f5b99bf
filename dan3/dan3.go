// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

// Package dan3 implements the DAN3 codec (spec section 4.8): DAN1's sibling
// with a unary subset preamble that widens the top offset tier, traded off
// against the other seven subset choices by exhaustive trial.
package dan3

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
	maxChainProbe = 64
	maxMatchLen   = 1 << 15
	sentinelZeros = 16
	rawMaxLen     = 256
	rawMarker     = -1

	len1TierBase = 1
)

// len1Tiers is the two-tier scheme for length-1 matches: offsets 1..2,
// selected by a single bit (spec section 4.8).
var len1Tiers = [2]struct {
	width int
}{
	{width: 0},
	{width: 1},
}

// tier is one offset tier for length >= 2 matches. tiersForSubset returns the
// tier layout parameterised by subset (0..7): a 5-bit tier, an 8-bit tier,
// and a subset+9-bit extended tier, chosen so the extended tier's top offset
// matches (1 << (9 + subset)) + 32 + 256 exactly (spec section 4.8).
type tier struct {
	width int
	base  int
	max   int
}

func tiersForSubset(subset int) [3]tier {
	return [3]tier{
		{width: 5, base: 0, max: 32},
		{width: 8, base: 32, max: 288},
		{width: subset + 9, base: 288, max: 288 + (1 << uint(subset+9))},
	}
}

func selectorBits2(tierIdx int) int {
	if tierIdx == 0 {
		return 1
	}
	return 2
}

func writeSelector2(w *bitio.Writer, tierIdx int) {
	w.WriteBit(tierIdx == 0)
	if tierIdx == 0 {
		return
	}
	w.WriteBit(tierIdx == 1)
}

func readSelector2(r *bitio.Reader) (int, error) {
	b, err := r.ReadBit()
	if err != nil {
		return 0, err
	}
	if b {
		return 0, nil
	}

	b, err = r.ReadBit()
	if err != nil {
		return 0, err
	}
	if b {
		return 1, nil
	}

	return 2, nil
}

func len1TierFor(offset int) (int, bool) {
	if offset == 1 {
		return 0, true
	}
	if offset == 2 {
		return 1, true
	}
	return 0, false
}

// matchCost returns the bit cost of a (offset, length) token under the given
// subset, and whether it is representable.
func matchCost(subset, offset, length int) (int, bool) {
	if length == 1 {
		tierIdx, ok := len1TierFor(offset)
		if !ok {
			return 0, false
		}
		return 1 + gamma.Bits(1) + 1 + len1Tiers[tierIdx].width, true
	}

	tiers := tiersForSubset(subset)
	for idx, t := range tiers {
		if offset <= t.max {
			return 1 + gamma.Bits(uint(length)) + selectorBits2(idx) + t.width, true
		}
	}
	return 0, false
}

func candidateLengths(maxLen int) []int {
	lens := []int{maxLen}
	for b := 1; b < maxLen; b <<= 1 {
		if b-1 >= 2 && b-1 != maxLen {
			lens = append(lens, b-1)
		}
	}
	return lens
}

// Compress encodes src as a DAN3 stream, trying every subset in 0..7 and
// keeping the one with the smallest total bit cost.
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

	chain := matchfinder.NewChain(src)
	defer chain.Release()

	type candidate struct {
		offset int
		length int
	}
	candidatesByPos := make([][]candidate, n)
	for i := 0; i < n; i++ {
		if i >= 1 && src[i-1] == src[i] {
			candidatesByPos[i] = append(candidatesByPos[i], candidate{offset: 1, length: 1})
		}

		maxLen := n - i
		if maxLen > maxMatchLen {
			maxLen = maxMatchLen
		}

		maxOffset := tiersForSubset(7)[2].max
		chain.Candidates(i, maxOffset, maxChainProbe, func(candPos int) bool {
			offset := i - candPos
			length := chain.MatchLength(i, candPos, maxLen)
			if length < 2 {
				return true
			}
			candidatesByPos[i] = append(candidatesByPos[i], candidate{offset: offset, length: length})
			return true
		})

		chain.Insert(i)
	}

	var bestSubset int
	var bestTable []dpparse.Entry
	bestBits := -1

	for subset := 0; subset <= 7; subset++ {
		table := dpparse.NewTable(n)

		for i := 0; i < n; i++ {
			dpparse.Relax(table, i, 1, 0, 9)

			for _, c := range candidatesByPos[i] {
				if c.length == 1 {
					if cost, ok := matchCost(subset, c.offset, 1); ok {
						dpparse.Relax(table, i, 1, c.offset, cost)
					}
					continue
				}

				for _, l := range candidateLengths(c.length) {
					if cost, ok := matchCost(subset, c.offset, l); ok {
						dpparse.Relax(table, i, l, c.offset, cost)
					}
				}
			}
		}

		total := dpparse.TotalBits(table)
		if bestBits == -1 || total < bestBits {
			bestBits = total
			bestSubset = subset
			bestTable = table
		}
	}

	trace.Logf(opts.Verbose, "dan3: compressed %d bytes, subset %d, %d total bits", n, bestSubset, bestBits)

	tokens := dpparse.Walk(bestTable)

	w := bitio.NewWriter()
	w.WriteBits(0xFE, bestSubset+1)
	w.WriteByte(src[0])

	// tokens[0] is the literal covering position 0, already written above as
	// the stream's first byte.
	pos := 1
	for _, tok := range tokens[1:] {
		switch {
		case tok.Offset == 0:
			w.WriteBit(true)
			w.WriteByte(src[pos])
			pos++

		default:
			w.WriteBit(false)
			gamma.Write(w, uint(tok.Length))

			if tok.Length == 1 {
				tierIdx, _ := len1TierFor(tok.Offset)
				w.WriteBit(tierIdx == 0)
				if tierIdx == 1 {
					w.WriteBits(uint64(tok.Offset-1-len1TierBase), len1Tiers[1].width)
				}
			} else {
				tiers := tiersForSubset(bestSubset)
				tierIdx := 2
				for idx, t := range tiers {
					if tok.Offset <= t.max {
						tierIdx = idx
						break
					}
				}
				writeSelector2(w, tierIdx)
				w.WriteBits(uint64(tok.Offset-1-tiers[tierIdx].base), tiers[tierIdx].width)
			}

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

// Decompress decodes a DAN3 stream produced by Compress.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if len(src) == 0 {
		return []byte{}, nil
	}

	r := bitio.NewReader(src)

	subset := 0
	for {
		b, err := r.ReadBit()
		if err != nil {
			return nil, ccerr.ErrInvalidHeader
		}
		if !b {
			break
		}
		subset++
		if subset > 7 {
			return nil, ccerr.ErrInvalidHeader
		}
	}

	first, err := r.ReadByte()
	if err != nil {
		return nil, ccerr.ErrTruncatedStream
	}
	out := []byte{first}

	tiers := tiersForSubset(subset)

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
				trace.Logf(opts.Verbose, "dan3: decoded %d bytes", len(out))
				return out, nil
			}

			b, err := r.ReadByte()
			if err != nil {
				return nil, ccerr.ErrTruncatedStream
			}
			length := int(b) + 1

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

		var offset int
		if length == 1 {
			tierIdx, err := func() (int, error) {
				b, err := r.ReadBit()
				if err != nil {
					return 0, err
				}
				if b {
					return 0, nil
				}
				return 1, nil
			}()
			if err != nil {
				return nil, ccerr.ErrTruncatedStream
			}

			if tierIdx == 0 {
				offset = 1
			} else {
				v, err := r.ReadBits(len1Tiers[1].width)
				if err != nil {
					return nil, ccerr.ErrTruncatedStream
				}
				offset = int(v) + 1 + len1TierBase
			}
		} else {
			tierIdx, err := readSelector2(r)
			if err != nil {
				return nil, ccerr.ErrTruncatedStream
			}

			v, err := r.ReadBits(tiers[tierIdx].width)
			if err != nil {
				return nil, ccerr.ErrTruncatedStream
			}
			offset = int(v) + 1 + tiers[tierIdx].base
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
	return 524288
}
