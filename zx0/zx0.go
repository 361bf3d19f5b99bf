// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

// Package zx0 implements the ZX0 codec (spec section 4.10): a three-state
// bit-packed LZ77 variant (literal run / copy from last offset / copy from
// new offset) using interlaced Elias-gamma for both its length and
// new-offset fields, with an explicit EOF value in the offset field instead
// of a trailing byte run.
package zx0

import (
	"github.com/woozymasta/retrocompress/internal/bitio"
	"github.com/woozymasta/retrocompress/internal/ccerr"
	"github.com/woozymasta/retrocompress/internal/dpparse"
	"github.com/woozymasta/retrocompress/internal/gamma"
	"github.com/woozymasta/retrocompress/internal/matchfinder"
	"github.com/woozymasta/retrocompress/internal/overlap"
)

const (
	minMatch      = 2
	maxChainProbe = 64

	// quickMaxOffset is ZX0's quick-mode ceiling, matching ZX7's MaxOffset2.
	quickMaxOffset = 2176

	// defaultMaxOffset keeps the new-offset MSB field's value comfortably
	// below eofMSBValue so a real offset can never collide with EOF.
	defaultMaxOffset = 32000

	// eofMSBValue is the new-offset MSB field value reserved for EOF: no
	// real offset (bounded by defaultMaxOffset/quickMaxOffset) ever drives
	// MSB+1 this high.
	eofMSBValue = 256
)

func maxOffsetFor(opts *CompressOptions) int {
	if opts.Quick {
		return quickMaxOffset
	}
	return defaultMaxOffset
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// matchCost estimates the bit cost of a (offset, length) match for DP
// purposes: reuse-vs-new-offset savings are not modeled in the parse search
// (every candidate is costed as if it needed a new offset), but the encoder
// still emits the cheaper reuse form whenever the chosen offset happens to
// equal the previous token's offset.
func matchCost(offset, length int) int {
	msb := (offset - 1) >> 7
	return 1 + gamma.Bits(uint(msb+1)) + 8 + gamma.Bits(uint(length))
}

// Compress encodes src as a ZX0 stream.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	if opts.Backwards {
		reversed := reverseBytes(src)
		inner := &CompressOptions{Classic: true, Quick: opts.Quick, Skip: opts.Skip}
		out, err := compressCore(reversed, inner, true)
		if err != nil {
			return nil, err
		}
		return reverseBytes(out), nil
	}

	return compressCore(src, opts, false)
}

func compressCore(src []byte, opts *CompressOptions, backwards bool) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return []byte{}, nil
	}

	maxOffset := maxOffsetFor(opts)

	table := dpparse.NewTable(n)
	chain := matchfinder.NewChain(src)
	defer chain.Release()

	skip := opts.Skip
	if skip > n {
		skip = n
	}

	for i := 0; i < n; i++ {
		dpparse.Relax(table, i, 1, 0, 9)

		if i < skip {
			chain.Insert(i)
			continue
		}

		maxLen := n - i
		chain.Candidates(i, maxOffset, maxChainProbe, func(candPos int) bool {
			offset := i - candPos
			length := chain.MatchLength(i, candPos, maxLen)
			if length < minMatch {
				return true
			}

			cost := matchCost(offset, length)
			dpparse.Relax(table, i, length, offset, cost)

			if length > minMatch {
				dpparse.Relax(table, i, minMatch, offset, matchCost(offset, minMatch))
			}

			return true
		})

		chain.Insert(i)
	}

	flat := dpparse.Walk(table)

	// Every pair below is followed by a reuse-bit and an offset/length field,
	// matching the decoder's one-litRun-then-one-match loop body exactly. A
	// trailing literal run with no following match is therefore NOT appended
	// as its own pair (it has no offset/length to pair with) — it is instead
	// folded into the EOF record's own litRun field below, so the EOF record
	// is the one iteration that carries a (possibly zero) trailing literal
	// run followed by the sentinel offset instead of a real one.
	type pair struct {
		litRun int
		offset int
		length int
	}
	var pairs []pair
	var trailingLitRun int
	pos := 0
	for pos < len(flat) {
		litRun := 0
		for pos < len(flat) && flat[pos].Offset == 0 {
			litRun += flat[pos].Length
			pos++
		}
		if pos < len(flat) {
			pairs = append(pairs, pair{litRun: litRun, offset: flat[pos].Offset, length: flat[pos].Length})
			pos++
		} else {
			trailingLitRun = litRun
		}
	}

	inverted := !opts.Classic

	w := bitio.NewWriter()
	srcPos := 0
	lastOffset := 0

	for _, p := range pairs {
		gamma.WriteInterlaced(w, uint(p.litRun+1), false, backwards)
		for k := 0; k < p.litRun; k++ {
			w.WriteByte(src[srcPos])
			srcPos++
		}

		reuse := p.offset == lastOffset && lastOffset != 0
		w.WriteBit(flipIfBackwards(reuse, backwards))

		if !reuse {
			msb := (p.offset - 1) >> 7
			lsb := byte((p.offset - 1) & 0x7f)
			gamma.WriteInterlaced(w, uint(msb+1), inverted, backwards)
			w.WriteByte(^lsb)
			lastOffset = p.offset
		}

		gamma.WriteInterlaced(w, uint(p.length), false, backwards)
		srcPos += p.length
	}

	// EOF: the final litRun-field/bytes carries whatever literal run trails
	// the last match (zero if none), then a reuse-bit (always false, since
	// EOF is never representable as a reuse), then a "new offset" MSB field
	// whose value is the reserved sentinel; no LSB byte or length field
	// follows.
	gamma.WriteInterlaced(w, uint(trailingLitRun+1), false, backwards)
	for k := 0; k < trailingLitRun; k++ {
		w.WriteByte(src[srcPos])
		srcPos++
	}
	w.WriteBit(flipIfBackwards(false, backwards))
	gamma.WriteInterlaced(w, uint(eofMSBValue), inverted, backwards)

	return w.Bytes(), nil
}

// flipIfBackwards mirrors gamma's continuation-bit sense flip for the
// reuse-vs-new-offset selector bit, so backwards mode flips that selector
// the same way it flips the gamma continuation tags; gamma payload bits and
// whole bytes are not flipped.
func flipIfBackwards(v, backwards bool) bool {
	if backwards {
		return !v
	}
	return v
}

// Decompress decodes a ZX0 stream produced by Compress.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if len(src) == 0 {
		return []byte{}, nil
	}

	if opts.Backwards {
		out, err := decompressCore(reverseBytes(src), opts.Classic, true)
		if err != nil {
			return nil, err
		}
		return reverseBytes(out), nil
	}

	return decompressCore(src, opts.Classic, false)
}

func decompressCore(src []byte, classic, backwards bool) ([]byte, error) {
	r := bitio.NewReader(src)
	inverted := !classic

	var out []byte
	lastOffset := 0

	for {
		litValue, err := gamma.ReadInterlaced(r, false, backwards)
		if err != nil {
			return nil, ccerr.ErrTruncatedStream
		}
		litRun := int(litValue) - 1

		for k := 0; k < litRun; k++ {
			b, err := r.ReadByte()
			if err != nil {
				return nil, ccerr.ErrTruncatedStream
			}
			out = append(out, b)
		}

		rawBit, err := r.ReadBit()
		if err != nil {
			return nil, ccerr.ErrTruncatedStream
		}
		reuse := flipIfBackwards(rawBit, backwards)

		offset := lastOffset
		if !reuse {
			msbValue, err := gamma.ReadInterlaced(r, inverted, backwards)
			if err != nil {
				return nil, ccerr.ErrTruncatedStream
			}
			if msbValue == eofMSBValue {
				return out, nil
			}

			lsbByte, err := r.ReadByte()
			if err != nil {
				return nil, ccerr.ErrTruncatedStream
			}
			lsb := ^lsbByte

			offset = (int(msbValue-1)<<7 | int(lsb)) + 1
			lastOffset = offset
		}

		lengthValue, err := gamma.ReadInterlaced(r, false, backwards)
		if err != nil {
			return nil, ccerr.ErrTruncatedStream
		}
		length := int(lengthValue)

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

// MaxInput reports the declared maximum input size, 0 meaning limited only
// by the offset field and available memory.
func MaxInput() int {
	return 0
}
