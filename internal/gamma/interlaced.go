// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

package gamma

import (
	"math/bits"

	"github.com/woozymasta/retrocompress/internal/bitio"
)

// WriteInterlaced emits value (>= 1) as interlaced Elias-gamma (used by ZX0
// and Pletter): each magnitude bit beyond the implicit leading 1 is preceded
// by a continuation tag, then a final tag terminates the code. When inverted
// is set, payload bits are XORed before being written (used for ZX0's
// new-offset MSB field). When backwards is set, the sense of the
// continuation tag is flipped (continue=0, stop=1), used when compressing
// with the input reversed.
func WriteInterlaced(w *bitio.Writer, value uint, inverted, backwards bool) {
	length := bits.Len(value)

	for i := length - 2; i >= 0; i-- {
		writeTag(w, true, backwards)

		bit := (value>>uint(i))&1 != 0
		if inverted {
			bit = !bit
		}
		w.WriteBit(bit)
	}

	writeTag(w, false, backwards)
}

// ReadInterlaced decodes a value written by WriteInterlaced with the same
// inverted/backwards flags.
func ReadInterlaced(r *bitio.Reader, inverted, backwards bool) (uint, error) {
	value := uint(1)

	for {
		more, err := readTag(r, backwards)
		if err != nil {
			return 0, err
		}
		if !more {
			break
		}

		b, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if inverted {
			b = !b
		}

		value <<= 1
		if b {
			value |= 1
		}
	}

	return value, nil
}

func writeTag(w *bitio.Writer, more, backwards bool) {
	if backwards {
		more = !more
	}
	w.WriteBit(more)
}

func readTag(r *bitio.Reader, backwards bool) (bool, error) {
	b, err := r.ReadBit()
	if err != nil {
		return false, err
	}
	if backwards {
		b = !b
	}
	return b, nil
}
