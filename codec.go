// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

// Package retrocompress dispatches across the eight 8-bit-era codecs
// implemented by its subpackages (mdkrle, lzf, pletter, dan1, dan3, zx7,
// zx0, bitbuster). It replaces a string-keyed runtime lookup with a tagged
// Codec enum and a capability table built once at init time, mapping both
// the Codec identity and its conventional file extensions to a common
// {Compress, Decompress, MaxInput} trait.
package retrocompress

import (
	"fmt"
	"strings"

	"github.com/woozymasta/retrocompress/bitbuster"
	"github.com/woozymasta/retrocompress/dan1"
	"github.com/woozymasta/retrocompress/dan3"
	"github.com/woozymasta/retrocompress/lzf"
	"github.com/woozymasta/retrocompress/mdkrle"
	"github.com/woozymasta/retrocompress/pletter"
	"github.com/woozymasta/retrocompress/zx0"
	"github.com/woozymasta/retrocompress/zx7"
)

// Codec identifies one of the eight supported formats.
type Codec int

// Codec identities, one per supported format.
const (
	MDKRLE Codec = iota
	LZF
	Pletter
	DAN1
	DAN3
	ZX7
	ZX0
	BitBuster
)

// String returns the codec's canonical name.
func (c Codec) String() string {
	if int(c) < 0 || int(c) >= len(registry) {
		return fmt.Sprintf("Codec(%d)", int(c))
	}
	return registry[c].name
}

// CompressFunc and DecompressFunc adapt each codec package's (opts *T)
// signature to an opaque any so a single table can hold all eight. A nil
// opts value is accepted by every codec package and selects its defaults.
type (
	CompressFunc   func(src []byte, opts any) ([]byte, error)
	DecompressFunc func(src []byte, opts any) ([]byte, error)
)

// Capability is the common trait every codec variant implements (spec §9,
// "Dynamic dispatch over codecs"): compress, decompress, and the declared
// maximum input size (0 meaning no declared limit beyond memory).
type Capability struct {
	Codec      Codec
	Compress   CompressFunc
	Decompress DecompressFunc
	MaxInput   func() int
}

type entry struct {
	name       string
	extensions []string
	cap        Capability
}

// optsOrNil type-asserts opts to *T, returning nil if opts is nil or the
// wrong type so codec packages fall back to their own defaults.
func optsOrNil[T any](opts any) *T {
	if opts == nil {
		return nil
	}
	if v, ok := opts.(*T); ok {
		return v
	}
	return nil
}

var registry = map[Codec]entry{
	MDKRLE: {
		name:       "MDK-RLE",
		extensions: []string{".mdkrle", ".mdk", ".rle"},
		cap: Capability{
			Codec: MDKRLE,
			Compress: func(src []byte, opts any) ([]byte, error) {
				return mdkrle.Compress(src, optsOrNil[mdkrle.CompressOptions](opts))
			},
			Decompress: func(src []byte, opts any) ([]byte, error) {
				return mdkrle.Decompress(src, optsOrNil[mdkrle.DecompressOptions](opts))
			},
			MaxInput: mdkrle.MaxInput,
		},
	},
	LZF: {
		name:       "LZF",
		extensions: []string{".lzf"},
		cap: Capability{
			Codec: LZF,
			Compress: func(src []byte, opts any) ([]byte, error) {
				return lzf.Compress(src, optsOrNil[lzf.CompressOptions](opts))
			},
			Decompress: func(src []byte, opts any) ([]byte, error) {
				return lzf.Decompress(src, optsOrNil[lzf.DecompressOptions](opts))
			},
			MaxInput: lzf.MaxInput,
		},
	},
	Pletter: {
		name: "Pletter",
		// Pletter claims both extensions spec §6 lists for it: .plet5 (the
		// v0.5 stream format) and .pck (its legacy packer extension).
		extensions: []string{".plet5", ".pck"},
		cap: Capability{
			Codec: Pletter,
			Compress: func(src []byte, opts any) ([]byte, error) {
				return pletter.Compress(src, optsOrNil[pletter.CompressOptions](opts))
			},
			Decompress: func(src []byte, opts any) ([]byte, error) {
				return pletter.Decompress(src, optsOrNil[pletter.DecompressOptions](opts))
			},
			MaxInput: pletter.MaxInput,
		},
	},
	DAN1: {
		name:       "DAN1",
		extensions: []string{".dan1"},
		cap: Capability{
			Codec: DAN1,
			Compress: func(src []byte, opts any) ([]byte, error) {
				return dan1.Compress(src, optsOrNil[dan1.CompressOptions](opts))
			},
			Decompress: func(src []byte, opts any) ([]byte, error) {
				return dan1.Decompress(src, optsOrNil[dan1.DecompressOptions](opts))
			},
			MaxInput: dan1.MaxInput,
		},
	},
	DAN3: {
		name:       "DAN3",
		extensions: []string{".dan3"},
		cap: Capability{
			Codec: DAN3,
			Compress: func(src []byte, opts any) ([]byte, error) {
				return dan3.Compress(src, optsOrNil[dan3.CompressOptions](opts))
			},
			Decompress: func(src []byte, opts any) ([]byte, error) {
				return dan3.Decompress(src, optsOrNil[dan3.DecompressOptions](opts))
			},
			MaxInput: dan3.MaxInput,
		},
	},
	ZX7: {
		name:       "ZX7",
		extensions: []string{".zx7"},
		cap: Capability{
			Codec: ZX7,
			Compress: func(src []byte, opts any) ([]byte, error) {
				return zx7.Compress(src, optsOrNil[zx7.CompressOptions](opts))
			},
			Decompress: func(src []byte, opts any) ([]byte, error) {
				return zx7.Decompress(src, optsOrNil[zx7.DecompressOptions](opts))
			},
			MaxInput: zx7.MaxInput,
		},
	},
	ZX0: {
		name:       "ZX0",
		extensions: []string{".zx0"},
		cap: Capability{
			Codec: ZX0,
			Compress: func(src []byte, opts any) ([]byte, error) {
				return zx0.Compress(src, optsOrNil[zx0.CompressOptions](opts))
			},
			Decompress: func(src []byte, opts any) ([]byte, error) {
				return zx0.Decompress(src, optsOrNil[zx0.DecompressOptions](opts))
			},
			MaxInput: zx0.MaxInput,
		},
	},
	BitBuster: {
		name: "BitBuster",
		// spec §6's extension mapping names no extension for BitBuster; it
		// is reachable only via the Codec enum, not ForExtension.
		extensions: nil,
		cap: Capability{
			Codec: BitBuster,
			Compress: func(src []byte, opts any) ([]byte, error) {
				return bitbuster.Compress(src, optsOrNil[bitbuster.CompressOptions](opts))
			},
			Decompress: func(src []byte, opts any) ([]byte, error) {
				return bitbuster.Decompress(src, optsOrNil[bitbuster.DecompressOptions](opts))
			},
			MaxInput: bitbuster.MaxInput,
		},
	},
}

// extensionIndex maps a lower-cased extension (with leading dot) to the
// codec that claims it, built once at init from registry so lookups never
// walk the map.
var extensionIndex = func() map[string]Codec {
	idx := make(map[string]Codec)
	for codec, e := range registry {
		for _, ext := range e.extensions {
			idx[strings.ToLower(ext)] = codec
		}
	}
	return idx
}()

// For reports the Capability trait for a given Codec. The bool is false if
// codec is not a recognized identity.
func For(codec Codec) (Capability, bool) {
	e, ok := registry[codec]
	return e.cap, ok
}

// ForExtension reports the Capability trait for a file extension (with or
// without a leading dot), matched case-insensitively against the codecs'
// conventional extensions (spec §6's file-extension mapping).
func ForExtension(ext string) (Capability, bool) {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	codec, ok := extensionIndex[ext]
	if !ok {
		return Capability{}, false
	}
	return registry[codec].cap, true
}

// All returns the Capability trait for every supported codec, in Codec
// enum order.
func All() []Capability {
	out := make([]Capability, 0, len(registry))
	for c := MDKRLE; c <= BitBuster; c++ {
		if e, ok := registry[c]; ok {
			out = append(out, e.cap)
		}
	}
	return out
}
