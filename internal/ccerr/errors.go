// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

// Package ccerr defines the typed error kinds shared by every codec in
// retrocompress. Codec packages return these sentinels (or wrap them with
// fmt.Errorf's %w) so callers can dispatch on errors.Is regardless of which
// codec produced the failure.
package ccerr

import "errors"

// Sentinel errors surfaced by compress/decompress across every codec.
var (
	// ErrInputTooLarge is returned when an input exceeds the codec's declared MaxInput.
	ErrInputTooLarge = errors.New("retrocompress: input exceeds codec MaxInput")
	// ErrTruncatedStream is returned when a decoder runs out of source bytes mid-token.
	ErrTruncatedStream = errors.New("retrocompress: truncated stream")
	// ErrInvalidHeader is returned when leading bytes (subset indicator, length prefix) are malformed.
	ErrInvalidHeader = errors.New("retrocompress: invalid header")
	// ErrInvalidBackReference is returned when a decoded (offset, length) would read
	// before the start of the output or past its current end.
	ErrInvalidBackReference = errors.New("retrocompress: invalid back-reference")
	// ErrInvalidQValue is returned by Pletter when q is outside 1..7.
	ErrInvalidQValue = errors.New("retrocompress: invalid q value")
	// ErrRoundTripMismatch is used by the validation harness only: compress succeeded
	// but decompress(compress(x)) != x.
	ErrRoundTripMismatch = errors.New("retrocompress: round-trip mismatch")
)
