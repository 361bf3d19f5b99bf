// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/retrocompress

// Package trace provides the optional diagnostic output behind DAN1/DAN3's
// Verbose option. It has no effect on the produced stream format — only on
// whether a line is written to the standard logger.
package trace

import "log"

// Logf writes a diagnostic line when enabled is true; it is a no-op
// otherwise, so Verbose callers pay nothing for the default case.
func Logf(enabled bool, format string, args ...any) {
	if !enabled {
		return
	}

	log.Printf(format, args...)
}
