// go-sen0177
// Copyright (c) 2026 The Open Air Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-sen0177.
//
// go-sen0177 is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-sen0177 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-sen0177; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package sen0177

import (
	"log"
	"sync/atomic"
)

// debugEnabled gates debug tracing. The read path never logs; tracing is
// strictly opt-in for diagnosing wiring and baud-rate problems.
var debugEnabled atomic.Bool

// SetDebugEnabled enables or disables debug output for the package
func SetDebugEnabled(enabled bool) {
	debugEnabled.Store(enabled)
}

func debugf(format string, args ...any) {
	if debugEnabled.Load() {
		log.Printf("sen0177: "+format, args...)
	}
}
