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

// Package frame provides frame layout constants and checksum helpers for
// the Plantower PMS wire protocol spoken by SEN0177-family sensors
package frame

// Frame markers - every frame starts with this two-byte sequence ("BM")
const (
	Magic0 = 0x42 // First start-of-frame byte
	Magic1 = 0x4D // Second start-of-frame byte
)

// Frame geometry
const (
	// HeaderLength is the magic marker plus the big-endian length field.
	HeaderLength = 4
	// ChecksumLength is the trailing big-endian checksum field.
	ChecksumLength = 2
	// MaxFrameLength is the largest on-wire frame of any supported sensor
	// model. Read buffers are sized to this so the read path never
	// allocates; models declaring longer frames are rejected up front.
	MaxFrameLength = 40
)
