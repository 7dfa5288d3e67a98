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

// Package testing provides sensor frame builders for tests
package testing

import (
	"encoding/binary"

	"github.com/openairproject/go-sen0177/internal/frame"
)

// BuildFrame constructs a complete, valid on-wire frame of the given
// total length. Field values are placed as consecutive big-endian uint16s
// starting at the first payload offset; remaining payload bytes are zero.
// The length field and checksum are computed, so the result passes frame
// validation as-is.
func BuildFrame(frameLen int, fields ...uint16) []byte {
	frm := make([]byte, frameLen)
	frm[0] = frame.Magic0
	frm[1] = frame.Magic1
	binary.BigEndian.PutUint16(frm[2:], uint16(frameLen-frame.HeaderLength))
	for i, v := range fields {
		binary.BigEndian.PutUint16(frm[frame.HeaderLength+2*i:], v)
	}
	return StampChecksum(frm)
}

// StampChecksum recomputes and writes the trailing checksum of frm,
// returning frm for chaining.
func StampChecksum(frm []byte) []byte {
	sum := frame.CalculateChecksum(frm[:len(frm)-frame.ChecksumLength])
	binary.BigEndian.PutUint16(frm[len(frm)-frame.ChecksumLength:], sum)
	return frm
}

// CorruptChecksum overwrites the trailing checksum with 0xFFFF, returning
// frm for chaining. The all-ones value can never be a valid sum for a
// frame whose payload is not itself saturated.
func CorruptChecksum(frm []byte) []byte {
	frm[len(frm)-2] = 0xFF
	frm[len(frm)-1] = 0xFF
	return frm
}

// SetDeclaredLength overwrites the length field and restamps the checksum
// so only the length disagreement remains.
func SetDeclaredLength(frm []byte, declared uint16) []byte {
	binary.BigEndian.PutUint16(frm[2:], declared)
	return StampChecksum(frm)
}

// WithLeadingNoise returns noise followed by frm, simulating a read that
// joined the stream mid-transmission.
func WithLeadingNoise(noise, frm []byte) []byte {
	out := make([]byte, 0, len(noise)+len(frm))
	out = append(out, noise...)
	return append(out, frm...)
}
