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

package frame

import "encoding/binary"

// CalculateChecksum returns the arithmetic sum of data modulo 65536.
// The sensor checksums every frame byte preceding the checksum field,
// including the magic marker and length field.
func CalculateChecksum(data []byte) uint16 {
	var sum uint16
	for _, b := range data {
		sum += uint16(b)
	}
	return sum
}

// TrailerChecksum returns the big-endian checksum stored in the last two
// bytes of frm. frm must be at least ChecksumLength bytes.
func TrailerChecksum(frm []byte) uint16 {
	return binary.BigEndian.Uint16(frm[len(frm)-ChecksumLength:])
}

// ValidateChecksum reports whether the trailing checksum of a complete
// frame matches the sum of all bytes preceding it.
func ValidateChecksum(frm []byte) bool {
	if len(frm) < HeaderLength+ChecksumLength {
		return false
	}
	return CalculateChecksum(frm[:len(frm)-ChecksumLength]) == TrailerChecksum(frm)
}

// DeclaredLength returns the frame's big-endian length field: the number
// of bytes that follow it (payload plus checksum). frm must contain at
// least the frame header.
func DeclaredLength(frm []byte) int {
	return int(binary.BigEndian.Uint16(frm[2:HeaderLength]))
}
