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
	"encoding/binary"
	"fmt"
)

// Field offsets within a complete frame (magic marker at 0). All fields
// are big-endian uint16. The mass-concentration block is shared by every
// PMS-family model; the particle-count block exists only on models whose
// field table includes it.
const (
	offPM1     = 4
	offPM2_5   = 6
	offPM10    = 8
	offEnvPM1  = 10
	offEnvPM25 = 12
	offEnvPM10 = 14

	offParticles0_3 = 16
	offParticles0_5 = 18
	offParticles1   = 20
	offParticles2_5 = 22
	offParticles5   = 24
	offParticles10  = 26

	countBlockEnd = 28
)

// decodeReading interprets a validated frame into a Reading according to
// the model's field table. The frame must already have passed length and
// checksum validation; the length check here only guards against decoding
// a buffer shorter than the model's table, so field extraction can never
// read out of bounds.
func decodeReading(frm []byte, model Model) (Reading, error) {
	if len(frm) < model.FrameLength() {
		return Reading{}, fmt.Errorf("%w: frame is %d bytes, model %s needs %d",
			ErrUnexpectedLength, len(frm), model, model.FrameLength())
	}
	if model.HasParticleCounts() && model.FrameLength() < countBlockEnd {
		return Reading{}, fmt.Errorf("%w: model %s declares particle counts in a %d-byte frame",
			ErrUnexpectedLength, model, model.FrameLength())
	}

	be := binary.BigEndian
	reading := Reading{
		pm1:     be.Uint16(frm[offPM1:]),
		pm2_5:   be.Uint16(frm[offPM2_5:]),
		pm10:    be.Uint16(frm[offPM10:]),
		envPM1:  be.Uint16(frm[offEnvPM1:]),
		envPM25: be.Uint16(frm[offEnvPM25:]),
		envPM10: be.Uint16(frm[offEnvPM10:]),
	}
	if model.HasParticleCounts() {
		reading.particles0_3 = be.Uint16(frm[offParticles0_3:])
		reading.particles0_5 = be.Uint16(frm[offParticles0_5:])
		reading.particles1 = be.Uint16(frm[offParticles1:])
		reading.particles2_5 = be.Uint16(frm[offParticles2_5:])
		reading.particles5 = be.Uint16(frm[offParticles5:])
		reading.particles10 = be.Uint16(frm[offParticles10:])
	}
	return reading, nil
}
