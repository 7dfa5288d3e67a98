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

import "github.com/openairproject/go-sen0177/internal/frame"

// Model describes the on-wire frame geometry and field table of a sensor
// variant. The decoding algorithm is shared across the PMS family; what
// differs per model is configuration data: how long a frame is and which
// fields it carries.
type Model struct {
	name           string
	frameLength    int
	particleCounts bool
}

// Supported sensor models.
var (
	// SEN0177 is DFRobot's breakout of the Plantower PMS1003-class
	// sensor: 32-byte frames with per-size particle counts.
	SEN0177 = Model{name: "SEN0177", frameLength: 32, particleCounts: true}

	// PMSA003I is the Adafruit/Plantower I2C variant: same 32-byte frame
	// as the SEN0177, readable as one block from the I2C bus.
	PMSA003I = Model{name: "PMSA003I", frameLength: 32, particleCounts: true}

	// PMS3003 is the older 24-byte variant: mass concentrations only, no
	// particle-count bins.
	PMS3003 = Model{name: "PMS3003", frameLength: 24, particleCounts: false}
)

// Name returns the model name
func (m Model) Name() string {
	return m.name
}

// FrameLength returns the total on-wire frame size in bytes, including
// magic marker, length field and checksum.
func (m Model) FrameLength() int {
	return m.frameLength
}

// DeclaredLength returns the value the frame's length field must carry
// for this model: the byte count following the length field.
func (m Model) DeclaredLength() int {
	return m.frameLength - frame.HeaderLength
}

// HasParticleCounts returns true if the model reports per-size particle
// count bins in addition to mass concentrations.
func (m Model) HasParticleCounts() bool {
	return m.particleCounts
}

func (m Model) String() string {
	return m.name
}
