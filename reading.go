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

import "fmt"

// Reading is a single decoded sensor measurement. It is a plain value:
// copyable, immutable, holding no references into the frame it was
// decoded from.
//
// Mass concentrations are reported twice, under two factory calibrations
// of the same optical measurement: "standard particle" (CF=1) and
// "atmospheric environment". Both are in µg/m³. Particle counts are per
// 0.1L of air and only meaningful on models that report them.
type Reading struct {
	pm1     uint16
	pm2_5   uint16
	pm10    uint16
	envPM1  uint16
	envPM25 uint16
	envPM10 uint16

	particles0_3 uint16
	particles0_5 uint16
	particles1   uint16
	particles2_5 uint16
	particles5   uint16
	particles10  uint16
}

// PM1 returns the standard (CF=1) PM1.0 concentration in µg/m³
func (r Reading) PM1() uint16 {
	return r.pm1
}

// PM2_5 returns the standard (CF=1) PM2.5 concentration in µg/m³
func (r Reading) PM2_5() uint16 {
	return r.pm2_5
}

// PM10 returns the standard (CF=1) PM10 concentration in µg/m³
func (r Reading) PM10() uint16 {
	return r.pm10
}

// EnvPM1 returns the atmospheric-environment PM1.0 concentration in µg/m³.
//
// Note that some devices do not support this calibration and report
// garbage data for the env fields.
func (r Reading) EnvPM1() uint16 {
	return r.envPM1
}

// EnvPM2_5 returns the atmospheric-environment PM2.5 concentration in µg/m³.
//
// Note that some devices do not support this calibration and report
// garbage data for the env fields.
func (r Reading) EnvPM2_5() uint16 {
	return r.envPM25
}

// EnvPM10 returns the atmospheric-environment PM10 concentration in µg/m³.
//
// Note that some devices do not support this calibration and report
// garbage data for the env fields.
func (r Reading) EnvPM10() uint16 {
	return r.envPM10
}

// Particles0_3 returns the count of particles larger than 0.3µm per 0.1L of air
func (r Reading) Particles0_3() uint16 {
	return r.particles0_3
}

// Particles0_5 returns the count of particles larger than 0.5µm per 0.1L of air
func (r Reading) Particles0_5() uint16 {
	return r.particles0_5
}

// Particles1 returns the count of particles larger than 1µm per 0.1L of air
func (r Reading) Particles1() uint16 {
	return r.particles1
}

// Particles2_5 returns the count of particles larger than 2.5µm per 0.1L of air
func (r Reading) Particles2_5() uint16 {
	return r.particles2_5
}

// Particles5 returns the count of particles larger than 5µm per 0.1L of air
func (r Reading) Particles5() uint16 {
	return r.particles5
}

// Particles10 returns the count of particles larger than 10µm per 0.1L of air
func (r Reading) Particles10() uint16 {
	return r.particles10
}

func (r Reading) String() string {
	return fmt.Sprintf("PM1: %dµg/m³, PM2.5: %dµg/m³, PM10: %dµg/m³",
		r.pm1, r.pm2_5, r.pm10)
}
