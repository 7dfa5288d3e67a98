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
	"time"
)

// Option is a functional option for configuring a Device
type Option func(*Device) error

// WithModel selects the sensor variant. The model determines the expected
// frame length and which fields are decoded; it defaults to SEN0177.
func WithModel(model Model) Option {
	return func(d *Device) error {
		d.config.Model = model
		return nil
	}
}

// WithTimeout sets the transport read timeout applied to each read step.
// The sensor emits a frame roughly once a second; timeouts well below
// that will starve the marker scan.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Device) error {
		d.config.Timeout = timeout
		return nil
	}
}
