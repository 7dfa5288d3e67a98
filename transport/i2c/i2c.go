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

// Package i2c provides I2C transport implementation for PMSA003I sensors
package i2c

import (
	"fmt"
	"time"

	sen0177 "github.com/openairproject/go-sen0177"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

const (
	// DefaultAddress is the PMSA003I's fixed I2C address.
	DefaultAddress = 0x12

	// Standard mode clock. The PMSA003I is not rated for fast mode.
	maxClockFreq = 100 * physic.KiloHertz
)

// Transport implements the sen0177.Transport interface for I2C
// communication. A whole measurement frame is delivered as one block
// read starting at the sensor's data register, so the transport
// advertises CapabilityBlockRead and the device skips stream
// resynchronization.
type Transport struct {
	dev     *i2c.Dev
	busName string
	timeout time.Duration
}

// New creates a new I2C transport on the given bus at the sensor's
// default address
func New(busName string) (*Transport, error) {
	return NewWithAddress(busName, DefaultAddress)
}

// NewWithAddress creates a new I2C transport at a specific address
func NewWithAddress(busName string, addr uint16) (*Transport, error) {
	// Initialize host
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}

	// Open I2C bus
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C bus %s: %w", busName, err)
	}

	dev := &i2c.Dev{Addr: addr, Bus: bus}

	_ = bus.SetSpeed(maxClockFreq) // Ignore error, continue with default speed

	transport := &Transport{
		dev:     dev,
		busName: busName,
		timeout: 50 * time.Millisecond,
	}

	return transport, nil
}

// ReadFull reads exactly len(buf) bytes from the sensor as one block
func (t *Transport) ReadFull(buf []byte) error {
	if t.dev == nil {
		return sen0177.NewReadError("ReadFull", t.busName, sen0177.ErrTransportClosed)
	}
	if err := t.dev.Tx(nil, buf); err != nil {
		return sen0177.NewReadError("ReadFull", t.busName, err)
	}
	return nil
}

// SetTimeout sets the read timeout for the transport
func (t *Transport) SetTimeout(timeout time.Duration) error {
	t.timeout = timeout
	return nil
}

// Close closes the transport connection
func (t *Transport) Close() error {
	// periph.io handles bus cleanup automatically
	t.dev = nil
	return nil
}

// IsConnected returns true if the transport is connected
func (t *Transport) IsConnected() bool {
	return t.dev != nil
}

// Type returns the transport type
func (*Transport) Type() sen0177.TransportType {
	return sen0177.TransportI2C
}

// HasCapability returns true for capabilities this transport supports
func (*Transport) HasCapability(capability sen0177.TransportCapability) bool {
	return capability == sen0177.CapabilityBlockRead
}

// Ensure Transport implements sen0177.Transport
var (
	_ sen0177.Transport                  = (*Transport)(nil)
	_ sen0177.TransportCapabilityChecker = (*Transport)(nil)
)
