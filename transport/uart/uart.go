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

// Package uart provides UART transport implementation for SEN0177-family sensors
package uart

import (
	"fmt"
	"time"

	sen0177 "github.com/openairproject/go-sen0177"
	"go.bug.st/serial"
)

// The sensor's UART framing is fixed: 9600 baud, 8 data bits, no parity,
// one stop bit, no flow control.
const baudRate = 9600

const defaultTimeout = 1500 * time.Millisecond

// Transport implements the sen0177.Transport interface for serial
// communication. The sensor streams frames continuously; this transport
// only ever reads.
type Transport struct {
	port     serial.Port
	portName string
	timeout  time.Duration
}

// New creates a new UART transport on the given serial port
func New(portName string) (*Transport, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", portName, err)
	}

	transport := &Transport{
		port:     port,
		portName: portName,
		timeout:  defaultTimeout,
	}

	if err := port.SetReadTimeout(transport.timeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to set read timeout on %s: %w", portName, err)
	}

	// Drop whatever accumulated in the OS buffer before we attached, so
	// the first read starts near the live stream instead of stale data.
	_ = port.ResetInputBuffer()

	return transport, nil
}

// ReadFull reads exactly len(buf) bytes from the serial port
func (t *Transport) ReadFull(buf []byte) error {
	if t.port == nil {
		return sen0177.NewReadError("ReadFull", t.portName, sen0177.ErrTransportClosed)
	}

	for read := 0; read < len(buf); {
		n, err := t.port.Read(buf[read:])
		if err != nil {
			return sen0177.NewReadError("ReadFull", t.portName, err)
		}
		// go.bug.st/serial reports an expired read timeout as a zero-byte
		// read with no error.
		if n == 0 {
			return sen0177.NewTimeoutError("ReadFull", t.portName)
		}
		read += n
	}
	return nil
}

// SetTimeout sets the read timeout for the transport
func (t *Transport) SetTimeout(timeout time.Duration) error {
	if t.port != nil {
		if err := t.port.SetReadTimeout(timeout); err != nil {
			return fmt.Errorf("failed to set read timeout on %s: %w", t.portName, err)
		}
	}
	t.timeout = timeout
	return nil
}

// Close closes the serial port
func (t *Transport) Close() error {
	if t.port == nil {
		return nil
	}
	if err := t.port.Close(); err != nil {
		return fmt.Errorf("failed to close serial port %s: %w", t.portName, err)
	}
	t.port = nil
	return nil
}

// IsConnected returns true if the serial port is open
func (t *Transport) IsConnected() bool {
	return t.port != nil
}

// Type returns the transport type
func (*Transport) Type() sen0177.TransportType {
	return sen0177.TransportUART
}

// Ensure Transport implements sen0177.Transport
var _ sen0177.Transport = (*Transport)(nil)
