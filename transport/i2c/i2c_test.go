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

package i2c

import (
	"errors"
	"testing"

	sen0177 "github.com/openairproject/go-sen0177"
)

// TestTransportCreation verifies basic transport properties without
// touching a real bus
func TestTransportCreation(t *testing.T) {
	t.Parallel()

	transport := &Transport{busName: "/dev/i2c-1"}

	if transport.Type() != sen0177.TransportI2C {
		t.Errorf("Expected transport type %v, got %v", sen0177.TransportI2C, transport.Type())
	}

	if transport.IsConnected() {
		t.Error("Expected IsConnected() to return false for uninitialized transport")
	}
}

// TestBlockReadCapability verifies the transport identifies as a block
// reader, which makes the device skip stream resynchronization
func TestBlockReadCapability(t *testing.T) {
	t.Parallel()

	transport := &Transport{}

	if !transport.HasCapability(sen0177.CapabilityBlockRead) {
		t.Error("Expected I2C transport to advertise CapabilityBlockRead")
	}

	if transport.HasCapability("something_else") {
		t.Error("Expected unknown capabilities to be denied")
	}
}

// TestReadFullOnClosedTransport verifies reads fail cleanly with no device
func TestReadFullOnClosedTransport(t *testing.T) {
	t.Parallel()

	transport := &Transport{busName: "/dev/i2c-1"}

	buf := make([]byte, 32)
	err := transport.ReadFull(buf)
	if err == nil {
		t.Fatal("Expected error reading a transport with no device")
	}
	if !errors.Is(err, sen0177.ErrTransportClosed) {
		t.Errorf("Expected ErrTransportClosed, got: %v", err)
	}
}
