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
	"sync"
	"time"
)

// MockTransport is a scripted transport for testing. It serves reads from
// a queued byte stream and can inject an error at a chosen byte offset.
// An exhausted stream reads as a timeout, matching a quiet serial line.
type MockTransport struct {
	err       error
	stream    []byte
	pos       int
	errAt     int
	blockRead bool
	closed    bool
	timeout   time.Duration
	mu        sync.Mutex
}

// NewMockTransport creates a new mock transport with an empty stream
func NewMockTransport() *MockTransport {
	return &MockTransport{errAt: -1}
}

// QueueBytes appends bytes to the scripted stream
func (m *MockTransport) QueueBytes(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stream = append(m.stream, data...)
}

// FailAt arranges for err to be returned by the read that would consume
// the byte at absolute stream offset off.
func (m *MockTransport) FailAt(off int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errAt = off
	m.err = err
}

// SetBlockRead marks the mock as a block transport (I2C-style), making it
// advertise CapabilityBlockRead.
func (m *MockTransport) SetBlockRead(blockRead bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blockRead = blockRead
}

// BytesConsumed returns how many stream bytes have been read so far
func (m *MockTransport) BytesConsumed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pos
}

// ReadFull serves exactly len(buf) bytes from the scripted stream
func (m *MockTransport) ReadFull(buf []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return NewReadError("ReadFull", "mock", ErrTransportClosed)
	}
	for i := range buf {
		if m.errAt >= 0 && m.pos >= m.errAt {
			return m.err
		}
		if m.pos >= len(m.stream) {
			return NewTimeoutError("ReadFull", "mock")
		}
		buf[i] = m.stream[m.pos]
		m.pos++
	}
	return nil
}

// Close marks the transport closed
func (m *MockTransport) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// SetTimeout records the timeout; the mock never actually blocks
func (m *MockTransport) SetTimeout(timeout time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = timeout
	return nil
}

// IsConnected returns true until the mock is closed
func (m *MockTransport) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.closed
}

// Type returns TransportMock
func (*MockTransport) Type() TransportType {
	return TransportMock
}

// HasCapability reports CapabilityBlockRead when configured via SetBlockRead
func (m *MockTransport) HasCapability(capability TransportCapability) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return capability == CapabilityBlockRead && m.blockRead
}

// Ensure MockTransport implements Transport
var _ Transport = (*MockTransport)(nil)
var _ TransportCapabilityChecker = (*MockTransport)(nil)
