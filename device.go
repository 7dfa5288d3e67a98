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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openairproject/go-sen0177/internal/frame"
)

// ErrNoTransport is returned by New when no transport is supplied.
var ErrNoTransport = errors.New("no transport provided")

// DeviceConfig contains configuration options for the Device
type DeviceConfig struct {
	// Model selects the sensor variant's frame geometry and field table
	Model Model
	// Timeout is the transport read timeout for each read step
	Timeout time.Duration
}

// DefaultDeviceConfig returns default device configuration. The sensor
// emits a frame roughly once a second, so 1.5s covers a full cycle plus
// margin.
func DefaultDeviceConfig() *DeviceConfig {
	return &DeviceConfig{
		Model:   SEN0177,
		Timeout: 1500 * time.Millisecond,
	}
}

// Device represents a particulate-matter sensor behind a transport.
//
// Thread Safety: Device is NOT thread-safe. All methods must be called
// from a single goroutine or protected with external synchronization.
// The Device exclusively owns its transport for the duration of each
// call.
type Device struct {
	transport Transport
	config    *DeviceConfig

	// frameBuf holds the frame being acquired. Sized to the largest
	// supported model so the read path allocates nothing.
	frameBuf [frame.MaxFrameLength]byte
}

// New creates a new sensor device with the given transport. The transport
// must already be configured and open; the sensor itself needs no
// initialization commands, it free-runs from power-on.
func New(transport Transport, opts ...Option) (*Device, error) {
	if transport == nil {
		return nil, ErrNoTransport
	}

	device := &Device{
		transport: transport,
		config:    DefaultDeviceConfig(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(device); err != nil {
			return nil, err
		}
	}

	if device.config.Model.FrameLength() > len(device.frameBuf) {
		return nil, fmt.Errorf("%w: model %s frame of %d bytes exceeds buffer capacity %d",
			ErrUnexpectedLength, device.config.Model, device.config.Model.FrameLength(), len(device.frameBuf))
	}

	if err := transport.SetTimeout(device.config.Timeout); err != nil {
		return nil, fmt.Errorf("failed to set transport timeout: %w", err)
	}

	return device, nil
}

// Transport returns the underlying transport
func (d *Device) Transport() Transport {
	return d.transport
}

// Model returns the configured sensor model
func (d *Device) Model() Model {
	return d.config.Model
}

// Read acquires and decodes one measurement frame. It blocks until a full
// frame arrives, the transport timeout fires, or validation fails.
//
// Read never retries internally and keeps no state between calls: each
// call resynchronizes on the frame marker from scratch. On ErrBadMagic or
// ErrChecksumMismatch a single caller-side retry usually succeeds, since
// line corruption is transient; transport errors carry no such
// expectation.
func (d *Device) Read() (Reading, error) {
	return d.ReadContext(context.Background())
}

// ReadContext acquires and decodes one measurement frame, checking ctx
// before starting. The transport's own timeout bounds the blocking read
// steps; ctx is not able to interrupt a read already in flight.
func (d *Device) ReadContext(ctx context.Context) (Reading, error) {
	select {
	case <-ctx.Done():
		return Reading{}, ctx.Err()
	default:
	}

	frm, err := d.acquireFrame()
	if err != nil {
		return Reading{}, err
	}
	return decodeReading(frm, d.config.Model)
}

// acquireFrame reads one validated frame into the device buffer and
// returns the filled slice. Transport failures are propagated verbatim as
// *TransportError; validation failures map to the sentinel errors.
func (d *Device) acquireFrame() ([]byte, error) {
	buf := d.frameBuf[:d.config.Model.FrameLength()]

	if d.hasCapability(CapabilityBlockRead) {
		if err := d.readBlockFrame(buf); err != nil {
			return nil, err
		}
	} else {
		if err := d.readStreamFrame(buf); err != nil {
			return nil, err
		}
	}

	// Checksum covers every byte preceding the trailer, marker and
	// length field included. Only after it passes is any field trusted.
	if !frame.ValidateChecksum(buf) {
		debugf("checksum mismatch: computed %04X, frame carries %04X",
			frame.CalculateChecksum(buf[:len(buf)-frame.ChecksumLength]), frame.TrailerChecksum(buf))
		return nil, fmt.Errorf("%w: computed %04X, frame carries %04X",
			ErrChecksumMismatch,
			frame.CalculateChecksum(buf[:len(buf)-frame.ChecksumLength]),
			frame.TrailerChecksum(buf))
	}

	return buf, nil
}

// readStreamFrame fills buf from a byte-stream transport: scan for the
// marker, validate the declared length, then read the remainder.
func (d *Device) readStreamFrame(buf []byte) error {
	if err := d.syncToMarker(); err != nil {
		return err
	}
	buf[0] = frame.Magic0
	buf[1] = frame.Magic1

	// Length field before anything else: a false marker inside noise is
	// caught here, before a bogus length can drive the payload read.
	if err := d.transport.ReadFull(buf[2:frame.HeaderLength]); err != nil {
		return err
	}
	if err := d.checkDeclaredLength(buf); err != nil {
		return err
	}

	return d.transport.ReadFull(buf[frame.HeaderLength:])
}

// readBlockFrame fills buf from a block transport (I2C register read).
// The block starts at the sensor's data register, so the marker must sit
// at offset 0; the same length check applies.
func (d *Device) readBlockFrame(buf []byte) error {
	if err := d.transport.ReadFull(buf); err != nil {
		return err
	}
	if buf[0] != frame.Magic0 || buf[1] != frame.Magic1 {
		return fmt.Errorf("%w: block starts %02X %02X", ErrBadMagic, buf[0], buf[1])
	}
	return d.checkDeclaredLength(buf)
}

// syncToMarker consumes the stream byte by byte until the two-byte frame
// marker has been read. The scan window is four frames' worth of bytes:
// enough to cover joining mid-frame plus leading noise, small enough to
// fail fast on a wrong baud rate. Transport errors (including timeout)
// propagate immediately.
func (d *Device) syncToMarker() error {
	limit := d.config.Model.FrameLength() * 4
	var b [1]byte
	sawMagic0 := false
	for i := 0; i < limit; i++ {
		if err := d.transport.ReadFull(b[:]); err != nil {
			return err
		}
		switch {
		case sawMagic0 && b[0] == frame.Magic1:
			if i > 1 {
				debugf("resynchronized after skipping %d bytes", i-1)
			}
			return nil
		case b[0] == frame.Magic0:
			sawMagic0 = true
		default:
			sawMagic0 = false
		}
	}
	return fmt.Errorf("%w: no marker within %d bytes", ErrBadMagic, limit)
}

// checkDeclaredLength validates the frame's length field against the
// configured model.
func (d *Device) checkDeclaredLength(buf []byte) error {
	declared := frame.DeclaredLength(buf)
	if declared != d.config.Model.DeclaredLength() {
		return fmt.Errorf("%w: declared %d bytes, model %s expects %d",
			ErrUnexpectedLength, declared, d.config.Model, d.config.Model.DeclaredLength())
	}
	return nil
}

// hasCapability checks if the transport has the specified capability
func (d *Device) hasCapability(capability TransportCapability) bool {
	if checker, ok := d.transport.(TransportCapabilityChecker); ok {
		return checker.HasCapability(capability)
	}
	return false
}

// Close closes the underlying transport
func (d *Device) Close() error {
	if err := d.transport.Close(); err != nil {
		return fmt.Errorf("failed to close transport: %w", err)
	}
	return nil
}
