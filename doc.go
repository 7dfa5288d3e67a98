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

/*
Package sen0177 provides a pure Go library for reading laser-scattering
particulate-matter sensors in the SEN0177 / PMSA003I (Plantower PMS) family.

These sensors free-run, continuously streaming fixed-length binary frames
carrying PM1.0, PM2.5 and PM10 mass concentrations plus per-size particle
counts. The hard part is not talking to the sensor but locating one
well-formed frame in a byte stream that may start mid-frame or carry line
noise. This library implements that synchronization and decoding state
machine with frame-level validation (magic marker, declared length,
mod-65536 checksum) and a typed error taxonomy, using only fixed-size
stack buffers in the read path.

Features:
  - Multiple transport support: UART and I2C
  - Stream resynchronization on the 0x42 0x4D frame marker
  - Length and checksum validation before any field is trusted
  - Typed, matchable errors for each failure class
  - Sensor model selection (SEN0177, PMSA003I, PMS3003) as configuration
  - No heap allocation per read

Basic Usage:

	import (
	    sen0177 "github.com/openairproject/go-sen0177"
	    "github.com/openairproject/go-sen0177/transport/uart"
	)

	// Create a UART transport (9600 8-N-1, the sensor's fixed framing)
	transport, err := uart.New("/dev/ttyUSB0")
	if err != nil {
	    log.Fatal(err)
	}
	defer transport.Close()

	// Create the sensor device
	sensor, err := sen0177.New(transport)
	if err != nil {
	    log.Fatal(err)
	}

	// Or create with custom options
	sensor, err = sen0177.New(transport,
	    sen0177.WithModel(sen0177.PMSA003I),
	    sen0177.WithTimeout(2*time.Second),
	)

	reading, err := sensor.Read()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Printf("PM1: %dµg/m³, PM2.5: %dµg/m³, PM10: %dµg/m³\n",
	    reading.PM1(), reading.PM2_5(), reading.PM10())

Transport Selection:

The library supports two transport layers:

  - UART: the sensor's native streaming interface, works with
    USB-to-serial adapters (9600 baud, 8 data bits, no parity, 1 stop bit)
  - I2C: for PMSA003I modules wired to an I2C bus; a frame is obtained as
    one fixed-size block read instead of a stream scan

Error Handling:

Read never retries internally; every failure is surfaced so the caller can
decide per class. BadMagic and ChecksumMismatch are empirically transient
(line noise) and a single retry of the whole read usually succeeds;
transport errors are propagated verbatim and are not assumed transient:

	reading, err := sensor.Read()
	if sen0177.IsRetryable(err) {
	    reading, err = sensor.Read()
	}
	if errors.Is(err, sen0177.ErrChecksumMismatch) {
	    // corrupted frame
	}

Thread Safety:

Device operations are not thread-safe. The transport is exclusively owned
by its Device; for concurrent access, wrap the Device with a mutex or use
separate devices on separate transports.
*/
package sen0177
