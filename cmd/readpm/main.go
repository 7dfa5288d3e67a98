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

// Command readpm polls a SEN0177-family particulate-matter sensor and
// prints each reading.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	sen0177 "github.com/openairproject/go-sen0177"
	"github.com/openairproject/go-sen0177/transport/i2c"
	"github.com/openairproject/go-sen0177/transport/uart"
)

type config struct {
	devicePath *string
	model      *string
	timeout    *time.Duration
	interval   *time.Duration
	counts     *bool
	debug      *bool
}

func parseFlags() *config {
	cfg := &config{
		devicePath: flag.String("device", "/dev/ttyUSB0",
			"Serial device path (e.g., /dev/ttyUSB0 or COM3), or an I2C bus (e.g., /dev/i2c-1 or i2c:1)."),
		model:    flag.String("model", "SEN0177", "Sensor model: SEN0177, PMSA003I or PMS3003"),
		timeout:  flag.Duration("timeout", 1500*time.Millisecond, "Read timeout per frame"),
		interval: flag.Duration("interval", time.Second, "Delay between readings"),
		counts:   flag.Bool("counts", false, "Also print per-size particle counts"),
		debug:    flag.Bool("debug", false, "Enable debug output"),
	}
	flag.Parse()

	if *cfg.debug {
		sen0177.SetDebugEnabled(true)
	}

	return cfg
}

// newTransport creates a transport from a device path. I2C buses are
// recognized by name; everything else is treated as a serial port.
func newTransport(path string) (sen0177.Transport, error) {
	pathLower := strings.ToLower(path)
	if strings.Contains(pathLower, "i2c") {
		return i2c.New(strings.TrimPrefix(pathLower, "i2c:"))
	}
	return uart.New(path)
}

func lookupModel(name string) (sen0177.Model, error) {
	switch strings.ToUpper(name) {
	case "SEN0177":
		return sen0177.SEN0177, nil
	case "PMSA003I":
		return sen0177.PMSA003I, nil
	case "PMS3003":
		return sen0177.PMS3003, nil
	default:
		return sen0177.Model{}, fmt.Errorf("unknown sensor model %q", name)
	}
}

// readOnce performs one read with the documented caller-side retry
// policy: retry the whole read once when the failure class is transient
// line noise, never when the transport itself failed.
func readOnce(sensor *sen0177.Device) (sen0177.Reading, error) {
	reading, err := sensor.Read()
	if err != nil && sen0177.IsRetryable(err) {
		reading, err = sensor.Read()
	}
	return reading, err
}

func run() error {
	cfg := parseFlags()

	model, err := lookupModel(*cfg.model)
	if err != nil {
		return err
	}

	transport, err := newTransport(*cfg.devicePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", *cfg.devicePath, err)
	}
	defer func() { _ = transport.Close() }()

	sensor, err := sen0177.New(transport,
		sen0177.WithModel(model),
		sen0177.WithTimeout(*cfg.timeout),
	)
	if err != nil {
		return err
	}

	fmt.Printf("Reading %s on %s, Ctrl-C to stop\n", model, *cfg.devicePath)
	for {
		reading, err := readOnce(sensor)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read failed: %v\n", err)
		} else {
			fmt.Println(reading)
			if *cfg.counts && model.HasParticleCounts() {
				fmt.Printf("  >0.3µm: %d, >0.5µm: %d, >1µm: %d, >2.5µm: %d, >5µm: %d, >10µm: %d (per 0.1L)\n",
					reading.Particles0_3(), reading.Particles0_5(), reading.Particles1(),
					reading.Particles2_5(), reading.Particles5(), reading.Particles10())
			}
		}
		time.Sleep(*cfg.interval)
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
