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
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestIsRetryable(t *testing.T) {
	t.Parallel()
	tests := getIsRetryableTestCases()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := IsRetryable(tt.err)
			if got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func getIsRetryableTestCases() []struct {
	err  error
	name string
	want bool
} {
	return []struct {
		err  error
		name string
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "bad magic retryable",
			err:  ErrBadMagic,
			want: true,
		},
		{
			name: "checksum mismatch retryable",
			err:  ErrChecksumMismatch,
			want: true,
		},
		{
			name: "wrapped checksum mismatch retryable",
			err:  fmt.Errorf("%w: computed 0042, frame carries FFFF", ErrChecksumMismatch),
			want: true,
		},
		{
			name: "unexpected length not retryable",
			err:  ErrUnexpectedLength,
			want: false,
		},
		{
			name: "transport timeout not retryable",
			err:  NewTimeoutError("ReadFull", "/dev/ttyUSB0"),
			want: false,
		},
		{
			name: "transport read error not retryable",
			err:  NewReadError("ReadFull", "/dev/ttyUSB0", errors.New("device unplugged")),
			want: false,
		},
		{
			name: "transport error honors its own flag",
			err: &TransportError{
				Op: "ReadFull", Port: "mock",
				Err:       ErrTransportRead,
				Type:      ErrorTypeTransient,
				Retryable: true,
			},
			want: true,
		},
		{
			name: "string-matched sentinel text not retryable",
			err:  errors.New("outer: " + ErrChecksumMismatch.Error()),
			want: false,
		},
	}
}

func TestGetErrorType(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		name string
		want ErrorType
	}{
		{
			name: "nil error",
			err:  nil,
			want: ErrorTypeNone,
		},
		{
			name: "timeout error",
			err:  NewTimeoutError("ReadFull", "mock"),
			want: ErrorTypeTimeout,
		},
		{
			name: "read error",
			err:  NewReadError("ReadFull", "mock", errors.New("boom")),
			want: ErrorTypePermanent,
		},
		{
			name: "bad magic is transient",
			err:  ErrBadMagic,
			want: ErrorTypeTransient,
		},
		{
			name: "checksum mismatch is transient",
			err:  fmt.Errorf("%w: details", ErrChecksumMismatch),
			want: ErrorTypeTransient,
		},
		{
			name: "unclassified error",
			err:  errors.New("something else"),
			want: ErrorTypeNone,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := GetErrorType(tt.err); got != tt.want {
				t.Errorf("GetErrorType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransportError(t *testing.T) {
	t.Parallel()

	cause := errors.New("bus glitch")
	err := NewReadError("ReadFull", "/dev/i2c-1", cause)

	if !errors.Is(err, ErrTransportRead) {
		t.Error("expected errors.Is(err, ErrTransportRead) to hold")
	}
	if !errors.Is(err, cause) {
		t.Error("expected the underlying cause to be preserved")
	}

	msg := err.Error()
	if !strings.Contains(msg, "ReadFull") || !strings.Contains(msg, "/dev/i2c-1") {
		t.Errorf("error message missing op/port context: %q", msg)
	}
	if !strings.Contains(msg, "bus glitch") {
		t.Errorf("error message missing cause: %q", msg)
	}

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatal("expected errors.As to find *TransportError")
	}
	if te.Op != "ReadFull" || te.Port != "/dev/i2c-1" {
		t.Errorf("unexpected op/port: %s/%s", te.Op, te.Port)
	}
}

func TestTimeoutErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := NewTimeoutError("ReadFull", "mock")
	if !errors.Is(err, ErrTransportTimeout) {
		t.Error("expected timeout errors to match ErrTransportTimeout")
	}
	if errors.Is(err, ErrBadMagic) || errors.Is(err, ErrChecksumMismatch) {
		t.Error("timeout must not be mistaken for a validation error")
	}
}
