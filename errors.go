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
)

// Frame validation errors. A Read yields exactly one of a Reading or an
// error; these sentinels distinguish the validation failure classes so
// callers can match them with errors.Is.
var (
	// ErrBadMagic indicates the 0x42 0x4D frame marker was not found
	// within the synchronization window. This usually means a wrong baud
	// rate or a noisy connection to the sensor.
	ErrBadMagic = errors.New("frame start marker not found")

	// ErrUnexpectedLength indicates the frame's declared length field does
	// not match the configured sensor model. This guards against locking
	// onto a false marker that happened to appear inside noise.
	ErrUnexpectedLength = errors.New("frame length does not match sensor model")

	// ErrChecksumMismatch indicates the frame failed its integrity check.
	// Retrying the read will usually clear up the problem.
	ErrChecksumMismatch = errors.New("frame checksum mismatch")
)

// Transport errors. These are always returned wrapped in a *TransportError
// carrying the operation and port context.
var (
	// ErrTransportRead indicates the underlying transport read failed.
	ErrTransportRead = errors.New("transport read failed")

	// ErrTransportTimeout indicates the transport's read deadline expired
	// before the requested bytes arrived.
	ErrTransportTimeout = errors.New("transport read timeout")

	// ErrTransportClosed indicates an operation on a closed transport.
	ErrTransportClosed = errors.New("transport is closed")
)

// ErrorType classifies a transport failure for caller-side policy.
type ErrorType int

const (
	// ErrorTypeNone indicates no classification.
	ErrorTypeNone ErrorType = iota
	// ErrorTypeTimeout indicates a read deadline expired.
	ErrorTypeTimeout
	// ErrorTypeTransient indicates a failure the transport believes may
	// clear on its own.
	ErrorTypeTransient
	// ErrorTypePermanent indicates a failure that will not clear without
	// intervention (closed port, missing bus).
	ErrorTypePermanent
)

// TransportError wraps a transport-layer failure with the operation and
// port it occurred on. The underlying cause is preserved and reachable
// through errors.Is / errors.As.
type TransportError struct {
	Err       error
	Op        string
	Port      string
	Type      ErrorType
	Retryable bool
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s on %s: %v", e.Op, e.Port, e.Err)
}

// Unwrap returns the underlying error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a transport error with explicit classification
func NewTransportError(op, port string, err error, errType ErrorType) *TransportError {
	return &TransportError{
		Op:   op,
		Port: port,
		Err:  err,
		Type: errType,
	}
}

// NewTimeoutError creates a transport error for an expired read deadline.
// Timeouts are not marked retryable: the sensor streams continuously, so a
// timeout means the line is dead rather than momentarily quiet.
func NewTimeoutError(op, port string) *TransportError {
	return &TransportError{
		Op:   op,
		Port: port,
		Err:  ErrTransportTimeout,
		Type: ErrorTypeTimeout,
	}
}

// NewReadError creates a transport error wrapping an underlying I/O failure
func NewReadError(op, port string, cause error) *TransportError {
	return &TransportError{
		Op:   op,
		Port: port,
		Err:  fmt.Errorf("%w: %w", ErrTransportRead, cause),
		Type: ErrorTypePermanent,
	}
}

// IsRetryable reports whether a single retry of the whole read is worth
// attempting. BadMagic and ChecksumMismatch reflect transient line noise
// and empirically succeed on a second attempt; transport errors are only
// retryable if the transport itself marked them so.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Retryable
	}
	return errors.Is(err, ErrBadMagic) || errors.Is(err, ErrChecksumMismatch)
}

// GetErrorType returns the classification of an error
func GetErrorType(err error) ErrorType {
	if err == nil {
		return ErrorTypeNone
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Type
	}
	if errors.Is(err, ErrBadMagic) || errors.Is(err, ErrChecksumMismatch) {
		return ErrorTypeTransient
	}
	return ErrorTypeNone
}
