// Copyright 2026 The go-am2320 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package am2320

import "fmt"

// Phase identifies which of the two bus operations of a measurement failed.
type Phase string

const (
	// PhaseWake is the single-byte write that wakes the sensor.
	PhaseWake Phase = "wake"
	// PhaseRead is the combined command write and response read.
	PhaseRead Phase = "read"
)

// TransportError wraps an error returned by the underlying bus. Phase tells
// whether the wake write or the command read failed, so a caller can
// distinguish a sensor that never woke up from one that garbled the answer.
type TransportError struct {
	Phase Phase
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("am2320: %s transaction failed: %v", e.Phase, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SensorFailedError means the response did not echo the requested function
// code and register count: the sensor did not execute the command. Usual
// causes are a device that was not awake, bus noise or the wrong device
// answering.
type SensorFailedError struct{}

func (e *SensorFailedError) Error() string {
	return "am2320: sensor did not execute the read command"
}

// CRCError means the register payload did not match the checksum in the
// response, indicating corruption in transit.
type CRCError struct{}

func (e *CRCError) Error() string {
	return "am2320: response failed the CRC check"
}
