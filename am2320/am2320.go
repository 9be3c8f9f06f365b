// Copyright 2026 The go-am2320 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package am2320 provides a driver for the AOSONG AM2320 Temperature/Humidity
// Sensor. This sensor is a basic, inexpensive i2c sensor with reasonably good
// accuracy for both temperature and humidity.
//
// The driver issues the sensor's "read registers" command and validates the
// echoed function code, the register count and the CRC-16 of the register
// payload before decoding anything. A reading is returned as a Measurement
// value; the Dev also implements physic.SenseEnv for use with the rest of
// the periph ecosystem.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/product-files/3721/AM2320.pdf
package am2320

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"

	"github.com/senselab/go-am2320/common"
)

const (
	// SensorAddress is the fixed bus address of the device, as printed in
	// the datasheet. Some addressing conventions treat 0xb8 as the 8-bit
	// shifted form of 0x5c; the literal is kept as-is here, shift it
	// yourself if your bus wants the other convention.
	SensorAddress uint16 = 0xB8

	// funcReadRegisters is the only command class the sensor understands.
	funcReadRegisters byte = 0x03

	// Register offsets within the measurement block.
	regHumidityHigh    byte = 0x00
	regHumidityLow     byte = 0x01
	regTemperatureHigh byte = 0x02
	regTemperatureLow  byte = 0x03

	measurementRegCount byte = 0x04
)

// frameLen is the response to a 4-register read:
//
// {function code, register count, humidity hi, humidity lo, temperature hi,
// temperature lo, crc hi, crc lo}
const frameLen = 8

// Opts holds the configuration options for the device.
type Opts struct {
	// WakeSettle is how long to pause between the wake write and the read
	// command. The sensor normally answers without any pause, so the
	// default of 0 performs no waiting; the knob exists for boards with
	// slow bus risers.
	WakeSettle time.Duration
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{}

// Dev represents an am2320 temperature/humidity sensor.
type Dev struct {
	d    *i2c.Dev
	opts Opts

	mu   sync.Mutex
	stop chan struct{}
}

// NewI2C returns an object that communicates over I²C to an AM2320
// environmental sensor. The device address is fixed, see SensorAddress.
// opts can be nil.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	return &Dev{d: &i2c.Dev{Bus: b, Addr: SensorAddress}, opts: *opts}, nil
}

// Measure wakes the sensor, reads the four measurement registers and decodes
// them into a Measurement. It performs exactly one attempt: a failing bus
// operation, a response that does not echo the command, or a checksum
// mismatch each abort the call with the corresponding error, and no partial
// value is ever returned. Callers wanting retry-with-backoff compose it by
// calling Measure again.
//
// The sensor samples at 1/2 Hz; polling it more often than once every 3
// seconds returns stale data and self-heats the die.
func (d *Dev) Measure() (Measurement, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.measure()
}

func (d *Dev) measure() (Measurement, error) {
	// The sensor drops off the bus between reads to avoid self-heating.
	// Any write wakes it up; the payload is ignored, only the transport
	// outcome matters.
	if err := d.d.Tx([]byte{0x00}, nil); err != nil {
		return Measurement{}, &TransportError{Phase: PhaseWake, Err: err}
	}
	if d.opts.WakeSettle > 0 {
		time.Sleep(d.opts.WakeSettle)
	}

	cmd := []byte{funcReadRegisters, regHumidityHigh, measurementRegCount}
	var frame [frameLen]byte
	if err := d.d.Tx(cmd, frame[:]); err != nil {
		return Measurement{}, &TransportError{Phase: PhaseRead, Err: err}
	}

	return decode(frame)
}

// decode validates a response frame and converts the register payload.
// Validation short-circuits on the first failure: command echo first, then
// the checksum.
func decode(frame [frameLen]byte) (Measurement, error) {
	if frame[0] != funcReadRegisters || frame[1] != measurementRegCount {
		return Measurement{}, &SensorFailedError{}
	}

	// The checksum covers the four register bytes only and is transmitted
	// big-endian.
	crc := uint16(frame[6])<<8 | uint16(frame[7])
	if crc != common.CRC16(frame[2:6]) {
		return Measurement{}, &CRCError{}
	}

	rawHumidity := uint16(frame[2+regHumidityHigh])<<8 |
		uint16(frame[2+regHumidityLow])
	rawTemperature := uint16(frame[2+regTemperatureHigh])<<8 |
		uint16(frame[2+regTemperatureLow])

	return newMeasurement(rawTemperature, rawHumidity), nil
}

// Sense implements physic.SenseEnv. It queries the sensor once for the
// current temperature and humidity; the pressure is always 0 since the
// AM2320 does not measure pressure.
func (d *Dev) Sense(env *physic.Env) error {
	m, err := d.Measure()
	if err != nil {
		return err
	}

	env.Temperature = physic.ZeroCelsius +
		physic.Temperature(m.Temperature())*(physic.Celsius/10)
	env.Pressure = 0
	env.Humidity = physic.RelativeHumidity(m.Humidity()) * physic.MilliRH
	return nil
}

// SenseContinuous returns a channel that can be read to receive values from
// the sensor every interval. The minimum value for interval is 3 seconds.
// To end the read, call Halt().
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval < 3*time.Second {
		return nil, errors.New("am2320: invalid interval, minimum is 3 seconds")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return nil, errors.New("am2320: sense continuous already running")
	}

	d.stop = make(chan struct{})
	stop := d.stop
	ch := make(chan physic.Env, 16)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				close(ch)
				return
			case <-ticker.C:
				e := physic.Env{}
				if err := d.Sense(&e); err == nil {
					ch <- e
				}
			}
		}
	}()
	return ch, nil
}

// Halt interrupts a running SenseContinuous() operation.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		close(d.stop)
		d.stop = nil
	}
	return nil
}

// Precision returns the resolution of the device for its measured parameters.
func (d *Dev) Precision(env *physic.Env) {
	env.Temperature = physic.Celsius / 10
	env.Pressure = 0
	env.Humidity = physic.MilliRH
}

func (d *Dev) String() string {
	return fmt.Sprintf("am2320: %s", d.d)
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
