// Copyright 2026 The go-am2320 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package am2320

// Measurement is a single validated reading. It is a plain value derived
// entirely from one response frame; it holds no reference to the bus and can
// be copied freely.
type Measurement struct {
	temperature int16
	humidity    uint16
}

func newMeasurement(rawTemperature, rawHumidity uint16) Measurement {
	// The temperature word is sign-magnitude: the top bit flags a negative
	// value and the low 15 bits hold the absolute magnitude. This is not
	// two's-complement, re-interpreting it as such breaks every reading
	// below freezing.
	t := int16(rawTemperature & 0x7FFF)
	if rawTemperature&0x8000 != 0 {
		t = -t
	}
	return Measurement{temperature: t, humidity: rawHumidity}
}

// Temperature returns the integer representation of the temperature.
//
// This is a base 10 fixed point number with 1 digit behind the decimal point.
// The value is in degrees Celsius.
func (m Measurement) Temperature() int16 {
	return m.temperature
}

// TemperatureCelsius returns the temperature as a float32.
//
// The value is in degrees Celsius.
func (m Measurement) TemperatureCelsius() float32 {
	return float32(m.temperature) * 0.1
}

// Humidity returns the integer representation of the humidity.
//
// This is a base 10 fixed point number with 1 digit behind the decimal point.
// The value is Relative Humidity in percent.
func (m Measurement) Humidity() uint16 {
	return m.humidity
}

// RelativeHumidity returns the humidity as a float32.
//
// The value is Relative Humidity in range [0, 1]: the raw word counts tenths
// of a percent, so the scale factor is 0.001, not 0.1.
func (m Measurement) RelativeHumidity() float32 {
	return float32(m.humidity) * 0.001
}
