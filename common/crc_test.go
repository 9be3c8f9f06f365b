// Copyright 2026 The go-am2320 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import "testing"

func TestCRC16(t *testing.T) {
	var tests = []struct {
		bytes  []byte
		result uint16
	}{
		// All-zero payload, the fixed regression vector.
		{bytes: []byte{0x00, 0x00, 0x00, 0x00}, result: 0x2400},
		// +40.0°C / 40.0%RH register block.
		{bytes: []byte{0x01, 0x90, 0x01, 0x90}, result: 0x0900},
		// 51.2%RH / +40.0°C.
		{bytes: []byte{0x02, 0x00, 0x01, 0x90}, result: 0x6000},
		// 34.8%RH / 23.9°C, captured from a live sensor.
		{bytes: []byte{0x01, 0x5c, 0x00, 0xef}, result: 0x4680},
		// 50.0%RH / 25.0°C, the datasheet's worked example payload.
		{bytes: []byte{0x01, 0xf4, 0x00, 0xfa}, result: 0x69c0},
	}
	for _, test := range tests {
		res := CRC16(test.bytes)
		if res != test.result {
			t.Errorf("CRC16(%#v)!=%#04x received %#04x", test.bytes, test.result, res)
		}
	}
}

func TestCRC16Corruption(t *testing.T) {
	payload := []byte{0x01, 0x5c, 0x00, 0xef}
	want := CRC16(payload)
	for i := range payload {
		payload[i] ^= 0xff
		if CRC16(payload) == want {
			t.Errorf("corrupting byte %d went undetected", i)
		}
		payload[i] ^= 0xff
	}
}
