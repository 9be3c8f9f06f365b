// Copyright 2026 The go-am2320 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions shared across packages. For example, a
// CRC16 calculation.
package common

// CRC16 calculates the 16-bit CRC of the byte slice parameter and returns
// the calculated value. This is the reflected-polynomial variant used by
// AOSONG sensors and MODBUS devices: initial register 0xffff, mask 0xa001,
// one byte at a time.
func CRC16(bytes []byte) uint16 {
	var crc uint16 = 0xffff
	for _, val := range bytes {
		crc ^= uint16(val)
		for i := 0; i < 8; i++ {
			if (crc & 0x01) == 0x01 {
				crc = crc >> 1
				crc ^= 0xa001
			} else {
				crc = crc >> 1
			}
		}
	}
	return crc
}
