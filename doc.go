// Copyright 2026 The go-am2320 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package goam2320 is a container for the AM2320 sensor driver and its
// support packages. The driver itself lives in the am2320 package.
package goam2320
