// Copyright 2026 The go-am2320 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package am2320_test

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/senselab/go-am2320/am2320"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	d, err := am2320.NewI2C(b, nil) // nil for default options or &am2320.DefaultOpts
	if err != nil {
		log.Fatalf("failed to initialize am2320: %v", err)
	}

	// A raw, validated reading with fixed-point accessors.
	m, err := d.Measure()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.1f°C %.1f%%\n", m.TemperatureCelsius(), m.RelativeHumidity()*100)

	// Or through the physic.SenseEnv interface.
	e := physic.Env{}
	if err := d.Sense(&e); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%8s %9s\n", e.Temperature, e.Humidity)
}
