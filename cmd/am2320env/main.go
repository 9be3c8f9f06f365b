// Copyright 2026 The go-am2320 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// am2320env polls an AM2320 sensor and renders the readings either on an
// SSD1306 OLED on the same bus, or as a small ANSI framebuffer in the
// terminal.
package main

import (
	"flag"
	"image"
	"image/draw"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"github.com/senselab/go-am2320/am2320"
	"github.com/senselab/go-am2320/termview"
)

func main() {
	busName := flag.String("bus", "", "I²C bus to use, empty for the first available")
	interval := flag.Duration("interval", 3*time.Second, "polling interval, minimum 3s")
	oled := flag.Bool("oled", false, "render to an SSD1306 128x64 OLED instead of the terminal")
	flag.Parse()

	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	b, err := i2creg.Open(*busName)
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	var disp display.Drawer
	if *oled {
		opts := ssd1306.DefaultOpts
		dev, err := ssd1306.NewI2C(b, &opts)
		if err != nil {
			log.Fatalf("failed to initialize display: %v", err)
		}
		disp = dev
	} else {
		disp = termview.New(&termview.Opts{W: 48, H: 12})
	}

	sensor, err := am2320.NewI2C(b, nil)
	if err != nil {
		log.Fatalf("failed to initialize am2320: %v", err)
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size: float64(disp.Bounds().Dy()) / 3,
	})

	ch, err := sensor.SenseContinuous(*interval)
	if err != nil {
		log.Fatal(err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-sig:
			_ = sensor.Halt()
			_ = disp.Halt()
			return
		case e := <-ch:
			if err := render(disp, face, e); err != nil {
				log.Printf("render: %v", err)
			}
		}
	}
}

// render paints one reading centered on the display: temperature in the top
// half, humidity in the bottom half.
func render(disp display.Drawer, face font.Face, e physic.Env) error {
	bounds := disp.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(face)
	dc.DrawStringAnchored(e.Temperature.String(), float64(w)/2, float64(h)/4, 0.5, 0.5)
	dc.DrawStringAnchored(e.Humidity.String(), float64(w)/2, 3*float64(h)/4, 0.5, 0.5)

	// SSD1306 wants a 1-bit vertical-LSB image; termview accepts anything.
	img := image1bit.NewVerticalLSB(bounds)
	draw.Draw(img, bounds, dc.Image(), image.Point{}, draw.Src)
	return disp.Draw(bounds, img, image.Point{})
}
