// Copyright 2026 The go-am2320 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termview implements a small 2D display.Drawer that outputs to
// terminal (stdout) using ANSI color codes.
//
// Useful to preview what a wired display would show, or to run the demo on a
// machine that only has the sensor attached.
package termview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for this display.
type Opts struct {
	// W and H are the framebuffer dimensions in terminal cells.
	W, H    int
	Palette *ansi256.Palette

	_ struct{}
}

// Dev is a character-cell framebuffer emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	bounds  image.Rectangle
	palette ansi256.Palette

	pixels []color.NRGBA
	buf    bytes.Buffer
	shown  bool
}

// New returns a Dev that displays at the console.
//
// Each frame is redrawn in place, so a periodic Draw behaves like a tiny
// monitor.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &Dev{
		w:       colorable.NewColorableStdout(),
		bounds:  image.Rect(0, 0, opts.W, opts.H),
		palette: *p,
		pixels:  make([]color.NRGBA, opts.W*opts.H),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("TermView(%dx%d)", d.bounds.Dx(), d.bounds.Dy())
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the shell prompt is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.bounds
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.bounds)
	srcR := src.Bounds()
	srcR.Min = srcR.Min.Add(sp)
	if dX := r.Dx(); dX < srcR.Dx() {
		srcR.Max.X = srcR.Min.X + dX
	}
	if dY := r.Dy(); dY < srcR.Dy() {
		srcR.Max.Y = srcR.Min.Y + dY
	}
	w := d.bounds.Dx()
	for sY := srcR.Min.Y; sY < srcR.Max.Y; sY++ {
		dY := r.Min.Y + sY - srcR.Min.Y
		for sX := srcR.Min.X; sX < srcR.Max.X; sX++ {
			dX := r.Min.X + sX - srcR.Min.X
			r16, g16, b16, _ := src.At(sX, sY).RGBA()
			d.pixels[dY*w+dX] = color.NRGBA{byte(r16 >> 8), byte(g16 >> 8), byte(b16 >> 8), 255}
		}
	}
	return d.refresh()
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per
	// call.
	d.buf.Reset()
	if d.shown {
		// Move the cursor back to the top of the previous frame.
		fmt.Fprintf(&d.buf, "\033[%dA", d.bounds.Dy())
	}
	w := d.bounds.Dx()
	for y := 0; y < d.bounds.Dy(); y++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		for x := 0; x < w; x++ {
			_, _ = io.WriteString(&d.buf, d.palette.Block(d.pixels[y*w+x]))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.shown = true
	_, err := d.buf.WriteTo(d.w)
	return err
}

// renderTo is like refresh but targets an arbitrary writer without cursor
// movement. Used by tests.
func (d *Dev) renderTo(w io.Writer) error {
	shown, out := d.shown, d.w
	d.shown, d.w = false, w
	err := d.refresh()
	d.shown, d.w = shown, out
	return err
}

// Snapshot returns the current frame as ANSI-colored text, one line per row.
func (d *Dev) Snapshot() string {
	var sb strings.Builder
	_ = d.renderTo(&sb)
	return sb.String()
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
