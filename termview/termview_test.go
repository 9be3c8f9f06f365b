// Copyright 2026 The go-am2320 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package termview

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"
)

func TestBasic(t *testing.T) {
	d := New(&Opts{W: 8, H: 2})
	if got := d.Bounds(); got != image.Rect(0, 0, 8, 2) {
		t.Errorf("unexpected bounds %v", got)
	}
	if d.ColorModel() != color.NRGBAModel {
		t.Error("unexpected color model")
	}
	if s := d.String(); !strings.Contains(s, "8x2") {
		t.Errorf("String() = %q, expected the dimensions", s)
	}
}

func TestDraw(t *testing.T) {
	d := New(&Opts{W: 4, H: 2})
	var out bytes.Buffer
	d.w = &out

	img := image.NewNRGBA(d.Bounds())
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
	if err := d.Draw(d.Bounds(), img, image.Point{}); err != nil {
		t.Fatal(err)
	}

	// One terminal line per framebuffer row.
	if got := strings.Count(out.String(), "\n"); got != 2 {
		t.Errorf("expected 2 rows, got %d", got)
	}

	// The second frame repositions the cursor instead of scrolling.
	out.Reset()
	if err := d.Draw(d.Bounds(), img, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "\033[2A") {
		t.Error("expected the second frame to move the cursor up")
	}
}

func TestSnapshot(t *testing.T) {
	d := New(&Opts{W: 2, H: 1})
	d.w = &bytes.Buffer{}

	img := image.NewNRGBA(d.Bounds())
	img.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	if err := d.Draw(d.Bounds(), img, image.Point{}); err != nil {
		t.Fatal(err)
	}

	snap := d.Snapshot()
	if snap == "" {
		t.Fatal("empty snapshot")
	}
	if strings.HasPrefix(snap, "\033[1A") {
		t.Error("snapshot must not move the cursor")
	}
}
