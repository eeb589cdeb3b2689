// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// StillFormat is an encoding for a single frame.
type StillFormat int

const (
	PNG StillFormat = iota
	BMP
	TIFF
)

// StillFormatFromPath picks the encoding from the file extension.
// Paths without an extension are written as PNG.
func StillFormatFromPath(path string) (StillFormat, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "", "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return PNG, fmt.Errorf("extension %q not recognized: want png, bmp or tiff", ext)
}

// EncodeStill writes img to w in format f.
func EncodeStill(w io.Writer, img image.Image, f StillFormat) error {
	switch f {
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return png.Encode(w, img)
	}
}

// EncodeGIF writes frames as a looping animated GIF with delay between
// frames. Colors are reduced to the Plan 9 palette.
func EncodeGIF(w io.Writer, frames []image.Image, delay time.Duration) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	cs := int(delay / (10 * time.Millisecond))
	if cs < 1 {
		cs = 1
	}

	anim := &gif.GIF{}
	for _, f := range frames {
		b := f.Bounds()
		p := image.NewPaletted(b, palette.Plan9)
		draw.Draw(p, b, f, b.Min, draw.Src)
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, cs)
	}
	return gif.EncodeAll(w, anim)
}

// WriteFrames saves frames as frame_0000.png, frame_0001.png, … in dir,
// creating dir if needed.
func WriteFrames(dir string, frames []image.Image) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, f := range frames {
		if err := writeFile(filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i)), func(w io.Writer) error {
			return png.Encode(w, f)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return encode(f)
}
