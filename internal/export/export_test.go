// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import (
	"bytes"
	"context"
	"image"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	gauge "github.com/gogpu/gg-gauge"
	"github.com/gogpu/gg-gauge/internal/config"
	"github.com/gogpu/gg-gauge/recording"
)

var sweep = gauge.Params{CompanyAngle: 90, IndustryAngle: 45, Duration: 100 * time.Millisecond}

func requireBackground(t *testing.T, img image.Image) {
	t.Helper()
	r, g, b, _ := img.At(10, 390).RGBA()
	require.Equal(t, []uint32{0x1b, 0x22, 0x2d}, []uint32{r >> 8, g >> 8, b >> 8})
}

func TestRecord(t *testing.T) {
	recs, err := Record(400, 400, sweep)
	require.NoError(t, err)
	require.Len(t, recs, 4)
	for _, r := range recs {
		require.Equal(t, 1, r.Count(recording.CmdClearRect))
		require.Equal(t, 400, r.Width())
	}

	recs, err = Record(400, 400, sweep, gauge.WithSettle())
	require.NoError(t, err)
	require.Len(t, recs, 5)
}

func TestRasterize(t *testing.T) {
	recs, err := Record(400, 400, sweep)
	require.NoError(t, err)

	images, err := Rasterize(context.Background(), recs, 2)
	require.NoError(t, err)
	require.Len(t, images, 4)
	for _, img := range images {
		require.Equal(t, image.Rect(0, 0, 400, 400), img.Bounds())
		requireBackground(t, img)
	}
}

func TestRasterizeCanceled(t *testing.T) {
	recs, err := Record(400, 400, sweep)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Rasterize(ctx, recs, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStillFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want StillFormat
		ok   bool
	}{
		{"gauge.png", PNG, true},
		{"gauge", PNG, true},
		{"GAUGE.BMP", BMP, true},
		{"out/gauge.tif", TIFF, true},
		{"gauge.tiff", TIFF, true},
		{"gauge.jpg", PNG, false},
	}
	for _, tt := range tests {
		got, err := StillFormatFromPath(tt.path)
		if !tt.ok {
			require.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		require.Equal(t, tt.want, got, tt.path)
	}
}

func TestEncodeGIF(t *testing.T) {
	frames := []image.Image{
		image.NewRGBA(image.Rect(0, 0, 8, 8)),
		image.NewRGBA(image.Rect(0, 0, 8, 8)),
	}
	var buf bytes.Buffer
	require.NoError(t, EncodeGIF(&buf, frames, 20*time.Millisecond))

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, g.Image, 2)
	require.Equal(t, []int{2, 2}, g.Delay)

	require.Error(t, EncodeGIF(&buf, nil, time.Second))
}

func testConfig(t *testing.T, format, path string) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Company, cfg.Industry = 90, 45
	cfg.Duration = config.Duration(100 * time.Millisecond)
	cfg.Output = config.Output{Path: path, Format: format}
	return cfg
}

func TestRunPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gauge.png")
	n, err := Run(context.Background(), testConfig(t, config.FormatPNG, path), 0)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	requireBackground(t, img)
}

func TestRunBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gauge.bmp")
	_, err := Run(context.Background(), testConfig(t, config.FormatPNG, path), 0)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := bmp.Decode(f)
	require.NoError(t, err)
	requireBackground(t, img)
}

func TestRunGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gauge.gif")
	n, err := Run(context.Background(), testConfig(t, config.FormatGIF, path), 2)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	require.Len(t, g.Image, 4)
}

func TestRunFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	cfg := testConfig(t, config.FormatFrames, dir)
	cfg.Settle = true
	n, err := Run(context.Background(), cfg, 0)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 5)
	require.Equal(t, "frame_0000.png", entries[0].Name())
	require.Equal(t, "frame_0004.png", entries[4].Name())
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()

	cfg := testConfig(t, "webp", filepath.Join(dir, "x"))
	_, err := Run(context.Background(), cfg, 0)
	require.Error(t, err)

	cfg = testConfig(t, config.FormatPNG, filepath.Join(dir, "x.jpg"))
	_, err = Run(context.Background(), cfg, 0)
	require.Error(t, err)

	cfg = testConfig(t, config.FormatGIF, filepath.Join(dir, "x.gif"))
	cfg.Company = 0
	_, err = Run(context.Background(), cfg, 0)
	require.Error(t, err)
}
