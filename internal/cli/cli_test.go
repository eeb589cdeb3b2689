// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"

	gauge "github.com/gogpu/gg-gauge"
	"github.com/gogpu/gg-gauge/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logger, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
		gauge.SetLogger(nil)
	})

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "gaugerender vdev"), out)
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gauge.png")
	_, err := execute(t, "render", "--log.level", "none", "-o", path, "--company", "150", "--duration", "1s")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 400, img.Bounds().Dx())
}

func TestRenderWatchNeedsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gauge.png")
	_, err := execute(t, "render", "--log.level", "none", "-o", path, "--watch")
	require.ErrorContains(t, err, "--watch requires --config")
}

func TestAnimate(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "animate", "--log.level", "none",
		"-o", filepath.Join(dir, "sweep.png"),
		"--company", "90", "--industry", "45", "--duration", "100ms")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "sweep.gif"))
	require.NoError(t, err)
	defer f.Close()
	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	require.Len(t, g.Image, 4)
}

func TestAnimateFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	_, err := execute(t, "animate", "--log.level", "none",
		"-o", dir, "-f", "frames", "--settle",
		"--company", "90", "--industry", "45", "--duration", "100ms")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 5)
}

func TestRecord(t *testing.T) {
	out, err := execute(t, "record", "--log.level", "none", "--company", "60", "--industry", "30")
	require.NoError(t, err)

	sc := bufio.NewScanner(strings.NewReader(out))
	var lines []recordLineJSON
	for sc.Scan() {
		var l recordLineJSON
		require.NoError(t, json.Unmarshal(sc.Bytes(), &l))
		lines = append(lines, l)
	}
	require.NotEmpty(t, lines)
	require.Equal(t, "ClearRect", lines[0].Type)
	require.Equal(t, 0, lines[len(lines)-1].Frame)

	strokes := 0
	for _, l := range lines {
		if l.Type == "Stroke" {
			strokes++
		}
	}
	require.Equal(t, 192, strokes)
}

type recordLineJSON struct {
	Frame   int             `json:"frame"`
	Index   int             `json:"index"`
	Type    string          `json:"type"`
	Command json.RawMessage `json:"command"`
}

func TestDefaultConfigRoundTrip(t *testing.T) {
	for _, ext := range []string{"toml", "json", "yaml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config."+ext)
			_, err := execute(t, "defaultconfig", "-c", path)
			require.NoError(t, err)

			conf, meta, err := config.GetConfig(nil, path)
			require.NoError(t, err)
			require.False(t, meta.FileNotFound)
			require.Equal(t, config.Default(), conf)

			_, err = execute(t, "defaultconfig", "-c", path)
			require.ErrorContains(t, err, "already exists")
		})
	}
}

func TestDefaultConfigStdout(t *testing.T) {
	out, err := execute(t, "defaultconfig", "-c", "-")
	require.NoError(t, err)
	require.Contains(t, out, "company_value = 132.1")
	require.Contains(t, out, "[labels]")
}

func TestDefaultConfigUnknownExtension(t *testing.T) {
	_, err := execute(t, "defaultconfig", "-c", filepath.Join(t.TempDir(), "config.ini"))
	require.ErrorContains(t, err, "supported extensions")
}

func TestCheckConfig(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.toml")
	require.NoError(t, os.WriteFile(good, []byte("company = 10\n"), 0o600))
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[output]\nformat = \"webp\"\n"), 0o600))

	out, err := execute(t, "checkconfig", "-c", good)
	require.NoError(t, err)
	require.Contains(t, out, "config is valid")

	_, err = execute(t, "checkconfig", "-c", bad)
	require.ErrorContains(t, err, "unknown output format")

	_, err = execute(t, "checkconfig", "-c", filepath.Join(dir, "missing.toml"))
	require.ErrorContains(t, err, "not found")

	_, err = execute(t, "checkconfig")
	require.Error(t, err)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("company = 10\n"), 0o600))

	var renders atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, path, func() error {
			renders.Add(1)
			return nil
		})
	}()

	// Writes to other files in the directory are ignored.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600)
		_ = os.WriteFile(path, []byte("company = 20\n"), 0o600)
		return renders.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
