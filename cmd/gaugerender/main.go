// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command gaugerender draws the ROE gauge to image files.
//
// Usage:
//
//	gaugerender render -o gauge.png --company 120 --industry 45
//	gaugerender animate -o sweep.gif --duration 1s
//	gaugerender record --company 60 > commands.jsonl
//	gaugerender defaultconfig -c config.toml
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/gg-gauge/internal/cli"
)

var version = "dev"

func main() {
	cli.Version = version
	if err := cli.Root().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
