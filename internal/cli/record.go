// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/gogpu/gg-gauge/internal/config"
	"github.com/gogpu/gg-gauge/internal/export"
	"github.com/gogpu/gg-gauge/recording"
)

// recordLine is one JSON line of the record command output.
type recordLine struct {
	Frame   int               `json:"frame"`
	Index   int               `json:"index"`
	Type    string            `json:"type"`
	Command recording.Command `json:"command"`
}

// RecordCommand prints the drawing commands of every frame as JSON lines.
func RecordCommand(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Print the drawing commands as JSON lines",
		Long:  "Record every frame on a recording canvas and print one JSON object per canvas call",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closeFn, err := load(cmd, *configFile)
			if err != nil {
				return err
			}
			defer closeFn()
			if err := cfg.Validate(); err != nil {
				return err
			}

			recs, err := export.Record(cfg.Width, cfg.Height, cfg.Params(), export.Options(cfg)...)
			if err != nil {
				return err
			}
			return writeRecordings(cmd, recs)
		},
	}
	config.DefineFlags(cmd)
	return cmd
}

func writeRecordings(cmd *cobra.Command, recs []*recording.Recording) error {
	w := bufio.NewWriter(cmd.OutOrStdout())
	enc := json.NewEncoder(w)
	for f, rec := range recs {
		for i, c := range rec.Commands() {
			if err := enc.Encode(recordLine{Frame: f, Index: i, Type: c.Type().String(), Command: c}); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}
