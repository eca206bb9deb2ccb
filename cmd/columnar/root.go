// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lrstanley/x/charm/columnar"
	"github.com/lrstanley/x/charm/columnar/logging"
	"github.com/lrstanley/x/charm/columnar/manifest"
	"github.com/spf13/cobra"
)

// Version is set at build time using ldflags.
var Version = "dev"

const defaultWidth = 80

// flags shared by every sub-command.
type flags struct {
	width   int
	margin  int
	spacing int
	debug   bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:           "columnar",
		Short:         "Pack items into balanced, equal-width columns.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().IntVarP(&f.width, "width", "w", 0, "width to lay out for (default: manifest width, or 80)")
	cmd.PersistentFlags().IntVarP(&f.margin, "margin", "m", 0, "margin around the layout (default: manifest margin)")
	cmd.PersistentFlags().IntVarP(&f.spacing, "spacing", "s", columnar.DefaultSpacing, "gap between items and columns (default: manifest spacing)")
	cmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "log every layout pass to stderr")
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	cmd.AddCommand(newPackCmd(f), newRenderCmd(f))
	return cmd
}

// loadLayout reads the manifest named by path ("-" for stdin), applies any
// flag overrides, and returns the layout along with the width to use.
func loadLayout(cmd *cobra.Command, f *flags, path string) (*columnar.Layout, int, error) {
	var (
		doc *manifest.Document
		err error
	)

	if path == "-" {
		doc, err = manifest.Load(cmd.InOrStdin())
	} else {
		doc, err = manifest.LoadFile(path)
	}
	if err != nil {
		return nil, 0, err
	}

	if cmd.Flags().Changed("margin") {
		if f.margin < 0 {
			return nil, 0, fmt.Errorf("margin must not be negative (got %d)", f.margin)
		}
		doc.Margin = f.margin
	}
	if cmd.Flags().Changed("spacing") {
		doc.Spacing = &f.spacing
	}

	width := doc.Width
	if cmd.Flags().Changed("width") {
		width = f.width
	}
	if width <= 0 {
		width = defaultWidth
	}

	return doc.Build(newLogger(cmd.ErrOrStderr(), f.debug)), width, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := &slog.LevelVar{}
	level.Set(slog.LevelWarn)
	if debug {
		level.Set(slog.LevelDebug)
	}

	return slog.New(logging.NewLevelFloor(
		level,
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
	))
}

func openArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
