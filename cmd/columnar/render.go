// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"fmt"

	"github.com/lrstanley/x/charm/columnar/render"
	"github.com/spf13/cobra"
)

func newRenderCmd(f *flags) *cobra.Command {
	var (
		height int
		frame  bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the items of a manifest in their packed columns.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, width, err := loadLayout(cmd, f, openArg(args))
			if err != nil {
				return err
			}

			if frame {
				_, err = fmt.Fprint(cmd.OutOrStdout(), render.NewFrame(l, width).String())
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.String(l, width, height))
			return err
		},
	}

	cmd.Flags().IntVar(&height, "height", 0, "cut the output to at most this many lines (0 for no limit)")
	cmd.Flags().BoolVar(&frame, "frame", false, "print the frame structure instead of rendering the items")
	return cmd
}
