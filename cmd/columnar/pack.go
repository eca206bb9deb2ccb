// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/lrstanley/x/charm/columnar"
	"github.com/lrstanley/x/charm/columnar/internal/format"
	"github.com/spf13/cobra"
)

type placementOutput struct {
	ID     string `json:"id"     yaml:"id"`
	Column int    `json:"column" yaml:"column"`
	X      int    `json:"x"      yaml:"x"`
	Y      int    `json:"y"      yaml:"y"`
	Width  int    `json:"width"  yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

type packOutput struct {
	Width       int               `json:"width"        yaml:"width"`
	Height      int               `json:"height"       yaml:"height"`
	Columns     int               `json:"columns"      yaml:"columns"`
	ColumnWidth int               `json:"column_width" yaml:"column_width"`
	Shoves      int               `json:"shoves"       yaml:"shoves"`
	Placements  []placementOutput `json:"placements"   yaml:"placements"`
}

func newPackOutput(width int, res columnar.Result) packOutput {
	out := packOutput{
		Width:       width,
		Height:      res.Height,
		Columns:     res.ColumnCount,
		ColumnWidth: res.ColumnWidth,
		Shoves:      res.Shoves,
		Placements:  make([]placementOutput, 0, len(res.Placements)),
	}

	for _, p := range res.Placements {
		out.Placements = append(out.Placements, placementOutput{
			ID:     itemID(p.Item),
			Column: p.Column,
			X:      p.Rect.X,
			Y:      p.Rect.Y,
			Width:  p.Rect.Width,
			Height: p.Rect.Height,
		})
	}
	return out
}

func itemID(item columnar.Item) string {
	if v, ok := item.(interface{ ID() string }); ok {
		return v.ID()
	}
	return ""
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func (o packOutput) table() string {
	rows := make([][]string, 0, len(o.Placements))
	for _, p := range o.Placements {
		rows = append(rows, []string{
			format.Trunc(p.ID, 24),
			strconv.Itoa(p.Column),
			strconv.Itoa(p.X),
			strconv.Itoa(p.Y),
			strconv.Itoa(p.Width),
			strconv.Itoa(p.Height),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("ID", "COLUMN", "X", "Y", "WIDTH", "HEIGHT").
		Rows(rows...)

	var sb strings.Builder
	fmt.Fprintf(
		&sb,
		"width: %d, height: %d, columns: %d, column width: %d, shoves: %d\n",
		o.Width, o.Height, o.Columns, o.ColumnWidth, o.Shoves,
	)
	sb.WriteString(t.String())
	return sb.String()
}

func newPackCmd(f *flags) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "pack [file]",
		Short: "Pack a manifest and print the placement of every item.",
		Long: "Pack a manifest and print the placement of every item. The manifest is read " +
			"from stdin when no file (or \"-\") is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fm, err := format.ParseFormat(formatFlag)
			if err != nil {
				return err
			}

			l, width, err := loadLayout(cmd, f, openArg(args))
			if err != nil {
				return err
			}

			out := newPackOutput(width, l.SetGeometry(columnar.NewRect(0, 0, width, 0)))

			var s string
			switch fm {
			case format.FormatJSON:
				s, err = format.ToJSON(out, 2)
			case format.FormatYAML:
				s, err = format.ToYAML(out, 2)
			default:
				s = out.table()
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}

	cmd.Flags().StringVarP(
		&formatFlag, "format", "o", string(format.FormatTable),
		fmt.Sprintf("output format, one of: %v", format.Formats),
	)
	return cmd
}
