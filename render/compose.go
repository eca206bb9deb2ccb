// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package render

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/lrstanley/x/charm/columnar"
	"github.com/lrstanley/x/charm/columnar/block"
)

// Render composes every item of the frame into a single string, exactly
// [Frame.Width] cells wide and [Frame.Height] lines tall. Items which do not
// implement [Renderer] are rendered as blank space. Negative spacing is drawn
// as no spacing.
func (f *Frame) Render() string {
	if f.width == 0 || f.result.Height == 0 {
		return ""
	}

	gap := max(0, f.spacing)
	inner := max(0, f.result.Height-2*f.margin)

	columns := make([]string, 0, 2*len(f.result.Columns))
	for i := range f.result.Columns {
		if i > 0 && gap > 0 {
			columns = append(columns, blank(gap, inner))
		}
		columns = append(columns, f.renderColumn(i, inner))
	}

	out := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	if f.margin > 0 {
		out = lipgloss.NewStyle().Padding(f.margin).Render(out)
	}

	return block.Fit(out, f.width, f.result.Height)
}

// renderColumn stacks the items of column c at their committed offsets, and
// fits the result to the column width and height.
func (f *Frame) renderColumn(c, height int) string {
	width := f.result.ColumnWidth

	var parts []string
	y := 0
	for _, p := range f.result.Placements {
		if p.Column != c || p.Rect.Height <= 0 {
			continue
		}

		if offset := p.Rect.Y - f.margin; offset > y {
			parts = append(parts, blank(width, offset-y))
			y = offset
		}

		content := blank(width, p.Rect.Height)
		if r, ok := p.Item.(Renderer); ok {
			content = block.Fit(r.Render(), width, p.Rect.Height)
		}
		parts = append(parts, content)
		y += p.Rect.Height
	}

	return block.Fit(lipgloss.JoinVertical(lipgloss.Left, parts...), width, height)
}

func blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	return strings.TrimSuffix(strings.Repeat(line+"\n", height), "\n")
}

// String lays out l for width and returns the rendered result. When height is
// positive, the output is cut to at most height lines.
func String(l *columnar.Layout, width, height int) string {
	if l == nil || width <= 0 {
		return ""
	}
	return clip(NewFrame(l, width).Render(), height)
}

// clip cuts s to at most height lines. Non-positive heights leave s as-is.
func clip(s string, height int) string {
	if height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= height {
		return s
	}
	return strings.Join(lines[:height], "\n")
}
