// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package render

import (
	"fmt"
	"image"
	"strings"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/lrstanley/x/charm/columnar"
)

var _ uv.Drawable = (*Frame)(nil)

// Renderer is implemented by items which can render themselves at the size of
// their committed rectangle.
type Renderer interface {
	Render() string
}

// Identifier is implemented by items which can be hit tested.
type Identifier interface {
	ID() string
}

// Frame is the committed result of a layout pass, ready to be rendered.
type Frame struct {
	width   int
	spacing int
	margin  int
	result  columnar.Result
}

// NewFrame commits a pass of l for width, anchored at (0, 0), and returns the
// resulting frame.
func NewFrame(l *columnar.Layout, width int) *Frame {
	return &Frame{
		width:   max(0, width),
		spacing: l.Spacing(),
		margin:  l.Margin(),
		result:  l.SetGeometry(columnar.NewRect(0, 0, width, 0)),
	}
}

// Result returns the underlying layout pass result.
func (f *Frame) Result() columnar.Result {
	return f.result
}

// Width returns the width the frame was laid out for.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the total height of the frame, including margins.
func (f *Frame) Height() int {
	return f.result.Height
}

// Bounds returns the bounds of the frame as an [image.Rectangle].
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.result.Height)
}

// Hit returns the ID of the item at (x, y), or an empty string if there is no
// identifiable item at that point. When items overlap (negative spacing), the
// item placed last wins.
func (f *Frame) Hit(x, y int) string {
	for i := len(f.result.Placements) - 1; i >= 0; i-- {
		p := f.result.Placements[i]
		if !p.Rect.Contains(x, y) {
			continue
		}
		if v, ok := p.Item.(Identifier); ok && v.ID() != "" {
			return v.ID()
		}
	}
	return ""
}

// Draw implements [uv.Drawable], drawing the rendered frame onto scr.
func (f *Frame) Draw(scr uv.Screen, area image.Rectangle) {
	if bounds := f.Bounds(); bounds.Overlaps(area) {
		uv.NewStyledString(f.Render()).Draw(scr, area.Intersect(bounds))
	}
}

// String returns a debug-friendly representation of the frame, one line per
// column and one indented line per item. This does not render the items, use
// [Frame.Render] for that.
func (f *Frame) String() string {
	var sb strings.Builder

	fmt.Fprintf(
		&sb,
		"Frame(w:%d, h:%d, columns:%d, column_width:%d, shoves:%d)\n",
		f.width, f.result.Height, f.result.ColumnCount, f.result.ColumnWidth, f.result.Shoves,
	)

	for _, col := range f.result.Columns {
		fmt.Fprintf(&sb, "  Column(index:%d, x:%d, h:%d, items:%d)\n", col.Index, col.X, col.Height, len(col.Items))
	}

	for _, p := range f.result.Placements {
		var id string
		if v, ok := p.Item.(Identifier); ok {
			id = v.ID()
		}
		fmt.Fprintf(
			&sb,
			"    Item(id:%q, column:%d, x:%d, y:%d, w:%d, h:%d)\n",
			id, p.Column, p.Rect.X, p.Rect.Y, p.Rect.Width, p.Rect.Height,
		)
	}

	return sb.String()
}
