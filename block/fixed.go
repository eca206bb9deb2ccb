// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package block

import (
	"charm.land/lipgloss/v2"
	"github.com/lrstanley/x/charm/columnar"
)

var _ columnar.Item = (*Fixed)(nil)

// Fixed is an item with a fixed preferred size. Its height does not depend on
// the width it is given.
type Fixed struct {
	id    string
	size  columnar.Size
	style lipgloss.Style
	label string

	rect columnar.Rect
}

// NewFixed creates a new [Fixed] item with the given id and size.
func NewFixed(id string, width, height int) *Fixed {
	return &Fixed{
		id:    id,
		size:  columnar.Size{Width: max(0, width), Height: max(0, height)},
		style: lipgloss.NewStyle(),
		label: id,
	}
}

// Style sets the style used when rendering the item.
func (f *Fixed) Style(style lipgloss.Style) *Fixed {
	f.style = style
	return f
}

// Label sets the text rendered inside the item. Defaults to the id.
func (f *Fixed) Label(label string) *Fixed {
	f.label = label
	return f
}

// ID returns the ID of the item.
func (f *Fixed) ID() string {
	return f.id
}

// Rect returns the rectangle committed by the last layout pass.
func (f *Fixed) Rect() columnar.Rect {
	return f.rect
}

// PreferredSize implements [columnar.Item].
func (f *Fixed) PreferredSize() columnar.Size {
	return f.size
}

// HasHeightForWidth implements [columnar.Item].
func (f *Fixed) HasHeightForWidth() bool {
	return false
}

// HeightForWidth implements [columnar.Item].
func (f *Fixed) HeightForWidth(_ int) int {
	return f.size.Height
}

// SetGeometry implements [columnar.Item].
func (f *Fixed) SetGeometry(r columnar.Rect) {
	f.rect = r
}

// Render renders the label inside the style, at the size of the committed
// rectangle.
func (f *Fixed) Render() string {
	fh, fv := f.style.GetHorizontalFrameSize(), f.style.GetVerticalFrameSize()
	inner := fit(f.label, max(0, f.rect.Width-fh), max(0, f.rect.Height-fv))
	return fit(f.style.Render(inner), f.rect.Width, f.rect.Height)
}
