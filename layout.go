// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package columnar

import (
	"context"
	"iter"
	"log/slog"
	"slices"

	"github.com/lrstanley/x/charm/columnar/logging"
)

// Column is one column of a completed pass.
type Column struct {
	// Index is the position of the column, from the left.
	Index int
	// X is the x-offset of the column, relative to the packed area.
	X int
	// Items are the items in the column, top to bottom.
	Items []Item
	// Height is the sum of the item heights plus the spacing between them.
	Height int
}

// Placement is the rectangle assigned to an item by a pass.
type Placement struct {
	Item   Item
	Column int
	Rect   Rect
}

// Result describes the outcome of a single layout pass.
type Result struct {
	ColumnCount int
	ColumnWidth int
	// Height is the total height needed, including margins. It is zero when
	// the layout has no items.
	Height     int
	Columns    []Column
	Placements []Placement
	// Shoves is the number of items that were moved between columns while
	// balancing.
	Shoves int
}

// Layout packs items into balanced, equal-width columns. The zero value is not
// usable; use [New].
type Layout struct {
	items    []Item
	margin   int
	spacing  int
	logger   *slog.Logger
	geometry Rect
}

// New creates a new [Layout] with the provided options.
func New(opts ...Option) *Layout {
	l := &Layout{
		margin:  DefaultMargin,
		spacing: DefaultSpacing,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.New(logging.NewDiscard())
	}
	return l
}

// AddItem appends an item to the layout. Nil items are ignored.
func (l *Layout) AddItem(item Item) {
	if item == nil {
		return
	}
	l.items = append(l.items, item)
}

// TakeItem removes and returns the item at index, or nil if index is out of
// range.
func (l *Layout) TakeItem(index int) Item {
	if index < 0 || index >= len(l.items) {
		return nil
	}
	item := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)
	return item
}

// RemoveItem is an alias of [Layout.TakeItem].
func (l *Layout) RemoveItem(index int) Item {
	return l.TakeItem(index)
}

// ItemCount returns the number of items in the layout.
func (l *Layout) ItemCount() int {
	return len(l.items)
}

// ItemAt returns the item at index, or nil if index is out of range.
func (l *Layout) ItemAt(index int) Item {
	if index < 0 || index >= len(l.items) {
		return nil
	}
	return l.items[index]
}

// Items iterates over the items in list order.
func (l *Layout) Items() iter.Seq2[int, Item] {
	return func(yield func(int, Item) bool) {
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Margin returns the margin applied to all four sides.
func (l *Layout) Margin() int {
	return l.margin
}

// SetMargin sets the margin applied to all four sides.
func (l *Layout) SetMargin(margin int) {
	l.margin = margin
}

// Spacing returns the gap between items and between columns.
func (l *Layout) Spacing() int {
	return l.spacing
}

// SetSpacing sets the gap between items and between columns.
func (l *Layout) SetSpacing(spacing int) {
	l.spacing = spacing
}

// HasHeightForWidth always returns true: the height of the layout depends on
// the width it is given.
func (l *Layout) HasHeightForWidth() bool {
	return true
}

// MinimumSize returns the smallest box containing the minimum size of every
// item, expanded by the margins.
func (l *Layout) MinimumSize() Size {
	var size Size
	for _, item := range l.items {
		ms := minimumSize(item)
		size.Width = max(size.Width, ms.Width)
		size.Height = max(size.Height, ms.Height)
	}
	size.Width += 2 * l.margin
	size.Height += 2 * l.margin
	return size
}

// SizeHint returns the size the layout prefers: a single column as wide as
// the widest item, and the height needed for that width.
func (l *Layout) SizeHint() Size {
	widest := 0
	for _, item := range l.items {
		widest = max(widest, item.PreferredSize().Width)
	}
	width := widest + 2*l.margin
	return Size{Width: width, Height: l.HeightForWidth(width)}
}

// HeightForWidth returns the height the layout needs when it is given width.
// No item is modified.
func (l *Layout) HeightForWidth(width int) int {
	return l.doLayout(NewRect(0, 0, width, 0), true).Height
}

// Pack runs a pass for width without committing anything to the items, and
// returns the full result, with placements anchored at (0, 0).
func (l *Layout) Pack(width int) Result {
	return l.doLayout(NewRect(0, 0, width, 0), true)
}

// SetGeometry packs the items into r.Width and commits the resulting
// rectangle to every item, anchored at r.X and r.Y. The height of r is
// ignored.
func (l *Layout) SetGeometry(r Rect) Result {
	l.geometry = r
	return l.doLayout(r, false)
}

// Geometry returns the rectangle last passed to [Layout.SetGeometry].
func (l *Layout) Geometry() Rect {
	return l.geometry
}

func (l *Layout) doLayout(r Rect, testOnly bool) Result {
	available := max(0, max(0, r.Width)-2*l.margin)

	widest := 0
	for _, item := range l.items {
		widest = max(widest, item.PreferredSize().Width)
	}

	columnCount, columnWidth := columnGeometry(available, widest, l.spacing, len(l.items))

	p := passPool.Get()
	defer passPool.Put(p)

	p.init(l.items, columnCount, columnWidth, l.spacing)
	p.fill(len(l.items))

	res := Result{
		ColumnCount: columnCount,
		ColumnWidth: columnWidth,
		Columns:     make([]Column, columnCount),
		Placements:  make([]Placement, 0, len(l.items)),
		Shoves:      p.shoves,
	}

	originX, originY := r.X+l.margin, r.Y+l.margin
	if testOnly {
		originX, originY = l.margin, l.margin
	}

	for c, indices := range p.columns {
		col := Column{
			Index:  c,
			X:      c * (columnWidth + l.spacing),
			Items:  make([]Item, 0, len(indices)),
			Height: p.colH[c],
		}

		y := 0
		for _, idx := range indices {
			item := l.items[idx]
			rect := NewRect(originX+col.X, originY+y, columnWidth, p.heights[idx])

			col.Items = append(col.Items, item)
			res.Placements = append(res.Placements, Placement{Item: item, Column: c, Rect: rect})
			y += p.heights[idx] + l.spacing

			if !testOnly {
				item.SetGeometry(rect)
			}
		}

		res.Columns[c] = col
		res.Height = max(res.Height, col.Height)
	}

	if len(l.items) > 0 {
		res.Height += 2 * l.margin
	}

	if l.logger.Enabled(context.Background(), slog.LevelDebug) {
		l.logger.Debug( //nolint:sloglint
			"layout pass",
			"test_only", testOnly,
			"items", len(l.items),
			"width", r.Width,
			"columns", columnCount,
			"column_width", columnWidth,
			"height", res.Height,
			"shoves", p.shoves,
		)
	}

	return res
}
