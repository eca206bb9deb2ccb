// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package columnar

// Item is anything that can be placed by a [Layout].
type Item interface {
	// PreferredSize returns the natural size of the item. The width drives the
	// number of columns; the height is used when the item has no
	// height-for-width.
	PreferredSize() Size

	// HasHeightForWidth reports whether the height of the item depends on the
	// width it is given.
	HasHeightForWidth() bool

	// HeightForWidth returns the height the item needs when it is given width.
	// It is only called when HasHeightForWidth returns true, and must not call
	// back into the layout.
	HeightForWidth(width int) int

	// SetGeometry is called once per committed pass with the item's final
	// rectangle.
	SetGeometry(r Rect)
}

// MinimumSizer can be implemented by an [Item] to report a minimum size that
// differs from its preferred size.
type MinimumSizer interface {
	MinimumSize() Size
}

// minimumSize returns the minimum size of the item, falling back to the
// preferred size.
func minimumSize(item Item) Size {
	if v, ok := item.(MinimumSizer); ok {
		return v.MinimumSize()
	}
	return item.PreferredSize()
}

// itemHeight returns the height of the item for the given column width.
// Negative heights are treated as zero.
func itemHeight(item Item, width int) int {
	if item.HasHeightForWidth() {
		return max(0, item.HeightForWidth(width))
	}
	return max(0, item.PreferredSize().Height)
}
