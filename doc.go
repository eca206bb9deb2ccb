// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package columnar implements a height-for-width flow layout that packs items
// into a number of equal-width columns, keeping the columns close to the same
// height.
//
// The number of columns is derived from the available width and the widest
// item. Items are then filled into columns greedily, and items are "shoved"
// from the head of one column to the tail of the previous one whenever that
// reduces imbalance. The same pass answers both [Layout.HeightForWidth] (which
// never touches items) and [Layout.SetGeometry] (which commits a rectangle to
// every item), so the height reported for a width always matches the height
// that is actually produced for it.
//
// A [Layout] is not safe for concurrent use. Item size queries must not call
// back into the layout.
package columnar
