// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package columnar

import (
	"math"

	"github.com/lrstanley/x/charm/columnar/internal/pool"
)

var passPool = pool.New(func() *pass { return &pass{} })

// pass holds the scratch state of one packing run. Items are referenced by
// their index in the layout's item list.
type pass struct {
	spacing int
	heights []int   // height per item index, computed once per pass.
	columns [][]int // item indices per column, in placement order.
	colH    []int   // running height per column.
	shoves  int
}

// Reset implements [pool.Resetable].
func (p *pass) Reset() {
	p.spacing = 0
	p.heights = p.heights[:0]
	for i := range p.columns {
		p.columns[i] = p.columns[i][:0]
	}
	p.columns = p.columns[:0]
	p.colH = p.colH[:0]
	p.shoves = 0
}

func (p *pass) init(items []Item, columnCount, columnWidth, spacing int) {
	p.spacing = spacing
	p.heights = pool.Grow(p.heights, len(items))
	for i, item := range items {
		p.heights[i] = itemHeight(item, columnWidth)
	}

	if cap(p.columns) < columnCount {
		p.columns = append(p.columns[:cap(p.columns)], make([][]int, columnCount-cap(p.columns))...)
	}
	p.columns = p.columns[:columnCount]
	for i := range p.columns {
		p.columns[i] = p.columns[i][:0]
	}
	p.colH = pool.Grow(p.colH, columnCount)
}

// candidate returns the height column c would have with an item of height h
// appended to it.
func (p *pass) candidate(c, h int) int {
	if len(p.columns[c]) == 0 {
		return h
	}
	return p.colH[c] + p.spacing + h
}

func (p *pass) maxHeight() int {
	out := 0
	for _, h := range p.colH {
		out = max(out, h)
	}
	return out
}

func (p *pass) add(c, idx int) {
	p.colH[c] = p.candidate(c, p.heights[idx])
	p.columns[c] = append(p.columns[c], idx)
}

// shoveOne moves the first item of column from to the end of column from-1.
func (p *pass) shoveOne(from int) bool {
	if from < 1 || from >= len(p.columns) || len(p.columns[from]) == 0 {
		return false
	}

	idx := p.columns[from][0]
	p.columns[from] = append(p.columns[from][:0], p.columns[from][1:]...)
	if len(p.columns[from]) == 0 {
		p.colH[from] = 0
	} else {
		p.colH[from] -= p.heights[idx] + p.spacing
	}

	p.add(from-1, idx)
	p.shoves++
	return true
}

// cascadeSweep walks the columns left to right, shoving the head of each
// column into its predecessor when that does not push the predecessor above
// the tallest column. The source column always keeps at least one item.
func (p *pass) cascadeSweep() (changed bool) {
	for c := 1; c < len(p.columns); c++ {
		if len(p.columns[c]) < 2 {
			continue
		}
		if p.candidate(c-1, p.heights[p.columns[c][0]]) <= p.maxHeight() {
			changed = p.shoveOne(c) || changed
		}
	}
	return changed
}

// cascade repeats [pass.cascadeSweep] until it settles, reporting whether any
// item moved. Items only ever move left, so this is bounded by the number of
// items times the number of columns.
func (p *pass) cascade() (changed bool) {
	if len(p.columns) < 2 {
		return false
	}
	for p.cascadeSweep() {
		changed = true
	}
	return changed
}

// bestShove returns the column whose head item, moved to the previous column,
// gives that column the smallest height. Ties go to the leftmost column. -1 is
// returned when no column can be shoved.
func (p *pass) bestShove() int {
	best := -1
	bestHeight := math.MaxInt
	for c := 1; c < len(p.columns); c++ {
		if len(p.columns[c]) == 0 {
			continue
		}
		if h := p.candidate(c-1, p.heights[p.columns[c][0]]); h < bestHeight {
			best, bestHeight = c, h
		}
	}
	return best
}

// fill places every item, rebalancing whenever the last column is reached.
func (p *pass) fill(count int) {
	current := 0
	for idx := range count {
		h := p.heights[idx]

		if len(p.columns[current]) > 0 && p.candidate(current, h) > p.maxHeight() {
			current++
			if current >= len(p.columns) {
				current = len(p.columns) - 1
				if current > 0 && !p.cascade() {
					if best := p.bestShove(); best > 0 {
						p.shoveOne(best)
						p.cascade()
					}
				}
			}
		}

		p.add(current, idx)
	}

	p.cascade()
}

// columnGeometry returns the number of columns and the width of each column
// for the available width.
func columnGeometry(available, widest, spacing, count int) (columns, width int) {
	available = max(0, available)

	if denom := widest + spacing; denom == 0 {
		columns = count
	} else {
		columns = floorDiv(available, denom)
	}
	columns = clamp(columns, 1, max(1, count))

	width = max(0, floorDiv(available-(columns-1)*spacing-1, columns))
	return columns, width
}
