// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package block

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/lrstanley/x/charm/columnar"
)

var (
	_ columnar.Item         = (*Block)(nil)
	_ columnar.MinimumSizer = (*Block)(nil)
)

// DefaultTitleStyle is the style applied to block titles when [WithTitleStyle]
// is not provided.
var DefaultTitleStyle = lipgloss.NewStyle().Bold(true)

// Block is a titled block of text. Its content is word-wrapped to the width of
// the column it is placed in, so its height depends on that width.
type Block struct {
	id          string
	title       string
	content     string
	style       lipgloss.Style
	titleStyle  lipgloss.Style
	minWidth    int
	fixedHeight int

	rect columnar.Rect
}

type BlockOption func(*Block)

// WithTitle sets a title, rendered on its own line above the content.
func WithTitle(title string) BlockOption {
	return func(b *Block) {
		b.title = title
	}
}

// WithStyle sets the style wrapping the block (borders, padding, colors). Only
// the frame (border and padding) of the style affects sizing.
func WithStyle(style lipgloss.Style) BlockOption {
	return func(b *Block) {
		b.style = style
	}
}

// WithTitleStyle sets the style of the title line.
func WithTitleStyle(style lipgloss.Style) BlockOption {
	return func(b *Block) {
		b.titleStyle = style
	}
}

// WithMinWidth sets the minimum content width of the block, which also acts
// as its preferred width when the content is narrower.
func WithMinWidth(width int) BlockOption {
	return func(b *Block) {
		b.minWidth = max(0, width)
	}
}

// WithFixedHeight gives the block a fixed height (including its frame), which
// disables height-for-width.
func WithFixedHeight(height int) BlockOption {
	return func(b *Block) {
		b.fixedHeight = max(0, height)
	}
}

// NewBlock creates a new [Block] with the given id and content.
func NewBlock(id, content string, opts ...BlockOption) *Block {
	b := &Block{
		id:         id,
		content:    content,
		style:      lipgloss.NewStyle(),
		titleStyle: DefaultTitleStyle,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ID returns the ID of the block.
func (b *Block) ID() string {
	return b.id
}

// Title returns the title of the block.
func (b *Block) Title() string {
	return b.title
}

// Content returns the unwrapped content of the block.
func (b *Block) Content() string {
	return b.content
}

// SetContent replaces the content of the block. The owning layout must be
// re-run for the change to be reflected in the block geometry.
func (b *Block) SetContent(content string) {
	b.content = content
}

// SetStyle replaces the style wrapping the block. As with content, a change in
// frame size needs another layout pass.
func (b *Block) SetStyle(style lipgloss.Style) {
	b.style = style
}

// Rect returns the rectangle committed by the last layout pass.
func (b *Block) Rect() columnar.Rect {
	return b.rect
}

func (b *Block) frame() (horizontal, vertical int) {
	return b.style.GetHorizontalFrameSize(), b.style.GetVerticalFrameSize()
}

func (b *Block) titleLines() int {
	if b.title == "" {
		return 0
	}
	return 1
}

// PreferredSize implements [columnar.Item].
func (b *Block) PreferredSize() columnar.Size {
	fh, _ := b.frame()
	width := max(b.minWidth, lineWidth(b.content), lineWidth(b.title)) + fh
	if b.fixedHeight > 0 {
		return columnar.Size{Width: width, Height: b.fixedHeight}
	}
	return columnar.Size{Width: width, Height: b.HeightForWidth(width)}
}

// MinimumSize implements [columnar.MinimumSizer]: the minimum content width,
// and room for the title and a single line of content.
func (b *Block) MinimumSize() columnar.Size {
	fh, fv := b.frame()
	return columnar.Size{
		Width:  b.minWidth + fh,
		Height: b.titleLines() + 1 + fv,
	}
}

// HasHeightForWidth implements [columnar.Item].
func (b *Block) HasHeightForWidth() bool {
	return b.fixedHeight == 0
}

// HeightForWidth implements [columnar.Item]. It returns the number of lines
// the wrapped content and title need at width, plus the frame of the style.
func (b *Block) HeightForWidth(width int) int {
	fh, fv := b.frame()
	inner := width - fh
	return b.titleLines() + lineCount(wrap(b.content, inner)) + fv
}

// SetGeometry implements [columnar.Item].
func (b *Block) SetGeometry(r columnar.Rect) {
	b.rect = r
}

// Render renders the block at the size of its committed rectangle. The output
// is exactly Rect().Width cells wide and Rect().Height lines tall.
func (b *Block) Render() string {
	fh, fv := b.frame()
	inner := max(0, b.rect.Width-fh)
	innerHeight := max(0, b.rect.Height-fv)

	var body strings.Builder
	if b.title != "" {
		body.WriteString(b.titleStyle.Render(fit(b.title, inner, 1)))
		if b.content != "" {
			body.WriteByte('\n')
		}
	}
	body.WriteString(wrap(b.content, inner))

	return fit(b.style.Render(fit(body.String(), inner, innerHeight)), b.rect.Width, b.rect.Height)
}
