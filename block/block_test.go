// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package block

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/lrstanley/x/charm/columnar"
)

var fitTests = []struct {
	name     string
	input    string
	width    int
	height   int
	expected string
}{
	{
		name:     "pads short lines",
		input:    "ab",
		width:    4,
		height:   1,
		expected: "ab  ",
	},
	{
		name:     "truncates long lines",
		input:    "hello\nworld!",
		width:    5,
		height:   2,
		expected: "hello\nworld",
	},
	{
		name:     "adds missing lines",
		input:    "x",
		width:    2,
		height:   3,
		expected: "x \n  \n  ",
	},
	{
		name:     "drops extra lines",
		input:    "a\nb\nc",
		width:    1,
		height:   2,
		expected: "a\nb",
	},
	{
		name:     "zero height",
		input:    "a",
		width:    3,
		height:   0,
		expected: "",
	},
	{
		name:     "empty input",
		input:    "",
		width:    2,
		height:   1,
		expected: "  ",
	},
}

func TestFit(t *testing.T) {
	t.Parallel()

	for _, tt := range fitTests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Fit(tt.input, tt.width, tt.height); got != tt.expected {
				t.Errorf("Fit(%q, %d, %d) = %q, want %q", tt.input, tt.width, tt.height, got, tt.expected)
			}
		})
	}
}

func TestLineWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"a\nabcd\nab", 4},
		{"日本", 4},
		{"\x1b[1mbold\x1b[m", 4},
	}

	for _, tt := range tests {
		if got := lineWidth(tt.input); got != tt.want {
			t.Errorf("lineWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestBlockSizing(t *testing.T) {
	t.Parallel()

	b := NewBlock("units", "aaa bbb ccc", WithTitle("Units"))

	if got := b.PreferredSize(); got.Width != 11 || got.Height != 2 {
		t.Fatalf("PreferredSize() = %v, want 11x2", got)
	}
	if !b.HasHeightForWidth() {
		t.Fatal("expected height-for-width")
	}
	if got := b.HeightForWidth(5); got != 4 {
		t.Fatalf("HeightForWidth(5) = %d, want 4", got)
	}
	if got := b.HeightForWidth(0); got != 1+lineCount(wrap("aaa bbb ccc", 1)) {
		t.Fatalf("HeightForWidth(0) = %d, expected wrapping at width 1", got)
	}

	bordered := NewBlock("units", "aaa bbb ccc", WithTitle("Units"), WithStyle(lipgloss.NewStyle().Border(lipgloss.NormalBorder())))
	if got := bordered.HeightForWidth(7); got != 6 {
		t.Fatalf("bordered HeightForWidth(7) = %d, want 6", got)
	}
	if got := bordered.PreferredSize().Width; got != 13 {
		t.Fatalf("bordered preferred width = %d, want 13", got)
	}
	if got := bordered.MinimumSize(); got.Width != 2 || got.Height != 4 {
		t.Fatalf("bordered MinimumSize() = %v, want 2x4", got)
	}
}

func TestBlockSetStyle(t *testing.T) {
	t.Parallel()

	b := NewBlock("units", "aaa bbb ccc", WithTitle("Units"))
	if got := b.HeightForWidth(7); got != 3 {
		t.Fatalf("HeightForWidth(7) = %d, want 3", got)
	}

	b.SetStyle(lipgloss.NewStyle().Border(lipgloss.NormalBorder()))
	if got := b.HeightForWidth(7); got != 6 {
		t.Fatalf("HeightForWidth(7) after SetStyle = %d, want 6", got)
	}
}

func TestBlockFixedHeight(t *testing.T) {
	t.Parallel()

	b := NewBlock("fixed", "one two three", WithFixedHeight(3), WithMinWidth(20))
	if b.HasHeightForWidth() {
		t.Fatal("expected fixed height block to not have height-for-width")
	}
	if got := b.PreferredSize(); got.Width != 20 || got.Height != 3 {
		t.Fatalf("PreferredSize() = %v, want 20x3", got)
	}
}

func TestBlockRender(t *testing.T) {
	t.Parallel()

	b := NewBlock(
		"grid",
		"snap to grid enabled",
		WithTitle("Grid"),
		WithStyle(lipgloss.NewStyle().Border(lipgloss.RoundedBorder())),
	)
	b.SetGeometry(columnar.NewRect(0, 0, 12, b.HeightForWidth(12)))

	out := ansi.Strip(b.Render())
	lines := strings.Split(out, "\n")
	if len(lines) != b.Rect().Height {
		t.Fatalf("expected %d lines, got %d:\n%s", b.Rect().Height, len(lines), out)
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 12 {
			t.Fatalf("line %d is %d wide, want 12: %q", i, w, line)
		}
	}
	if !strings.Contains(out, "Grid") || !strings.Contains(out, "snap") {
		t.Fatalf("expected title and content in output:\n%s", out)
	}
}

func TestBlockInLayout(t *testing.T) {
	t.Parallel()

	short := NewBlock("short", "one", WithMinWidth(10))
	long := NewBlock("long", "lorem ipsum\ndolor sit amet\nconsectetur", WithMinWidth(10))
	l := columnar.New(columnar.WithSpacing(1), columnar.WithItems(short, long))

	res := l.SetGeometry(columnar.NewRect(0, 0, 30, 0))
	if res.ColumnCount != 2 {
		t.Fatalf("expected 2 columns, got %d", res.ColumnCount)
	}
	if short.Rect().Width != res.ColumnWidth || long.Rect().Width != res.ColumnWidth {
		t.Fatal("expected both blocks to receive the column width")
	}
	if long.Rect().Height != long.HeightForWidth(res.ColumnWidth) {
		t.Fatalf("expected long block to be %d tall, got %d", long.HeightForWidth(res.ColumnWidth), long.Rect().Height)
	}
}

func TestFixed(t *testing.T) {
	t.Parallel()

	f := NewFixed("spacer", 8, 2).Label("hi")
	if f.HasHeightForWidth() || f.HeightForWidth(100) != 2 {
		t.Fatal("expected fixed height")
	}
	if got := f.PreferredSize(); got.Width != 8 || got.Height != 2 {
		t.Fatalf("PreferredSize() = %v, want 8x2", got)
	}

	f.SetGeometry(columnar.NewRect(1, 1, 4, 2))
	if got := ansi.Strip(f.Render()); got != "hi  \n    " {
		t.Fatalf("Render() = %q", got)
	}
	if NewFixed("neg", -1, -5).PreferredSize() != (columnar.Size{}) {
		t.Fatal("expected negative sizes to be clamped")
	}
}
