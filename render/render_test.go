// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package render

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/lrstanley/x/charm/columnar"
	"github.com/lrstanley/x/charm/columnar/block"
)

func newTestLayout(opts ...columnar.Option) *columnar.Layout {
	opts = append([]columnar.Option{
		columnar.WithSpacing(1),
		columnar.WithItems(
			block.NewFixed("a", 10, 1),
			block.NewFixed("b", 10, 1),
			block.NewFixed("c", 10, 1),
		),
	}, opts...)
	return columnar.New(opts...)
}

func TestFrameRender(t *testing.T) {
	t.Parallel()

	frame := NewFrame(newTestLayout(), 22)
	if frame.Height() != 3 {
		t.Fatalf("expected height 3, got %d", frame.Height())
	}

	want := strings.Join([]string{
		"a" + strings.Repeat(" ", 10) + "c" + strings.Repeat(" ", 10),
		strings.Repeat(" ", 22),
		"b" + strings.Repeat(" ", 21),
	}, "\n")

	if got := ansi.Strip(frame.Render()); got != want {
		t.Fatalf("unexpected render:\n%q\nwant:\n%q", got, want)
	}
}

func TestFrameRenderMargin(t *testing.T) {
	t.Parallel()

	frame := NewFrame(newTestLayout(columnar.WithMargin(1)), 24)
	if frame.Height() != 5 {
		t.Fatalf("expected height 5, got %d", frame.Height())
	}

	lines := strings.Split(ansi.Strip(frame.Render()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if strings.TrimSpace(lines[0]) != "" || strings.TrimSpace(lines[4]) != "" {
		t.Fatalf("expected blank margin rows, got %q and %q", lines[0], lines[4])
	}
	if !strings.HasPrefix(lines[1], " a") {
		t.Fatalf("expected left margin before the first item, got %q", lines[1])
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 24 {
			t.Fatalf("line %d is %d wide, want 24", i, w)
		}
	}
}

func TestFrameHit(t *testing.T) {
	t.Parallel()

	frame := NewFrame(newTestLayout(), 22)

	tests := []struct {
		x, y int
		want string
	}{
		{0, 0, "a"},
		{9, 0, "a"},
		{10, 0, ""},
		{11, 0, "c"},
		{0, 1, ""},
		{0, 2, "b"},
		{30, 0, ""},
	}

	for _, tt := range tests {
		if got := frame.Hit(tt.x, tt.y); got != tt.want {
			t.Errorf("Hit(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFrameString(t *testing.T) {
	t.Parallel()

	out := NewFrame(newTestLayout(), 22).String()

	for _, want := range []string{
		"Frame(w:22, h:3, columns:2, column_width:10, shoves:1)",
		`Item(id:"b", column:0, x:0, y:2, w:10, h:1)`,
		`Item(id:"c", column:1, x:11, y:0, w:10, h:1)`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	if got := String(nil, 10, 10); got != "" {
		t.Fatalf("expected empty output for nil layout, got %q", got)
	}
	if got := String(newTestLayout(), 0, 10); got != "" {
		t.Fatalf("expected empty output for zero width, got %q", got)
	}
	if got := String(columnar.New(), 10, 10); got != "" {
		t.Fatalf("expected empty output for empty layout, got %q", got)
	}

	out := String(newTestLayout(), 22, 2)
	if n := len(strings.Split(out, "\n")); n != 2 {
		t.Fatalf("expected output to be clipped to 2 lines, got %d", n)
	}
}

func TestFrameBlocks(t *testing.T) {
	t.Parallel()

	l := columnar.New(
		columnar.WithSpacing(2),
		columnar.WithItems(
			block.NewBlock("general", "units: mm\nworkers: 4", block.WithTitle("General")),
			block.NewBlock("gerber", "circle steps: 64\nbuffering: full", block.WithTitle("Gerber")),
			block.NewBlock("excellon", "zeros: leading", block.WithTitle("Excellon")),
		),
	)

	frame := NewFrame(l, 60)
	out := ansi.Strip(frame.Render())

	for _, want := range []string{"General", "Gerber", "Excellon", "workers: 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if got := len(strings.Split(out, "\n")); got != frame.Height() {
		t.Errorf("expected %d lines, got %d", frame.Height(), got)
	}
	if frame.Hit(0, 0) != "general" {
		t.Errorf("expected general block at the origin, got %q", frame.Hit(0, 0))
	}
}

func TestFrameDraw(t *testing.T) {
	t.Parallel()

	frame := NewFrame(newTestLayout(), 22)
	out := ansi.Strip(lipgloss.NewCanvas(22, 3).Compose(frame).Render())

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if got := strings.TrimRight(lines[0], " "); got != "a"+strings.Repeat(" ", 10)+"c" {
		t.Errorf("unexpected first line %q", got)
	}
	if got := strings.TrimRight(lines[2], " "); got != "b" {
		t.Errorf("unexpected last line %q", got)
	}
}

func TestView(t *testing.T) {
	t.Parallel()

	var view tea.View
	view.MouseMode = tea.MouseModeCellMotion

	frame := View(&view, newTestLayout(), 22, 10)
	if frame == nil {
		t.Fatal("expected a frame")
	}
	if view.Callback == nil {
		t.Fatal("expected a mouse callback to be installed")
	}

	tests := []struct {
		name string
		msg  tea.Msg
		want string
	}{
		{name: "first item", msg: tea.MouseClickMsg{X: 3, Y: 0, Button: tea.MouseLeft}, want: "a"},
		{name: "second column", msg: tea.MouseClickMsg{X: 11, Y: 0, Button: tea.MouseLeft}, want: "c"},
		{name: "below first item", msg: tea.MouseReleaseMsg{X: 0, Y: 2, Button: tea.MouseLeft}, want: "b"},
		{name: "column gap", msg: tea.MouseClickMsg{X: 10, Y: 0, Button: tea.MouseLeft}},
		{name: "spacing row", msg: tea.MouseClickMsg{X: 0, Y: 1, Button: tea.MouseLeft}},
		{name: "outside", msg: tea.MouseClickMsg{X: 40, Y: 0, Button: tea.MouseLeft}},
		{name: "not a mouse event", msg: tea.WindowSizeMsg{Width: 22, Height: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := view.Callback(tt.msg)
			if tt.want == "" {
				if cmd != nil {
					t.Fatalf("expected no command, got message %#v", cmd())
				}
				return
			}
			if cmd == nil {
				t.Fatalf("expected a command for item %q", tt.want)
			}

			msg, ok := cmd().(ItemMouseMsg)
			if !ok {
				t.Fatalf("expected ItemMouseMsg, got %T", cmd())
			}
			if msg.ItemID != tt.want {
				t.Fatalf("expected item %q, got %q", tt.want, msg.ItemID)
			}
			if msg.Mouse != tt.msg {
				t.Fatalf("expected the original mouse event, got %v", msg.Mouse)
			}
		})
	}
}

func TestViewWithoutMouse(t *testing.T) {
	t.Parallel()

	var view tea.View
	if View(&view, newTestLayout(), 22, 10) == nil {
		t.Fatal("expected a frame")
	}
	if view.Callback != nil {
		t.Fatal("expected no callback when mouse tracking is disabled")
	}

	for _, size := range [][2]int{{0, 10}, {-5, 10}, {22, 0}} {
		var v tea.View
		v.MouseMode = tea.MouseModeCellMotion
		if frame := View(&v, newTestLayout(), size[0], size[1]); frame != nil {
			t.Fatalf("View(%d, %d) returned a frame, want nil", size[0], size[1])
		}
		if v.Callback != nil {
			t.Fatalf("View(%d, %d) installed a callback", size[0], size[1])
		}
	}
	if View(&view, nil, 22, 10) != nil {
		t.Fatal("expected nil frame for a nil layout")
	}
}
