// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package render

import (
	tea "charm.land/bubbletea/v2"
	"github.com/lrstanley/x/charm/columnar"
)

// ItemMouseMsg is sent to the model when a mouse event hits an identifiable
// item of a layout rendered through [View].
type ItemMouseMsg struct {
	ItemID string
	Mouse  tea.MouseMsg
}

// View lays out l for width and renders it onto an existing [tea.View]. When
// the view has mouse tracking enabled, [MouseCallback] is installed for the
// frame. The returned frame can be used for additional hit testing, and is nil
// when there is nothing to lay out.
func View(view *tea.View, l *columnar.Layout, width, height int) *Frame {
	if l == nil || width <= 0 || height <= 0 {
		return nil
	}

	frame := NewFrame(l, width)

	if view.MouseMode != tea.MouseModeNone {
		view.Callback = MouseCallback(frame)
	}

	view.SetContent(clip(frame.Render(), height))
	return frame
}

// MouseCallback returns a [tea.View] callback which sends an [ItemMouseMsg]
// for mouse events over an identifiable item of frame. Events outside of any
// item are ignored. Use it directly when the frame is composed with other
// content.
func MouseCallback(frame *Frame) func(tea.Msg) tea.Cmd {
	return func(msg tea.Msg) tea.Cmd {
		mouse, ok := msg.(tea.MouseMsg)
		if !ok {
			return nil
		}

		id := frame.Hit(mouse.Mouse().X, mouse.Mouse().Y)
		if id == "" {
			return nil
		}
		return func() tea.Msg {
			return ItemMouseMsg{
				ItemID: id,
				Mouse:  mouse,
			}
		}
	}
}
