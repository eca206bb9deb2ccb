// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package logging

import (
	"context"
	"log/slog"
)

var _ slog.Handler = (*levelFloor)(nil)

// levelFloor drops every record below a minimum level, regardless of what the
// wrapped handler would accept.
type levelFloor struct {
	floor   slog.Leveler
	handler slog.Handler
}

// NewLevelFloor creates a new [log/slog.Handler] that only forwards records at
// or above floor to handler. floor may be a [*slog.LevelVar] to allow changing
// it at runtime.
func NewLevelFloor(floor slog.Leveler, handler slog.Handler) slog.Handler {
	return &levelFloor{floor: floor, handler: handler}
}

func (h *levelFloor) Enabled(ctx context.Context, l slog.Level) bool {
	return l >= h.floor.Level() && h.handler.Enabled(ctx, l)
}

func (h *levelFloor) Handle(ctx context.Context, r slog.Record) error {
	if r.Level < h.floor.Level() {
		return nil
	}
	return h.handler.Handle(ctx, r)
}

func (h *levelFloor) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelFloor{floor: h.floor, handler: h.handler.WithAttrs(attrs)}
}

func (h *levelFloor) WithGroup(name string) slog.Handler {
	return &levelFloor{floor: h.floor, handler: h.handler.WithGroup(name)}
}
