// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package logging

import (
	"context"
	"log/slog"
	"sync"
)

var _ slog.Handler = (*Recorder)(nil)

// Recorder keeps the last maxRecords log records in memory while passing every
// record through to another handler. It is used to inspect recent layout
// passes, e.g. in tests or in a debug overlay.
type Recorder struct {
	handler    slog.Handler
	maxRecords int
	minLevel   slog.Level

	// shared between handlers derived through WithAttrs/WithGroup.
	state *recorderState
}

type recorderState struct {
	mu      sync.RWMutex
	records []slog.Record
	onAdded func(slog.Record)
}

// NewRecorder creates a new [Recorder]. Records below minLevel are still passed
// to handler, but are not stored. A nil handler is replaced with [NewDiscard],
// in which case Enabled reports true for anything at or above minLevel.
func NewRecorder(maxRecords int, minLevel slog.Level, handler slog.Handler) *Recorder {
	if handler == nil {
		handler = NewDiscard()
	}
	return &Recorder{
		handler:    handler,
		maxRecords: max(1, maxRecords),
		minLevel:   minLevel,
		state: &recorderState{
			records: make([]slog.Record, 0, max(1, maxRecords)),
		},
	}
}

// OnAdded sets a hook which is called synchronously, after a record has been
// stored.
func (h *Recorder) OnAdded(fn func(slog.Record)) *Recorder {
	h.state.mu.Lock()
	h.state.onAdded = fn
	h.state.mu.Unlock()
	return h
}

// Enabled implements the [log/slog.Handler] interface.
func (h *Recorder) Enabled(ctx context.Context, l slog.Level) bool {
	return l >= h.minLevel || h.handler.Enabled(ctx, l)
}

// Handle stores the record (if at or above the minimum level) and passes it to
// the wrapped handler.
func (h *Recorder) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minLevel {
		cloned := r.Clone()

		h.state.mu.Lock()
		h.state.records = append(h.state.records, cloned)
		if len(h.state.records) > h.maxRecords {
			h.state.records = h.state.records[len(h.state.records)-h.maxRecords:]
		}
		fn := h.state.onAdded
		h.state.mu.Unlock()

		if fn != nil {
			fn(cloned)
		}
	}

	if !h.handler.Enabled(ctx, r.Level) {
		return nil
	}
	return h.handler.Handle(ctx, r)
}

// WithAttrs implements the [log/slog.Handler] interface. The returned handler
// shares its storage with h.
func (h *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Recorder{
		handler:    h.handler.WithAttrs(attrs),
		maxRecords: h.maxRecords,
		minLevel:   h.minLevel,
		state:      h.state,
	}
}

// WithGroup implements the [log/slog.Handler] interface. The returned handler
// shares its storage with h.
func (h *Recorder) WithGroup(name string) slog.Handler {
	return &Recorder{
		handler:    h.handler.WithGroup(name),
		maxRecords: h.maxRecords,
		minLevel:   h.minLevel,
		state:      h.state,
	}
}

// Records returns a copy of the stored records, oldest first.
func (h *Recorder) Records() []slog.Record {
	h.state.mu.RLock()
	defer h.state.mu.RUnlock()
	out := make([]slog.Record, len(h.state.records))
	copy(out, h.state.records)
	return out
}

// Count returns the number of stored records.
func (h *Recorder) Count() int {
	h.state.mu.RLock()
	defer h.state.mu.RUnlock()
	return len(h.state.records)
}

// Reset drops every stored record.
func (h *Recorder) Reset() {
	h.state.mu.Lock()
	h.state.records = h.state.records[:0]
	h.state.mu.Unlock()
}

// Attrs flattens the attributes of a record into a map keyed by attribute key.
// Attributes of groups are not expanded.
func Attrs(r slog.Record) map[string]slog.Value {
	out := make(map[string]slog.Value, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.Resolve()
		return true
	})
	return out
}
