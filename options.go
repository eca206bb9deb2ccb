// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package columnar

import "log/slog"

const (
	// DefaultMargin is the margin used when [WithMargin] is not provided.
	DefaultMargin = 0
	// DefaultSpacing is the spacing used when [WithSpacing] is not provided.
	DefaultSpacing = 1
)

type Option func(*Layout)

// WithMargin sets the margin applied to all four sides of the layout.
func WithMargin(margin int) Option {
	return func(l *Layout) {
		l.margin = margin
	}
}

// WithSpacing sets the gap between items within a column, and between
// columns. Zero and negative values are allowed.
func WithSpacing(spacing int) Option {
	return func(l *Layout) {
		l.spacing = spacing
	}
}

// WithLogger sets the logger used to trace layout passes at debug level. A nil
// logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Layout) {
		l.logger = logger
	}
}

// WithItems appends the provided items to the layout.
func WithItems(items ...Item) Option {
	return func(l *Layout) {
		for _, item := range items {
			l.AddItem(item)
		}
	}
}
