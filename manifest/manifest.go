// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package manifest loads layout descriptions (YAML or JSON documents listing
// the items to lay out) and builds a [columnar.Layout] from them.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/goccy/go-yaml"
	"github.com/lrstanley/x/charm/columnar"
	"github.com/lrstanley/x/charm/columnar/block"
)

// ErrInvalid is wrapped by every validation error returned by [Document.Validate].
var ErrInvalid = errors.New("invalid manifest")

// Document describes a layout and its items.
type Document struct {
	// Width is the default width to lay out for, when none is given by the
	// caller.
	Width  int `json:"width,omitempty"  yaml:"width,omitempty"`
	Margin int `json:"margin,omitempty" yaml:"margin,omitempty"`
	// Spacing defaults to [columnar.DefaultSpacing] when unset.
	Spacing *int   `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	Items   []Item `json:"items"             yaml:"items"`
}

// Item describes a single item. Items with a title or text become
// [block.Block] items, all others become [block.Fixed] items.
type Item struct {
	ID    string `json:"id"              yaml:"id"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Text  string `json:"text,omitempty"  yaml:"text,omitempty"`
	// Width is the preferred width of a fixed item, or the minimum content
	// width of a text item.
	Width int `json:"width,omitempty" yaml:"width,omitempty"`
	// Height is the height of a fixed item. For text items, a non-zero height
	// disables height-for-width.
	Height int  `json:"height,omitempty" yaml:"height,omitempty"`
	Border bool `json:"border,omitempty" yaml:"border,omitempty"`
}

// IsText reports whether the item is a text item.
func (i Item) IsText() bool {
	return i.Title != "" || i.Text != ""
}

// Load decodes a document from r. Unknown fields are rejected.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile decodes a document from the file at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Validate checks the document for negative sizes and missing or duplicate
// item IDs. All problems are reported at once.
func (d *Document) Validate() error {
	var errs []error

	if d.Width < 0 {
		errs = append(errs, fmt.Errorf("%w: width must not be negative (got %d)", ErrInvalid, d.Width))
	}
	if d.Margin < 0 {
		errs = append(errs, fmt.Errorf("%w: margin must not be negative (got %d)", ErrInvalid, d.Margin))
	}

	seen := make(map[string]int, len(d.Items))
	for i, item := range d.Items {
		if item.ID == "" {
			errs = append(errs, fmt.Errorf("%w: item %d: missing id", ErrInvalid, i))
		} else if prev, ok := seen[item.ID]; ok {
			errs = append(errs, fmt.Errorf("%w: item %d: duplicate id %q (first used by item %d)", ErrInvalid, i, item.ID, prev))
		} else {
			seen[item.ID] = i
		}

		if item.Width < 0 || item.Height < 0 {
			errs = append(errs, fmt.Errorf("%w: item %d (%q): negative size %dx%d", ErrInvalid, i, item.ID, item.Width, item.Height))
		}
	}

	return errors.Join(errs...)
}

// SpacingOrDefault returns the configured spacing, or [columnar.DefaultSpacing].
func (d *Document) SpacingOrDefault() int {
	if d.Spacing == nil {
		return columnar.DefaultSpacing
	}
	return *d.Spacing
}

// Build creates a [columnar.Layout] containing one item per document item, in
// document order. logger may be nil.
func (d *Document) Build(logger *slog.Logger) *columnar.Layout {
	l := columnar.New(
		columnar.WithMargin(d.Margin),
		columnar.WithSpacing(d.SpacingOrDefault()),
		columnar.WithLogger(logger),
	)

	for _, item := range d.Items {
		l.AddItem(item.build())
	}
	return l
}

var borderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

func (i Item) build() columnar.Item {
	if !i.IsText() {
		f := block.NewFixed(i.ID, i.Width, i.Height)
		if i.Border {
			f.Style(borderStyle)
		}
		return f
	}

	opts := []block.BlockOption{
		block.WithTitle(i.Title),
		block.WithMinWidth(i.Width),
	}
	if i.Height > 0 {
		opts = append(opts, block.WithFixedHeight(i.Height))
	}
	if i.Border {
		opts = append(opts, block.WithStyle(borderStyle))
	}
	return block.NewBlock(i.ID, i.Text, opts...)
}
