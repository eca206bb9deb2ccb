// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package block

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// lineWidth returns the width of the widest line in s, ignoring ANSI escape
// sequences.
func lineWidth(s string) int {
	if s == "" {
		return 0
	}
	out := 0
	for line := range strings.SplitSeq(s, "\n") {
		out = max(out, ansi.StringWidth(line))
	}
	return out
}

// lineCount returns the number of lines in s. An empty string has no lines.
func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// wrap wraps s to width, breaking words that are wider than width.
func wrap(s string, width int) string {
	if s == "" {
		return ""
	}
	return ansi.Wrap(s, max(1, width), "")
}

// fit forces s into exactly width x height cells, truncating long lines,
// padding short lines with spaces, and dropping or adding lines as needed.
func fit(s string, width, height int) string {
	width, height = max(0, width), max(0, height)
	if height == 0 {
		return ""
	}

	var lines []string
	if s != "" {
		lines = strings.Split(s, "\n")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	var sb strings.Builder
	for i := range height {
		if i > 0 {
			sb.WriteByte('\n')
		}

		var line string
		if i < len(lines) {
			line = ansi.Truncate(lines[i], width, "")
		}
		sb.WriteString(line)
		if pad := width - ansi.StringWidth(line); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
	}
	return sb.String()
}

// Fit is exported for renderers which need to place arbitrary strings into a
// cell rectangle. See [fit].
func Fit(s string, width, height int) string {
	return fit(s, width, height)
}
