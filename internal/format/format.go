// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package format renders layout results for the command line.
package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/goccy/go-yaml"
)

const TruncateEllipsis = "…" // Should be 1 character wide.

// Format is an output format supported by the CLI.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists every supported [Format].
var Formats = []Format{FormatTable, FormatJSON, FormatYAML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (expected one of %v)", s, Formats)
}

// ToJSON converts the provided data value into indented JSON.
func ToJSON(data any, indent int) (string, error) {
	b, err := json.MarshalIndent(data, "", strings.Repeat(" ", max(0, indent)))
	if err != nil {
		return "", fmt.Errorf("marshal json: %w", err)
	}
	return string(b), nil
}

// ToYAML converts the provided data value into YAML. Types implementing
// [json.Marshaler] are encoded through it.
func ToYAML(data any, indent int) (string, error) {
	if data == nil {
		return "null", nil
	}

	b, err := yaml.MarshalWithOptions(data, yaml.Indent(max(indent, 2)), yaml.UseJSONMarshaler())
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

// Trunc truncates a string to a given width, adding an ellipsis if the string
// is wider. This is aware of ANSI escape codes and wide characters.
func Trunc(s string, width int) string {
	return ansi.Truncate(s, width, TruncateEllipsis)
}
