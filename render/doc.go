// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package render turns a committed [columnar.Layout] pass into terminal
// output: a composed string, a drawable for ultraviolet screens, and a
// bubbletea view with mouse hit testing.
package render
