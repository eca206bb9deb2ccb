// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package logging contains [log/slog] handlers used by the layout engine and
// its binaries: a discard handler for quiet defaults, a level floor, an
// in-memory recorder for inspecting layout passes, and a crash dump helper.
package logging
