// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

// CrashPathName generates a path for a crash dump file, in the format of:
//
//	<baseDir>/crash-<appName>-<timestamp>.log
func CrashPathName(baseDir, appName string) string {
	return filepath.Join(baseDir, fmt.Sprintf("crash-%s-%s.log", appName, time.Now().Format("20060102-150405")))
}

// NewCrashDump routes the runtime crash output to the file at path, so that a
// panic is written there even when the terminal is in the alternate screen.
// The returned closer must be deferred directly from main (not wrapped in
// another function, or it cannot recover): it recovers a panic of the
// main goroutine (writing it to the same file), calls cb (typically used to
// restore the terminal), and removes the file again if nothing was written.
// When a dump was written, the closer reports the path and exits with status 1.
func NewCrashDump(path string) (closer func(cb func()) error, err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create crash dump directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create crash dump file: %w", err)
	}

	if err = debug.SetCrashOutput(f, debug.CrashOptions{}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("set crash output: %w", err)
	}

	_ = f.Close() // SetCrashOutput duplicates the file descriptor.

	size := func() int64 {
		stat, serr := os.Stat(path)
		if serr != nil {
			return -1
		}
		return stat.Size()
	}

	return func(cb func()) error {
		_ = debug.SetCrashOutput(nil, debug.CrashOptions{})

		if r := recover(); r != nil && size() == 0 {
			stack := debug.Stack()
			slog.Error("panic occurred", "error", r, "stack", string(stack)) //nolint:sloglint

			if df, derr := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o600); derr == nil {
				_, _ = fmt.Fprintf(df, "panic occurred: %v\n%s", r, string(stack))
				_ = df.Close()
			}
		}

		if cb != nil {
			cb()
		}

		if size() == 0 {
			return os.Remove(path)
		}

		fmt.Fprintf(os.Stderr, "\n\ncrash occurred, wrote dump to %s\n", path)
		os.Exit(1)
		return nil
	}, nil
}
