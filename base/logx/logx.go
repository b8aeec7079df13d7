// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging for user-facing messages,
// built on [log/slog] with a compact colorized terminal handler.
// The verbosity is governed by [UserLevel], which build tags set to
// Debug (-tags debug), Warn (-tags release), or Info otherwise.
package logx

import (
	"fmt"
	"log/slog"
	"os"
)

// UserLevel is the verbosity level that the user has selected for
// messages to print. Anything at this level or above will be printed.
// It defaults based on build tags and can be set directly, typically
// from a -v or -q style command line flag.
var UserLevel = defaultUserLevel

func init() {
	slog.SetDefault(slog.New(newHandler(os.Stderr)))
}

// SetLevel sets the [UserLevel] of logging.
func SetLevel(level slog.Level) {
	UserLevel = level
}

// SetVerbose sets Debug [UserLevel] if on, Info otherwise.
func SetVerbose(on bool) {
	if on {
		UserLevel = slog.LevelDebug
	} else {
		UserLevel = slog.LevelInfo
	}
}

// PrintDebug prints the given message at the Debug level.
func PrintDebug(args ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Fprintln(os.Stderr, levelText(slog.LevelDebug)+fmt.Sprint(args...))
	}
}

// PrintfDebug formats and prints the given message at the Debug level.
func PrintfDebug(format string, args ...any) {
	PrintDebug(fmt.Sprintf(format, args...))
}

// PrintInfo prints the given message at the Info level.
func PrintInfo(args ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Fprintln(os.Stdout, fmt.Sprint(args...))
	}
}

// PrintfInfo formats and prints the given message at the Info level.
func PrintfInfo(format string, args ...any) {
	PrintInfo(fmt.Sprintf(format, args...))
}

// PrintWarn prints the given message at the Warn level.
func PrintWarn(args ...any) {
	if UserLevel <= slog.LevelWarn {
		fmt.Fprintln(os.Stderr, levelText(slog.LevelWarn)+fmt.Sprint(args...))
	}
}

// PrintfWarn formats and prints the given message at the Warn level.
func PrintfWarn(format string, args ...any) {
	PrintWarn(fmt.Sprintf(format, args...))
}

// PrintError prints the given message at the Error level.
func PrintError(args ...any) {
	if UserLevel <= slog.LevelError {
		fmt.Fprintln(os.Stderr, levelText(slog.LevelError)+fmt.Sprint(args...))
	}
}

// PrintfError formats and prints the given message at the Error level.
func PrintfError(format string, args ...any) {
	PrintError(fmt.Sprintf(format, args...))
}
