// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// handler is the slog.Handler used for the default logger,
// printing compact single-line records with colorized levels.
type handler struct {
	mu    sync.Mutex
	w     io.Writer
	out   *termenv.Output
	attrs []slog.Attr
	group string
}

func newHandler(w io.Writer) *handler {
	return &handler{w: w, out: termenv.NewOutput(w)}
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	if !r.Time.IsZero() {
		b.WriteString(r.Time.Format(time.TimeOnly))
		b.WriteByte(' ')
	}
	b.WriteString(h.levelString(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(b, h.group, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(b, h.group, a)
		return true
	})
	b.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := &handler{w: h.w, out: h.out, group: h.group}
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return nh
}

func (h *handler) WithGroup(name string) slog.Handler {
	nh := &handler{w: h.w, out: h.out, attrs: h.attrs}
	if h.group != "" {
		nh.group = h.group + "." + name
	} else {
		nh.group = name
	}
	return nh
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	b.WriteByte(' ')
	if group != "" {
		b.WriteString(group)
		b.WriteByte('.')
	}
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

// levelString returns the possibly colorized text for the given level.
func (h *handler) levelString(level slog.Level) string {
	s := h.out.String(level.String())
	switch {
	case level >= slog.LevelError:
		s = s.Foreground(h.out.Color("1")) // red
	case level >= slog.LevelWarn:
		s = s.Foreground(h.out.Color("3")) // yellow
	case level >= slog.LevelInfo:
		s = s.Foreground(h.out.Color("4")) // blue
	default:
		s = s.Faint()
	}
	return s.String()
}

// levelText is the uncolored prefix used by the Print helpers.
func levelText(level slog.Level) string {
	return fmt.Sprintf("%s: ", level.String())
}
