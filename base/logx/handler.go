// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level label colored according to the terminal profile
// of the output. Records below [UserLevel] are dropped.
type Handler struct {
	out    *termenv.Output
	mu     *sync.Mutex
	attrs  []string
	groups []string
}

// NewHandler returns a new [Handler] writing to the given writer.
// Color is only used when the writer is a terminal that supports it.
func NewHandler(w io.Writer) *Handler {
	return &Handler{out: termenv.NewOutput(w), mu: &sync.Mutex{}}
}

// SetDefaultLogger sets the default [slog] logger to
// a [Handler] writing to [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelLabel(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		sb.WriteString(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		sb.WriteString(h.format(a))
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]string{}, h.attrs...)
	for _, a := range attrs {
		nh.attrs = append(nh.attrs, h.format(a))
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

// format returns the " key=value" text for the given attribute,
// with the key qualified by the current groups.
func (h *Handler) format(a slog.Attr) string {
	if a.Equal(slog.Attr{}) {
		return ""
	}
	key := a.Key
	if len(h.groups) > 0 {
		key = strings.Join(h.groups, ".") + "." + key
	}
	return fmt.Sprintf(" %s=%v", key, a.Value.Resolve())
}

// levelLabel returns the colored label for the given level.
func (h *Handler) levelLabel(level slog.Level) string {
	st := h.out.String(level.String())
	switch {
	case level >= slog.LevelError:
		st = st.Foreground(h.out.Color("1")).Bold()
	case level >= slog.LevelWarn:
		st = st.Foreground(h.out.Color("3"))
	case level >= slog.LevelInfo:
		st = st.Foreground(h.out.Color("4"))
	default:
		st = st.Faint()
	}
	return st.String()
}
