// Package slogcustom is a colored, single-line slog handler for local runs.
package slogcustom

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

type PrettyHandler struct {
	l     *log.Logger
	level slog.Leveler
	attrs []slog.Attr
	group string
}

func NewPrettyHandler(out io.Writer, level slog.Leveler) *PrettyHandler {
	return &PrettyHandler{
		l:     log.New(out, "", 0),
		level: level,
	}
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch {
	case r.Level >= slog.LevelError:
		level = color.RedString(level)
	case r.Level >= slog.LevelWarn:
		level = color.YellowString(level)
	case r.Level >= slog.LevelInfo:
		level = color.HiBlueString(level)
	default:
		level = color.MagentaString(level)
	}

	var b strings.Builder
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})

	h.l.Println(
		r.Time.Format("15:04:05.000"),
		level,
		r.Message,
		strings.TrimSuffix(b.String(), " "),
	)
	return nil
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	key := qualify(group, a.Key)
	b.WriteString(color.GreenString(key))
	b.WriteString("=")
	b.WriteString(fmt.Sprint(a.Value.Resolve().Any()))
	b.WriteString(" ")
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		// attrs are stored already qualified by the group open at this point
		clone.attrs = append(clone.attrs, slog.Attr{Key: qualify(h.group, a.Key), Value: a.Value})
	}
	return &clone
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.group = qualify(h.group, name)
	return &clone
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func qualify(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}
