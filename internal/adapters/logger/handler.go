package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/libpack/internal/ui/output"
	"go.trai.ch/libpack/internal/ui/style"
)

// Attributes rendered as the line prefix instead of key=value pairs.
const (
	KeyLibrary = "library"
	KeyStep    = "step"
)

// PrettyHandler is a slog.Handler writing one line per record, prefixed with the
// library and build step the record belongs to.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(level)

	return &PrettyHandler{
		out:   output.New(w),
		level: levelVar,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	var library, step string
	var rest []string
	collect := func(attr slog.Attr) bool {
		switch {
		case h.group == "" && attr.Key == KeyLibrary:
			library = attr.Value.String()
		case h.group == "" && attr.Key == KeyStep:
			step = attr.Value.String()
		default:
			rest = append(rest, formatAttr(h.group, attr))
		}
		return true
	}
	for _, attr := range h.attrs {
		collect(attr)
	}
	r.Attrs(collect)

	var line strings.Builder
	if icon != "" {
		line.WriteString(h.paint(icon, color) + " ")
	}
	if library != "" {
		line.WriteString(h.paint(library, style.Iris) + " ")
	}
	if step != "" {
		line.WriteString(h.paint(step+" ›", style.Slate) + " ")
	}
	line.WriteString(h.paint(r.Message, color))
	if len(rest) > 0 {
		line.WriteString(" " + h.paint(strings.Join(rest, " "), style.Slate))
	}
	line.WriteString("\n")

	_, err := h.out.WriteString(line.String())
	return err
}

func levelStyle(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Red
	case level >= slog.LevelWarn:
		return style.Warning, style.Yellow
	case level < slog.LevelInfo:
		return style.Circle, style.Slate
	default:
		return "", ""
	}
}

func (h *PrettyHandler) paint(s string, color lipgloss.Color) string {
	if color == "" {
		return s
	}
	return h.out.String(s).Foreground(termenv.RGBColor(string(color))).String()
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: newAttrs,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
