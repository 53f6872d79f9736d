package bridge

import (
	"context"
	"log/slog"

	"github.com/Philipp01105/serlog/core"
	"github.com/Philipp01105/serlog/logger"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// serlog Logger. Attributes are appended to the message as key=value
// pairs; groups become dotted key prefixes.
type SlogHandler struct {
	logger *logger.Logger
	attrs  string
	group  string
}

// NewSlogHandler creates a new slog.Handler writing through l. Filtering
// follows the logger's threshold.
func NewSlogHandler(l *logger.Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Enabled(slogLevelToCore(level))
}

// Handle writes the record as one line. Attributes are resolved before
// the line is started, so a LogValuer may itself log through the same
// logger.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level := slogLevelToCore(record.Level)
	if !s.logger.Enabled(level) {
		return nil
	}

	buf := make([]byte, 0, len(record.Message)+len(s.attrs)+32)
	buf = append(buf, record.Message...)
	buf = append(buf, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		buf = appendSlogAttr(buf, s.group, a)
		return true
	})

	s.logger.Log(level, lineFormat, logger.Str(string(buf)))
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := []byte(s.attrs)
	for _, a := range attrs {
		buf = appendSlogAttr(buf, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  string(buf),
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level. Warnings are
// raised to ERROR so an error-only threshold still shows them.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelWarn:
		return core.ErrorLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendSlogAttr appends " key=value", flattening nested groups.
func appendSlogAttr(dst []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendSlogAttr(dst, key, ga)
		}
		return dst
	}
	return appendPair(dst, key, a.Value.String())
}
