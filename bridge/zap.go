package bridge

import (
	"fmt"
	"sort"

	"go.uber.org/zap/zapcore"

	"github.com/Philipp01105/serlog/core"
	"github.com/Philipp01105/serlog/logger"
)

// ZapCore is a zapcore.Core that writes through a serlog Logger, so code
// instrumented with zap can share a serial console with serlog output.
type ZapCore struct {
	logger *logger.Logger
	fields string
}

// NewZapCore creates a zapcore.Core writing through l.
func NewZapCore(l *logger.Logger) *ZapCore {
	return &ZapCore{logger: l}
}

// Enabled implements zapcore.LevelEnabler.
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	return c.logger.Enabled(zapLevelToCore(level))
}

// With returns a core that appends fields to every line.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	return &ZapCore{
		logger: c.logger,
		fields: c.fields + string(appendZapFields(nil, fields)),
	}
}

// Check implements zapcore.Core.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry as one line: the logger name, the message,
// then the fields sorted by key. Fields are encoded before the line is
// started, so a marshaler may itself log through the same logger.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	level := zapLevelToCore(ent.Level)
	if !c.logger.Enabled(level) {
		return nil
	}

	buf := make([]byte, 0, len(ent.Message)+len(c.fields)+32)
	if ent.LoggerName != "" {
		buf = append(buf, ent.LoggerName...)
		buf = append(buf, ": "...)
	}
	buf = append(buf, ent.Message...)
	buf = append(buf, c.fields...)
	buf = appendZapFields(buf, fields)

	c.logger.Log(level, lineFormat, logger.Str(string(buf)))
	return nil
}

// Sync flushes the logger's transport.
func (c *ZapCore) Sync() error {
	return c.logger.Flush()
}

func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.WarnLevel:
		return core.ErrorLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

func appendZapFields(dst []byte, fields []zapcore.Field) []byte {
	if len(fields) == 0 {
		return dst
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		dst = appendPair(dst, k, fmt.Sprint(enc.Fields[k]))
	}
	return dst
}
