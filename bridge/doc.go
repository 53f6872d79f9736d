// Package bridge lets code written against log/slog or zap write
// through a serlog Logger.
//
//	log := logger.NewBuilder().WithTransport(port).Build()
//	slog.SetDefault(slog.New(bridge.NewSlogHandler(log)))
//	zl := zap.New(bridge.NewZapCore(log))
//
// Structured attributes are rendered after the message as key=value
// pairs. Warnings map to ERROR since serlog has three levels.
package bridge
