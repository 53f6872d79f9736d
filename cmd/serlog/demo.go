package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Philipp01105/serlog/bridge"
	"github.com/Philipp01105/serlog/core"
	"github.com/Philipp01105/serlog/logger"
)

func newDemoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Write a short boot sequence using events and indentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.openLogger(cmd)
			if err != nil {
				return err
			}
			defer l.Close()

			runDemo(l)
			return nil
		},
	}
}

var (
	demoROM    core.ROM
	demoBanner = demoROM.Store("serlog %S")
	demoBuild  = demoROM.Store("demo")
)

func runDemo(l *logger.Logger) {
	l.InfoFrom(demoBanner, logger.Src(demoBuild))

	l.Indented(func() {
		l.Info("radio")
		l.Indented(func() {
			l.Debug("channel %d rate %l kbps", logger.Int8(76), logger.Int16(1000))
			l.Event(core.DebugLevel, func(e *logger.Event) {
				e.Printf("regs:")
				for _, r := range []int8{0x0E, 0x3F, -1} {
					e.Printf(" %X", logger.Int8(r))
				}
			})
		})
		l.Info("sensors %t, vcc %f V", logger.Bool(true), logger.Float(3.3))
	})

	slog.New(bridge.NewSlogHandler(l)).Info("slog bridge", "ok", true)
	zl := zap.New(bridge.NewZapCore(l)).Named("zap")
	zl.Error("link lost", zap.Int("retries", 3))
	_ = zl.Sync()

	l.Info("boot complete")
}
