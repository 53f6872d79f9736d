package main

import (
	"github.com/spf13/cobra"

	"github.com/Philipp01105/serlog/config"
	"github.com/Philipp01105/serlog/core"
	"github.com/Philipp01105/serlog/logger"
)

type rootOptions struct {
	configPath string
	port       string
	baud       int
	level      string
	envFiles   []string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "serlog",
		Short: "Leveled serial console logging",
		Long: `serlog writes timestamped, leveled log lines to a serial port.

Settings come from --config (YAML or JSON5), then SERLOG_* environment
variables (a .env file is read if present), then flags. Without a port
the lines go to stdout.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (.yaml, .yml, .json, .json5)")
	flags.StringVar(&opts.port, "port", "", "serial port name or device path (default stdout)")
	flags.IntVar(&opts.baud, "baud", 0, "serial line speed (default 9600)")
	flags.StringVar(&opts.level, "level", "", "threshold: debug, info or error")
	flags.StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load (default .env)")

	rootCmd.AddCommand(
		newEmitCmd(opts),
		newDemoCmd(opts),
		newPortsCmd(),
	)
	return rootCmd
}

// resolveConfig layers the config file, the environment and the flags
func (o *rootOptions) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(o.envFiles...); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = o.port
	}
	if flags.Changed("baud") {
		cfg.Baud = o.baud
	}
	if flags.Changed("level") {
		var level core.Level
		if err := level.UnmarshalText([]byte(o.level)); err != nil {
			return cfg, err
		}
		cfg.Level = level
	}
	cfg.Stdout = cmd.OutOrStdout()
	return cfg, cfg.Validate()
}

func (o *rootOptions) openLogger(cmd *cobra.Command) (*logger.Logger, error) {
	cfg, err := o.resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	return cfg.Logger()
}
