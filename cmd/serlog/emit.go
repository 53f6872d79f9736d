package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Philipp01105/serlog/core"
	"github.com/Philipp01105/serlog/logger"
)

func newEmitCmd(opts *rootOptions) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "emit FORMAT [KIND:VALUE...]",
		Short: "Write one log line",
		Long: `Write one log line. Arguments are typed as KIND:VALUE where KIND is
the conversion they feed:

  s:text  S:text  c:x  d:-3  x:10  X:10  b:5  B:5  l:-300
  t:true  T:false  f:1.5  F:2.25`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var level core.Level
			if err := level.UnmarshalText([]byte(as)); err != nil {
				return err
			}
			fargs, err := parseArgs(args[1:])
			if err != nil {
				return err
			}

			l, err := opts.openLogger(cmd)
			if err != nil {
				return err
			}
			defer l.Close()

			l.Log(level, core.Text(args[0]), fargs...)
			return nil
		},
	}
	cmd.Flags().StringVar(&as, "as", "info", "level of the line: debug, info or error")
	return cmd
}

func parseArgs(raw []string) ([]logger.Arg, error) {
	out := make([]logger.Arg, 0, len(raw))
	for _, r := range raw {
		a, err := parseArg(r)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// parseArg converts KIND:VALUE into the argument its conversion reads
func parseArg(s string) (logger.Arg, error) {
	kind, value, ok := strings.Cut(s, ":")
	if !ok || len(kind) != 1 {
		return logger.Arg{}, fmt.Errorf("argument %q: want KIND:VALUE", s)
	}

	switch kind[0] {
	case 's':
		return logger.Str(value), nil
	case 'S':
		return logger.Src(core.Text(value)), nil
	case 'c':
		if len(value) != 1 {
			return logger.Arg{}, fmt.Errorf("argument %q: want a single byte", s)
		}
		return logger.Char(value[0]), nil
	case 'd', 'x', 'X', 'b', 'B':
		v, err := strconv.ParseInt(value, 0, 8)
		if err != nil {
			return logger.Arg{}, fmt.Errorf("argument %q: %w", s, err)
		}
		return logger.Int8(int8(v)), nil
	case 'l':
		v, err := strconv.ParseInt(value, 0, 16)
		if err != nil {
			return logger.Arg{}, fmt.Errorf("argument %q: %w", s, err)
		}
		return logger.Int16(int16(v)), nil
	case 't', 'T':
		v, err := strconv.ParseBool(value)
		if err != nil {
			return logger.Arg{}, fmt.Errorf("argument %q: %w", s, err)
		}
		return logger.Bool(v), nil
	case 'f':
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return logger.Arg{}, fmt.Errorf("argument %q: %w", s, err)
		}
		return logger.Float(float32(v)), nil
	case 'F':
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return logger.Arg{}, fmt.Errorf("argument %q: %w", s, err)
		}
		return logger.Double(v), nil
	}
	return logger.Arg{}, fmt.Errorf("argument %q: unknown kind %q", s, kind)
}
