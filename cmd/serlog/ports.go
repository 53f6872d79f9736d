package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Philipp01105/serlog/transport/serialport"
)

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List serial ports usable with --port",
		RunE: func(cmd *cobra.Command, args []string) error {
			ports, err := serialport.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(ports) == 0 {
				fmt.Fprintln(out, "no serial ports found")
				return nil
			}
			for _, p := range ports {
				if len(p.Aliases) > 0 {
					fmt.Fprintf(out, "%s\t(%s)\n", p.Name, strings.Join(p.Aliases, ", "))
				} else {
					fmt.Fprintln(out, p.Name)
				}
			}
			return nil
		},
	}
}
