// Command serlog writes serlog lines to a serial port or stdout.
//
//	serlog --port /dev/ttyUSB0 --baud 115200 emit --as error "fault %X" X:-1
//	serlog demo
//	serlog ports
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
