//go:build !tinygo

package serialport

import (
	"fmt"

	"periph.io/x/conn/v3/uart/uartreg"
	"periph.io/x/host/v3/serial"
)

// PortInfo describes a port that Open can use
type PortInfo struct {
	Name    string
	Aliases []string
	Number  int
}

// List returns the UART ports registered with periph.io followed by the
// /dev/ttyS* devices the OS exposes.
func List() ([]PortInfo, error) {
	hostOnce.Do(func() { hostErr = initHost() })
	if hostErr != nil {
		return nil, fmt.Errorf("failed to initialize periph.io host: %w", hostErr)
	}

	var out []PortInfo
	for _, ref := range uartreg.All() {
		out = append(out, PortInfo{Name: ref.Name, Aliases: ref.Aliases, Number: ref.Number})
	}

	numbers, err := serial.Enumerate()
	if err != nil {
		return out, fmt.Errorf("failed to enumerate serial devices: %w", err)
	}
	for _, n := range numbers {
		out = append(out, PortInfo{Name: fmt.Sprintf("/dev/ttyS%d", n), Number: n})
	}
	return out, nil
}
