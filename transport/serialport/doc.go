// Package serialport writes log output to a serial line.
//
// On hosts the port is opened through periph.io: host.Init loads the
// drivers, uartreg resolves the port by name, alias or number, and the
// connection is set up as 8N1 without flow control at Config.Baud. A Port
// whose name is a device path (/dev/ttyUSB0) is written directly; its line
// speed must be configured beforehand.
//
// Built with TinyGo, Open configures machine.Serial instead and ignores
// Config.Port.
package serialport
