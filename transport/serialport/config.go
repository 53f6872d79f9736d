package serialport

// DefaultBaud matches the usual bootloader console speed
const DefaultBaud = 9600

// Config holds configuration for a serial port transport
type Config struct {
	// Port names the port. On hosts this is a periph.io UART name or alias
	// ("" picks the first registered port) or a device path such as
	// /dev/ttyUSB0. It is ignored on TinyGo, which always uses machine.Serial.
	Port string
	// Baud is the line speed (default: 9600)
	Baud int
}

func applyDefaults(cfg *Config) {
	if cfg.Baud <= 0 {
		cfg.Baud = DefaultBaud
	}
}
