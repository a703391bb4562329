package device

import (
	"fmt"

	"github.com/rs/zerolog"
	"go.bug.st/serial"
)

// DefaultBaudRate matches the UART speed the device firmware listens at.
const DefaultBaudRate = 115200

// OpenSerial opens the given serial port and returns a transport speaking
// the newline-framed command protocol over it.
func OpenSerial(port string, baud int, logger *zerolog.Logger) (Transport, error) {
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	p, err := serial.Open(port, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", port, err)
	}
	logger.Info().Str("port", port).Int("baud", baud).Msg("serial device opened")
	return NewWriter(port, p, logger), nil
}
