package sensor

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sweeney/climate-panel/internal/logic"
)

// DefaultIIODir is where the kernel dht11 driver exposes the sensor.
const DefaultIIODir = "/sys/bus/iio/devices/iio:device0"

// IIO channel files, values in milli-units.
const (
	iioTemperature = "in_temp_input"
	iioHumidity    = "in_humidityrelative_input"
)

// IIOReader reads a DHT11 through the Linux industrial I/O subsystem.
// The kernel driver performs the single-wire protocol; a failed
// transaction surfaces as a read error (EIO/ETIMEDOUT) on the channel file.
type IIOReader struct {
	dir string
}

// NewIIOReader returns a reader for the IIO device directory dir.
// It fails if the directory does not expose both channels.
func NewIIOReader(dir string) (*IIOReader, error) {
	for _, name := range []string{iioTemperature, iioHumidity} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return nil, fmt.Errorf("iio channel %s: %w", name, err)
		}
	}
	return &IIOReader{dir: dir}, nil
}

// Read returns the quantity rounded to whole units (°C or %RH).
func (r *IIOReader) Read(q logic.Quantity) (int, error) {
	name := iioHumidity
	if q == logic.QuantityTemperature {
		name = iioTemperature
	}

	raw, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrReadFailed, q, err)
	}
	return parseMilli(string(raw))
}

func parseMilli(s string) (int, error) {
	milli, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: parse %q: %v", ErrReadFailed, s, err)
	}
	if milli < 0 {
		return -((-milli + 500) / 1000), nil
	}
	return (milli + 500) / 1000, nil
}
