package orientation

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/adxl345"

	"github.com/sweeney/climate-panel/internal/logic"
)

// DefaultAddress is the ADXL345 address with SDO tied low.
const DefaultAddress = adxl345.AddressLow

// ADXL345Reader samples an ADXL345 over any drivers.I2C bus (a periph.io
// bus on Linux, machine.I2C0 under TinyGo).
type ADXL345Reader struct {
	dev adxl345.Device
}

// NewADXL345Reader configures the accelerometer for measurement.
func NewADXL345Reader(bus drivers.I2C, addr uint16) *ADXL345Reader {
	dev := adxl345.New(bus)
	dev.Address = addr
	dev.Configure()
	return &ADXL345Reader{dev: dev}
}

// ReadAcceleration returns the raw axis counts.
func (r *ADXL345Reader) ReadAcceleration() (logic.Acceleration, error) {
	x, y, z := r.dev.ReadRawAcceleration()
	return logic.Acceleration{X: int16(x), Y: int16(y), Z: int16(z)}, nil
}

// Close puts the accelerometer in standby.
func (r *ADXL345Reader) Close() error {
	r.dev.Halt()
	return nil
}
