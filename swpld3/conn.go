// Copyright © 2024 Nokia. All rights reserved.
// Use of this source code is governed by the GPL-3 license described in the
// LICENSE file.

package swpld3

import "github.com/platinasystems/i2c"

// DefaultAddr is the SWPLD3 address on its management i2c bus.
const DefaultAddr = 0x35

// BusConn is the production Conn: an SMBus slave doing byte-data
// transactions through /dev/i2c-N.
type BusConn struct {
	bus      i2c.Bus
	features i2c.FeatureFlag
}

// Open binds the CPLD at the given bus index and slave address.
func Open(index, addr int) (*BusConn, error) {
	c := new(BusConn)
	if err := c.bus.Open(index); err != nil {
		return nil, err
	}
	if err := c.bus.ForceSlaveAddress(addr); err != nil {
		c.bus.Close()
		return nil, err
	}
	features, err := c.bus.GetFeatures()
	if err != nil {
		c.bus.Close()
		return nil, err
	}
	c.features = features
	return c, nil
}

func (c *BusConn) ReadByteData(reg uint8) (uint8, error) {
	var data i2c.SMBusData
	if err := c.bus.Do(i2c.Read, reg, i2c.ByteData, &data); err != nil {
		return 0, err
	}
	return data[0], nil
}

func (c *BusConn) WriteByteData(reg uint8, v uint8) error {
	var data i2c.SMBusData
	data[0] = v
	return c.bus.Do(i2c.Write, reg, i2c.ByteData, &data)
}

func (c *BusConn) SupportsByteData() bool {
	want := i2c.SMBUS_Read_Byte_Data | i2c.SMBUS_Write_Byte_Data
	return c.features&want == want
}

func (c *BusConn) Close() error { return c.bus.Close() }
