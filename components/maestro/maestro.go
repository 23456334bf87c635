// Package maestro drives two daisy chained Maestro servo controllers
// over a single serial link, presenting their 2x12 channels as one
// 24 channel space. Commands for channels 0-11 are addressed to the
// primary device, 12-23 to the secondary.
package maestro

import (
	"io"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "maestro",
})

// Transport is the serial link shared by both devices. FlushInput
// discards any response bytes still pending, which is the only way to
// get the framing back in sync after a short read; the protocol has no
// checksum, so a desynchronized stream is otherwise undetectable.
type Transport interface {
	io.ReadWriter
	FlushInput() error
}

// Controller speaks the chained-device protocol over a Transport.
type Controller struct {
	port Transport
}

func NewController(port Transport) *Controller {
	return &Controller{port: port}
}

func validChannel(channel int) error {
	if channel < 0 || channel >= Channels {
		return &ValidationError{Field: "channel", Value: channel, Min: 0, Max: Channels - 1}
	}
	return nil
}

func validPulse(pulse int) error {
	if pulse < MinPulse || pulse > MaxPulse {
		return &ValidationError{Field: "pulse width", Value: pulse, Min: MinPulse, Max: MaxPulse}
	}
	return nil
}

func (c *Controller) write(cmd []byte) error {
	log.Debugf("write: % x", cmd)
	_, err := c.port.Write(cmd)
	return err
}

// readResponse reads up to len(buf) response bytes, stopping early when
// the port reports nothing more within its deadline.
func (c *Controller) readResponse(buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := c.port.Read(buf[total:])
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, err
		}
		if n == 0 {
			break
		}
	}
	return total, nil
}

// SetTarget commands a single channel to the given pulse width (us).
func (c *Controller) SetTarget(channel, pulse int) error {
	if err := validChannel(channel); err != nil {
		return err
	}
	if err := validPulse(pulse); err != nil {
		return err
	}

	device, local := deviceFor(channel)
	lo, hi := encodeTarget(pulse)
	return c.write(command(device, opSetTarget, local, lo, hi))
}

// SetMultipleTargets commands a contiguous run of channels in a single
// bulk command per device. A run which straddles the boundary between
// the two devices is split so that each device's command covers exactly
// its own channels; the secondary device's command is written first, so
// both devices begin moving as close to together as the link allows.
func (c *Controller) SetMultipleTargets(start int, pulses ...int) error {
	if err := validChannel(start); err != nil {
		return err
	}
	if start+len(pulses) > Channels {
		return &RangeError{Start: start, Count: len(pulses)}
	}
	for _, p := range pulses {
		if err := validPulse(p); err != nil {
			return err
		}
	}
	if len(pulses) == 0 {
		return nil
	}

	first := pulses
	var second []int
	if start < channelsPerDevice && start+len(pulses) > channelsPerDevice {
		split := channelsPerDevice - start
		first, second = pulses[:split], pulses[split:]
	}

	if second != nil {
		if err := c.writeTargets(deviceSecondary, 0, second); err != nil {
			return err
		}
	}

	device, local := deviceFor(start)
	return c.writeTargets(device, int(local), first)
}

func (c *Controller) writeTargets(device byte, local int, pulses []int) error {
	payload := make([]byte, 0, 2+2*len(pulses))
	payload = append(payload, byte(len(pulses)), byte(local)&0x7F)
	for _, p := range pulses {
		lo, hi := encodeTarget(p)
		payload = append(payload, lo, hi)
	}
	return c.write(command(device, opSetMultipleTargets, payload...))
}

// SetSpeed caps how fast a channel may move, in units of 0.25us per
// 10ms. A cap of zero removes the limit entirely; planning code which
// does not mean that must clamp to at least 1.
func (c *Controller) SetSpeed(channel, speed int) error {
	return c.setLimit(opSetSpeed, channel, speed)
}

// SetAcceleration caps how fast a channel's speed may change, in units
// of 0.25us per 10ms per 80ms. The device ramps up to the speed cap,
// cruises, and ramps down symmetrically approaching the target. As with
// SetSpeed, zero means unlimited.
func (c *Controller) SetAcceleration(channel, accel int) error {
	return c.setLimit(opSetAcceleration, channel, accel)
}

func (c *Controller) setLimit(op byte, channel, value int) error {
	if err := validChannel(channel); err != nil {
		return err
	}

	device, local := deviceFor(channel)
	return c.write(command(device, op, local, byte(value&0xFF), byte((value>>8)&0xFF)))
}

// GetPosition reads the pulse width the channel's device is currently
// driving. ok is false when the device did not answer with both
// response bytes before the transport deadline; pending input is
// flushed so the next command starts on a clean frame.
func (c *Controller) GetPosition(channel int) (pos int, ok bool, err error) {
	if err := validChannel(channel); err != nil {
		return 0, false, err
	}

	device, local := deviceFor(channel)
	if err := c.write(command(device, opGetPosition, local)); err != nil {
		return 0, false, err
	}

	var buf [2]byte
	n, err := c.readResponse(buf[:])
	if err != nil {
		return 0, false, err
	}
	if n < 2 {
		log.WithFields(logrus.Fields{"channel": channel, "bytes": n}).Warn("short position response, flushing input")
		if err := c.port.FlushInput(); err != nil {
			return 0, false, err
		}
		return 0, false, nil
	}

	return decodePosition(buf[0], buf[1]), true, nil
}

// Moving reports whether any channel on either device is still on its
// way to a target. A device which does not answer before the deadline
// is taken to have stopped.
func (c *Controller) Moving() (bool, error) {
	for _, device := range []byte{devicePrimary, deviceSecondary} {
		if err := c.write(command(device, opGetMovingState)); err != nil {
			return false, err
		}

		var buf [1]byte
		n, err := c.readResponse(buf[:])
		if err != nil {
			return false, err
		}
		if n < 1 {
			if err := c.port.FlushInput(); err != nil {
				return false, err
			}
			continue
		}
		if buf[0] != 0 {
			return true, nil
		}
	}
	return false, nil
}

// Home returns every channel to its power-on home position. The command
// is addressed to the primary device.
func (c *Controller) Home() error {
	return c.write(command(devicePrimary, opGoHome))
}
