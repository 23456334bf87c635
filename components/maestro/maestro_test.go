package maestro

import (
	"bytes"
	"errors"
	"testing"

	fake "github.com/sitbon/spider/fake/serial"
)

func controller() (*Controller, *fake.FakeSerial) {
	port := &fake.FakeSerial{}
	return NewController(port), port
}

func TestSetTarget(t *testing.T) {
	c, port := controller()

	if err := c.SetTarget(0, 1500); err != nil {
		t.Fatal(err)
	}

	exp := []byte{0xAA, 0x0C, 0x04, 0x00, 0x70, 0x2E}
	if len(port.Writes) != 1 || !bytes.Equal(port.Writes[0], exp) {
		t.Errorf("got % x, expected % x", port.Writes, exp)
	}
}

func TestSetTargetSecondaryDevice(t *testing.T) {
	c, port := controller()

	if err := c.SetTarget(13, 1500); err != nil {
		t.Fatal(err)
	}

	exp := []byte{0xAA, 0x0D, 0x04, 0x01, 0x70, 0x2E}
	if len(port.Writes) != 1 || !bytes.Equal(port.Writes[0], exp) {
		t.Errorf("got % x, expected % x", port.Writes, exp)
	}
}

func TestSetTargetValidation(t *testing.T) {
	data := []struct {
		channel, pulse int
	}{
		{-1, 1500},
		{24, 1500},
		{0, 735},
		{0, 2273},
	}

	for i, eg := range data {
		c, port := controller()
		err := c.SetTarget(eg.channel, eg.pulse)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Example #%d: got %v, expected a ValidationError", i+1, err)
		}
		if len(port.Writes) != 0 {
			t.Errorf("Example #%d: %d bytes written after a rejected command", i+1, len(port.Writes))
		}
	}
}

func TestSetSpeed(t *testing.T) {
	c, port := controller()

	// 300 = 0x012C, split into full 8-bit bytes.
	if err := c.SetSpeed(3, 300); err != nil {
		t.Fatal(err)
	}

	exp := []byte{0xAA, 0x0C, 0x07, 0x03, 0x2C, 0x01}
	if len(port.Writes) != 1 || !bytes.Equal(port.Writes[0], exp) {
		t.Errorf("got % x, expected % x", port.Writes, exp)
	}
}

func TestSetAcceleration(t *testing.T) {
	c, port := controller()

	if err := c.SetAcceleration(14, 13); err != nil {
		t.Fatal(err)
	}

	exp := []byte{0xAA, 0x0D, 0x09, 0x02, 0x0D, 0x00}
	if len(port.Writes) != 1 || !bytes.Equal(port.Writes[0], exp) {
		t.Errorf("got % x, expected % x", port.Writes, exp)
	}
}

func TestSetMultipleTargetsSingleDevice(t *testing.T) {
	c, port := controller()

	if err := c.SetMultipleTargets(4, 1500, 1500, 1500, 1500); err != nil {
		t.Fatal(err)
	}

	if len(port.Writes) != 1 {
		t.Fatalf("got %d commands, expected 1", len(port.Writes))
	}

	cmd := port.Writes[0]
	exp := []byte{0xAA, 0x0C, 0x1F, 0x04, 0x04}
	if !bytes.Equal(cmd[:5], exp) {
		t.Errorf("header: got % x, expected % x", cmd[:5], exp)
	}
	if len(cmd) != 5+2*4 {
		t.Errorf("got %d bytes, expected %d", len(cmd), 5+2*4)
	}
}

func TestSetMultipleTargetsStraddle(t *testing.T) {
	c, port := controller()

	// Channels 10-13: two on each device.
	pulses := []int{1000, 1100, 1200, 1300}
	if err := c.SetMultipleTargets(10, pulses...); err != nil {
		t.Fatal(err)
	}

	if len(port.Writes) != 2 {
		t.Fatalf("got %d commands, expected 2", len(port.Writes))
	}

	// The secondary device's command goes out first, covering local
	// channels 0-1 with the tail of the run.
	second := port.Writes[0]
	if second[1] != 0x0D || second[3] != 2 || second[4] != 0 {
		t.Errorf("secondary header: got % x", second[:5])
	}

	first := port.Writes[1]
	if first[1] != 0x0C || first[3] != 2 || first[4] != 10 {
		t.Errorf("primary header: got % x", first[:5])
	}

	// Together the two commands must cover the run exactly: no overlap,
	// no gap, and each pulse on the channel it was given for.
	if int(first[3])+int(second[3]) != len(pulses) {
		t.Errorf("commands cover %d channels, expected %d", first[3]+second[3], len(pulses))
	}
	for i, p := range pulses[:2] {
		lo, hi := encodeTarget(p)
		if first[5+2*i] != lo || first[6+2*i] != hi {
			t.Errorf("primary target %d: got (%#x, %#x), expected (%#x, %#x)", i, first[5+2*i], first[6+2*i], lo, hi)
		}
	}
	for i, p := range pulses[2:] {
		lo, hi := encodeTarget(p)
		if second[5+2*i] != lo || second[6+2*i] != hi {
			t.Errorf("secondary target %d: got (%#x, %#x), expected (%#x, %#x)", i, second[5+2*i], second[6+2*i], lo, hi)
		}
	}
}

func TestSetMultipleTargetsFullSpan(t *testing.T) {
	c, port := controller()

	pulses := make([]int, Channels)
	for i := range pulses {
		pulses[i] = 1500
	}
	if err := c.SetMultipleTargets(0, pulses...); err != nil {
		t.Fatal(err)
	}

	if len(port.Writes) != 2 {
		t.Fatalf("got %d commands, expected 2", len(port.Writes))
	}
	if port.Writes[0][3] != 12 || port.Writes[1][3] != 12 {
		t.Errorf("got %d+%d channels, expected 12+12", port.Writes[0][3], port.Writes[1][3])
	}
}

func TestSetMultipleTargetsRange(t *testing.T) {
	c, port := controller()

	err := c.SetMultipleTargets(20, 1500, 1500, 1500, 1500, 1500)

	var rerr *RangeError
	if !errors.As(err, &rerr) {
		t.Errorf("got %v, expected a RangeError", err)
	}
	if len(port.Writes) != 0 {
		t.Errorf("%d bytes written after a rejected command", len(port.Writes))
	}
}

func TestGetPosition(t *testing.T) {
	c, port := controller()
	port.Responses = [][]byte{{0x70, 0x17}} // 6000 quarter-us

	pos, ok, err := c.GetPosition(5)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || pos != 1500 {
		t.Errorf("got (%d, %v), expected (1500, true)", pos, ok)
	}

	exp := []byte{0xAA, 0x0C, 0x10, 0x05}
	if len(port.Writes) != 1 || !bytes.Equal(port.Writes[0], exp) {
		t.Errorf("got % x, expected % x", port.Writes, exp)
	}
}

func TestGetPositionShortResponse(t *testing.T) {
	c, port := controller()
	port.Responses = [][]byte{{0x70}} // one byte, then silence

	pos, ok, err := c.GetPosition(5)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Errorf("got (%d, true), expected unknown", pos)
	}
	if port.Flushes != 1 {
		t.Errorf("got %d flushes, expected 1: a short read must resynchronize the link", port.Flushes)
	}
}

func TestGetPositionNoResponse(t *testing.T) {
	c, _ := controller()

	_, ok, err := c.GetPosition(23)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected unknown when the device stays silent")
	}
}

func TestMoving(t *testing.T) {
	data := []struct {
		responses [][]byte
		exp       bool
	}{
		{[][]byte{{0x01}}, true},          // primary moving; secondary not asked
		{[][]byte{{0x00}, {0x01}}, true},  // only secondary moving
		{[][]byte{{0x00}, {0x00}}, false}, // both stopped
		{nil, false},                      // nobody answers
	}

	for i, eg := range data {
		c, port := controller()
		port.Responses = eg.responses

		moving, err := c.Moving()
		if err != nil {
			t.Fatal(err)
		}
		if moving != eg.exp {
			t.Errorf("Example #%d: got %v, expected %v", i+1, moving, eg.exp)
		}
	}
}

func TestMovingQueriesBothDevices(t *testing.T) {
	c, port := controller()
	port.Responses = [][]byte{{0x00}, {0x00}}

	if _, err := c.Moving(); err != nil {
		t.Fatal(err)
	}

	if len(port.Writes) != 2 {
		t.Fatalf("got %d commands, expected one per device", len(port.Writes))
	}
	if port.Writes[0][1] != 0x0C || port.Writes[1][1] != 0x0D {
		t.Errorf("queried devices %#x and %#x, expected 0x0c then 0x0d", port.Writes[0][1], port.Writes[1][1])
	}
}

func TestHome(t *testing.T) {
	c, port := controller()

	if err := c.Home(); err != nil {
		t.Fatal(err)
	}

	exp := []byte{0xAA, 0x0C, 0x22}
	if len(port.Writes) != 1 || !bytes.Equal(port.Writes[0], exp) {
		t.Errorf("got % x, expected % x", port.Writes, exp)
	}
}
