package adc

import (
	log "github.com/sirupsen/logrus"
)

var logger = log.WithFields(log.Fields{
	"pkg": "fakeadc",
})

// FakeADC serves scripted per-channel readings, cycling when a
// channel's script runs out. It stands in for the rangefinder ADC in
// proximity tests.
type FakeADC struct {
	// Readings holds the values to serve, per channel.
	Readings map[int][]float64

	next map[int]int
}

func (f *FakeADC) ReadCentimeters(channel int) (float64, error) {
	if f.next == nil {
		f.next = make(map[int]int)
	}

	vals := f.Readings[channel]
	if len(vals) == 0 {
		logger.Debugf("read channel %d: no script", channel)
		return 0, nil
	}

	v := vals[f.next[channel]%len(vals)]
	f.next[channel]++
	return v, nil
}
