// Package proximity estimates the distance to whatever is in front of
// the spider, filtering two noisy rangefinder channels down to a single
// reading.
package proximity

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "proximity",
})

// ADC reads one rangefinder channel, already converted to centimeters.
type ADC interface {
	ReadCentimeters(channel int) (float64, error)
}

const (
	// DefaultSamples is how many readings are taken per channel for
	// each estimate.
	DefaultSamples = 21

	// DefaultRejectThreshold (cm) is how far a channel's median may sit
	// from the cross-channel mean before it is rejected as an outlier.
	DefaultRejectThreshold = 40
)

// Sensor produces a single distance estimate from two rangefinder
// channels pointed at the same spot.
type Sensor struct {
	adc      ADC
	channels [2]int

	// Samples and RejectThreshold may be tuned before the first Read.
	Samples         int
	RejectThreshold float64
}

func NewSensor(adc ADC, channels [2]int) *Sensor {
	return &Sensor{
		adc:             adc,
		channels:        channels,
		Samples:         DefaultSamples,
		RejectThreshold: DefaultRejectThreshold,
	}
}

// Read returns a best-estimate distance in centimeters. Each channel is
// sampled repeatedly and median filtered to drop spikes. When the two
// medians disagree by more than the rejection threshold, one sensor is
// probably seeing past the target, so the channel reporting the closer
// object wins; otherwise the estimate is their mean.
func (s *Sensor) Read() (float64, error) {
	var medians [2]float64
	for i, ch := range s.channels {
		samples := make([]float64, s.Samples)
		for j := range samples {
			v, err := s.adc.ReadCentimeters(ch)
			if err != nil {
				return 0, fmt.Errorf("%s (while sampling channel %d)", err, ch)
			}
			samples[j] = v
		}
		sort.Float64s(samples)
		medians[i] = samples[len(samples)/2]
	}

	mean := (medians[0] + medians[1]) / 2
	if math.Abs(medians[0]-mean) >= s.RejectThreshold {
		closer := math.Min(medians[0], medians[1])
		log.WithFields(logrus.Fields{
			"medians": medians,
			"closer":  closer,
		}).Debug("channels disagree, preferring closer reading")
		return closer, nil
	}

	return mean, nil
}
