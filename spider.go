// Package spider ties the servo controllers, the pose table, and the
// animator together into one six-legged walking mechanism.
package spider

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sitbon/spider/components/animator"
	"github.com/sitbon/spider/components/maestro"
	"github.com/sitbon/spider/pose"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "spider",
})

// Conservative caps used while parking at boot, when the mechanism's
// actual position is unknown and slamming the legs must be avoided.
const (
	bootSpeed = 10
	bootAccel = 10
)

// Spider owns one serial link to the chained controllers and the
// animation state built on top of it.
type Spider struct {
	Link     *maestro.Controller
	Animator *animator.Animator

	onProximity func(cm float64)
}

// New wires a spider on top of the given transport.
func New(port maestro.Transport, cfg animator.Config) *Spider {
	link := maestro.NewController(port)
	return &Spider{
		Link:     link,
		Animator: animator.New(link, cfg),
	}
}

// Boot drives every servo slowly to the resting pose, which is the
// position the animator assumes it starts from.
func (s *Spider) Boot() error {
	resting, err := pose.Named(pose.Resting)
	if err != nil {
		return err
	}

	for ch := 0; ch < pose.Channels; ch++ {
		if err := s.Link.SetSpeed(ch, bootSpeed); err != nil {
			return fmt.Errorf("%s (while capping speed of channel %d)", err, ch)
		}
		if err := s.Link.SetAcceleration(ch, bootAccel); err != nil {
			return fmt.Errorf("%s (while capping acceleration of channel %d)", err, ch)
		}
	}

	targets := resting.Channels()
	if err := s.Link.SetMultipleTargets(0, targets[:]...); err != nil {
		return err
	}

	log.Info("booted to resting pose")
	return nil
}

// RangeFinder is anything able to produce a single distance estimate.
// The proximity component satisfies it.
type RangeFinder interface {
	Read() (float64, error)
}

// SetProximityHandler registers the hook which turns distance readings
// into pose selection. Without one, readings are only logged.
func (s *Spider) SetProximityHandler(fn func(cm float64)) {
	s.onProximity = fn
}

// PollProximity takes one reading from the sensor and hands it to the
// registered handler.
func (s *Spider) PollProximity(sensor RangeFinder) error {
	cm, err := sensor.Read()
	if err != nil {
		return err
	}

	if s.onProximity != nil {
		s.onProximity(cm)
		return nil
	}

	log.WithFields(logrus.Fields{"cm": cm}).Info("proximity reading")
	return nil
}
