// Package animator moves the spider between named poses, planning a
// safe waypoint and per-servo speed caps so that all 24 servos arrive
// together.
package animator

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sitbon/spider/kinematics"
	"github.com/sitbon/spider/pose"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "animator",
})

// Link is the subset of the servo controller the animator drives.
type Link interface {
	SetSpeed(channel, speed int) error
	SetAcceleration(channel, accel int) error
	SetMultipleTargets(start int, pulses ...int) error
	GetPosition(channel int) (pos int, ok bool, err error)
}

// settleTolerance is how close (in pulse width units) a servo's
// reported position must be to its target to count as arrived.
const settleTolerance = 20

// Config selects the transition strategy.
type Config struct {
	// WaitForSettle blocks between the two hops of a transition until
	// the servos report they have reached the waypoint. When false the
	// second hop is issued as soon as the first is on the wire, and the
	// devices blend the motion themselves.
	WaitForSettle bool

	// SettleTimeout bounds the settle poll; a servo which never reports
	// within tolerance would otherwise block forever. On expiry the
	// transition proceeds as though settled, with a warning.
	SettleTimeout time.Duration

	// PollInterval is the delay between position reads while settling.
	PollInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		WaitForSettle: true,
		SettleTimeout: 10 * time.Second,
		PollInterval:  10 * time.Millisecond,
	}
}

// Animator owns the spider's animation state: which pose it last fully
// reached, and whether a transition is in progress. It is built for a
// single caller; a second animation requested while one is running is
// dropped, not queued.
type Animator struct {
	link Link
	cfg  Config

	// current is only advanced when a transition fully completes, so
	// after a transport error it still names the last good pose, and
	// the hardware must be re-queried to find out where the legs are.
	current   string
	animating atomic.Bool
}

// New returns an animator which assumes the mechanism is at the resting
// pose, which is where Boot leaves it.
func New(link Link, cfg Config) *Animator {
	return &Animator{
		link:    link,
		cfg:     cfg,
		current: pose.Resting,
	}
}

// Current returns the name of the last pose that was fully reached.
func (a *Animator) Current() string {
	return a.current
}

// AnimateTo moves the spider to the named pose via a safe waypoint.
// durations holds each leg's time budget in milliseconds; the waypoint
// hop and the final hop each get half. A call made while another
// animation is running does nothing.
func (a *Animator) AnimateTo(name string, durations [pose.Legs]int) error {
	if !a.animating.CompareAndSwap(false, true) {
		return nil
	}
	defer a.animating.Store(false)

	return a.animateTo(name, durations)
}

func (a *Animator) animateTo(name string, durations [pose.Legs]int) error {
	target, err := pose.Named(name)
	if err != nil {
		return err
	}
	current, err := pose.Named(a.current)
	if err != nil {
		return err
	}

	route := pose.CommonRoute(current.Routes, target.Routes)
	waypoint, err := pose.Named(route)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"from":     a.current,
		"to":       name,
		"waypoint": route,
	}).Info("animating")

	var halves [pose.Legs]int
	for i, d := range durations {
		halves[i] = d / 2
	}

	if err := a.move(current, waypoint, halves); err != nil {
		return err
	}
	if err := a.move(waypoint, target, halves); err != nil {
		return err
	}

	a.current = name
	return nil
}

// move plans and issues one synchronized hop. Speed and acceleration
// caps are written for every channel first, then a single bulk target
// command, so all servos begin moving together.
func (a *Animator) move(from, to pose.Pose, durations [pose.Legs]int) error {
	dist := from.Diff(to)
	for ch := 0; ch < pose.Channels; ch++ {
		ms := durations[ch/pose.ServosPerLeg]
		speed, accel := kinematics.SpeedAccel(float64(ms), float64(dist[ch]), 0)

		if err := a.link.SetSpeed(ch, speed); err != nil {
			return err
		}
		if err := a.link.SetAcceleration(ch, accel); err != nil {
			return err
		}
	}

	targets := to.Channels()
	if err := a.link.SetMultipleTargets(0, targets[:]...); err != nil {
		return err
	}

	if !a.cfg.WaitForSettle {
		return nil
	}
	return a.settle(dist, targets)
}

// settle polls the channel with the furthest to travel until it reports
// within tolerance of its target. A channel whose position can no
// longer be read is taken to have stopped. The poll is bounded: past
// SettleTimeout the transition proceeds rather than hang on a servo
// that will never answer.
func (a *Animator) settle(dist, targets [pose.Channels]int) error {
	ch := 0
	for i, d := range dist {
		if d > dist[ch] {
			ch = i
		}
	}
	target := targets[ch]

	deadline := time.Now().Add(a.cfg.SettleTimeout)
	for {
		pos, ok, err := a.link.GetPosition(ch)
		if err != nil {
			return err
		}
		if !ok {
			log.WithFields(logrus.Fields{"channel": ch}).Debug("position unknown, treating as settled")
			return nil
		}
		if abs(pos-target) <= settleTolerance {
			return nil
		}
		if time.Now().After(deadline) {
			log.WithFields(logrus.Fields{
				"channel":  ch,
				"position": pos,
				"target":   target,
			}).Warn("settle timed out, proceeding")
			return nil
		}

		time.Sleep(a.cfg.PollInterval)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
