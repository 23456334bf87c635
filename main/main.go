package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jacobsa/go-serial/serial"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/sitbon/spider"
	"github.com/sitbon/spider/components/animator"
	"github.com/sitbon/spider/components/maestro"
	"github.com/sitbon/spider/pose"
)

type Options struct {
	Port   string `long:"port" default:"/dev/ttyMFD1" description:"the serial port path"`
	Debug  bool   `long:"debug" description:"show serial traffic"`
	NoWait bool   `long:"no-wait" description:"don't wait for servos to settle between transition hops"`

	Home  HomeCommand  `command:"home" description:"Return all servos to their home position"`
	Pose  PoseCommand  `command:"pose" description:"Animate to a named pose"`
	Play  PlayCommand  `command:"play" description:"Run a named animation script"`
	Watch WatchCommand `command:"watch" description:"Poll and print a channel's position"`
	Demo  DemoCommand  `command:"demo" description:"Extend, then park again"`
}

var opts Options
var parser = flags.NewParser(&opts, flags.Default)

func main() {
	parser.LongDescription = "Drive the spider's 24 servos through poses and animation scripts."

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

// dial opens the serial port, boots the spider to its resting pose, and
// returns it ready to animate.
func dial() (*spider.Spider, error) {
	if opts.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	port, err := serial.Open(serial.OpenOptions{
		PortName:              opts.Port,
		BaudRate:              9600,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       0,
		InterCharacterTimeout: 500,
	})
	if err != nil {
		return nil, fmt.Errorf("error opening serial port: %s", err)
	}

	cfg := animator.DefaultConfig()
	cfg.WaitForSettle = !opts.NoWait

	s := spider.New(maestro.Wrap(port), cfg)
	if err := s.Boot(); err != nil {
		return nil, fmt.Errorf("error while booting: %s", err)
	}
	return s, nil
}

func legDurations(ms int) [pose.Legs]int {
	return [pose.Legs]int{ms, ms, ms, ms, ms, ms}
}

type HomeCommand struct{}

func (c *HomeCommand) Execute(args []string) error {
	s, err := dial()
	if err != nil {
		return err
	}
	return s.Link.Home()
}

type PoseCommand struct {
	Duration int `long:"duration" default:"1500" description:"per-leg transition time (ms)"`
	Args     struct {
		Name string `positional-arg-name:"name" required:"true"`
	} `positional-args:"true"`
}

func (c *PoseCommand) Execute(args []string) error {
	if _, err := pose.Named(c.Args.Name); err != nil {
		return fmt.Errorf("%s (known poses: %v)", err, pose.Names())
	}

	s, err := dial()
	if err != nil {
		return err
	}
	return s.Animator.AnimateTo(c.Args.Name, legDurations(c.Duration))
}

type PlayCommand struct {
	Args struct {
		Script string `positional-arg-name:"script" required:"true"`
	} `positional-args:"true"`
}

func (c *PlayCommand) Execute(args []string) error {
	s, err := dial()
	if err != nil {
		return err
	}
	if err := s.Animator.Play(c.Args.Script); err != nil {
		return fmt.Errorf("%s (known scripts: %v)", err, animator.Scripts())
	}
	return nil
}

type WatchCommand struct {
	Interval int `long:"interval" default:"1000" description:"the time between reads (ms)"`
	Args     struct {
		Channel int `positional-arg-name:"channel" required:"true"`
	} `positional-args:"true"`
}

func (c *WatchCommand) Execute(args []string) error {
	s, err := dial()
	if err != nil {
		return err
	}

	for {
		pos, ok, err := s.Link.GetPosition(c.Args.Channel)
		if err != nil {
			return err
		}
		if ok {
			fmt.Printf("channel %d = %d\n", c.Args.Channel, pos)
		} else {
			fmt.Printf("channel %d = unknown\n", c.Args.Channel)
		}

		time.Sleep(time.Duration(c.Interval) * time.Millisecond)
	}
}

type DemoCommand struct{}

func (c *DemoCommand) Execute(args []string) error {
	s, err := dial()
	if err != nil {
		return err
	}

	fmt.Println("Animate EXTEND")
	if err := s.Animator.AnimateTo("extend", legDurations(1500)); err != nil {
		return err
	}

	for {
		moving, err := s.Link.Moving()
		if err != nil {
			return err
		}
		if !moving {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	fmt.Println("Animate PARK")
	return s.Animator.AnimateTo("park", legDurations(1500))
}
