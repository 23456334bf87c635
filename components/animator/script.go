package animator

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sitbon/spider/pose"
)

// Step is one element of a script: either strike a pose over the given
// per-leg durations, or pause. A step with an empty pose name is a
// pause.
type Step struct {
	Pose      string
	Durations [pose.Legs]int
	PauseMs   int
}

func strike(name string, ms int) Step {
	return Step{Pose: name, Durations: [pose.Legs]int{ms, ms, ms, ms, ms, ms}}
}

func pause(ms int) Step {
	return Step{PauseMs: ms}
}

// The script table, built once. Timings were tuned on the live
// mechanism alongside the pose table.
var scripts = map[string][]Step{
	"park":   {strike("park", 1500)},
	"extend": {strike("extend", 1500)},
	"breathe": {
		strike("extend", 1500),
		strike("park", 1500),
		strike("extend_half", 1500),
		strike("park", 1500),
	},
	"knife": {
		strike("knife", 600),
		pause(500),
		strike("park", 1000),
	},
	"attack": {
		strike("extend", 750),
		strike("park", 1500),
	},
	"point": {
		strike("point", 1500),
		strike("park", 1500),
	},
	"jugendstil": {
		strike("jugendstil_half", 1500),
		pause(750),
		strike("jugendstil", 1500),
		pause(900),
		strike("park", 1500),
	},
	"challenge": {
		strike("challenge", 1500),
		pause(1000),
		strike("park", 1500),
	},
	"wiggle": {
		strike("wiggle_up", 750),
		strike("wiggle_down", 100),
		strike("wiggle_up", 100),
		strike("wiggle_down", 100),
		strike("wiggle_up", 100),
		strike("park", 750),
	},
}

// Scripts returns every registered script name, sorted.
func Scripts() []string {
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Play runs the named script, step by step, in the calling goroutine.
// Like AnimateTo, it does nothing if an animation is already running.
// An error from the link aborts the script; the current pose stays at
// whatever the last completed step reached.
func (a *Animator) Play(name string) error {
	script, ok := scripts[name]
	if !ok {
		return fmt.Errorf("animator: no script named %q", name)
	}

	if !a.animating.CompareAndSwap(false, true) {
		return nil
	}
	defer a.animating.Store(false)

	log.WithFields(logrus.Fields{"script": name, "steps": len(script)}).Info("playing script")

	for _, step := range script {
		if step.Pose == "" {
			// The extra 100ms absorbs command latency on the link.
			time.Sleep(time.Duration(step.PauseMs+100) * time.Millisecond)
			continue
		}
		if err := a.animateTo(step.Pose, step.Durations); err != nil {
			return err
		}
	}
	return nil
}
