// Package pose defines the named positions the spider can strike, and
// the safe routes between them.
package pose

import (
	"fmt"
	"sort"
)

const (
	Legs         = 6
	ServosPerLeg = 4

	// Channels is the total servo count, and the width of the
	// controller's merged channel space.
	Channels = Legs * ServosPerLeg

	// Pulse widths (us) the controllers will accept as targets.
	MinPulse = 736
	MaxPulse = 2272
)

// Resting is the pose the spider returns to between movements, and the
// fallback waypoint when two poses share no safe route.
const Resting = "park"

// Pose holds a target pulse width for each servo, grouped by leg, plus
// the safe route waypoints the pose can reach directly without the legs
// fouling each other. Poses are value types; the named table built at
// init is never mutated.
type Pose struct {
	Legs   [Legs][ServosPerLeg]int
	Routes []string
}

// Channels flattens the per-leg values into channel order: leg 0 on
// channels 0-3, leg 1 on 4-7, and so on.
func (p Pose) Channels() [Channels]int {
	var out [Channels]int
	for i := range out {
		out[i] = p.Legs[i/ServosPerLeg][i%ServosPerLeg]
	}
	return out
}

// Diff returns the absolute distance each channel travels between p and
// other. This is what each servo covers during a transition, which is
// what speed and acceleration planning needs.
func (p Pose) Diff(other Pose) [Channels]int {
	a, b := p.Channels(), other.Channels()
	var out [Channels]int
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		out[i] = d
	}
	return out
}

// Named returns the pose registered under name.
func Named(name string) (Pose, error) {
	p, ok := table[name]
	if !ok {
		return Pose{}, fmt.Errorf("pose: no pose named %q", name)
	}
	return p, nil
}

// Names returns every registered pose name, sorted.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
