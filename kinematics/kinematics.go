// Package kinematics converts pose transition times into the speed and
// acceleration units understood by the servo controllers.
package kinematics

// The controllers measure speed in 0.25us per 10ms, and acceleration in
// 0.25us per 10ms per 80ms. These factors convert from us/ms units.
const (
	speedUnit = 10 / 0.25
	accelUnit = 10 * 80 / 0.25
)

// SpeedAccel converts a transition covering distance pulse-width units
// over durationMs milliseconds, starting at initialVelocity (units per
// ms), into protocol speed and acceleration caps. The motion is modeled
// as two symmetric half phases: accelerate over the first half of the
// time and distance, decelerate over the second, so the peak speed is
// reached exactly at the midpoint.
//
// Both results are clamped to a minimum of 1: a cap of zero means
// "unlimited" to the controller, which must never happen by accident.
func SpeedAccel(durationMs, distance, initialVelocity float64) (speed, accel int) {
	if durationMs <= 0 {
		return 1, 1
	}

	halfTime := durationMs / 2
	halfDistance := distance / 2

	a := (2 * (halfDistance - initialVelocity*halfTime)) / (halfTime * halfTime)
	peak := initialVelocity + a*halfTime

	speed = int(peak*speedUnit + 0.5)
	accel = int(a*accelUnit + 0.5)

	if speed < 1 {
		speed = 1
	}
	if accel < 1 {
		accel = 1
	}
	return speed, accel
}
