package maestro

import "fmt"

// ValidationError reports an argument outside the range the protocol
// accepts. Nothing is written to the transport when one is returned, so
// the caller may correct the input and retry.
type ValidationError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("maestro: %s %d outside [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// RangeError reports a bulk target run extending past the last channel.
type RangeError struct {
	Start, Count int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("maestro: %d targets starting at channel %d exceed the %d channel space", e.Count, e.Start, Channels)
}
