package pose

import "sort"

// CommonRoute returns the name of a waypoint pose found in both route
// sets. When the sets share more than one waypoint the lexically
// smallest wins, so the choice is stable across calls. When they share
// none, the resting pose is the only safe bet.
func CommonRoute(a, b []string) string {
	var common []string
	for _, route := range a {
		if contains(b, route) {
			common = append(common, route)
		}
	}
	if len(common) == 0 {
		return Resting
	}

	sort.Strings(common)
	return common[0]
}

func contains(routes []string, name string) bool {
	for _, r := range routes {
		if r == name {
			return true
		}
	}
	return false
}
