package dedupe

import "regexp"

// Unwanted splits members into the keys flagged by any removal pattern and
// the members that survive. A member is flagged when any of its params
// matches any pattern; the flag is final whatever the group size.
func Unwanted(members []Member, patterns []*regexp.Regexp) (flagged []int, kept []Member) {
	for _, m := range members {
		if matchesAny(m.Rom.Params, patterns) {
			flagged = append(flagged, m.Key)
			continue
		}
		kept = append(kept, m)
	}
	return flagged, kept
}

func matchesAny(params []string, patterns []*regexp.Regexp) bool {
	for _, param := range params {
		for _, pattern := range patterns {
			if pattern.MatchString(param) {
				return true
			}
		}
	}
	return false
}
