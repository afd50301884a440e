package dedupe

import "strings"

// CompareRecency orders two revision or version values and returns -1, 0 or
// +1. When both values are plain decimal numbers ("2", "10", "1.02") they are
// compared by numeric value, so "10" beats "2" and "1.0" equals "1". Any
// other pair ("A" vs "B", "1.2.3" vs "1.2.10") compares byte-wise.
func CompareRecency(a, b string) int {
	if isDecimal(a) && isDecimal(b) {
		return compareDecimal(a, b)
	}
	return strings.Compare(a, b)
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	digits := 0
	dots := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

func compareDecimal(a, b string) int {
	aInt, aFrac, _ := strings.Cut(a, ".")
	bInt, bFrac, _ := strings.Cut(b, ".")

	aInt = strings.TrimLeft(aInt, "0")
	bInt = strings.TrimLeft(bInt, "0")
	if len(aInt) != len(bInt) {
		if len(aInt) < len(bInt) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(aInt, bInt); c != 0 {
		return c
	}

	aFrac = strings.TrimRight(aFrac, "0")
	bFrac = strings.TrimRight(bFrac, "0")
	for len(aFrac) < len(bFrac) {
		aFrac += "0"
	}
	for len(bFrac) < len(aFrac) {
		bFrac += "0"
	}
	return strings.Compare(aFrac, bFrac)
}
