package dedupe

import "testing"

func TestCompareRecency(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"10", "2", 1},
		{"2", "10", -1},
		{"1", "1", 0},
		{"1.0", "1", 0},
		{"01", "1", 0},
		{"1.1", "1.02", 1},
		{"1.10", "1.1", 0},
		{"1.2", "1.15", 1},
		{"B", "A", 1},
		{"A", "A", 0},
		{"1.2.3", "1.2.10", 1},
		{"A", "10", 1},
	}
	for _, tt := range tests {
		if got := CompareRecency(tt.a, tt.b); got != tt.want {
			t.Fatalf("CompareRecency(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
