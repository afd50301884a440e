package rom

import (
	"reflect"
	"testing"
)

func TestParseWithoutParentheses(t *testing.T) {
	for _, name := range []string{"Game.bin", "Game v1.1.bin", "Game Rev 2", ""} {
		r := Parse(name)
		if len(r.Regions) != 0 || len(r.Params) != 0 {
			t.Fatalf("Parse(%q) = %+v, want empty regions and params", name, r)
		}
		if r.HasRevision() || r.HasVersion() {
			t.Fatalf("Parse(%q) derived revision/version from a bare name: %+v", name, r)
		}
	}
}

func TestParseRegionsSplitAndTrimmed(t *testing.T) {
	r := Parse("Game (USA, Europe) (En,Fr).bin")
	if want := []string{"USA", "Europe"}; !reflect.DeepEqual(r.Regions, want) {
		t.Fatalf("regions = %q, want %q", r.Regions, want)
	}
	if want := []string{"En,Fr"}; !reflect.DeepEqual(r.Params, want) {
		t.Fatalf("params = %q, want %q", r.Params, want)
	}
}

func TestNewTreatsFirstTokenAsRegion(t *testing.T) {
	r := New("Game (Rev 1).bin", []string{"Rev 1"})
	if want := []string{"Rev 1"}; !reflect.DeepEqual(r.Regions, want) {
		t.Fatalf("regions = %q, want %q", r.Regions, want)
	}
	if r.HasRevision() {
		t.Fatalf("revision read from region token: %q", r.Revision)
	}
}

func TestNewTrimsTokens(t *testing.T) {
	r := New("x", []string{"  Japan ", " Rev A "})
	if want := []string{"Japan"}; !reflect.DeepEqual(r.Regions, want) {
		t.Fatalf("regions = %q, want %q", r.Regions, want)
	}
	if r.Revision != "A" {
		t.Fatalf("revision = %q, want A", r.Revision)
	}
}

func TestRevisionVersionFirstMatchWins(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		revision string
		version  string
	}{
		{"revision before version", "Game (USA) (Rev 1) (v2.0).bin", "1", ""},
		{"version before revision", "Game (USA) (v1.02) (Rev 3).bin", "", "1.02"},
		{"case insensitive revision", "Game (USA) (REV 1.1).bin", "1.1", ""},
		{"alnum revision", "Game (Japan) (Rev A).bin", "A", ""},
		{"version with space", "Game (Europe) (V 2).bin", "", "2"},
		{"skips plain params", "Game (USA) (Beta) (Proto) (Rev 2).bin", "2", ""},
		{"rejects partial match", "Game (USA) (Rev 1 Alt).bin", "", ""},
		{"rejects version with letters", "Game (USA) (v1.0a).bin", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Parse(tt.file)
			if r.Revision != tt.revision || r.Version != tt.version {
				t.Fatalf("Parse(%q) revision=%q version=%q, want %q/%q", tt.file, r.Revision, r.Version, tt.revision, tt.version)
			}
			if r.HasRevision() && r.HasVersion() {
				t.Fatalf("both revision and version set: %+v", r)
			}
		})
	}
}

func TestParamsKeepOriginalCase(t *testing.T) {
	r := Parse("Game (USA) (Beta) (Rev 1).bin")
	if want := []string{"Beta", "Rev 1"}; !reflect.DeepEqual(r.Params, want) {
		t.Fatalf("params = %q, want %q", r.Params, want)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Game (USA).bin", "game"},
		{"  Game Two  (Europe) (Rev 1).bin", "game two"},
		{"Game.bin", "game"},
		{"Game v1.1.bin", "game v1.1"},
		{"Game (USA.bin", "game (usa"},
		{"(USA) Game.bin", ""},
		{"ÉCLAIR (France).zip", "éclair"},
	}
	for _, tt := range tests {
		if got := Title(tt.name); got != tt.want {
			t.Fatalf("Title(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLowerRegions(t *testing.T) {
	if got := Parse("Game.bin").LowerRegions(); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("LowerRegions without regions = %q", got)
	}
	if got := Parse("Game (USA, Europe).bin").LowerRegions(); !reflect.DeepEqual(got, []string{"usa", "europe"}) {
		t.Fatalf("LowerRegions = %q", got)
	}
}
