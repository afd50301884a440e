package dedupe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"romfilter/internal/logging"
	"romfilter/internal/rom"
)

// Resolver settles a group that ranking could not reduce to one variant.
// It receives the candidates in listing order and returns the indexes (into
// that slice) the operator chose to remove.
type Resolver interface {
	Resolve(candidates []rom.Rom) ([]int, error)
}

// Options configures a run.
type Options struct {
	// RegionsOrder lists preferred regions, most preferred first.
	RegionsOrder []string
	// RemovePatterns flag undesirable variants by their params.
	RemovePatterns []*regexp.Regexp
	// OnlyInfo selects a dry run: nothing is asked and ambiguous groups are
	// reported as unknown.
	OnlyInfo bool
	// Resolver is consulted for ambiguous groups when OnlyInfo is false.
	Resolver Resolver
	Logger   *slog.Logger
}

// Result carries one Status per input name, aligned by position.
type Result struct {
	Names    []string
	Statuses []Status
}

// Counts tallies the statuses of a Result.
type Counts struct {
	Keep    int
	Remove  int
	Unknown int
}

// Total returns the number of files counted.
func (c Counts) Total() int { return c.Keep + c.Remove + c.Unknown }

// ErrNoResolver is returned when an apply run meets an ambiguous group
// without a Resolver to ask.
var ErrNoResolver = errors.New("no resolver configured for ambiguous groups")

// Run groups names by title and decides the status of every file. Names must
// be in listing order; see GroupTitles.
func Run(names []string, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	result := Result{
		Names:    append([]string(nil), names...),
		Statuses: make([]Status, len(names)),
	}

	for _, group := range GroupTitles(names) {
		removed, unknown, err := decide(group, opts, logger)
		if err != nil {
			return Result{}, fmt.Errorf("resolve %q: %w", group.Title, err)
		}
		for _, key := range removed {
			result.Statuses[key] = StatusRemove
		}
		for _, key := range unknown {
			result.Statuses[key] = StatusUnknown
		}
	}
	return result, nil
}

// decide returns the keys removed from a group and, for dry runs, the keys
// left unresolved.
func decide(group Group, opts Options, logger *slog.Logger) (removed, unknown []int, err error) {
	flagged, filtered := Unwanted(group.Members, opts.RemovePatterns)

	switch {
	case len(filtered) > 1:
		best := BestKeys(filtered, opts.RegionsOrder)
		keep := best
		if len(best) > 1 && !opts.OnlyInfo {
			candidates := membersWithKeys(filtered, best)
			dropped, err := ask(opts.Resolver, candidates)
			if err != nil {
				return nil, nil, err
			}
			keep = subtract(memberKeys(candidates), dropped)
		}
		removed = subtract(group.Keys(), keep)
		logDecision(logger, group, "ranked", best, removed)
	case len(filtered) == 0 && len(group.Members) > 1 && !opts.OnlyInfo:
		removed, err = ask(opts.Resolver, group.Members)
		if err != nil {
			return nil, nil, err
		}
		logDecision(logger, group, "all_unwanted", nil, removed)
	default:
		removed = flagged
		if len(flagged) > 0 {
			logDecision(logger, group, "unwanted", nil, removed)
		}
	}

	if opts.OnlyInfo && len(group.Members)-len(removed) > 1 {
		unknown = subtract(group.Keys(), removed)
	}
	return removed, unknown, nil
}

// ask runs the resolver over members and maps its answer back to keys.
func ask(resolver Resolver, members []Member) ([]int, error) {
	if resolver == nil {
		return nil, ErrNoResolver
	}
	roms := make([]rom.Rom, len(members))
	for i, m := range members {
		roms[i] = m.Rom
	}
	indexes, err := resolver.Resolve(roms)
	if err != nil {
		return nil, err
	}
	keys := make([]int, 0, len(indexes))
	for _, idx := range indexes {
		if idx < 0 || idx >= len(members) {
			return nil, fmt.Errorf("resolver returned index %d outside %d candidates", idx, len(members))
		}
		keys = append(keys, members[idx].Key)
	}
	return keys, nil
}

func membersWithKeys(members []Member, keys []int) []Member {
	wanted := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		wanted[k] = struct{}{}
	}
	var out []Member
	for _, m := range members {
		if _, ok := wanted[m.Key]; ok {
			out = append(out, m)
		}
	}
	return out
}

// subtract returns the keys of all that are not in drop, preserving order.
func subtract(all, drop []int) []int {
	skip := make(map[int]struct{}, len(drop))
	for _, k := range drop {
		skip[k] = struct{}{}
	}
	var out []int
	for _, k := range all {
		if _, ok := skip[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}

func logDecision(logger *slog.Logger, group Group, reason string, best, removed []int) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs := logging.DecisionAttrs("group_selection", strconv.Itoa(len(group.Members)-len(removed))+" kept", reason)
	attrs = append(attrs,
		logging.String("title", group.Title),
		logging.Int("variants", len(group.Members)),
		logging.String("best", joinKeys(best)),
		logging.String("removed", joinKeys(removed)),
	)
	logger.Debug("group decided", logging.Args(attrs...)...)
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, ",")
}

// Removed returns the positions marked for removal.
func (r Result) Removed() []int { return r.positions(StatusRemove) }

// Unknown returns the positions left unresolved.
func (r Result) Unknown() []int { return r.positions(StatusUnknown) }

// Counts tallies the statuses.
func (r Result) Counts() Counts {
	var c Counts
	for _, s := range r.Statuses {
		switch s {
		case StatusKeep:
			c.Keep++
		case StatusRemove:
			c.Remove++
		case StatusUnknown:
			c.Unknown++
		}
	}
	return c
}

func (r Result) positions(status Status) []int {
	var out []int
	for i, s := range r.Statuses {
		if s == status {
			out = append(out, i)
		}
	}
	return out
}
