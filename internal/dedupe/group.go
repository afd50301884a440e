package dedupe

import "romfilter/internal/rom"

// Member is one file of a group, identified by its position in the listing.
type Member struct {
	Key int
	Rom rom.Rom
}

// Group holds the adjacent files that share one normalized title.
type Group struct {
	Title   string
	Members []Member
}

// Keys returns the listing positions of the group members in order.
func (g Group) Keys() []int {
	return memberKeys(g.Members)
}

// GroupTitles partitions names into runs of consecutive entries with the same
// normalized title. Grouping is positional: the same title appearing again
// after a different one starts a new group, so callers must supply a sorted
// listing for variants to meet.
func GroupTitles(names []string) []Group {
	var (
		groups  []Group
		current *Group
	)
	for key, name := range names {
		title := rom.Title(name)
		if current == nil || current.Title != title {
			groups = append(groups, Group{Title: title})
			current = &groups[len(groups)-1]
		}
		current.Members = append(current.Members, Member{Key: key, Rom: rom.Parse(name)})
	}
	return groups
}

func memberKeys(members []Member) []int {
	keys := make([]int, len(members))
	for i, m := range members {
		keys[i] = m.Key
	}
	return keys
}
