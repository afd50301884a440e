package dedupe

import "strings"

type regionBucket struct {
	region  string
	members []Member
}

// BestKeys ranks the surviving members of a group and returns the keys that
// tie for best, in first-seen order.
//
// Members are bucketed by each declared region (lower-cased, "" for none). If
// the buckets span several regions, the first entry of regionsOrder present
// among them selects a single bucket; when no entry matches, every bucket is
// ranked on its own and the winners are merged. Within a bucket, clean
// (param-less) variants win when nobody carries a revision or version other
// than "0"; a single kind of recency marker picks its maximum; anything else
// keeps the whole bucket.
func BestKeys(members []Member, regionsOrder []string) []int {
	buckets := bucketByRegion(members)
	if len(buckets) > 1 {
		if preferred, ok := preferredBucket(buckets, regionsOrder); ok {
			buckets = []regionBucket{preferred}
		}
	}

	var best []int
	seen := make(map[int]struct{})
	for _, bucket := range buckets {
		for _, key := range bestInBucket(bucket.members) {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			best = append(best, key)
		}
	}
	return best
}

func bucketByRegion(members []Member) []regionBucket {
	var buckets []regionBucket
	index := make(map[string]int)
	for _, m := range members {
		for _, region := range m.Rom.LowerRegions() {
			i, ok := index[region]
			if !ok {
				i = len(buckets)
				index[region] = i
				buckets = append(buckets, regionBucket{region: region})
			}
			if containsKey(buckets[i].members, m.Key) {
				continue
			}
			buckets[i].members = append(buckets[i].members, m)
		}
	}
	return buckets
}

func preferredBucket(buckets []regionBucket, regionsOrder []string) (regionBucket, bool) {
	for _, preferred := range regionsOrder {
		for _, bucket := range buckets {
			if strings.EqualFold(bucket.region, preferred) {
				return bucket, true
			}
		}
	}
	return regionBucket{}, false
}

func bestInBucket(members []Member) []int {
	var (
		revisions []Member
		versions  []Member
		clean     []int
	)
	for _, m := range members {
		switch {
		case ranksAsMarker(m.Rom.Revision):
			revisions = append(revisions, m)
		case ranksAsMarker(m.Rom.Version):
			versions = append(versions, m)
		}
		if len(m.Rom.Params) == 0 {
			clean = append(clean, m.Key)
		}
	}

	switch {
	case len(revisions) == 0 && len(versions) == 0 && len(clean) > 0:
		return clean
	case len(revisions) > 0 && len(versions) == 0:
		return newest(revisions, func(m Member) string { return m.Rom.Revision })
	case len(versions) > 0 && len(revisions) == 0:
		return newest(versions, func(m Member) string { return m.Rom.Version })
	default:
		return memberKeys(members)
	}
}

// ranksAsMarker reports whether a revision or version value takes part in
// recency ranking. A bare "0" ranks like no marker at all.
func ranksAsMarker(value string) bool {
	return value != "" && value != "0"
}

func newest(members []Member, value func(Member) string) []int {
	top := value(members[0])
	for _, m := range members[1:] {
		if CompareRecency(value(m), top) > 0 {
			top = value(m)
		}
	}
	var keys []int
	for _, m := range members {
		if CompareRecency(value(m), top) == 0 {
			keys = append(keys, m.Key)
		}
	}
	return keys
}

func containsKey(members []Member, key int) bool {
	for _, m := range members {
		if m.Key == key {
			return true
		}
	}
	return false
}
