// Package dedupe groups No-Intro file names by title and decides which
// variants of each title to keep.
//
// A run walks the directory listing once. Adjacent names that share a
// normalized title form a group; each group passes through the unwanted-tag
// filter, the region/recency ranker and, when ranking leaves more than one
// candidate, a Resolver that asks the operator. The outcome is one Status per
// input name. The package performs no I/O of its own: listing, deletion and
// persistence belong to the caller.
package dedupe
