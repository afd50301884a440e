// Package config loads, normalizes, and validates romfilter configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The filter section carries the two lists
// the deduplication core depends on: the region preference order and the
// undesirable-tag patterns. Both are validated here so the core can assume
// non-empty lists of non-empty, compilable entries.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, lower-cased regions, and clear validation errors.
package config
