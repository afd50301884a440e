// Package main hosts the romfilter CLI entrypoint and command graph.
//
// The root command filters one directory of No-Intro ROM files: a dry run
// prints the report, while -D deletes the duplicates after asking about the
// groups ranking could not settle. Subcommands scaffold and inspect the
// configuration and browse the journal of earlier apply runs.
//
// Keep this package lean: the decisions live in internal/dedupe and the file
// handling in internal/romdir; commands here only wire them together.
package main
