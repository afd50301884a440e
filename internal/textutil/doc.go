// Package textutil provides text helpers for file names read from disk.
//
// Directory listings hand back raw bytes. Names produced on other systems may
// not be valid UTF-8 (older ROM sets were often packed on Windows with a
// legacy code page) or may use decomposed Unicode forms (macOS). The helpers
// here turn such names into one canonical UTF-8 form before they are parsed,
// grouped or displayed.
package textutil
