// Package rom parses No-Intro style file names into structured tag data.
//
// A No-Intro name carries a title followed by parenthesized segments, for
// example "Title (USA, Europe) (Rev 1).zip". The first segment always declares
// the regions; later segments are free-form parameters, one of which may carry
// a revision ("Rev 1") or version ("v1.1") marker. Parsing is permissive: names
// without segments simply produce empty data.
package rom
