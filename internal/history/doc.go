// Package history keeps a SQLite journal of apply-mode runs.
//
// Every run that deleted files records its directory, counts, report log
// location and the names it removed, so an operator can later find out what
// a run took away. Writes retry on SQLITE_BUSY; a failing journal never
// blocks deletion, callers log and move on.
package history
