// Package romdir owns every filesystem touch of a filter run: listing the
// ROM directory, checking it can be written, deleting the files a run marked
// for removal, persisting and pruning report logs, and the apply-mode lock
// that keeps two deleting runs apart.
package romdir
