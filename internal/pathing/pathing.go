// Package pathing implements POSIX-style path helpers for the filesystem
// capability implementations. All paths use "/" as the separator, regardless
// of the host platform.
package pathing

import (
	"path"
	"strings"
)

// Separator is the POSIX path separator.
const Separator = "/"

// IsAbs reports whether a path is absolute (rooted at [Separator]).
func IsAbs(p string) bool {
	return strings.HasPrefix(p, Separator)
}

// Normalize returns the canonical form of a path: "." and ".." segments are
// collapsed and redundant separators removed. An empty path normalizes to ".".
func Normalize(p string) string {
	return path.Clean(p)
}

// Dir returns the path minus its final component, normalized. The parent of
// the root is the root itself.
func Dir(p string) string {
	return path.Dir(p)
}

// Base returns the final component of a path. The base of the root is
// [Separator] itself.
func Base(p string) string {
	return path.Base(p)
}

// Join joins path elements with [Separator] and normalizes the result.
func Join(elems ...string) string {
	return path.Join(elems...)
}

// Split returns a path's parent directory and final component, both derived
// from the normalized form of the input.
func Split(p string) (dir string, base string) {
	norm := Normalize(p)

	return path.Dir(norm), path.Base(norm)
}
