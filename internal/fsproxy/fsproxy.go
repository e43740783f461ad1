// Package fsproxy implements a uniform, synchronous filesystem-access
// capability with two interchangeable backends: one forwarding to the real
// operating-system filesystem and one operating on a fully in-memory
// simulated tree. Code written against [FileSystem] can be exercised
// deterministically, without touching disk, by handing it a [MemoryFS].
package fsproxy

// FileSystem is the capability contract both backends implement. All
// filesystem-dependent code should depend on this interface exclusively.
//
// Paths are POSIX-style strings using "/" as the separator and need not be
// normalized; implementations normalize internally.
type FileSystem interface {
	// Exists reports whether the path resolves to an existing entry. It
	// never fails; any internal error degrades to false.
	Exists(path string) bool

	// IsDirectory reports whether the path resolves to a directory entry.
	// It never fails; any internal error degrades to false.
	IsDirectory(path string) bool

	// GetDirectoryContents returns the names of a directory's immediate
	// children, in no particular order and never containing "." or "..".
	// It fails with a [*Error] of [KindNoEntry] when the path does not
	// resolve and of [KindNotDirectory] when it resolves to a
	// non-directory entry.
	GetDirectoryContents(path string) ([]string, error)
}
