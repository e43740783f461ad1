package fsproxy

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

var (
	// ErrInvalidAccess is an error that occurs when access to an entry is
	// denied by the operating system.
	ErrInvalidAccess = errors.New("invalid access")

	// ErrNoEntry is an error that occurs when a path does not resolve to
	// an existing entry.
	ErrNoEntry = errors.New("no such entry")

	// ErrNotDirectory is an error that occurs when a directory was
	// required but the path resolved to a non-directory entry.
	ErrNotDirectory = errors.New("not a directory")

	// ErrInvalidEncoding is an error that occurs when a directory entry's
	// raw name cannot be decoded as valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid encoding in entry name")

	// ErrUnknownOS is an error that occurs for any operating system
	// failure not covered by the other kinds.
	ErrUnknownOS = errors.New("unknown operating system error")

	// ErrInvalidName is an error that occurs when an invalid entry name
	// (empty, or the root itself) is given to a tree-population helper.
	ErrInvalidName = errors.New("invalid entry name")

	// ErrEntryIsDirectory is an error that occurs when a tree-population
	// helper would replace an existing directory with a file.
	ErrEntryIsDirectory = errors.New("entry is a directory")
)

// Kind enumerates the closed set of failure kinds a filesystem operation can
// surface. No other error shape escapes the [FileSystem] interface.
type Kind int

const (
	// KindInvalidAccess means access to the entry was denied.
	KindInvalidAccess Kind = iota

	// KindNoEntry means the path did not resolve to an existing entry.
	KindNoEntry

	// KindNotDirectory means a non-directory entry was found where a
	// directory was required.
	KindNotDirectory

	// KindInvalidEncoding means a directory entry name was not valid
	// UTF-8. It is never produced from an OS error code.
	KindInvalidEncoding

	// KindUnknownOS covers every OS error code the taxonomy does not map.
	KindUnknownOS
)

// sentinel returns the package sentinel error matching the kind, for use with
// [errors.Is].
func (k Kind) sentinel() error {
	switch k {
	case KindInvalidAccess:
		return ErrInvalidAccess
	case KindNoEntry:
		return ErrNoEntry
	case KindNotDirectory:
		return ErrNotDirectory
	case KindInvalidEncoding:
		return ErrInvalidEncoding
	default:
		return ErrUnknownOS
	}
}

// Error is the typed error surfaced by [FileSystem.GetDirectoryContents]. It
// identifies exactly one [Kind] and the path the failure occurred on. For
// errors originating from an OS call, the original error code is retained as
// auxiliary diagnostic context; the kind set itself stays closed.
type Error struct {
	Kind  Kind
	Path  string
	Errno unix.Errno // zero unless the failure originated from an OS call
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Errno != 0 {
		return fmt.Sprintf("(fsproxy) %s: %v (errno %d)", e.Path, e.Kind.sentinel(), int(e.Errno))
	}

	return fmt.Sprintf("(fsproxy) %s: %v", e.Path, e.Kind.sentinel())
}

// Unwrap returns the sentinel error for the kind, so that callers can match
// with errors.Is(err, [ErrNoEntry]) and friends.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// mapOSError translates a raw error returned by an OS primitive into the
// closed taxonomy. The mapping is exhaustive and ordered, first match wins:
// access denied, no such entry, not a directory, anything else unknown.
func mapOSError(path string, err error) *Error {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return &Error{Kind: KindUnknownOS, Path: path}
	}

	switch errno {
	case unix.EACCES:
		return &Error{Kind: KindInvalidAccess, Path: path, Errno: errno}
	case unix.ENOENT:
		return &Error{Kind: KindNoEntry, Path: path, Errno: errno}
	case unix.ENOTDIR:
		return &Error{Kind: KindNotDirectory, Path: path, Errno: errno}
	default:
		return &Error{Kind: KindUnknownOS, Path: path, Errno: errno}
	}
}
