package fsproxy

import (
	"fmt"

	"github.com/desertwitch/fsproxy/internal/pathing"
)

// node is one element of the simulated tree, owning exactly one contents
// variant. A node is owned by exactly one parent directory (or is the root)
// and is never shared outside its tree.
type node struct {
	contents nodeContents
}

// nodeContents is the sealed variant of a node's payload: either file bytes
// or a directory's named children.
type nodeContents interface {
	isNodeContents()
}

type fileContents struct {
	data []byte
}

// directoryContents maps entry names (non-empty, no "/", never "." or "..")
// to exclusively owned child nodes.
type directoryContents map[string]*node

func (fileContents) isNodeContents()      {}
func (directoryContents) isNodeContents() {}

// MemoryFS is the simulated in-memory implementation of [FileSystem]: an
// owned tree of nodes rooted at "/", with the root directory always present.
//
// MemoryFS is not safe for concurrent mutation. Callers must serialize any
// structural change ([MemoryFS.MkdirAll], [MemoryFS.WriteFile]) against
// concurrent reads themselves; there is no internal locking.
type MemoryFS struct {
	root *node
}

var _ FileSystem = (*MemoryFS)(nil)

// NewMemoryFS returns a pointer to a new [MemoryFS] with an empty root
// directory.
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		root: &node{contents: directoryContents{}},
	}
}

// resolve maps an absolute path to its node, recursing over the path's parent
// first. A (nil, nil) return means the path does not resolve ("not found",
// deliberately distinct from an error); the only error returned is of
// [KindNotDirectory], for a non-terminal component that is a file.
//
// The recursion strictly shortens the path toward the root, so it terminates
// after one map lookup per depth level.
func (m *MemoryFS) resolve(path string) (*node, error) {
	mustBeAbsolute(path)

	norm := pathing.Normalize(path)
	if norm == pathing.Separator {
		return m.root, nil
	}

	dir, base := pathing.Split(norm)

	parent, err := m.resolve(dir)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, nil
	}

	entries, ok := parent.contents.(directoryContents)
	if !ok {
		return nil, &Error{Kind: KindNotDirectory, Path: dir}
	}

	return entries[base], nil
}

// Exists reports whether the path resolves to a node, swallowing any
// resolution failure as false.
func (m *MemoryFS) Exists(path string) bool {
	found, err := m.resolve(path)

	return err == nil && found != nil
}

// IsDirectory reports whether the path resolves to a directory node,
// swallowing any resolution failure as false.
func (m *MemoryFS) IsDirectory(path string) bool {
	found, err := m.resolve(path)
	if err != nil || found == nil {
		return false
	}

	_, ok := found.contents.(directoryContents)

	return ok
}

// GetDirectoryContents returns the entry names of the directory the path
// resolves to, in no particular order. It fails with [KindNoEntry] when the
// path does not resolve and with [KindNotDirectory] when it resolves to a
// file.
func (m *MemoryFS) GetDirectoryContents(path string) ([]string, error) {
	found, err := m.resolve(path)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, &Error{Kind: KindNoEntry, Path: path}
	}

	entries, ok := found.contents.(directoryContents)
	if !ok {
		return nil, &Error{Kind: KindNotDirectory, Path: path}
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}

	return names, nil
}

// MkdirAll creates a directory at the path, together with any missing
// directories along the way. Existing directories are left untouched. It
// fails with [KindNotDirectory] when any component already exists as a file.
func (m *MemoryFS) MkdirAll(path string) error {
	mustBeAbsolute(path)

	_, err := m.mkdirAll(pathing.Normalize(path))

	return err
}

func (m *MemoryFS) mkdirAll(norm string) (*node, error) {
	if norm == pathing.Separator {
		return m.root, nil
	}

	dir, base := pathing.Split(norm)

	parent, err := m.mkdirAll(dir)
	if err != nil {
		return nil, err
	}

	entries, ok := parent.contents.(directoryContents)
	if !ok {
		return nil, &Error{Kind: KindNotDirectory, Path: dir}
	}

	if child, exists := entries[base]; exists {
		if _, ok := child.contents.(directoryContents); !ok {
			return nil, &Error{Kind: KindNotDirectory, Path: norm}
		}

		return child, nil
	}

	child := &node{contents: directoryContents{}}
	entries[base] = child

	return child, nil
}

// WriteFile creates or replaces a file at the path with a copy of the given
// content. The parent directory must already exist (see [MemoryFS.MkdirAll]);
// otherwise it fails with [KindNoEntry]. Replacing an existing directory with
// a file is refused with [ErrEntryIsDirectory], and the root itself cannot be
// written with [ErrInvalidName].
func (m *MemoryFS) WriteFile(path string, content []byte) error {
	mustBeAbsolute(path)

	norm := pathing.Normalize(path)
	if norm == pathing.Separator {
		return ErrInvalidName
	}

	dir, base := pathing.Split(norm)

	parent, err := m.resolve(dir)
	if err != nil {
		return err
	}
	if parent == nil {
		return &Error{Kind: KindNoEntry, Path: dir}
	}

	entries, ok := parent.contents.(directoryContents)
	if !ok {
		return &Error{Kind: KindNotDirectory, Path: dir}
	}

	if child, exists := entries[base]; exists {
		if _, ok := child.contents.(directoryContents); ok {
			return fmt.Errorf("(memfs) %w: %s", ErrEntryIsDirectory, norm)
		}
	}

	entries[base] = &node{contents: fileContents{data: append([]byte(nil), content...)}}

	return nil
}

// mustBeAbsolute fails fast on relative paths; passing one is a programming
// error, not part of the recoverable taxonomy.
func mustBeAbsolute(path string) {
	if !pathing.IsAbs(path) {
		panic(fmt.Sprintf("fsproxy: %v: %q", pathing.ErrPathIsRelative, path))
	}
}
