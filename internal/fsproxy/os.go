package fsproxy

import (
	"errors"
	"io"
	"os"
	"unicode/utf8"
)

// readBatchSize is the number of directory entry names requested from the
// stream per read.
const readBatchSize = 128

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
	Open(name string) (DirStream, error)
}

// DirStream is an open directory handle yielding entry names incrementally,
// as [os.File] does for directories.
type DirStream interface {
	Readdirnames(n int) ([]string, error)
	Close() error
}

// Handler is the operating-system-backed implementation of [FileSystem]. It
// holds no mutable state; a single instance can be shared freely.
type Handler struct {
	OSOps osProvider
}

var _ FileSystem = (*Handler)(nil)

// NewHandler returns a pointer to a new OS-backed [Handler].
func NewHandler(osOps osProvider) *Handler {
	return &Handler{
		OSOps: osOps,
	}
}

// Default returns a pointer to an OS-backed [Handler] over the real operating
// system primitives.
func Default() *Handler {
	return NewHandler(&OS{})
}

// Exists reports whether retrieving file status for the path succeeds. Any
// failure, including permission denial, degrades to false and is never
// propagated.
func (f *Handler) Exists(path string) bool {
	_, err := f.OSOps.Stat(path)

	return err == nil
}

// IsDirectory reports whether the path's file status indicates a directory.
// Any status retrieval failure degrades to false.
func (f *Handler) IsDirectory(path string) bool {
	info, err := f.OSOps.Stat(path)
	if err != nil {
		return false
	}

	return info.IsDir()
}

// GetDirectoryContents opens a directory stream for the path and returns the
// entry names it yields, excluding "." and "..". The stream is released on
// every exit path. Failures map into the closed taxonomy: an open or read
// failure through the OS error code mapping, an entry name that is not valid
// UTF-8 as [KindInvalidEncoding].
func (f *Handler) GetDirectoryContents(path string) ([]string, error) {
	stream, err := f.OSOps.Open(path)
	if err != nil {
		return nil, mapOSError(path, err)
	}
	defer stream.Close()

	contents := []string{}

	for {
		names, err := stream.Readdirnames(readBatchSize)

		for _, name := range names {
			if name == "." || name == ".." {
				continue
			}
			if !utf8.ValidString(name) {
				return nil, &Error{Kind: KindInvalidEncoding, Path: path}
			}
			contents = append(contents, name)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, mapOSError(path, err)
		}
	}

	return contents, nil
}
