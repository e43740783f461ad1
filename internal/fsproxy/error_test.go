package fsproxy_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/desertwitch/fsproxy/internal/fsproxy"
	"github.com/desertwitch/fsproxy/internal/fsproxy/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// TestErrorKindMapping checks the OS error code translation through the one
// operation that surfaces typed errors, for every mapped code and the
// unknown fallback.
func TestErrorKindMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		osErr    error
		wantKind fsproxy.Kind
		wantIs   error
	}{
		{"access denied", unix.EACCES, fsproxy.KindInvalidAccess, fsproxy.ErrInvalidAccess},
		{"no entry", unix.ENOENT, fsproxy.KindNoEntry, fsproxy.ErrNoEntry},
		{"not a directory", unix.ENOTDIR, fsproxy.KindNotDirectory, fsproxy.ErrNotDirectory},
		{"unmapped errno", unix.EBADF, fsproxy.KindUnknownOS, fsproxy.ErrUnknownOS},
		{"wrapped in path error", &fs.PathError{Op: "open", Path: "/x", Err: unix.ENOENT}, fsproxy.KindNoEntry, fsproxy.ErrNoEntry},
		{"no errno at all", errors.New("exotic failure"), fsproxy.KindUnknownOS, fsproxy.ErrUnknownOS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockOS := new(mocks.OsProvider)
			mockOS.On("Open", "/x").Return(nil, tt.osErr)

			handler := fsproxy.NewHandler(mockOS)

			_, err := handler.GetDirectoryContents("/x")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantIs)

			var fsErr *fsproxy.Error
			require.ErrorAs(t, err, &fsErr)
			assert.Equal(t, tt.wantKind, fsErr.Kind)
			assert.Equal(t, "/x", fsErr.Path)

			mockOS.AssertExpectations(t)
		})
	}
}

func TestErrorRetainsErrno(t *testing.T) {
	t.Parallel()

	mockOS := new(mocks.OsProvider)
	mockOS.On("Open", "/x").Return(nil, unix.EBADF)

	handler := fsproxy.NewHandler(mockOS)

	_, err := handler.GetDirectoryContents("/x")
	require.Error(t, err)

	var fsErr *fsproxy.Error
	require.ErrorAs(t, err, &fsErr)
	assert.Equal(t, unix.EBADF, fsErr.Errno)
	assert.Contains(t, fsErr.Error(), "errno")

	mockOS.AssertExpectations(t)
}

func TestErrorString(t *testing.T) {
	t.Parallel()

	err := &fsproxy.Error{Kind: fsproxy.KindNoEntry, Path: "/does/not/exist"}
	assert.Contains(t, err.Error(), "/does/not/exist")
	assert.Contains(t, err.Error(), "no such entry")
	assert.NotContains(t, err.Error(), "errno")
}
