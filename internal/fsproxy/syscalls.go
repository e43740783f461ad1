package fsproxy

import "os"

// OS is an implementation wrapping the real operating system primitives.
type OS struct{}

func (*OS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (*OS) Open(name string) (DirStream, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return f, nil
}
