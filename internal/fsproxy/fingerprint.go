package fsproxy

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a hex-encoded hash identifying the simulated tree's
// exact structure and file contents. The hash is computed over a canonical
// depth-first walk with sorted entry names, so two trees fingerprint equal
// iff they hold the same entries with the same contents, regardless of
// insertion order.
func (m *MemoryFS) Fingerprint() string {
	hasher := blake3.New()
	hashNode(hasher, m.root)

	return fmt.Sprintf("%x", hasher.Sum(nil))
}

func hashNode(hasher *blake3.Hasher, n *node) {
	switch contents := n.contents.(type) {
	case fileContents:
		hasher.Write([]byte{'f'})
		writeLen(hasher, len(contents.data))
		hasher.Write(contents.data)

	case directoryContents:
		hasher.Write([]byte{'d'})
		writeLen(hasher, len(contents))

		names := make([]string, 0, len(contents))
		for name := range contents {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			writeLen(hasher, len(name))
			hasher.Write([]byte(name))
			hashNode(hasher, contents[name])
		}
	}
}

func writeLen(hasher *blake3.Hasher, n int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	hasher.Write(buf[:])
}
