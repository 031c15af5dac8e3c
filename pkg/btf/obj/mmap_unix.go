//go:build unix

package obj

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/jtang613/btfgo/pkg/btf/btferrs"
)

// mmapFile maps path read-only into memory and returns the mapped bytes
// along with a function that unmaps them. The file descriptor is closed
// immediately after the mapping is established; the mapping itself keeps
// the underlying pages alive.
func mmapFile(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}
	size := info.Size()
	if size == 0 {
		return nil, nil, btferrs.Formatf("cannot mmap an empty file")
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap failed: %w", err)
	}

	unmap := func() error {
		return unix.Munmap(data)
	}
	return data, unmap, nil
}
