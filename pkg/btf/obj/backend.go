// Package obj implements the two interchangeable BTF backends: a
// fully-decoded in-memory Cache, and a lazily-decoding Mmap index over a
// memory-mapped file. Both satisfy the same Backend contract so the
// composition layer above can treat them interchangeably.
package obj

import (
	"regexp"

	"github.com/jtang613/btfgo/pkg/btf/types"
	"github.com/jtang613/btfgo/pkg/btf/wire"
)

// Backend is implemented by every BTF parsing strategy. Query methods
// never error on a miss: ResolveIDsByName/ResolveIDsByRegex return an
// empty slice, ResolveNameByOffset and ResolveTypeByID return false for
// an offset or id this backend does not hold (the composition layer
// asks a base about split ids, and a split about base ids, this way).
type Backend interface {
	Header() wire.Header
	TypeCount() int
	ResolveIDsByName(name string) []uint32
	ResolveTypeByID(id uint32) (types.Type, bool)
	ResolveNameByOffset(offset uint32) (string, bool)
	ResolveIDsByRegex(re *regexp.Regexp) []uint32
	Close() error
}
