// Package btf is the composition layer: it wraps a backend (Cache or
// Mmap) together with an optional base object, and implements the
// query surface callers actually use (by id, by name, by regex, and
// chained-type traversal), fanning each query out across base and
// split objects in the order the on-wire format requires.
package btf

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/jtang613/btfgo/pkg/btf/btferrs"
	"github.com/jtang613/btfgo/pkg/btf/obj"
	"github.com/jtang613/btfgo/pkg/btf/types"
	"github.com/jtang613/btfgo/pkg/btf/wire"
)

// Btf is a parsed BTF object: either a base object on its own, or a
// split object layered over a base.
type Btf struct {
	backend obj.Backend
	base    obj.Backend
}

// Open parses path as a base BTF object using the Cache backend.
func Open(path string) (*Btf, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	backend, err := obj.NewCache(f)
	if err != nil {
		return nil, err
	}
	return &Btf{backend: backend}, nil
}

// OpenMmap memory-maps path and parses it as a base BTF object using
// the Mmap backend.
func OpenMmap(path string) (*Btf, error) {
	backend, err := obj.NewMmap(path)
	if err != nil {
		return nil, err
	}
	return &Btf{backend: backend}, nil
}

// FromBytes parses data as a base BTF object using the Cache backend.
func FromBytes(data []byte) (*Btf, error) {
	backend, err := obj.NewCache(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Btf{backend: backend}, nil
}

// OpenSplit parses path as a split BTF object layered over base. base
// must itself be a base object, not another split.
func OpenSplit(path string, base *Btf) (*Btf, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	backend, err := obj.NewCacheSplit(f, base.backend)
	if err != nil {
		return nil, err
	}
	return &Btf{backend: backend, base: base.backend}, nil
}

// FromSplitBytes parses data as a split BTF object layered over base.
func FromSplitBytes(data []byte, base *Btf) (*Btf, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}

	backend, err := obj.NewCacheSplit(bytes.NewReader(data), base.backend)
	if err != nil {
		return nil, err
	}
	return &Btf{backend: backend, base: base.backend}, nil
}

func checkBase(base *Btf) error {
	if base == nil {
		return btferrs.OpNotSupportedf("split BTF requires a base object")
	}
	if base.base != nil {
		return btferrs.OpNotSupportedf("base object is itself a split BTF")
	}
	return nil
}

// Close releases any resources held by the backend (relevant for Mmap;
// a no-op for Cache).
func (b *Btf) Close() error {
	return b.backend.Close()
}

// IsSplit reports whether this object is layered over a base.
func (b *Btf) IsSplit() bool {
	return b.base != nil
}

// Own returns this object's own backend, excluding its base. It exists
// for callers (namely the collection package) that need to query a
// split object without re-triggering its automatic base fallback, to
// avoid re-counting the same base hits once per split in a collection.
func (b *Btf) Own() obj.Backend {
	return b.backend
}

// Header returns this object's own header (not the base's, for a split
// object).
func (b *Btf) Header() wire.Header {
	return b.backend.Header()
}

// TypeCount returns the number of types defined in this object alone.
func (b *Btf) TypeCount() int {
	return b.backend.TypeCount()
}

// ResolveIDsByName finds every type id named name, searching this
// object first and then, if it is a split, the base -- matching the
// on-wire id numbering where split ids are defined relative to but
// disjoint from the base's.
func (b *Btf) ResolveIDsByName(name string) []uint32 {
	ids := b.backend.ResolveIDsByName(name)
	if b.base != nil {
		ids = append(ids, b.base.ResolveIDsByName(name)...)
	}
	return ids
}

// ResolveTypesByName is ResolveIDsByName followed by ResolveTypeByID for
// each hit.
func (b *Btf) ResolveTypesByName(name string) ([]types.Type, error) {
	return b.resolveTypes(b.ResolveIDsByName(name))
}

// ResolveIDsByRegex finds every type id whose name matches re.
func (b *Btf) ResolveIDsByRegex(re *regexp.Regexp) []uint32 {
	ids := b.backend.ResolveIDsByRegex(re)
	if b.base != nil {
		ids = append(ids, b.base.ResolveIDsByRegex(re)...)
	}
	return ids
}

// ResolveTypesByRegex is ResolveIDsByRegex followed by ResolveTypeByID
// for each hit.
func (b *Btf) ResolveTypesByRegex(re *regexp.Regexp) ([]types.Type, error) {
	return b.resolveTypes(b.ResolveIDsByRegex(re))
}

func (b *Btf) resolveTypes(ids []uint32) ([]types.Type, error) {
	out := make([]types.Type, 0, len(ids))
	for _, id := range ids {
		t, err := b.ResolveTypeByID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// ResolveTypeByID looks up a type by id, trying the base first (if this
// is a split object) and falling back to this object's own types.
func (b *Btf) ResolveTypeByID(id uint32) (types.Type, error) {
	if b.base != nil {
		if t, ok := b.base.ResolveTypeByID(id); ok {
			return t, nil
		}
	}
	if t, ok := b.backend.ResolveTypeByID(id); ok {
		return t, nil
	}
	return nil, &btferrs.InvalidTypeError{ID: id}
}

// ResolveName resolves the name of a type or sub-record that implements
// NameBearing. It tries the base first, falling back to this object.
func (b *Btf) ResolveName(nb types.NameBearing) (string, error) {
	offset, ok := nb.NameOffset()
	if !ok {
		return "", btferrs.OpNotSupportedf("type has no name offset")
	}

	if b.base != nil {
		if s, ok := b.base.ResolveNameByOffset(offset); ok {
			return s, nil
		}
	}
	if s, ok := b.backend.ResolveNameByOffset(offset); ok {
		return s, nil
	}
	return "", &btferrs.InvalidStringError{Offset: offset}
}

// ResolveChainedType resolves the type referenced by tc's chained type
// id, the main mechanism for walking the type graph one hop at a time.
func (b *Btf) ResolveChainedType(tc types.TypeChained) (types.Type, error) {
	id, ok := tc.ChainedTypeID()
	if !ok {
		return nil, btferrs.OpNotSupportedf("type has no chained type id")
	}
	return b.ResolveTypeByID(id)
}
