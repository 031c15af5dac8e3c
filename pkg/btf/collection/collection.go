// Package collection aggregates one base BTF object with any number of
// named split objects layered over it, and provides name/regex queries
// that fan out across all of them while reporting which object each hit
// came from.
package collection

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/jtang613/btfgo/pkg/btf"
	"github.com/jtang613/btfgo/pkg/btf/btferrs"
	"github.com/jtang613/btfgo/pkg/btf/types"
)

// NamedBtf pairs a parsed Btf object with the name it was registered
// under (typically its source file's base name).
type NamedBtf struct {
	Name string
	Btf  *btf.Btf
}

// BtfCollection is one base object plus an ordered list of named splits
// layered over it.
type BtfCollection struct {
	base  NamedBtf
	split []NamedBtf
}

// FromFile opens path as the collection's base object, using its file
// name as the registered name.
func FromFile(path string) (*BtfCollection, error) {
	b, err := btf.Open(path)
	if err != nil {
		return nil, err
	}
	return &BtfCollection{base: NamedBtf{Name: filepath.Base(path), Btf: b}}, nil
}

// FromBytes parses data as the collection's base object, registered
// under name.
func FromBytes(name string, data []byte) (*BtfCollection, error) {
	b, err := btf.FromBytes(data)
	if err != nil {
		return nil, err
	}
	return &BtfCollection{base: NamedBtf{Name: name, Btf: b}}, nil
}

// FromDir builds a collection from every file in dir: baseName is
// opened as the base object, and every other non-directory entry is
// added as a split layered over it.
func FromDir(dir, baseName string) (*BtfCollection, error) {
	coll, err := FromFile(filepath.Join(dir, baseName))
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, btferrs.WrapIO(err)
	}

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == baseName {
			continue
		}
		if err := coll.AddSplitFromFile(filepath.Join(dir, entry.Name())); err != nil {
			return nil, err
		}
	}
	return coll, nil
}

// AddSplitFromFile opens path as a split object layered over the
// collection's base, registered under its file name. It is an error to
// register a name already used by one of the collection's splits; the
// base's name is not checked.
func (c *BtfCollection) AddSplitFromFile(path string) error {
	name := filepath.Base(path)
	if _, ok := c.GetNamedBtf(name); ok {
		return btferrs.Formatf("duplicate split BTF name %q", name)
	}

	b, err := btf.OpenSplit(path, c.base.Btf)
	if err != nil {
		return err
	}
	c.split = append(c.split, NamedBtf{Name: name, Btf: b})
	return nil
}

// AddSplitFromBytes parses data as a split object layered over the
// collection's base, registered under name.
func (c *BtfCollection) AddSplitFromBytes(name string, data []byte) error {
	if _, ok := c.GetNamedBtf(name); ok {
		return btferrs.Formatf("duplicate split BTF name %q", name)
	}

	b, err := btf.FromSplitBytes(data, c.base.Btf)
	if err != nil {
		return err
	}
	c.split = append(c.split, NamedBtf{Name: name, Btf: b})
	return nil
}

// GetNamedBtf looks up a registered split by name. The base object is
// not searched, matching the original API's scoping of this lookup to
// splits only.
func (c *BtfCollection) GetNamedBtf(name string) (*NamedBtf, bool) {
	for i := range c.split {
		if c.split[i].Name == name {
			return &c.split[i], true
		}
	}
	return nil, false
}

// Base returns the collection's base object.
func (c *BtfCollection) Base() *NamedBtf {
	return &c.base
}

// Splits returns the collection's split objects, in registration order.
func (c *BtfCollection) Splits() []NamedBtf {
	return c.split
}

// IDHit pairs a matched type id with the NamedBtf it was found in.
type IDHit struct {
	Source *NamedBtf
	ID     uint32
}

// TypeHit pairs a resolved type with the NamedBtf it was found in.
type TypeHit struct {
	Source *NamedBtf
	Type   types.Type
}

// ResolveIDsByName finds every type id named name across the
// collection: the base is searched first, then each split in
// registration order. Each split is queried only for its own ids (its
// automatic base fallback is bypassed) so a name defined in the base
// is reported once, not once per split.
func (c *BtfCollection) ResolveIDsByName(name string) []IDHit {
	var hits []IDHit
	for _, id := range c.base.Btf.ResolveIDsByName(name) {
		hits = append(hits, IDHit{Source: &c.base, ID: id})
	}
	for i := range c.split {
		s := &c.split[i]
		for _, id := range s.Btf.Own().ResolveIDsByName(name) {
			hits = append(hits, IDHit{Source: s, ID: id})
		}
	}
	return hits
}

// ResolveTypesByName is ResolveIDsByName followed by resolving each hit
// to its Type.
func (c *BtfCollection) ResolveTypesByName(name string) ([]TypeHit, error) {
	return resolveTypeHits(c.ResolveIDsByName(name))
}

// ResolveIDsByRegex finds every type id whose name matches re, in the
// same base-then-splits order as ResolveIDsByName.
func (c *BtfCollection) ResolveIDsByRegex(re *regexp.Regexp) []IDHit {
	var hits []IDHit
	for _, id := range c.base.Btf.ResolveIDsByRegex(re) {
		hits = append(hits, IDHit{Source: &c.base, ID: id})
	}
	for i := range c.split {
		s := &c.split[i]
		for _, id := range s.Btf.Own().ResolveIDsByRegex(re) {
			hits = append(hits, IDHit{Source: s, ID: id})
		}
	}
	return hits
}

// ResolveTypesByRegex is ResolveIDsByRegex followed by resolving each
// hit to its Type.
func (c *BtfCollection) ResolveTypesByRegex(re *regexp.Regexp) ([]TypeHit, error) {
	return resolveTypeHits(c.ResolveIDsByRegex(re))
}

func resolveTypeHits(hits []IDHit) ([]TypeHit, error) {
	out := make([]TypeHit, 0, len(hits))
	for _, h := range hits {
		t, err := h.Source.Btf.ResolveTypeByID(h.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, TypeHit{Source: h.Source, Type: t})
	}
	return out, nil
}

// Close closes the base object and every split.
func (c *BtfCollection) Close() error {
	var first error
	if err := c.base.Btf.Close(); err != nil && first == nil {
		first = err
	}
	for _, s := range c.split {
		if err := s.Btf.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
