package btf

import "github.com/jtang613/btfgo/pkg/btf/types"

// TypeIter walks a chain of chained types one hop at a time, starting
// from a given type. It stops at Void, at a type with no chained id, or
// as soon as a chained id fails to resolve -- it never errors out to
// the caller, it simply ends the iteration. It does not detect cycles:
// a type graph with a cycle in it will iterate forever.
type TypeIter struct {
	btf  *Btf
	cur  types.Type
	done bool
}

// Iter starts a TypeIter at start.
func (b *Btf) Iter(start types.Type) *TypeIter {
	return &TypeIter{btf: b, cur: start}
}

// Next advances the iterator and returns the next type in the chain, or
// false once the chain has ended.
func (it *TypeIter) Next() (types.Type, bool) {
	if it.done {
		return nil, false
	}

	if _, isVoid := it.cur.(types.Void); isVoid {
		it.done = true
		return nil, false
	}

	tc, ok := it.cur.(types.TypeChained)
	if !ok {
		it.done = true
		return nil, false
	}

	next, err := it.btf.ResolveChainedType(tc)
	if err != nil {
		it.done = true
		return nil, false
	}

	it.cur = next
	return next, true
}
