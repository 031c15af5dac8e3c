package types

import "github.com/jtang613/btfgo/pkg/btf/wire"

// Linkage classifies the storage linkage of a Func or Var record. Both
// kinds use the same three values, just in different fields (vlen for
// Func, the dedicated linkage word for Var).
type Linkage uint32

const (
	LinkageStatic Linkage = iota
	LinkageGlobal
	LinkageExtern
)

func (l Linkage) IsStatic() bool { return l == LinkageStatic }
func (l Linkage) IsGlobal() bool { return l == LinkageGlobal }
func (l Linkage) IsExtern() bool { return l == LinkageExtern }

func funcLinkage(h wire.CommonHeader) Linkage {
	return Linkage(h.Vlen() & 0xffff)
}
