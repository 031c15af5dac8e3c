// Package types models the decoded BTF type graph: the 19 on-wire kinds
// plus the synthetic Void type at id 0, and the two capability
// interfaces (NameBearing, TypeChained) that let callers walk the graph
// without a type switch on every kind.
package types

import (
	"io"

	"github.com/jtang613/btfgo/pkg/btf/endian"
	"github.com/jtang613/btfgo/pkg/btf/wire"
)

// Type is implemented by every decoded BTF record, including Void.
type Type interface {
	Kind() wire.Kind
}

// NameBearing is implemented by types and sub-records that carry a
// resolvable name offset, even if that offset may legitimately be 0.
type NameBearing interface {
	NameOffset() (uint32, bool)
}

// TypeChained is implemented by types and sub-records that reference
// another type id, the main mechanism for walking the type graph.
type TypeChained interface {
	ChainedTypeID() (uint32, bool)
}

// Void is the implicit type at id 0. It has no on-wire record, no name,
// and chains to nothing.
type Void struct{}

func (Void) Kind() wire.Kind { return wire.Kind(0) }

// Int is a fixed-width integer type.
type Int struct {
	Header wire.CommonHeader
	Info   wire.IntInfo
}

func (t Int) Kind() wire.Kind              { return wire.KindInt }
func (t Int) NameOffset() (uint32, bool)   { return t.Header.NameOffset() }
func (t Int) IsSigned() bool               { return t.Info.Encoding()&wire.IntSigned != 0 }
func (t Int) IsChar() bool                 { return t.Info.Encoding()&wire.IntChar != 0 }
func (t Int) IsBool() bool                 { return t.Info.Encoding()&wire.IntBool != 0 }
func (t Int) Size() uint32                 { s, _ := t.Header.Size(); return s }
func (t Int) Offset() uint32               { return t.Info.Offset() }
func (t Int) Bits() uint32                 { return t.Info.Bits() }

func decodeInt(r io.Reader, end endian.Endianness, h wire.CommonHeader) (Int, error) {
	info, err := wire.ReadIntInfo(r, end)
	if err != nil {
		return Int{}, err
	}
	return Int{Header: h, Info: info}, nil
}

// Ptr is a pointer to another type.
type Ptr struct {
	Header wire.CommonHeader
}

func (t Ptr) Kind() wire.Kind                  { return wire.KindPtr }
func (t Ptr) ChainedTypeID() (uint32, bool)    { return t.Header.Type() }

// Array is a fixed-length array of another type.
type Array struct {
	Header wire.CommonHeader
	Info   wire.ArrayInfo
}

func (t Array) Kind() wire.Kind               { return wire.KindArray }
func (t Array) ChainedTypeID() (uint32, bool) { return t.Info.Type, true }
func (t Array) IndexTypeID() uint32           { return t.Info.IndexType }
func (t Array) Len() uint32                   { return t.Info.Nelems }

func decodeArray(r io.Reader, end endian.Endianness, h wire.CommonHeader) (Array, error) {
	info, err := wire.ReadArrayInfo(r, end)
	if err != nil {
		return Array{}, err
	}
	return Array{Header: h, Info: info}, nil
}
