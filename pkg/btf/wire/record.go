package wire

import (
	"io"

	"github.com/jtang613/btfgo/pkg/btf/endian"
)

const (
	commonHeaderSize = 12
	intInfoSize      = 4
	arrayInfoSize    = 12
	memberInfoSize   = 12
	enumInfoSize     = 8
	paramInfoSize    = 8
	varInfoSize      = 4
	varSecinfoSize   = 12
	declTagInfoSize  = 4
	enum64InfoSize   = 12
)

// CommonHeader is the 12-byte header shared by every BTF type record.
type CommonHeader struct {
	NameOff    uint32
	Info       uint32
	SizeOrType uint32
}

// ReadCommonHeader decodes the fixed 12-byte record header from r.
func ReadCommonHeader(r io.Reader, end endian.Endianness) (CommonHeader, error) {
	nameOff, err := end.ReadUint32(r)
	if err != nil {
		return CommonHeader{}, err
	}
	info, err := end.ReadUint32(r)
	if err != nil {
		return CommonHeader{}, err
	}
	sizeOrType, err := end.ReadUint32(r)
	if err != nil {
		return CommonHeader{}, err
	}
	return CommonHeader{NameOff: nameOff, Info: info, SizeOrType: sizeOrType}, nil
}

// Vlen returns the low 16 bits of the info word: a repeat count for
// kinds with a trailing array, or the linkage value for Func.
func (h CommonHeader) Vlen() uint32 {
	return h.Info & 0xffff
}

// Kind returns the record's kind, extracted from bits 24-28 of info.
func (h CommonHeader) Kind() (Kind, error) {
	return KindFromID((h.Info >> 24) & 0x1f)
}

// KindFlag returns bit 31 of info, which several kinds overload as a
// secondary selector (bitfield members, signed enums, struct vs union
// forward declarations, attribute decl/type tags).
func (h CommonHeader) KindFlag() uint32 {
	return (h.Info >> 31) & 0x1
}

// NameOffset returns the name offset to resolve for this record, or
// false if the record carries no meaningful name (name_off is 0 and the
// kind does not allow anonymous-but-named records).
func (h CommonHeader) NameOffset() (uint32, bool) {
	if h.NameOff > 0 {
		return h.NameOff, true
	}
	kind, err := h.Kind()
	if err == nil && kind.HasAnonName() {
		return 0, true
	}
	return 0, false
}

// Size returns the byte size encoded in size_or_type, if this kind uses
// that field as a size.
func (h CommonHeader) Size() (uint32, bool) {
	kind, err := h.Kind()
	if err != nil || !kind.HasSize() {
		return 0, false
	}
	return h.SizeOrType, true
}

// Type returns the chained type id encoded in size_or_type, if this kind
// uses that field as a type reference.
func (h CommonHeader) Type() (uint32, bool) {
	kind, err := h.Kind()
	if err != nil || !kind.HasType() {
		return 0, false
	}
	return h.SizeOrType, true
}

// IntInfo is the fixed tail of an Int record: encoding/offset/bits packed
// into a single word.
type IntInfo struct {
	Data uint32
}

func ReadIntInfo(r io.Reader, end endian.Endianness) (IntInfo, error) {
	v, err := end.ReadUint32(r)
	return IntInfo{Data: v}, err
}

const (
	IntSigned = 1 << 0
	IntChar   = 1 << 1
	IntBool   = 1 << 2
)

func (i IntInfo) Encoding() uint32 { return (i.Data & 0x0f000000) >> 24 }
func (i IntInfo) Offset() uint32   { return (i.Data & 0x00ff0000) >> 16 }
func (i IntInfo) Bits() uint32     { return i.Data & 0x000000ff }

// ArrayInfo is the fixed tail of an Array record.
type ArrayInfo struct {
	Type      uint32
	IndexType uint32
	Nelems    uint32
}

func ReadArrayInfo(r io.Reader, end endian.Endianness) (ArrayInfo, error) {
	var a ArrayInfo
	var err error
	if a.Type, err = end.ReadUint32(r); err != nil {
		return ArrayInfo{}, err
	}
	if a.IndexType, err = end.ReadUint32(r); err != nil {
		return ArrayInfo{}, err
	}
	if a.Nelems, err = end.ReadUint32(r); err != nil {
		return ArrayInfo{}, err
	}
	return a, nil
}

// MemberInfo is one entry in a Struct/Union's trailing member array.
type MemberInfo struct {
	NameOff uint32
	Type    uint32
	Offset  uint32
}

func ReadMemberInfo(r io.Reader, end endian.Endianness) (MemberInfo, error) {
	var m MemberInfo
	var err error
	if m.NameOff, err = end.ReadUint32(r); err != nil {
		return MemberInfo{}, err
	}
	if m.Type, err = end.ReadUint32(r); err != nil {
		return MemberInfo{}, err
	}
	if m.Offset, err = end.ReadUint32(r); err != nil {
		return MemberInfo{}, err
	}
	return m, nil
}

// BitOffset returns the member's bit offset when the parent struct/union
// has kind_flag set (a bitfield-capable record).
func (m MemberInfo) BitOffset(kindFlag uint32) uint32 {
	if kindFlag == 1 {
		return m.Offset & 0xffffff
	}
	return m.Offset
}

// BitfieldSize returns the member's bitfield width, or 0 if the member is
// not a bitfield.
func (m MemberInfo) BitfieldSize(kindFlag uint32) uint32 {
	if kindFlag == 1 {
		return m.Offset >> 24
	}
	return 0
}

// EnumInfo is one entry in an Enum's trailing member array (32-bit
// values).
type EnumInfo struct {
	NameOff uint32
	Val     uint32
}

func ReadEnumInfo(r io.Reader, end endian.Endianness) (EnumInfo, error) {
	var e EnumInfo
	var err error
	if e.NameOff, err = end.ReadUint32(r); err != nil {
		return EnumInfo{}, err
	}
	if e.Val, err = end.ReadUint32(r); err != nil {
		return EnumInfo{}, err
	}
	return e, nil
}

// ParamInfo is one entry in a FuncProto's trailing parameter array.
type ParamInfo struct {
	NameOff uint32
	Type    uint32
}

func ReadParamInfo(r io.Reader, end endian.Endianness) (ParamInfo, error) {
	var p ParamInfo
	var err error
	if p.NameOff, err = end.ReadUint32(r); err != nil {
		return ParamInfo{}, err
	}
	if p.Type, err = end.ReadUint32(r); err != nil {
		return ParamInfo{}, err
	}
	return p, nil
}

// VarInfo is the fixed tail of a Var record.
type VarInfo struct {
	Linkage uint32
}

func ReadVarInfo(r io.Reader, end endian.Endianness) (VarInfo, error) {
	v, err := end.ReadUint32(r)
	return VarInfo{Linkage: v}, err
}

const (
	VarStatic         = 0
	VarGlobalAllocated = 1
	VarGlobalExtern   = 2
)

// VarSecinfoInfo is one entry in a Datasec's trailing variable array.
type VarSecinfoInfo struct {
	Type   uint32
	Offset uint32
	Size   uint32
}

func ReadVarSecinfoInfo(r io.Reader, end endian.Endianness) (VarSecinfoInfo, error) {
	var v VarSecinfoInfo
	var err error
	if v.Type, err = end.ReadUint32(r); err != nil {
		return VarSecinfoInfo{}, err
	}
	if v.Offset, err = end.ReadUint32(r); err != nil {
		return VarSecinfoInfo{}, err
	}
	if v.Size, err = end.ReadUint32(r); err != nil {
		return VarSecinfoInfo{}, err
	}
	return v, nil
}

// DeclTagInfo is the fixed tail of a DeclTag record.
type DeclTagInfo struct {
	ComponentIdx int32
}

func ReadDeclTagInfo(r io.Reader, end endian.Endianness) (DeclTagInfo, error) {
	v, err := end.ReadInt32(r)
	return DeclTagInfo{ComponentIdx: v}, err
}

// Enum64Info is one entry in an Enum64's trailing member array (64-bit
// values split across two words).
type Enum64Info struct {
	NameOff uint32
	ValLo32 uint32
	ValHi32 uint32
}

func ReadEnum64Info(r io.Reader, end endian.Endianness) (Enum64Info, error) {
	var e Enum64Info
	var err error
	if e.NameOff, err = end.ReadUint32(r); err != nil {
		return Enum64Info{}, err
	}
	if e.ValLo32, err = end.ReadUint32(r); err != nil {
		return Enum64Info{}, err
	}
	if e.ValHi32, err = end.ReadUint32(r); err != nil {
		return Enum64Info{}, err
	}
	return e, nil
}

const (
	FuncStatic = 0
	FuncGlobal = 1
	FuncExtern = 2
)
