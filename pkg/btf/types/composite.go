package types

import (
	"io"

	"github.com/jtang613/btfgo/pkg/btf/endian"
	"github.com/jtang613/btfgo/pkg/btf/wire"
)

// Member is one field of a Struct or Union.
type Member struct {
	Info     wire.MemberInfo
	KindFlag uint32
}

func (m Member) NameOffset() (uint32, bool)    { return m.Info.NameOff, true }
func (m Member) ChainedTypeID() (uint32, bool) { return m.Info.Type, true }
func (m Member) BitOffset() uint32             { return m.Info.BitOffset(m.KindFlag) }
func (m Member) BitfieldSize() uint32          { return m.Info.BitfieldSize(m.KindFlag) }

// Struct is a struct type: a name, a byte size, and an ordered member
// list.
type Struct struct {
	Header  wire.CommonHeader
	Members []Member
}

func (t Struct) Kind() wire.Kind             { return wire.KindStruct }
func (t Struct) NameOffset() (uint32, bool)  { return t.Header.NameOffset() }
func (t Struct) Size() uint32                { s, _ := t.Header.Size(); return s }

// Union shares Struct's exact shape; BTF does not distinguish them at
// the record level beyond the kind id.
type Union struct {
	Header  wire.CommonHeader
	Members []Member
}

func (t Union) Kind() wire.Kind            { return wire.KindUnion }
func (t Union) NameOffset() (uint32, bool) { return t.Header.NameOffset() }
func (t Union) Size() uint32               { s, _ := t.Header.Size(); return s }

func decodeStructMembers(r io.Reader, end endian.Endianness, h wire.CommonHeader) ([]Member, error) {
	members := make([]Member, 0, h.Vlen())
	for i := uint32(0); i < h.Vlen(); i++ {
		info, err := wire.ReadMemberInfo(r, end)
		if err != nil {
			return nil, err
		}
		members = append(members, Member{Info: info, KindFlag: h.KindFlag()})
	}
	return members, nil
}

func decodeStruct(r io.Reader, end endian.Endianness, h wire.CommonHeader) (Struct, error) {
	members, err := decodeStructMembers(r, end, h)
	if err != nil {
		return Struct{}, err
	}
	return Struct{Header: h, Members: members}, nil
}

func decodeUnion(r io.Reader, end endian.Endianness, h wire.CommonHeader) (Union, error) {
	members, err := decodeStructMembers(r, end, h)
	if err != nil {
		return Union{}, err
	}
	return Union{Header: h, Members: members}, nil
}

// EnumMember is one named constant of a 32-bit Enum.
type EnumMember struct {
	Info wire.EnumInfo
}

func (m EnumMember) NameOffset() (uint32, bool) { return m.Info.NameOff, true }
func (m EnumMember) Val() uint32                { return m.Info.Val }

// Enum is a 32-bit enumeration type.
type Enum struct {
	Header  wire.CommonHeader
	Members []EnumMember
}

func (t Enum) Kind() wire.Kind            { return wire.KindEnum }
func (t Enum) NameOffset() (uint32, bool) { return t.Header.NameOffset() }
func (t Enum) Size() uint32               { s, _ := t.Header.Size(); return s }
func (t Enum) IsSigned() bool             { return t.Header.KindFlag() == 1 }

func decodeEnum(r io.Reader, end endian.Endianness, h wire.CommonHeader) (Enum, error) {
	members := make([]EnumMember, 0, h.Vlen())
	for i := uint32(0); i < h.Vlen(); i++ {
		info, err := wire.ReadEnumInfo(r, end)
		if err != nil {
			return Enum{}, err
		}
		members = append(members, EnumMember{Info: info})
	}
	return Enum{Header: h, Members: members}, nil
}

// Fwd is a forward declaration of a struct or union.
type Fwd struct {
	Header wire.CommonHeader
}

func (t Fwd) Kind() wire.Kind            { return wire.KindFwd }
func (t Fwd) NameOffset() (uint32, bool) { return t.Header.NameOffset() }
func (t Fwd) IsStruct() bool             { return t.Header.KindFlag() == 0 }
func (t Fwd) IsUnion() bool              { return t.Header.KindFlag() == 1 }
