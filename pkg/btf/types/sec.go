package types

import (
	"io"

	"github.com/jtang613/btfgo/pkg/btf/endian"
	"github.com/jtang613/btfgo/pkg/btf/wire"
)

// VarSecinfo places one variable within a Datasec, at a given byte
// offset and size.
type VarSecinfo struct {
	Info wire.VarSecinfoInfo
}

func (v VarSecinfo) ChainedTypeID() (uint32, bool) { return v.Info.Type, true }
func (v VarSecinfo) Offset() uint32                { return v.Info.Offset }
func (v VarSecinfo) Size() uint32                  { return v.Info.Size }

// Datasec describes an ELF section's worth of variables.
type Datasec struct {
	Header    wire.CommonHeader
	Variables []VarSecinfo
}

func (t Datasec) Kind() wire.Kind            { return wire.KindDatasec }
func (t Datasec) NameOffset() (uint32, bool) { return t.Header.NameOffset() }
func (t Datasec) Size() uint32               { s, _ := t.Header.Size(); return s }

func decodeDatasec(r io.Reader, end endian.Endianness, h wire.CommonHeader) (Datasec, error) {
	vars := make([]VarSecinfo, 0, h.Vlen())
	for i := uint32(0); i < h.Vlen(); i++ {
		info, err := wire.ReadVarSecinfoInfo(r, end)
		if err != nil {
			return Datasec{}, err
		}
		vars = append(vars, VarSecinfo{Info: info})
	}
	return Datasec{Header: h, Variables: vars}, nil
}

// Float is a floating point type of a given byte size.
type Float struct {
	Header wire.CommonHeader
}

func (t Float) Kind() wire.Kind            { return wire.KindFloat }
func (t Float) NameOffset() (uint32, bool) { return t.Header.NameOffset() }
func (t Float) Size() uint32               { s, _ := t.Header.Size(); return s }

// DeclTag attaches a string tag to a declaration, or one of its struct
// members / function parameters.
type DeclTag struct {
	Header wire.CommonHeader
	Info   wire.DeclTagInfo
}

func (t DeclTag) Kind() wire.Kind               { return wire.KindDeclTag }
func (t DeclTag) NameOffset() (uint32, bool)    { return t.Header.NameOffset() }
func (t DeclTag) ChainedTypeID() (uint32, bool) { return t.Header.Type() }
func (t DeclTag) IsAttribute() bool             { return t.Header.KindFlag() == 1 }

// ComponentIndex returns the index of the struct member or function
// parameter this tag targets, or false if the tag targets the
// declaration itself (a negative component_idx on the wire).
func (t DeclTag) ComponentIndex() (uint32, bool) {
	if t.Info.ComponentIdx < 0 {
		return 0, false
	}
	return uint32(t.Info.ComponentIdx), true
}

func decodeDeclTag(r io.Reader, end endian.Endianness, h wire.CommonHeader) (DeclTag, error) {
	info, err := wire.ReadDeclTagInfo(r, end)
	if err != nil {
		return DeclTag{}, err
	}
	return DeclTag{Header: h, Info: info}, nil
}

// TypeTag attaches a string tag to a type rather than a declaration.
type TypeTag struct {
	Header wire.CommonHeader
}

func (t TypeTag) Kind() wire.Kind               { return wire.KindTypeTag }
func (t TypeTag) NameOffset() (uint32, bool)    { return t.Header.NameOffset() }
func (t TypeTag) ChainedTypeID() (uint32, bool) { return t.Header.Type() }
func (t TypeTag) IsAttribute() bool             { return t.Header.KindFlag() == 1 }

// Enum64Member is one named constant of a 64-bit Enum64.
type Enum64Member struct {
	Info wire.Enum64Info
}

func (m Enum64Member) NameOffset() (uint32, bool) { return m.Info.NameOff, true }
func (m Enum64Member) Val() uint64 {
	return uint64(m.Info.ValHi32)<<32 | uint64(m.Info.ValLo32)
}

// Enum64 is a 64-bit enumeration type.
type Enum64 struct {
	Header  wire.CommonHeader
	Members []Enum64Member
}

func (t Enum64) Kind() wire.Kind            { return wire.KindEnum64 }
func (t Enum64) NameOffset() (uint32, bool) { return t.Header.NameOffset() }
func (t Enum64) Size() uint32               { s, _ := t.Header.Size(); return s }
func (t Enum64) IsSigned() bool             { return t.Header.KindFlag() == 1 }

func decodeEnum64(r io.Reader, end endian.Endianness, h wire.CommonHeader) (Enum64, error) {
	members := make([]Enum64Member, 0, h.Vlen())
	for i := uint32(0); i < h.Vlen(); i++ {
		info, err := wire.ReadEnum64Info(r, end)
		if err != nil {
			return Enum64{}, err
		}
		members = append(members, Enum64Member{Info: info})
	}
	return Enum64{Header: h, Members: members}, nil
}
