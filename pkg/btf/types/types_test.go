package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jtang613/btfgo/pkg/btf/endian"
	"github.com/jtang613/btfgo/pkg/btf/wire"
)

func header(kind wire.Kind, vlen uint32, kindFlag uint32, nameOff, sizeOrType uint32) wire.CommonHeader {
	info := uint32(kind)<<24 | vlen&0xffff | (kindFlag&1)<<31
	return wire.CommonHeader{NameOff: nameOff, Info: info, SizeOrType: sizeOrType}
}

func TestDecodeInt(t *testing.T) {
	h := header(wire.KindInt, 0, 0, 5, 4)
	data := uint32(wire.IntSigned)<<24 | 32
	buf := []byte{byte(data), byte(data >> 8), byte(data >> 16), byte(data >> 24)}
	v, err := FromReader(bytes.NewReader(buf), endian.Little, h)
	require.NoError(t, err)

	i, ok := v.(Int)
	require.True(t, ok)
	require.True(t, i.IsSigned())
	require.Equal(t, uint32(4), i.Size())
	off, ok := i.NameOffset()
	require.True(t, ok)
	require.Equal(t, uint32(5), off)
}

func TestDecodeStructMembers(t *testing.T) {
	h := header(wire.KindStruct, 2, 0, 10, 16)
	buf := new(bytes.Buffer)
	// member 1: name_off=1, type=21, offset=0
	buf.Write([]byte{1, 0, 0, 0, 21, 0, 0, 0, 0, 0, 0, 0})
	// member 2: name_off=2, type=21, offset=32 (bits)
	buf.Write([]byte{2, 0, 0, 0, 21, 0, 0, 0, 32, 0, 0, 0})

	v, err := FromReader(buf, endian.Little, h)
	require.NoError(t, err)

	s, ok := v.(Struct)
	require.True(t, ok)
	require.Equal(t, uint32(16), s.Size())
	require.Len(t, s.Members, 2)
	require.Equal(t, uint32(32), s.Members[1].BitOffset())
	id, ok := s.Members[1].ChainedTypeID()
	require.True(t, ok)
	require.Equal(t, uint32(21), id)
}

func TestFwdStructUnion(t *testing.T) {
	hStruct := header(wire.KindFwd, 0, 0, 1, 0)
	fwdStruct, err := FromReader(bytes.NewReader(nil), endian.Little, hStruct)
	require.NoError(t, err)
	require.True(t, fwdStruct.(Fwd).IsStruct())

	hUnion := header(wire.KindFwd, 0, 1, 1, 0)
	fwdUnion, err := FromReader(bytes.NewReader(nil), endian.Little, hUnion)
	require.NoError(t, err)
	require.True(t, fwdUnion.(Fwd).IsUnion())
}

func TestParameterVariadicAndNamed(t *testing.T) {
	p := Parameter{Info: wire.ParamInfo{NameOff: 0, Type: 0}}
	require.True(t, p.IsVariadic())
	off, ok := p.NameOffset()
	require.True(t, ok)
	require.Equal(t, uint32(0), off)

	p2 := Parameter{Info: wire.ParamInfo{NameOff: 0, Type: 5}}
	require.False(t, p2.IsVariadic())
}

func TestVolatileHasNoNameOffset(t *testing.T) {
	h := header(wire.KindVolatile, 0, 0, 0, 21)
	v, err := FromReader(bytes.NewReader(nil), endian.Little, h)
	require.NoError(t, err)

	_, ok := v.(NameBearing)
	require.False(t, ok, "Volatile must not implement NameBearing")

	chained, ok := v.(TypeChained)
	require.True(t, ok)
	id, ok := chained.ChainedTypeID()
	require.True(t, ok)
	require.Equal(t, uint32(21), id)
}

func TestEnum64Value(t *testing.T) {
	m := Enum64Member{Info: wire.Enum64Info{NameOff: 1, ValLo32: 0xffffffff, ValHi32: 1}}
	require.Equal(t, uint64(0x1_ffffffff), m.Val())
}

func TestDeclTagComponentIndex(t *testing.T) {
	h := header(wire.KindDeclTag, 0, 0, 1, 5)
	dt := DeclTag{Header: h, Info: wire.DeclTagInfo{ComponentIdx: -1}}
	_, ok := dt.ComponentIndex()
	require.False(t, ok)

	dt2 := DeclTag{Header: h, Info: wire.DeclTagInfo{ComponentIdx: 3}}
	idx, ok := dt2.ComponentIndex()
	require.True(t, ok)
	require.Equal(t, uint32(3), idx)
}
