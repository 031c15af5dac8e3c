// Package endian provides endian-aware decoding of the primitive integer
// types BTF records are built from. BTF data can be either little-endian
// or big-endian depending on the producing architecture; the endianness
// is determined once from the header magic and threaded through every
// subsequent read.
package endian

import (
	"encoding/binary"
	"io"

	"github.com/jtang613/btfgo/pkg/btf/btferrs"
)

// Endianness selects the byte order used to decode BTF primitives.
type Endianness int

const (
	Little Endianness = iota
	Big
)

func (e Endianness) order() binary.ByteOrder {
	if e == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Uint16FromBytes decodes a uint16 from the first two bytes of buf.
func (e Endianness) Uint16FromBytes(buf []byte) (uint16, error) {
	if len(buf) < 2 {
		return 0, btferrs.Formatf("not enough bytes in buffer")
	}
	return e.order().Uint16(buf), nil
}

// Uint32FromBytes decodes a uint32 from the first four bytes of buf.
func (e Endianness) Uint32FromBytes(buf []byte) (uint32, error) {
	if len(buf) < 4 {
		return 0, btferrs.Formatf("not enough bytes in buffer")
	}
	return e.order().Uint32(buf), nil
}

// Int32FromBytes decodes an int32 from the first four bytes of buf.
func (e Endianness) Int32FromBytes(buf []byte) (int32, error) {
	u, err := e.Uint32FromBytes(buf)
	if err != nil {
		return 0, err
	}
	return int32(u), nil
}

// ReadUint16 reads a uint16 from r in this endianness.
func (e Endianness) ReadUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, btferrs.WrapIO(err)
	}
	return e.order().Uint16(buf[:]), nil
}

// ReadUint32 reads a uint32 from r in this endianness.
func (e Endianness) ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, btferrs.WrapIO(err)
	}
	return e.order().Uint32(buf[:]), nil
}

// ReadInt32 reads an int32 from r in this endianness.
func (e Endianness) ReadInt32(r io.Reader) (int32, error) {
	u, err := e.ReadUint32(r)
	if err != nil {
		return 0, err
	}
	return int32(u), nil
}

// ReadUint8 reads a single byte; byte order is irrelevant at this width.
func ReadUint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, btferrs.WrapIO(err)
	}
	return buf[0], nil
}

func (e Endianness) String() string {
	if e == Big {
		return "big"
	}
	return "little"
}
