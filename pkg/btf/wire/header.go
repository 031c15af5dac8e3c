// Package wire decodes the fixed, on-the-wire layout of BTF: the file
// header, the 12-byte common type-record header, and each kind's
// fixed-size tail. It has no notion of the richer Type model built on
// top of it; it only knows how to turn bytes into the C structs the
// kernel documents in include/uapi/linux/btf.h.
package wire

import (
	"io"

	"github.com/jtang613/btfgo/pkg/btf/btferrs"
	"github.com/jtang613/btfgo/pkg/btf/endian"
)

const (
	magicLittle = 0xeB9F
	magicBig    = 0x9FeB
)

// Header is the 24-byte BTF file header, decoded in the endianness its
// own magic field identifies.
type Header struct {
	Magic   uint16
	Version uint8
	Flags   uint8
	HdrLen  uint32
	TypeOff uint32
	TypeLen uint32
	StrOff  uint32
	StrLen  uint32
}

// ReadHeader reads and classifies a BTF header from r. The magic is
// always read as little-endian first since it is what identifies the
// endianness of everything that follows.
func ReadHeader(r io.Reader) (Header, endian.Endianness, error) {
	magic, err := endian.Little.ReadUint16(r)
	if err != nil {
		return Header{}, 0, err
	}

	var end endian.Endianness
	switch magic {
	case magicLittle:
		end = endian.Little
	case magicBig:
		end = endian.Big
	default:
		return Header{}, 0, btferrs.Formatf("invalid BTF magic: %#x", magic)
	}

	version, err := endian.ReadUint8(r)
	if err != nil {
		return Header{}, 0, err
	}
	flags, err := endian.ReadUint8(r)
	if err != nil {
		return Header{}, 0, err
	}

	h := Header{Magic: magic, Version: version, Flags: flags}
	for _, field := range []*uint32{&h.HdrLen, &h.TypeOff, &h.TypeLen, &h.StrOff, &h.StrLen} {
		v, err := end.ReadUint32(r)
		if err != nil {
			return Header{}, 0, err
		}
		*field = v
	}

	return h, end, nil
}

// Estimates returns rough capacity hints for the number of strings and
// types the section lengths suggest, used to presize maps before a full
// parse. These are heuristics, not exact counts.
func (h Header) Estimates() (strings, types int) {
	return int(h.StrLen) / 15, int(h.TypeLen) / 22
}
