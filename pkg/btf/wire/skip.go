package wire

import (
	"io"

	"github.com/jtang613/btfgo/pkg/btf/endian"
)

// SkipType advances r past one type record without decoding its tail,
// by reading just enough of the common header (kind and vlen) to know
// how many trailing bytes belong to it.
func SkipType(r io.ReadSeeker, end endian.Endianness) error {
	if _, err := r.Seek(4, io.SeekCurrent); err != nil {
		return err
	}

	info, err := end.ReadUint32(r)
	if err != nil {
		return err
	}

	kind, err := KindFromID((info >> 24) & 0x1f)
	if err != nil {
		return err
	}
	vlen := int(info & 0xffff)

	remaining := kind.Size(vlen) - 2*4
	if _, err := r.Seek(int64(remaining), io.SeekCurrent); err != nil {
		return err
	}
	return nil
}
