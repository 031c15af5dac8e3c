package obj

import "encoding/binary"

// buildBTF assembles a minimal, valid little-endian BTF byte buffer with
// one Int type named "int" (id 1) and one Ptr type pointing to it
// (id 2), for use across the backend test suite.
func buildBTF() []byte {
	var strs []byte
	strs = append(strs, 0) // offset 0: ""
	intNameOff := uint32(len(strs))
	strs = append(strs, []byte("int\x00")...)

	var typeSec []byte

	// Int record: kind=1, vlen=0, kind_flag=0, name_off=intNameOff, size=4.
	// btf_int tail: encoding=0 (unsigned), offset=0, bits=32.
	typeSec = append(typeSec, encodeCommon(intNameOff, 1, 0, 0, 4)...)
	typeSec = append(typeSec, encodeU32(32)...)

	// Ptr record: kind=2, vlen=0, kind_flag=0, name_off=0, type=1 (points to Int id 1)
	typeSec = append(typeSec, encodeCommon(0, 2, 0, 0, 1)...)

	hdrLen := uint32(24)
	typeOff := uint32(0)
	typeLen := uint32(len(typeSec))
	strOff := typeLen
	strLen := uint32(len(strs))

	buf := make([]byte, 0, int(hdrLen)+len(typeSec)+len(strs))
	buf = append(buf, 0x9F, 0xeB) // magic LE
	buf = append(buf, 1)          // version
	buf = append(buf, 0)          // flags
	buf = append(buf, encodeU32(hdrLen)...)
	buf = append(buf, encodeU32(typeOff)...)
	buf = append(buf, encodeU32(typeLen)...)
	buf = append(buf, encodeU32(strOff)...)
	buf = append(buf, encodeU32(strLen)...)
	buf = append(buf, typeSec...)
	buf = append(buf, strs...)
	return buf
}

func encodeU32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// encodeCommon builds the 12-byte common header: name_off, info (vlen |
// kind<<24 | kindFlag<<31), size_or_type.
func encodeCommon(nameOff, kind, kindFlag, vlen, sizeOrType uint32) []byte {
	info := vlen&0xffff | kind<<24 | (kindFlag&1)<<31
	var b []byte
	b = append(b, encodeU32(nameOff)...)
	b = append(b, encodeU32(info)...)
	b = append(b, encodeU32(sizeOrType)...)
	return b
}
