package btf

import "encoding/binary"

func encodeU32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func encodeCommon(nameOff, kind, kindFlag, vlen, sizeOrType uint32) []byte {
	info := vlen&0xffff | kind<<24 | (kindFlag&1)<<31
	var b []byte
	b = append(b, encodeU32(nameOff)...)
	b = append(b, encodeU32(info)...)
	b = append(b, encodeU32(sizeOrType)...)
	return b
}

func assembleBTF(typeSec, strs []byte) []byte {
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

// buildBaseBTF is a base BTF object: id 1 is an Int named "int", id 2
// is a Ptr chaining to it.
func buildBaseBTF() []byte {
	var strs []byte
	strs = append(strs, 0)
	intNameOff := uint32(len(strs))
	strs = append(strs, []byte("int\x00")...)

	var typeSec []byte
	typeSec = append(typeSec, encodeCommon(intNameOff, 1, 0, 0, 4)...)
	typeSec = append(typeSec, encodeU32(32)...) // btf_int tail: bits=32
	typeSec = append(typeSec, encodeCommon(0, 2, 0, 0, 1)...)

	return assembleBTF(typeSec, strs)
}

// buildSplitBTF is a split BTF object over buildBaseBTF: id 3 is a
// Struct named "my_struct" with no members. Its name offset continues
// the base's string numbering space (base str_len is 5: "\0int\0").
func buildSplitBTF() []byte {
	const baseStrLen = 5

	var strs []byte
	structNameOff := uint32(baseStrLen) + uint32(len(strs))
	strs = append(strs, []byte("my_struct\x00")...)

	var typeSec []byte
	typeSec = append(typeSec, encodeCommon(structNameOff, 4, 0, 0, 0)...)

	return assembleBTF(typeSec, strs)
}
