package types

import (
	"io"

	"github.com/jtang613/btfgo/pkg/btf/btferrs"
	"github.com/jtang613/btfgo/pkg/btf/endian"
	"github.com/jtang613/btfgo/pkg/btf/wire"
)

// FromReader decodes a type record's kind-specific tail given its
// already-decoded common header. The common header's kind field selects
// which tail shape to read.
func FromReader(r io.Reader, end endian.Endianness, h wire.CommonHeader) (Type, error) {
	kind, err := h.Kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case wire.KindInt:
		return decodeInt(r, end, h)
	case wire.KindPtr:
		return Ptr{Header: h}, nil
	case wire.KindArray:
		return decodeArray(r, end, h)
	case wire.KindStruct:
		return decodeStruct(r, end, h)
	case wire.KindUnion:
		return decodeUnion(r, end, h)
	case wire.KindEnum:
		return decodeEnum(r, end, h)
	case wire.KindFwd:
		return Fwd{Header: h}, nil
	case wire.KindTypedef:
		return Typedef{Header: h}, nil
	case wire.KindVolatile:
		return Volatile{Header: h}, nil
	case wire.KindConst:
		return Const{Header: h}, nil
	case wire.KindRestrict:
		return Restrict{Header: h}, nil
	case wire.KindFunc:
		return Func{Header: h}, nil
	case wire.KindFuncProto:
		return decodeFuncProto(r, end, h)
	case wire.KindVar:
		return decodeVar(r, end, h)
	case wire.KindDatasec:
		return decodeDatasec(r, end, h)
	case wire.KindFloat:
		return Float{Header: h}, nil
	case wire.KindDeclTag:
		return decodeDeclTag(r, end, h)
	case wire.KindTypeTag:
		return TypeTag{Header: h}, nil
	case wire.KindEnum64:
		return decodeEnum64(r, end, h)
	default:
		return nil, btferrs.Formatf("unsupported BTF type %d", uint32(kind))
	}
}
