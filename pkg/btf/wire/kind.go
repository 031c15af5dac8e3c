package wire

import "github.com/jtang613/btfgo/pkg/btf/btferrs"

// Kind identifies the 19 BTF type-record kinds, from
// include/uapi/linux/btf.h. Kind 0 (Void) has no on-wire record and is
// never produced by KindFromID.
type Kind uint32

const (
	KindInt       Kind = 1
	KindPtr       Kind = 2
	KindArray     Kind = 3
	KindStruct    Kind = 4
	KindUnion     Kind = 5
	KindEnum      Kind = 6
	KindFwd       Kind = 7
	KindTypedef   Kind = 8
	KindVolatile  Kind = 9
	KindConst     Kind = 10
	KindRestrict  Kind = 11
	KindFunc      Kind = 12
	KindFuncProto Kind = 13
	KindVar       Kind = 14
	KindDatasec   Kind = 15
	KindFloat     Kind = 16
	KindDeclTag   Kind = 17
	KindTypeTag   Kind = 18
	KindEnum64    Kind = 19
)

// KindFromID validates a raw kind id extracted from a record's info word.
func KindFromID(id uint32) (Kind, error) {
	switch Kind(id) {
	case KindInt, KindPtr, KindArray, KindStruct, KindUnion, KindEnum, KindFwd,
		KindTypedef, KindVolatile, KindConst, KindRestrict, KindFunc, KindFuncProto,
		KindVar, KindDatasec, KindFloat, KindDeclTag, KindTypeTag, KindEnum64:
		return Kind(id), nil
	default:
		return 0, btferrs.Formatf("unsupported BTF type %d", id)
	}
}

// String returns the kernel's label for the kind, e.g. "int" or "decl_tag".
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindPtr:
		return "ptr"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	case KindEnum:
		return "enum"
	case KindFwd:
		return "fwd"
	case KindTypedef:
		return "typedef"
	case KindVolatile:
		return "volatile"
	case KindConst:
		return "const"
	case KindRestrict:
		return "restrict"
	case KindFunc:
		return "func"
	case KindFuncProto:
		return "func_proto"
	case KindVar:
		return "var"
	case KindDatasec:
		return "datasec"
	case KindFloat:
		return "float"
	case KindDeclTag:
		return "decl_tag"
	case KindTypeTag:
		return "type_tag"
	case KindEnum64:
		return "enum64"
	default:
		return "void"
	}
}

// tailSize returns the size, in bytes, of the kind's variable tail given
// vlen (the repeat count for kinds with a repeated trailing array).
func (k Kind) tailSize(vlen int) int {
	switch k {
	case KindPtr, KindFwd, KindTypedef, KindVolatile, KindConst, KindRestrict,
		KindFunc, KindFloat, KindTypeTag:
		return 0
	case KindInt:
		return intInfoSize
	case KindArray:
		return arrayInfoSize
	case KindStruct, KindUnion:
		return vlen * memberInfoSize
	case KindEnum:
		return vlen * enumInfoSize
	case KindFuncProto:
		return vlen * paramInfoSize
	case KindVar:
		return varInfoSize
	case KindDatasec:
		return vlen * varSecinfoSize
	case KindDeclTag:
		return declTagInfoSize
	case KindEnum64:
		return vlen * enum64InfoSize
	default:
		return 0
	}
}

// Size returns the full on-wire size of a record of this kind, including
// the common 12-byte header.
func (k Kind) Size(vlen int) int {
	return commonHeaderSize + k.tailSize(vlen)
}

// HasAnonName reports whether a name offset of 0 is a valid, meaningful
// (anonymous) name for this kind rather than "no name at all".
func (k Kind) HasAnonName() bool {
	switch k {
	case KindStruct, KindUnion, KindEnum, KindEnum64:
		return true
	default:
		return false
	}
}

// HasSize reports whether the record's common size_or_type field holds a
// byte size.
func (k Kind) HasSize() bool {
	switch k {
	case KindInt, KindStruct, KindUnion, KindEnum, KindDatasec, KindFloat, KindEnum64:
		return true
	default:
		return false
	}
}

// HasType reports whether the record's common size_or_type field holds a
// chained type id.
func (k Kind) HasType() bool {
	switch k {
	case KindPtr, KindTypedef, KindVolatile, KindConst, KindRestrict, KindFunc,
		KindFuncProto, KindVar, KindDeclTag, KindTypeTag:
		return true
	default:
		return false
	}
}
