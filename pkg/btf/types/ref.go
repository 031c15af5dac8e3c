package types

import (
	"io"

	"github.com/jtang613/btfgo/pkg/btf/endian"
	"github.com/jtang613/btfgo/pkg/btf/wire"
)

// Typedef aliases another type under a new name.
type Typedef struct {
	Header wire.CommonHeader
}

func (t Typedef) Kind() wire.Kind               { return wire.KindTypedef }
func (t Typedef) NameOffset() (uint32, bool)    { return t.Header.NameOffset() }
func (t Typedef) ChainedTypeID() (uint32, bool) { return t.Header.Type() }

// Volatile qualifies another type. Const and Restrict share its exact
// shape; BTF carries no extra payload for any of the three, only the
// kind id differs. None of the three expose a name offset: the
// qualified type's name, if any, belongs to the type it wraps.
type Volatile struct {
	Header wire.CommonHeader
}

func (t Volatile) Kind() wire.Kind               { return wire.KindVolatile }
func (t Volatile) ChainedTypeID() (uint32, bool) { return t.Header.Type() }

type Const struct {
	Header wire.CommonHeader
}

func (t Const) Kind() wire.Kind               { return wire.KindConst }
func (t Const) ChainedTypeID() (uint32, bool) { return t.Header.Type() }

type Restrict struct {
	Header wire.CommonHeader
}

func (t Restrict) Kind() wire.Kind               { return wire.KindRestrict }
func (t Restrict) ChainedTypeID() (uint32, bool) { return t.Header.Type() }

// Func declares a function symbol, chaining to its FuncProto.
type Func struct {
	Header wire.CommonHeader
}

func (t Func) Kind() wire.Kind               { return wire.KindFunc }
func (t Func) NameOffset() (uint32, bool)    { return t.Header.NameOffset() }
func (t Func) ChainedTypeID() (uint32, bool) { return t.Header.Type() }
func (t Func) Linkage() Linkage              { return funcLinkage(t.Header) }
func (t Func) IsStatic() bool                { return t.Linkage().IsStatic() }
func (t Func) IsGlobal() bool                { return t.Linkage().IsGlobal() }
func (t Func) IsExtern() bool                { return t.Linkage().IsExtern() }

// Parameter is one formal parameter of a FuncProto. Unlike top-level
// kinds, a Parameter's name offset is always present, even when it is
// 0 (an unnamed parameter) -- that is distinct from a variadic marker,
// which additionally requires a type id of 0.
type Parameter struct {
	Info wire.ParamInfo
}

func (p Parameter) NameOffset() (uint32, bool)    { return p.Info.NameOff, true }
func (p Parameter) ChainedTypeID() (uint32, bool) { return p.Info.Type, true }
func (p Parameter) IsVariadic() bool              { return p.Info.NameOff == 0 && p.Info.Type == 0 }

// FuncProto is a function signature: a return type and an ordered
// parameter list.
type FuncProto struct {
	Header     wire.CommonHeader
	Parameters []Parameter
}

func (t FuncProto) Kind() wire.Kind { return wire.KindFuncProto }

// ReturnTypeID returns the id of the function's return type.
func (t FuncProto) ReturnTypeID() uint32 {
	id, _ := t.Header.Type()
	return id
}

func decodeFuncProto(r io.Reader, end endian.Endianness, h wire.CommonHeader) (FuncProto, error) {
	params := make([]Parameter, 0, h.Vlen())
	for i := uint32(0); i < h.Vlen(); i++ {
		info, err := wire.ReadParamInfo(r, end)
		if err != nil {
			return FuncProto{}, err
		}
		params = append(params, Parameter{Info: info})
	}
	return FuncProto{Header: h, Parameters: params}, nil
}

// Var declares a single global variable.
type Var struct {
	Header wire.CommonHeader
	Info   wire.VarInfo
}

func (t Var) Kind() wire.Kind               { return wire.KindVar }
func (t Var) NameOffset() (uint32, bool)    { return t.Header.NameOffset() }
func (t Var) ChainedTypeID() (uint32, bool) { return t.Header.Type() }
func (t Var) Linkage() Linkage              { return Linkage(t.Info.Linkage) }
func (t Var) IsStatic() bool                { return t.Linkage().IsStatic() }
func (t Var) IsGlobal() bool                { return t.Linkage().IsGlobal() }
func (t Var) IsExtern() bool                { return t.Linkage().IsExtern() }

func decodeVar(r io.Reader, end endian.Endianness, h wire.CommonHeader) (Var, error) {
	info, err := wire.ReadVarInfo(r, end)
	if err != nil {
		return Var{}, err
	}
	return Var{Header: h, Info: info}, nil
}
