package btf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jtang613/btfgo/pkg/btf/types"
)

func TestOpenFromBytesAndResolve(t *testing.T) {
	data := buildBaseBTF()
	b, err := FromBytes(data)
	require.NoError(t, err)
	defer b.Close()

	ids := b.ResolveIDsByName("int")
	require.Equal(t, []uint32{1}, ids)

	typ, err := b.ResolveTypeByID(1)
	require.NoError(t, err)
	require.IsType(t, types.Int{}, typ)

	ptr, err := b.ResolveTypeByID(2)
	require.NoError(t, err)
	chained, err := b.ResolveChainedType(ptr.(types.TypeChained))
	require.NoError(t, err)
	require.IsType(t, types.Int{}, chained)
}

func TestResolveTypeByIDUnknown(t *testing.T) {
	b, err := FromBytes(buildBaseBTF())
	require.NoError(t, err)
	defer b.Close()

	_, err = b.ResolveTypeByID(999)
	require.Error(t, err)
}

func TestSplitOfSplitRejected(t *testing.T) {
	base, err := FromBytes(buildBaseBTF())
	require.NoError(t, err)
	defer base.Close()

	split, err := FromSplitBytes(buildSplitBTF(), base)
	require.NoError(t, err)
	defer split.Close()

	_, err = FromSplitBytes(buildSplitBTF(), split)
	require.Error(t, err)
}

func TestSplitResolvesOwnThenBase(t *testing.T) {
	base, err := FromBytes(buildBaseBTF())
	require.NoError(t, err)
	defer base.Close()

	split, err := FromSplitBytes(buildSplitBTF(), base)
	require.NoError(t, err)
	defer split.Close()

	// "int" only exists in the base.
	ids := split.ResolveIDsByName("int")
	require.Equal(t, []uint32{1}, ids)

	// "my_struct" only exists in the split, at id 3 (base has ids 0..2).
	ids2 := split.ResolveIDsByName("my_struct")
	require.Equal(t, []uint32{3}, ids2)

	// Id resolution reaches the base's types.
	intType, err := split.ResolveTypeByID(1)
	require.NoError(t, err)
	require.IsType(t, types.Int{}, intType)
}
