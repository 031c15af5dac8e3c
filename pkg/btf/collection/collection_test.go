package collection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jtang613/btfgo/pkg/btf/types"
)

func TestCollectionDuplicateSplitName(t *testing.T) {
	coll, err := FromBytes("base", buildBaseBTF())
	require.NoError(t, err)
	defer coll.Close()

	require.NoError(t, coll.AddSplitFromBytes("mod_a", buildSplitBTF()))
	err = coll.AddSplitFromBytes("mod_a", buildSplitBTF())
	require.Error(t, err)
}

func TestCollectionResolveOrdering(t *testing.T) {
	coll, err := FromBytes("base", buildBaseBTF())
	require.NoError(t, err)
	defer coll.Close()

	require.NoError(t, coll.AddSplitFromBytes("mod_a", buildSplitBTF()))

	hits := coll.ResolveIDsByName("int")
	require.Len(t, hits, 1)
	require.Equal(t, "base", hits[0].Source.Name)

	hits2 := coll.ResolveIDsByName("my_struct")
	require.Len(t, hits2, 1)
	require.Equal(t, "mod_a", hits2[0].Source.Name)

	typeHits, err := coll.ResolveTypesByName("int")
	require.NoError(t, err)
	require.IsType(t, types.Int{}, typeHits[0].Type)
}

func TestGetNamedBtfSplitsOnly(t *testing.T) {
	coll, err := FromBytes("base", buildBaseBTF())
	require.NoError(t, err)
	defer coll.Close()
	require.NoError(t, coll.AddSplitFromBytes("mod_a", buildSplitBTF()))

	_, ok := coll.GetNamedBtf("base")
	require.False(t, ok)

	nb, ok := coll.GetNamedBtf("mod_a")
	require.True(t, ok)
	require.Equal(t, "mod_a", nb.Name)
}
