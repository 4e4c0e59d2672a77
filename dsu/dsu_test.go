package dsu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashi/dsu"
)

func TestNewSingletons(t *testing.T) {
	d := dsu.New(4)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 1, d.Size(i), "Size(%d)", i)
	}
	assert.Equal(t, 4, d.Components())
}

func TestUnionMergesAndReportsDistinct(t *testing.T) {
	d := dsu.New(5)
	require.True(t, d.Union(0, 1), "first merge must report true")
	require.False(t, d.Union(0, 1), "second merge of the same pair must report false")
	assert.True(t, d.Connected(0, 1))
	assert.False(t, d.Connected(0, 2))
	assert.Equal(t, 2, d.Size(0))
}

func TestUnionChainFormsSingleComponent(t *testing.T) {
	d := dsu.New(6)
	d.Union(0, 1)
	d.Union(1, 2)
	d.Union(3, 4)
	d.Union(2, 3)

	root := d.Root(0)
	for i := 1; i < 5; i++ {
		assert.Equal(t, root, d.Root(i), "Root(%d)", i)
	}
	assert.False(t, d.Connected(0, 5), "5 is isolated")
	assert.Equal(t, 2, d.Components())
}
