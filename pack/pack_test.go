package pack_test

import (
	"testing"

	"github.com/katalvlaran/terra/grid"
	"github.com/katalvlaran/terra/pack"
	"github.com/stretchr/testify/require"
)

// ringWorld classifies a 5×5 grid as an ocean border around a land ring
// that encloses a single lake cell:
//
//	W W W W W
//	W L L L W
//	W L W L W
//	W L L L W
//	W W W W W
func ringWorld(t *testing.T, opts ...grid.Option) *grid.Grid {
	t.Helper()
	g, err := grid.Build(5, 5, opts...)
	require.NoError(t, err)
	g.Each(func(c *grid.Cell) {
		land := c.Row >= 1 && c.Row <= 3 && c.Col >= 1 && c.Col <= 3 && !(c.Row == 2 && c.Col == 2)
		if land {
			c.Terrain.Set(grid.Land)
			c.Biome.Set("Grassland")
		} else {
			c.Terrain.Set(grid.Water)
			c.Biome.Set("Marine")
		}
		c.Height.Set(float64(c.Row))
	})
	return g
}

func TestNew_Errors(t *testing.T) {
	_, err := pack.New(nil)
	require.ErrorIs(t, err, pack.ErrNilGrid)

	g, err := grid.Build(2, 2)
	require.NoError(t, err)
	_, err = pack.New(g)
	require.ErrorIs(t, err, pack.ErrNotClassified)
}

func TestFeatures(t *testing.T) {
	p, err := pack.New(ringWorld(t))
	require.NoError(t, err)
	require.Equal(t, 25, p.Len())

	fs := p.Features()
	require.Len(t, fs, 3)
	require.Equal(t, pack.Ocean, fs[0].Type)
	require.Equal(t, pack.Island, fs[1].Type)
	require.Equal(t, pack.Lake, fs[2].Type)
	require.Len(t, fs[0].Cells, 16)
	require.Len(t, fs[1].Cells, 8)
	require.Equal(t, []int{12}, fs[2].Cells)
	require.True(t, fs[0].Border)
	require.False(t, fs[2].Border)

	centre, err := p.Cell(12)
	require.NoError(t, err)
	require.Equal(t, 3, centre.Feature)
	require.Equal(t, grid.Water, centre.Terrain)

	require.Equal(t, map[pack.FeatureType]int{pack.Ocean: 1, pack.Island: 1, pack.Lake: 1}, p.FeatureCounts())
	require.Equal(t, map[string]int{"Grassland": 8, "Marine": 17}, p.BiomeCounts())

	_, err = p.Feature(0)
	require.ErrorIs(t, err, pack.ErrFeatureNotFound)
	_, err = p.Feature(4)
	require.ErrorIs(t, err, pack.ErrFeatureNotFound)
}

// TestFeatures_Conn4 drops diagonals: the lake stays enclosed, and the
// land ring is still one component.
func TestFeatures_Conn4(t *testing.T) {
	p, err := pack.New(ringWorld(t, grid.WithConnectivity(grid.Conn4)))
	require.NoError(t, err)
	require.Equal(t, map[pack.FeatureType]int{pack.Ocean: 1, pack.Island: 1, pack.Lake: 1}, p.FeatureCounts())
}

func TestNeighbors_CSR(t *testing.T) {
	g := ringWorld(t)
	p, err := pack.New(g)
	require.NoError(t, err)

	for i := 0; i < p.Len(); i++ {
		c, _ := p.Cell(i)
		gc, err := g.GetCell(c.GridID)
		require.NoError(t, err)

		nb, err := p.Neighbors(i)
		require.NoError(t, err)
		require.Len(t, nb, len(gc.Neighbors))
		for k, j := range nb {
			other, _ := p.Cell(j)
			require.Equal(t, gc.Neighbors[k], other.GridID)
		}
	}
	_, err = p.Neighbors(-1)
	require.ErrorIs(t, err, pack.ErrOutOfRange)
	_, err = p.Cell(25)
	require.ErrorIs(t, err, pack.ErrOutOfRange)
}

func TestByGridID(t *testing.T) {
	p, err := pack.New(ringWorld(t))
	require.NoError(t, err)

	c, err := p.ByGridID(grid.CellID(3, 4))
	require.NoError(t, err)
	require.Equal(t, 3, c.Row)
	require.Equal(t, 4, c.Col)
	require.Equal(t, 3*5+4, c.Index)
	h, ok := c.Height.Get()
	require.True(t, ok)
	require.Equal(t, 3.0, h)

	_, err = p.ByGridID(grid.CellID(9, 9))
	require.ErrorIs(t, err, pack.ErrCellNotFound)
}
