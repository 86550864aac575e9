package board

import (
	"errors"
	"testing"

	utils "github.com/mwalcott/frontier/internal"
	"github.com/stretchr/testify/assert"
)

func TestParseKeys(t *testing.T) {
	t.Run("round trips", func(t *testing.T) {
		h, err := ParseHexKey("2,-1")
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, h, HexCoord{2, -1})
		utils.AssertEqual(t, h.Key(), "2,-1")

		v, err := ParseVertexKey("v_-1_0_4")
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, v, VertexCoord{-1, 0, 4})
		utils.AssertEqual(t, v.Key(), "v_-1_0_4")

		e, err := ParseEdgeKey("e_0_2_5")
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, e, EdgeCoord{0, 2, 5})
		utils.AssertEqual(t, e.Key(), "e_0_2_5")
	})

	t.Run("malformed keys are loud", func(t *testing.T) {
		for _, key := range []string{"", "v_0_0", "v_0_0_6", "v_0_0_-1", "v_x_0_0", "v_0_0_0_0", "e_0_0_0"} {
			_, err := ParseVertexKey(key)
			assert.True(t, errors.Is(err, ErrMalformedCoordinate), "vertex key %q", key)
		}

		_, err := ParseEdgeKey("v_0_0_0")
		assert.True(t, errors.Is(err, ErrMalformedCoordinate))

		for _, key := range []string{"", "0", "0;0", "x,0"} {
			_, err := ParseHexKey(key)
			assert.True(t, errors.Is(err, ErrMalformedCoordinate), "hex key %q", key)
		}
	})
}

func TestVertexEquivalence(t *testing.T) {
	t.Run("known equivalent triples", func(t *testing.T) {
		tt := []struct {
			name string
			a, b VertexCoord
		}{
			{"top corner via NW hex", VertexCoord{0, 0, 0}, VertexCoord{0, -1, 2}},
			{"top corner via NE hex", VertexCoord{0, 0, 0}, VertexCoord{1, -1, 4}},
			{"upper right via NE hex", VertexCoord{0, 0, 1}, VertexCoord{1, -1, 3}},
			{"upper right via E hex", VertexCoord{0, 0, 1}, VertexCoord{1, 0, 5}},
			{"bottom corner via SE hex", VertexCoord{0, 0, 3}, VertexCoord{0, 1, 5}},
			{"offset hex corner", VertexCoord{2, -1, 4}, VertexCoord{1, 0, 0}},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				assert.True(t, AreVerticesEqual(tc.a, tc.b))
				assert.Equal(t, CanonicalVertex(tc.a), CanonicalVertex(tc.b))
			})
		}
	})

	t.Run("distinct vertices stay distinct", func(t *testing.T) {
		assert.False(t, AreVerticesEqual(VertexCoord{0, 0, 0}, VertexCoord{0, 0, 1}))
		assert.False(t, AreVerticesEqual(VertexCoord{0, 0, 0}, VertexCoord{2, 0, 0}))
	})

	t.Run("every triple in an equivalence set resolves to the same set", func(t *testing.T) {
		for dir := 0; dir < 6; dir++ {
			v := VertexCoord{1, -2, dir}
			want := CanonicalVertex(v)
			for _, eq := range EquivalentVertices(v) {
				utils.AssertEqual(t, CanonicalVertex(eq), want)
			}
		}
	})

	t.Run("equivalence sets have three distinct members", func(t *testing.T) {
		eq := EquivalentVertices(VertexCoord{0, 0, 2})
		assert.NotEqual(t, eq[0], eq[1])
		assert.NotEqual(t, eq[0], eq[2])
		assert.NotEqual(t, eq[1], eq[2])
	})
}

func TestEdgeEquivalence(t *testing.T) {
	t.Run("an edge is shared by exactly two hexes", func(t *testing.T) {
		tt := []struct {
			name string
			a, b EdgeCoord
		}{
			{"NE edge", EdgeCoord{0, 0, 0}, EdgeCoord{1, -1, 3}},
			{"E edge", EdgeCoord{0, 0, 1}, EdgeCoord{1, 0, 4}},
			{"SE edge", EdgeCoord{0, 0, 2}, EdgeCoord{0, 1, 5}},
			{"SW edge", EdgeCoord{0, 0, 3}, EdgeCoord{-1, 1, 0}},
			{"W edge", EdgeCoord{0, 0, 4}, EdgeCoord{-1, 0, 1}},
			{"NW edge", EdgeCoord{0, 0, 5}, EdgeCoord{0, -1, 2}},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				assert.True(t, AreEdgesEqual(tc.a, tc.b))
				eq := EquivalentEdges(tc.a)
				utils.AssertEqual(t, eq[1], tc.b)
				utils.AssertEqual(t, CanonicalEdge(tc.a), CanonicalEdge(tc.b))
			})
		}
	})

	t.Run("distinct edges stay distinct", func(t *testing.T) {
		assert.False(t, AreEdgesEqual(EdgeCoord{0, 0, 0}, EdgeCoord{0, 0, 1}))
	})
}

func TestVertexEdges(t *testing.T) {
	t.Run("every vertex has three incident edges", func(t *testing.T) {
		for dir := 0; dir < 6; dir++ {
			v := VertexCoord{-1, 1, dir}
			edges := VertexEdges(v)
			utils.AssertEqual(t, len(edges), 3)

			// each incident edge has this vertex as one endpoint
			for _, e := range edges {
				ends := EdgeVertices(e)
				found := AreVerticesEqual(ends[0], v) || AreVerticesEqual(ends[1], v)
				assert.True(t, found, "edge %v does not touch vertex %v", e, v)
			}
		}
	})

	t.Run("equivalent triples report the same incident edges", func(t *testing.T) {
		v := VertexCoord{0, 0, 1}
		want := VertexEdges(v)
		for _, eq := range EquivalentVertices(v) {
			utils.AssertDeepEqual(t, edgeSet(VertexEdges(eq)), edgeSet(want))
		}
	})

	t.Run("an edge's endpoints share exactly that edge", func(t *testing.T) {
		e := EdgeCoord{0, 0, 0}
		ends := EdgeVertices(e)
		shared := []EdgeCoord{}
		setA := edgeSet(VertexEdges(ends[0]))
		for _, candidate := range VertexEdges(ends[1]) {
			if setA[candidate] {
				shared = append(shared, candidate)
			}
		}
		utils.AssertEqual(t, len(shared), 1)
		assert.True(t, AreEdgesEqual(shared[0], e))
	})
}

func TestAdjacentVertices(t *testing.T) {
	v := VertexCoord{0, 0, 0}
	adjacent := AdjacentVertices(v)
	utils.AssertEqual(t, len(adjacent), 3)

	self := CanonicalVertex(v)
	for _, a := range adjacent {
		assert.NotEqual(t, a, self)
		// adjacency is mutual
		back := AdjacentVertices(a)
		found := false
		for _, b := range back {
			if b == self {
				found = true
			}
		}
		assert.True(t, found)
	}
}

func edgeSet(edges []EdgeCoord) map[EdgeCoord]bool {
	set := map[EdgeCoord]bool{}
	for _, e := range edges {
		set[CanonicalEdge(e)] = true
	}
	return set
}
