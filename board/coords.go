package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedCoordinate indicates a coordinate key that does not parse.
// This is an integration bug in the caller, not a game-rule outcome.
var ErrMalformedCoordinate = errors.New("malformed coordinate key")

// HexCoord addresses one hex in axial coordinates.
// The implicit third cube coordinate is -q-r.
type HexCoord struct {
	Q, R int
}

// VertexCoord addresses a settlement slot as seen from one hex.
// Up to three such triples denote the same physical vertex.
type VertexCoord struct {
	Q, R, Dir int
}

// EdgeCoord addresses a road slot as seen from one hex.
// Edge d joins vertex d and vertex (d+1)%6 of the same hex;
// exactly two such triples denote the same physical edge.
type EdgeCoord struct {
	Q, R, Dir int
}

// hexNeighbors lists the six adjacent hex offsets. Index d is the
// neighbor across edge d: NE, E, SE, SW, W, NW for a pointy-top grid
// with r increasing southwards.
var hexNeighbors = [6]HexCoord{
	{1, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1},
}

func (h HexCoord) Key() string {
	return fmt.Sprintf("%d,%d", h.Q, h.R)
}

func (v VertexCoord) Key() string {
	return fmt.Sprintf("v_%d_%d_%d", v.Q, v.R, v.Dir)
}

func (e EdgeCoord) Key() string {
	return fmt.Sprintf("e_%d_%d_%d", e.Q, e.R, e.Dir)
}

// ParseHexKey parses a "{q},{r}" hex key
func ParseHexKey(key string) (HexCoord, error) {
	parts := strings.Split(key, ",")
	if len(parts) != 2 {
		return HexCoord{}, fmt.Errorf("%w: %q", ErrMalformedCoordinate, key)
	}
	q, err1 := strconv.Atoi(parts[0])
	r, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return HexCoord{}, fmt.Errorf("%w: %q", ErrMalformedCoordinate, key)
	}
	return HexCoord{q, r}, nil
}

// ParseVertexKey parses a "v_{q}_{r}_{dir}" vertex key
func ParseVertexKey(key string) (VertexCoord, error) {
	q, r, dir, err := parseTriple(key, "v")
	if err != nil {
		return VertexCoord{}, err
	}
	return VertexCoord{q, r, dir}, nil
}

// ParseEdgeKey parses an "e_{q}_{r}_{dir}" edge key
func ParseEdgeKey(key string) (EdgeCoord, error) {
	q, r, dir, err := parseTriple(key, "e")
	if err != nil {
		return EdgeCoord{}, err
	}
	return EdgeCoord{q, r, dir}, nil
}

func parseTriple(key, prefix string) (int, int, int, error) {
	parts := strings.Split(key, "_")
	if len(parts) != 4 || parts[0] != prefix {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedCoordinate, key)
	}
	q, err1 := strconv.Atoi(parts[1])
	r, err2 := strconv.Atoi(parts[2])
	dir, err3 := strconv.Atoi(parts[3])
	if err1 != nil || err2 != nil || err3 != nil || dir < 0 || dir > 5 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedCoordinate, key)
	}
	return q, r, dir, nil
}

// EquivalentVertices returns the three coordinate triples denoting the
// same physical vertex: the triple itself, plus the views from the two
// neighboring hexes that share the corner. Vertex d of a hex is vertex
// (d+2)%6 of the neighbor across edge (d+5)%6 and vertex (d+4)%6 of
// the neighbor across edge d.
func EquivalentVertices(v VertexCoord) [3]VertexCoord {
	a := hexNeighbors[(v.Dir+5)%6]
	b := hexNeighbors[v.Dir]
	return [3]VertexCoord{
		v,
		{v.Q + a.Q, v.R + a.R, (v.Dir + 2) % 6},
		{v.Q + b.Q, v.R + b.R, (v.Dir + 4) % 6},
	}
}

// EquivalentEdges returns the two coordinate triples denoting the same
// physical edge: the triple itself and the view from the hex across it,
// where edge d becomes edge (d+3)%6.
func EquivalentEdges(e EdgeCoord) [2]EdgeCoord {
	n := hexNeighbors[e.Dir]
	return [2]EdgeCoord{
		e,
		{e.Q + n.Q, e.R + n.R, (e.Dir + 3) % 6},
	}
}

// CanonicalVertex maps any of a vertex's equivalent triples to one
// canonical representative: the smallest triple ordered by (q, r, dir).
func CanonicalVertex(v VertexCoord) VertexCoord {
	eq := EquivalentVertices(v)
	min := eq[0]
	for _, c := range eq[1:] {
		if vertexLess(c, min) {
			min = c
		}
	}
	return min
}

// CanonicalEdge maps either of an edge's equivalent triples to one
// canonical representative: the smaller triple ordered by (q, r, dir).
func CanonicalEdge(e EdgeCoord) EdgeCoord {
	eq := EquivalentEdges(e)
	if edgeLess(eq[1], eq[0]) {
		return eq[1]
	}
	return eq[0]
}

func vertexLess(a, b VertexCoord) bool {
	if a.Q != b.Q {
		return a.Q < b.Q
	}
	if a.R != b.R {
		return a.R < b.R
	}
	return a.Dir < b.Dir
}

func edgeLess(a, b EdgeCoord) bool {
	if a.Q != b.Q {
		return a.Q < b.Q
	}
	if a.R != b.R {
		return a.R < b.R
	}
	return a.Dir < b.Dir
}

// AreVerticesEqual reports whether two triples denote the same physical vertex
func AreVerticesEqual(a, b VertexCoord) bool {
	return CanonicalVertex(a) == CanonicalVertex(b)
}

// AreEdgesEqual reports whether two triples denote the same physical edge
func AreEdgesEqual(a, b EdgeCoord) bool {
	return CanonicalEdge(a) == CanonicalEdge(b)
}

// EdgeVertices returns the two endpoint vertices of an edge
func EdgeVertices(e EdgeCoord) [2]VertexCoord {
	return [2]VertexCoord{
		{e.Q, e.R, e.Dir},
		{e.Q, e.R, (e.Dir + 1) % 6},
	}
}

// VertexEdges returns the three physical edges incident to a vertex,
// as canonical triples. Each of the vertex's equivalent triples
// contributes the two edges of its own hex that touch the corner;
// deduplication collapses the six candidates to three.
func VertexEdges(v VertexCoord) []EdgeCoord {
	seen := map[EdgeCoord]bool{}
	edges := []EdgeCoord{}
	for _, eq := range EquivalentVertices(v) {
		for _, d := range [2]int{eq.Dir, (eq.Dir + 5) % 6} {
			c := CanonicalEdge(EdgeCoord{eq.Q, eq.R, d})
			if !seen[c] {
				seen[c] = true
				edges = append(edges, c)
			}
		}
	}
	return edges
}

// AdjacentVertices returns the three physical vertices one edge away
// from a vertex, as canonical triples.
func AdjacentVertices(v VertexCoord) []VertexCoord {
	self := CanonicalVertex(v)
	adjacent := []VertexCoord{}
	for _, e := range VertexEdges(v) {
		for _, end := range EdgeVertices(e) {
			if c := CanonicalVertex(end); c != self {
				adjacent = append(adjacent, c)
			}
		}
	}
	return adjacent
}

// HexVertices returns the six vertices of a hex, as canonical triples.
func HexVertices(h HexCoord) [6]VertexCoord {
	var vs [6]VertexCoord
	for d := 0; d < 6; d++ {
		vs[d] = CanonicalVertex(VertexCoord{h.Q, h.R, d})
	}
	return vs
}
