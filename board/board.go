package board

import (
	"fmt"
	"math/rand"
)

// Terrain is a hex terrain type
type Terrain int

const (
	Hills Terrain = iota
	Forest
	Mountains
	Fields
	Pasture
	Desert
)

var terrainNames = []string{
	"hills",
	"forest",
	"mountains",
	"fields",
	"pasture",
	"desert",
}

func (t Terrain) String() string {
	return terrainNames[t]
}

// Resource is a tradeable resource type
type Resource int

const (
	NoResource Resource = iota
	Brick
	Lumber
	Ore
	Grain
	Wool
)

var resourceNames = []string{
	"none",
	"brick",
	"lumber",
	"ore",
	"grain",
	"wool",
}

func (r Resource) String() string {
	return resourceNames[r]
}

// ParseResource parses a resource name
func ParseResource(name string) (Resource, error) {
	for i, n := range resourceNames[1:] {
		if n == name {
			return Resource(i + 1), nil
		}
	}
	return NoResource, fmt.Errorf("unknown resource %q", name)
}

// Yield returns the resource a terrain produces. Desert yields nothing.
func (t Terrain) Yield() Resource {
	switch t {
	case Hills:
		return Brick
	case Forest:
		return Lumber
	case Mountains:
		return Ore
	case Fields:
		return Grain
	case Pasture:
		return Wool
	}
	return NoResource
}

// Hex is a single board tile. Immutable after generation; robber
// occupancy is board-global game state, not a hex field.
type Hex struct {
	Coord   HexCoord `json:"coord"`
	Terrain Terrain  `json:"terrain"`
	Number  int      `json:"number"` // dice number 2-12, 0 for the desert
}

// Resource returns the hex's payout resource
func (h *Hex) Resource() Resource {
	return h.Terrain.Yield()
}

// Port is a maritime trade point on the coast. A player with a
// settlement or city on either vertex trades at the port's ratio.
type Port struct {
	Ratio    int            `json:"ratio"`              // 3 for generic, 2 for resource ports
	Resource Resource       `json:"resource,omitempty"` // NoResource for generic ports
	Vertices [2]VertexCoord `json:"vertices"`
}

// Board is the immutable generated board: tiles and ports.
type Board struct {
	Hexes     map[string]*Hex `json:"hexes"`
	Ports     []Port          `json:"ports"`
	DesertKey string          `json:"desertKey"`
}

// standard board composition
var standardTerrain = []Terrain{
	Hills, Hills, Hills,
	Forest, Forest, Forest, Forest,
	Mountains, Mountains, Mountains,
	Fields, Fields, Fields, Fields,
	Pasture, Pasture, Pasture, Pasture,
	Desert,
}

var standardNumbers = []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}

// coastal edges carrying one port each
var portEdges = [9]EdgeCoord{
	{0, -2, 5},
	{1, -2, 0},
	{2, -1, 1},
	{2, 0, 2},
	{1, 1, 2},
	{0, 2, 3},
	{-1, 2, 4},
	{-2, 1, 4},
	{-2, 0, 5},
}

// hexCoords returns the 19 axial coordinates of the radius-2 hexagon,
// in a fixed row-major order.
func hexCoords() []HexCoord {
	coords := []HexCoord{}
	for r := -2; r <= 2; r++ {
		for q := -2; q <= 2; q++ {
			if q+r >= -2 && q+r <= 2 {
				coords = append(coords, HexCoord{q, r})
			}
		}
	}
	return coords
}

// Generate lays out a standard board: shuffled terrain, shuffled number
// tokens on the non-desert tiles, shuffled port kinds on the fixed
// coastal edges. The caller supplies the randomness source.
func Generate(rng *rand.Rand) *Board {
	terrain := make([]Terrain, len(standardTerrain))
	copy(terrain, standardTerrain)
	rng.Shuffle(len(terrain), func(i, j int) {
		terrain[i], terrain[j] = terrain[j], terrain[i]
	})

	numbers := make([]int, len(standardNumbers))
	copy(numbers, standardNumbers)
	rng.Shuffle(len(numbers), func(i, j int) {
		numbers[i], numbers[j] = numbers[j], numbers[i]
	})

	ports := portKinds()
	rng.Shuffle(len(ports), func(i, j int) {
		ports[i], ports[j] = ports[j], ports[i]
	})

	return assemble(terrain, numbers, ports)
}

// Fixed lays out a deterministic standard board for tests: terrain and
// numbers assigned in their canonical order.
func Fixed() *Board {
	ports := portKinds()
	return assemble(standardTerrain, standardNumbers, ports)
}

func portKinds() []Port {
	return []Port{
		{Ratio: 3}, {Ratio: 3}, {Ratio: 3}, {Ratio: 3},
		{Ratio: 2, Resource: Brick},
		{Ratio: 2, Resource: Lumber},
		{Ratio: 2, Resource: Ore},
		{Ratio: 2, Resource: Grain},
		{Ratio: 2, Resource: Wool},
	}
}

func assemble(terrain []Terrain, numbers []int, ports []Port) *Board {
	b := &Board{Hexes: map[string]*Hex{}}

	n := 0
	for i, coord := range hexCoords() {
		hex := &Hex{Coord: coord, Terrain: terrain[i]}
		if hex.Terrain == Desert {
			b.DesertKey = coord.Key()
		} else {
			hex.Number = numbers[n]
			n++
		}
		b.Hexes[coord.Key()] = hex
	}

	for i, e := range portEdges {
		p := ports[i]
		ends := EdgeVertices(e)
		p.Vertices = [2]VertexCoord{CanonicalVertex(ends[0]), CanonicalVertex(ends[1])}
		b.Ports = append(b.Ports, p)
	}

	return b
}
