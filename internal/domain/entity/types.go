package entity

import "math"

// EntityID is a unique identifier for an entity
type EntityID uint32

// Vec3 is a world-space position or direction.
// Y is up; the ground plane is X/Z.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Len returns the euclidean length
func (v Vec3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// PlanarLen returns the length projected onto the ground plane
func (v Vec3) PlanarLen() float64 { return math.Hypot(v.X, v.Z) }

// Distance returns the straight-line distance between a and b
func Distance(a, b Vec3) float64 { return b.Sub(a).Len() }

// PlanarDistance returns the ground-plane distance between a and b
func PlanarDistance(a, b Vec3) float64 { return b.Sub(a).PlanarLen() }

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TileCover
)

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
}

// Stage is the walkable ground grid. Tile (tx, tz) covers world
// X in [tx*TileSize, (tx+1)*TileSize) and Z likewise.
type Stage struct {
	Width    int
	Height   int
	TileSize float64
	Tiles    [][]Tile
	SpawnX   float64
	SpawnZ   float64
}

// GetTile returns the tile at the given tile coordinates
func (s *Stage) GetTile(tx, tz int) Tile {
	if tx < 0 || tx >= s.Width || tz < 0 || tz >= s.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[tz][tx]
}

// GetTileAt returns the tile under the given world position
func (s *Stage) GetTileAt(p Vec3) Tile {
	if s.TileSize <= 0 {
		return Tile{Type: TileWall, Solid: true}
	}
	tx := int(math.Floor(p.X / s.TileSize))
	tz := int(math.Floor(p.Z / s.TileSize))
	return s.GetTile(tx, tz)
}

// IsWalkable reports whether a body may stand at p
func (s *Stage) IsWalkable(p Vec3) bool {
	if s == nil {
		return true
	}
	return !s.GetTileAt(p).Solid
}

// Spawn returns the intruder spawn point
func (s *Stage) Spawn() Vec3 {
	return Vec3{X: s.SpawnX, Z: s.SpawnZ}
}
