package system

import (
	"github.com/younwookim/hunter/internal/domain/entity"
	"github.com/younwookim/hunter/internal/infrastructure/config"
)

// LoadStage converts a SceneConfig into a Stage entity.
// The widest collision row sets the stage width; short rows are padded
// with empty tiles.
func LoadStage(cfg *config.SceneConfig) *entity.Stage {
	tileSize := cfg.TileSize
	if tileSize <= 0 {
		tileSize = 1
	}

	tileWidth := 0
	for _, row := range cfg.Layers.Collision {
		if n := len([]rune(row)); n > tileWidth {
			tileWidth = n
		}
	}
	tileHeight := len(cfg.Layers.Collision)

	tiles := make([][]entity.Tile, tileHeight)
	for z, row := range cfg.Layers.Collision {
		tiles[z] = make([]entity.Tile, tileWidth)
		for x, char := range []rune(row) {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				tiles[z][x] = entity.Tile{Type: entity.TileEmpty, Solid: false}
				continue
			}

			var tileType entity.TileType
			switch mapping.Type {
			case "wall":
				tileType = entity.TileWall
			case "cover":
				tileType = entity.TileCover
			default:
				tileType = entity.TileEmpty
			}

			tiles[z][x] = entity.Tile{
				Type:  tileType,
				Solid: mapping.Solid,
			}
		}
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: tileSize,
		Tiles:    tiles,
		SpawnX:   cfg.IntruderSpawn.X,
		SpawnZ:   cfg.IntruderSpawn.Z,
	}
}

// RouteFromConfig converts configured route points into a patrol route
func RouteFromConfig(points []config.PointConfig) entity.PatrolRoute {
	pts := make([]entity.Vec3, len(points))
	for i, p := range points {
		pts[i] = entity.Vec3{X: p.X, Z: p.Z}
	}
	return entity.NewPatrolRoute(pts)
}
