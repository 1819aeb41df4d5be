package config

// SceneConfig is the root config for scene files (scenes/<name>.json|yaml)
type SceneConfig struct {
	ID            string                       `json:"id" yaml:"id"`
	Name          string                       `json:"name" yaml:"name"`
	TileSize      float64                      `json:"tileSize" yaml:"tileSize"`
	Layers        LayersConfig                 `json:"layers" yaml:"layers"`
	TileMapping   map[string]TileMappingConfig `json:"tileMapping" yaml:"tileMapping"`
	IntruderSpawn PointConfig                  `json:"intruderSpawn" yaml:"intruderSpawn"`
	Adversaries   []AdversarySpawnConfig       `json:"adversaries" yaml:"adversaries"`
}

// LayersConfig holds one string per tile row; each rune maps through
// TileMapping
type LayersConfig struct {
	Collision []string `json:"collision" yaml:"collision"`
}

type TileMappingConfig struct {
	Type  string `json:"type" yaml:"type"`
	Solid bool   `json:"solid" yaml:"solid"`
}

// PointConfig is a ground-plane position
type PointConfig struct {
	X float64 `json:"x" yaml:"x"`
	Z float64 `json:"z" yaml:"z"`
}

type AdversarySpawnConfig struct {
	Name  string        `json:"name" yaml:"name"`
	Spawn PointConfig   `json:"spawn" yaml:"spawn"`
	Route []PointConfig `json:"route" yaml:"route"`
}
