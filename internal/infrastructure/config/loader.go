package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display   *DisplayConfig
	Adversary *AdversaryConfig
	Scene     *SceneConfig
}

// Loader loads game configuration from JSON and YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	var cfg DisplayConfig
	if err := l.decode("display.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAdversary loads adversary.yaml
func (l *Loader) LoadAdversary() (*AdversaryConfig, error) {
	var cfg AdversaryConfig
	if err := l.decode("adversary.yaml", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadScene loads scenes/<name>.json, falling back to scenes/<name>.yaml
func (l *Loader) LoadScene(name string) (*SceneConfig, error) {
	var lastErr error
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		p := "scenes/" + name + ext
		if _, err := fs.Stat(l.fsys, p); err != nil {
			lastErr = err
			continue
		}

		var cfg SceneConfig
		if err := l.decode(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load scene %s: %w", name, err)
		}
		return &cfg, nil
	}
	return nil, fmt.Errorf("failed to read scene %s: %w", name, lastErr)
}

// LoadAll loads display, adversary tuning and the named scene
func (l *Loader) LoadAll(scene string) (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	adversary, err := l.LoadAdversary()
	if err != nil {
		return nil, err
	}

	sc, err := l.LoadScene(scene)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Display:   display,
		Adversary: adversary,
		Scene:     sc,
	}, nil
}

// decode reads name and unmarshals it by file extension
func (l *Loader) decode(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	switch path.Ext(name) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
