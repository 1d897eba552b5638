// Package assets loads the game's sprites from an embedded sprite sheet.
package assets

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

//go:embed sprites.yaml
var defaultSheet []byte

// spriteDef is one entry of the sprite sheet.
type spriteDef struct {
	Name   string   `yaml:"name"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Glyph  string   `yaml:"glyph"`
	Color  string   `yaml:"color"`
	Rows   []string `yaml:"rows"`
}

type sheet struct {
	Sprites []spriteDef `yaml:"sprites"`
}

// Library resolves sprites by name. Built sprites are cached and shared;
// callers must treat them as read-only.
type Library struct {
	defs  map[string]spriteDef
	mu    sync.Mutex
	cache map[string]*core.Sprite
}

// Ensure Library implements core.SpriteLoader
var _ core.SpriteLoader = (*Library)(nil)

// Load parses the embedded sprite sheet.
func Load() (*Library, error) {
	return Parse(defaultSheet)
}

// Parse builds a library from a YAML sprite sheet.
func Parse(data []byte) (*Library, error) {
	var sh sheet
	if err := yaml.Unmarshal(data, &sh); err != nil {
		return nil, fmt.Errorf("assets: cannot parse sprite sheet: %w", err)
	}

	lib := &Library{
		defs:  make(map[string]spriteDef, len(sh.Sprites)),
		cache: make(map[string]*core.Sprite),
	}
	for i, def := range sh.Sprites {
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("assets: sprite #%d: %w", i, err)
		}
		if _, dup := lib.defs[def.Name]; dup {
			return nil, fmt.Errorf("assets: duplicate sprite %q", def.Name)
		}
		lib.defs[def.Name] = def
	}
	return lib, nil
}

func (d spriteDef) validate() error {
	if d.Name == "" {
		return fmt.Errorf("missing name")
	}
	if len(d.Rows) == 0 {
		return fmt.Errorf("%q has no rows", d.Name)
	}
	if d.Width < 0 || d.Height < 0 {
		return fmt.Errorf("%q has a negative size", d.Name)
	}
	if d.Glyph != "" && utf8.RuneCountInString(d.Glyph) != 1 {
		return fmt.Errorf("%q glyph must be a single character, got %q", d.Name, d.Glyph)
	}
	if _, ok := core.ParseColor(d.Color); !ok {
		return fmt.Errorf("%q has unknown color %q", d.Name, d.Color)
	}
	return nil
}

// LoadSprite returns the named sprite, building it on first use.
func (l *Library) LoadSprite(name string) (*core.Sprite, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s, ok := l.cache[name]; ok {
		return s, nil
	}

	def, ok := l.defs[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown sprite %q", name)
	}

	mask := core.MaskFromRows(def.Rows)
	w, h := def.Width, def.Height
	if w == 0 {
		w = mask.Width()
	}
	if h == 0 {
		h = mask.Height()
	}
	if w != mask.Width() || h != mask.Height() {
		mask = mask.Scale(w, h)
	}
	if mask.Count() == 0 {
		return nil, fmt.Errorf("assets: sprite %q is fully transparent", name)
	}

	glyph := '█'
	if def.Glyph != "" {
		glyph, _ = utf8.DecodeRuneInString(def.Glyph)
	}
	color, _ := core.ParseColor(def.Color)

	s := &core.Sprite{
		Name:  name,
		Mask:  mask,
		Glyph: glyph,
		Color: color,
	}
	l.cache[name] = s
	return s, nil
}

// Names lists the sprites in the sheet, sorted.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.defs))
	for name := range l.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
