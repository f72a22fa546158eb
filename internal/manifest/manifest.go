// Package manifest holds the game center's installable-app descriptor: the
// fields a web manifest carries, the icon set, and the games the landing view
// links to.
package manifest

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/game-center/internal/core"
)

//go:embed manifest.yaml
var defaultManifestYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid manifest")

// RoutePrefix is the path prefix every game view lives under.
const RoutePrefix = "/games/"

// Manifest is the app descriptor.
type Manifest struct {
	Name            string  `yaml:"name" json:"name"`
	ShortName       string  `yaml:"short_name" json:"short_name"`
	Description     string  `yaml:"description" json:"description,omitempty"`
	StartURL        string  `yaml:"start_url" json:"start_url"`
	Display         string  `yaml:"display" json:"display"`
	ThemeColor      string  `yaml:"theme_color" json:"theme_color"`
	BackgroundColor string  `yaml:"background_color" json:"background_color"`
	Icons           []Icon  `yaml:"icons" json:"icons"`
	Games           []Entry `yaml:"games" json:"-"`
}

// Icon is one entry of the icon set.
type Icon struct {
	Src   string `yaml:"src" json:"src"`
	Sizes string `yaml:"sizes" json:"sizes"`
	Type  string `yaml:"type" json:"type"`
}

// Size parses Sizes ("192x192") into a square edge length.
func (i Icon) Size() (int, error) {
	w, h, ok := strings.Cut(i.Sizes, "x")
	if !ok {
		return 0, fmt.Errorf("%w: icon %s: sizes %q is not WxH", ErrInvalid, i.Src, i.Sizes)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, fmt.Errorf("%w: icon %s: width: %v", ErrInvalid, i.Src, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("%w: icon %s: height: %v", ErrInvalid, i.Src, err)
	}
	if width <= 0 || width != height {
		return 0, fmt.Errorf("%w: icon %s: sizes %q must be square and positive", ErrInvalid, i.Src, i.Sizes)
	}
	return width, nil
}

// Entry is a game linked from the landing view.
type Entry struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Route  string `yaml:"route"`
	Accent string `yaml:"accent"`
}

// Load parses and validates the embedded manifest.
func Load() (*Manifest, error) {
	return Parse(defaultManifestYAML)
}

// Parse decodes a manifest from YAML and validates it.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: parse: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks required fields, colors, icon sizes, and that game ids and
// routes are unique.
func (m *Manifest) Validate() error {
	if m.Name == "" || m.StartURL == "" {
		return fmt.Errorf("%w: name and start_url are required", ErrInvalid)
	}
	for _, c := range []string{m.ThemeColor, m.BackgroundColor} {
		if _, err := core.ParseHex(c); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	for _, icon := range m.Icons {
		if _, err := icon.Size(); err != nil {
			return err
		}
	}

	ids := make(map[string]bool, len(m.Games))
	routes := make(map[string]bool, len(m.Games))
	for _, g := range m.Games {
		switch {
		case g.ID == "":
			return fmt.Errorf("%w: game with empty id", ErrInvalid)
		case ids[g.ID]:
			return fmt.Errorf("%w: duplicate game id %q", ErrInvalid, g.ID)
		case routes[g.Route]:
			return fmt.Errorf("%w: duplicate route %q", ErrInvalid, g.Route)
		case !strings.HasPrefix(g.Route, RoutePrefix) || len(g.Route) == len(RoutePrefix):
			return fmt.Errorf("%w: route %q must live under %s", ErrInvalid, g.Route, RoutePrefix)
		}
		if _, err := core.ParseHex(g.Accent); err != nil {
			return fmt.Errorf("%w: game %s accent: %v", ErrInvalid, g.ID, err)
		}
		ids[g.ID] = true
		routes[g.Route] = true
	}
	return nil
}

// Lookup finds a game by route ("/games/snake") or bare id ("snake").
func (m *Manifest) Lookup(target string) (Entry, bool) {
	for _, g := range m.Games {
		if g.Route == target || g.ID == target {
			return g, true
		}
	}
	return Entry{}, false
}

// JSON renders the web manifest. The game list is not part of it.
func (m *Manifest) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("manifest: encode: %w", err)
	}
	return append(data, '\n'), nil
}
