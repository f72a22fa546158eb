package main

import (
	"testing"

	"github.com/vovakirdan/game-center/internal/manifest"
)

func TestListedGames(t *testing.T) {
	m, err := manifest.Load()
	if err != nil {
		t.Fatalf("manifest.Load() failed: %v", err)
	}

	games := listedGames(m)

	want := []struct{ id, title, route string }{
		{"dino", "Dino Run", "/games/dino"},
		{"snake", "Snake Game", "/games/snake"},
	}
	if len(games) != len(want) {
		t.Fatalf("listedGames() = %+v, expected %d games", games, len(want))
	}
	for i, w := range want {
		g := games[i]
		if g.ID != w.id || g.Title != w.title || g.Route != w.route {
			t.Errorf("games[%d] = %+v, expected %s %q %s", i, g, w.id, w.title, w.route)
		}
	}
}
