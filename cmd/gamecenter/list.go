package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/game-center/internal/manifest"
	"github.com/vovakirdan/game-center/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game from the manifest that has a registered engine.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	m, err := manifest.Load()
	if err != nil {
		return err
	}

	games := listedGames(m)
	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Route")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, g.Route)
	}

	fmt.Println()
	fmt.Println("Run 'gamecenter play <id>' to play a game.")
	return nil
}

// listedGames joins registered engines with their manifest routes, sorted by
// id. Engines without a manifest entry have no route and are left out.
func listedGames(m *manifest.Manifest) []manifest.Entry {
	var games []manifest.Entry
	for _, info := range registry.List() {
		if e, ok := m.Lookup(info.ID); ok {
			e.Title = info.Title
			games = append(games, e)
		}
	}
	return games
}
