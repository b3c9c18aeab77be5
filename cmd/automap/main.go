// Command automap shows the floors in the data directory as terminal maps.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/davemoore22/sorcery-sub003/internal/config"
	"github.com/davemoore22/sorcery-sub003/internal/logger"
	"github.com/davemoore22/sorcery-sub003/internal/ui/automap"
	"github.com/davemoore22/sorcery-sub003/internal/world/explore"
	"github.com/davemoore22/sorcery-sub003/internal/world/level"
	"github.com/davemoore22/sorcery-sub003/internal/world/maploader"
	"github.com/davemoore22/sorcery-sub003/internal/world/scanner"
)

func main() {
	configPath := flag.String("config", "sorcery.json", "path to the settings file")
	exploredPath := flag.String("explored", "", "saved explored tiles to shade (JSON)")
	flag.Parse()

	if err := run(*configPath, *exploredPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, exploredPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger.Init()

	dir := cfg.Data.Dir
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}
	entries, err := scanner.ScanDataDirectory(dir)
	if err != nil {
		return err
	}

	ctx := context.Background()
	floors := make([]*level.Level, 0, len(entries))
	for _, e := range entries {
		floor, err := maploader.LoadFile(ctx, e.Path)
		if err != nil {
			return err
		}
		floors = append(floors, floor.Level)
	}

	explored := explore.NewByDepth()
	if exploredPath != "" {
		data, err := os.ReadFile(exploredPath)
		if err != nil {
			return fmt.Errorf("failed to read explored tiles: %w", err)
		}
		if err := json.Unmarshal(data, explored); err != nil {
			return fmt.Errorf("failed to parse explored tiles: %w", err)
		}
	}

	screen, err := automap.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer screen.Fini()

	a, err := automap.New(screen, floors, explored)
	if err != nil {
		return err
	}
	a.Run()
	return nil
}
