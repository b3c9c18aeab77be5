// Command sorcery walks the party through the dungeon in first person.
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/davemoore22/sorcery-sub003/internal/config"
	"github.com/davemoore22/sorcery-sub003/internal/game"
	"github.com/davemoore22/sorcery-sub003/internal/logger"
	ebitenrender "github.com/davemoore22/sorcery-sub003/internal/render/ebiten"
	"github.com/davemoore22/sorcery-sub003/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "sorcery.json", "path to the settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	logger.Init()
	log := logger.For("main")
	if err != nil {
		log.WithError(err).Fatal("Failed to load settings")
	}

	ctx := context.Background()

	// Tracing is optional: without an OTLP endpoint the game runs untraced.
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.WithError(err).Warn("Telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Warn("Error shutting down telemetry")
				}
			}()
		}
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	width, height := cfg.WindowSize()
	gameManager := game.NewManager(renderer, inputMgr, loader, width, height)
	if err := gameManager.LoadGame(ctx, cfg); err != nil {
		log.WithError(err).Error("Failed to load game")
	}

	// Set up the window
	engine.SetWindowSize(width, height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.Info("Starting game...")
	if err := engine.RunGame(gameManager); err != nil && !errors.Is(err, game.ErrQuit) {
		log.WithError(err).Fatal("Game error")
	}
}
