// cmd/flattop/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-flattop/pkg/config"
	"github.com/opd-ai/go-flattop/pkg/engine"
	"github.com/opd-ai/go-flattop/pkg/entity"
	"github.com/opd-ai/go-flattop/pkg/logging"
	"github.com/opd-ai/go-flattop/pkg/render"
	engorender "github.com/opd-ai/go-flattop/pkg/render/engo"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	renderer := flag.String("renderer", "engo", "Renderer type: 'engo', 'terminal' or 'null'")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	width := flag.Int("width", 1024, "Window width (Engo only)")
	height := flag.Int("height", 768, "Window height (Engo only)")
	flag.Parse()

	// Create default configuration file if requested
	if *createDefault {
		defaultConfig := config.DefaultConfig()
		if err := config.SaveConfig(defaultConfig, *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	// Load configuration
	var gameConfig *config.GameConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", *configPath,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
	}

	// Apply environment variable overrides
	if err := config.ApplyEnvironmentOverrides(gameConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}

	envConfig, err := config.LoadConfigFromEnv()
	if err != nil {
		logger.Error(ctx, "Failed to load environment configuration", err)
		os.Exit(1)
	}

	switch *renderer {
	case "terminal":
		// Scale the terminal view so the configured world roughly fills
		// an 80x24 screen.
		terminal := render.NewTerminalRenderer(80, 24, gameConfig.WorldSize/40)
		runHeadless(ctx, logger, gameConfig, envConfig.UpdateRate, terminal)
	case "null":
		runHeadless(ctx, logger, gameConfig, envConfig.UpdateRate, render.NewNullRenderer())
	case "engo":
		fallthrough
	default:
		runEngo(gameConfig, *width, *height, *fullscreen)
	}
}

// runEngo opens a window and hands the session to the Engo scene
func runEngo(gameConfig *config.GameConfig, width, height int, fullscreen bool) {
	scene := engorender.NewGameScene(gameConfig)

	opts := engo.RunOptions{
		Title:      "Flattop",
		Width:      width,
		Height:     height,
		Fullscreen: fullscreen,
		VSync:      true,
	}

	engo.Run(opts, scene)
}

// runHeadless drives the session with a fixed-rate ticker until the
// process receives SIGINT or SIGTERM.
func runHeadless(ctx context.Context, logger *logging.Logger, gameConfig *config.GameConfig, updateRate int, r entity.Renderer) {
	game := engine.NewGame(gameConfig, r)
	runner := engine.NewRunner(game, updateRate)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info(ctx, "Shutting down")
		cancel()
	}()

	logger.Info(ctx, "Starting session",
		"update_rate", updateRate,
		"max_aircraft", gameConfig.MaxAircraft,
		"slot_policy", string(gameConfig.SlotPolicy),
	)
	if err := runner.Run(runCtx); err != nil {
		logger.Error(ctx, "Session failed", err)
		os.Exit(1)
	}
}
