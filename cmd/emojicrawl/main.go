package main

import (
	"os"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/api"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/config"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/constants"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/engine"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/logging"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/rng"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/service"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// Config path may be provided via EMOJICRAWL_CONFIG; the file itself is
	// optional display metadata, so a missing default file is not fatal.
	configPath := os.Getenv(constants.EnvConfigPath)
	cfg := loadConfig(configPath)

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewSQLiteRepository(db)

	env := engine.Env{Rand: rng.NewSeeded(rng.SystemClock{}.Now()), Clock: rng.SystemClock{}}
	mgr := service.NewManager(repo, env, cfg.Content)
	handler := api.NewRunHandler(mgr)

	router := gin.Default()
	router.GET(constants.RouteHealthz, api.Healthz)

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.POST(constants.RouteRuns, handler.CreateRun)
		apiRoutes.GET(constants.RouteRunByID, handler.GetRun)
		apiRoutes.DELETE(constants.RouteRunByID, handler.DropRun)
		apiRoutes.POST(constants.RouteRunCommand, handler.DispatchCommand)

		apiRoutes.POST(constants.RouteTemplates, handler.CreateTemplate)
		apiRoutes.GET(constants.RouteTemplates, handler.ListTemplates)
		apiRoutes.GET(constants.RouteTemplateName, handler.GetTemplate)
		apiRoutes.DELETE(constants.RouteTemplateName, handler.DeleteTemplate)

		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}

func loadConfig(path string) *config.LoadedConfig {
	if path == "" {
		path = constants.DefaultConfigPath
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return &config.LoadedConfig{ServerAddress: ":8080"}
		}
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Invalid configuration", err, logging.Fields{"config_path": path})
	}
	return cfg
}
