package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/Dan4i4ek31/Final-Project-2.0/cmd/foliant/ui"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/app"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/config"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/catalog"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/shelf"
	shelfsvc "github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/shelf/service"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user"
	usersvc "github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user/service"
	infracache "github.com/Dan4i4ek31/Final-Project-2.0/internal/infrastructure/cache"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/infrastructure/localstore"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/infrastructure/remote"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/notify"
	"github.com/Dan4i4ek31/Final-Project-2.0/pkg/cache"
	"github.com/Dan4i4ek31/Final-Project-2.0/pkg/logger"
	"github.com/Dan4i4ek31/Final-Project-2.0/pkg/token"
)

func main() {
	// .env for development; production uses real environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(cfg.App.Environment, cfg.App.LogPath)

	application, err := build(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}

	program := tea.NewProgram(ui.New(application), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ui error: %v\n", err)
		os.Exit(1)
	}
}

// build assembles the repositories and the application facade for the
// configured catalog source.
func build(cfg *config.Config) (*app.App, error) {
	var (
		books   catalog.Repository
		users   user.Repository
		shelves shelf.Repository
	)

	switch cfg.App.Source {
	case config.SourceRemote:
		client := remote.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, buildCache(cfg), cfg.Backend.CacheTTL)
		books, users, shelves = client, client, client
		logger.Info("using remote catalog", map[string]interface{}{"url": cfg.Backend.BaseURL})

	default:
		store, err := localstore.Open(cfg.App.StatePath)
		if err != nil {
			return nil, fmt.Errorf("open local store: %w", err)
		}
		books, users, shelves = store, store, store
		logger.Info("using local catalog", map[string]interface{}{"path": cfg.App.StatePath})
	}

	tokens := token.NewManager(cfg.Session.Secret, cfg.Session.TTL)
	session := usersvc.NewSession(users, tokens, cfg.Session.Path)
	sink := notify.NewSink()

	return app.New(cfg.App.PageSize, books, session, shelfsvc.NewService(shelves), sink), nil
}

// buildCache picks the lookup-table cache for the remote client. Redis
// failures fall back to the in-process cache so startup never blocks on
// an optional dependency.
func buildCache(cfg *config.Config) cache.Cache {
	if cfg.Cache.Driver != "redis" {
		return cache.NewMemory()
	}

	r := infracache.NewRedis(cfg.Cache.Host, cfg.Cache.Password, cfg.Cache.DB)
	logger.Info("using redis cache", map[string]interface{}{"host": cfg.Cache.Host})
	return r
}
