package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pasarkita/marketplace/internal/api"
	"github.com/pasarkita/marketplace/internal/config"
	"github.com/pasarkita/marketplace/internal/db"
	"github.com/pasarkita/marketplace/internal/logger"
	"github.com/pasarkita/marketplace/internal/repository/dao"
	"github.com/pasarkita/marketplace/internal/session"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	// The store is recreated empty on every start unless an external
	// database is configured via DATABASE_URL or postgres.enabled.
	dbURL := os.Getenv("DATABASE_URL")
	var store *gorm.DB
	switch {
	case dbURL != "":
		store, err = db.OpenPostgresWithURL(dbURL)
	case conf.Postgres != nil && conf.Postgres.Enabled:
		store, err = db.OpenPostgres(conf.Postgres)
	default:
		store, err = db.OpenSQLiteInMemory()
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(store); err != nil {
		return fmt.Errorf("failed to initialize tables -> %w", err)
	}

	sessions, err := session.NewManagerFromConfig(conf.Session, conf.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize session store -> %w", err)
	}

	s := api.NewServer(conf, store, sessions)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
