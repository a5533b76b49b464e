package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/config"
	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
	"github.com/goutam1234567890/nirogGyan-Assignment/internal/infra/storage/catalog"
)

type catalogLogger interface {
	Info(format string, v ...interface{})
}

// loadCatalog загружает начальный каталог врачей из настроенного источника
func loadCatalog(ctx context.Context, cfg *config.Config, log catalogLogger) ([]domain.Doctor, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		// Соединение нужно только на время загрузки
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		log.Info("Connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		return catalog.NewRepository(db).Load(ctx)

	default:
		if cfg.Catalog.File == "" {
			log.Info("Loading built-in demo catalog")
		} else {
			log.Info("Loading catalog from %s", cfg.Catalog.File)
		}
		return catalog.NewFileSource(cfg.Catalog.File).Load(ctx)
	}
}
