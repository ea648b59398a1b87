package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MarkoPoloResearchLab/reservel/internal/store/gormstore"
	"github.com/MarkoPoloResearchLab/reservel/internal/store/memstore"
	"github.com/MarkoPoloResearchLab/reservel/internal/store/pgstore"
	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	driverPostgres = "postgres"
	driverSQLite   = "sqlite"
	driverMemory   = "memory"
)

// openStore opens the store named by the database URL and applies its schema.
func openStore(ctx context.Context, cfg *runtimeConfig) (reservation.Store, func() error, error) {
	driver, sqlitePath, err := resolveDriver(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if driver == driverMemory {
		return memstore.New(), func() error { return nil }, nil
	}
	if driver == driverPostgres && cfg.StoreDriver == storeDriverPgx {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pgstore.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return pgstore.New(pool), func() error { pool.Close(); return nil }, nil
	}

	gormDB, cleanup, err := openDatabase(ctx, driver, cfg.DatabaseURL, sqlitePath)
	if err != nil {
		return nil, nil, err
	}
	if err := prepareSchema(ctx, gormDB, driver); err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	return gormstore.New(gormDB), cleanup, nil
}

func openDatabase(ctx context.Context, driver string, dsn string, sqlitePath string) (*gorm.DB, func() error, error) {
	var (
		db  *gorm.DB
		err error
	)
	cfg := &gorm.Config{}
	switch driver {
	case driverPostgres:
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	case driverSQLite:
		db, err = gorm.Open(sqlite.Open(sqlitePath), cfg)
	default:
		return nil, nil, fmt.Errorf("unsupported database scheme %q", driver)
	}
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	if driver == driverSQLite {
		sqlDB.SetMaxOpenConns(1)
	}
	cleanup := func() error { return sqlDB.Close() }
	return db.WithContext(ctx), cleanup, nil
}

func resolveDriver(dsn string) (string, string, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return driverPostgres, "", nil
	}
	if strings.HasPrefix(dsn, "memory://") {
		return driverMemory, "", nil
	}
	if strings.HasPrefix(dsn, "sqlite://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", "", fmt.Errorf("parse sqlite url: %w", err)
		}
		path := u.Path
		if path == "" {
			path = u.Host
		}
		if path == "" || path == "/" {
			path = "reservel.db"
		}
		sqlitePath, err := normalizeSQLitePath(path)
		return driverSQLite, sqlitePath, err
	}
	sqlitePath, err := normalizeSQLitePath(dsn)
	return driverSQLite, sqlitePath, err
}

func normalizeSQLitePath(path string) (string, error) {
	if path == ":memory:" {
		return path, nil
	}
	if strings.HasPrefix(path, "/") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", err
		}
		return path, nil
	}
	abs := filepath.Join(".", path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	return abs, nil
}

// prepareSchema auto-migrates sqlite; postgres gets the enum-typed schema.
func prepareSchema(ctx context.Context, db *gorm.DB, driver string) error {
	if driver == driverPostgres {
		if err := db.WithContext(ctx).Exec(pgstore.Schema).Error; err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
		return nil
	}
	if err := gormstore.Migrate(ctx, db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
