package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/blogstore/config"
)

const (
	SqliteDBType   = "sqlite"
	PostgresDBType = "postgres"
)

// Open connects to the storage engine selected by DB_TYPE and wraps the
// connection in a lock-guarded Handle. SQLite is the default engine.
func Open(c map[string]string) (*Handle, error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(),
	}

	dbType := config.GetString(c, "DB_TYPE", SqliteDBType)
	switch dbType {
	case SqliteDBType:
		db, err := openSQLite(config.GetString(c, "DB_PATH", ":memory:"), gormConfig)
		if err != nil {
			return nil, err
		}
		return NewHandle(db), nil
	case PostgresDBType:
		db, err := gorm.Open(postgres.Open(config.GetString(c, "DB_DSN", "")), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		return NewHandle(db), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
}

func openSQLite(path string, gormConfig *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	// A single pooled connection keeps :memory: databases stable and matches
	// the shared-connection model the Handle lock assumes.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// Cascade deletes need foreign key enforcement, which SQLite leaves off
	// per connection.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

func newGormLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}
