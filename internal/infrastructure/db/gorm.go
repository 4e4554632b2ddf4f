package db

import (
	"fmt"
	stdlog "log"
	"time"

	"donation-inventory/internal/config"
	"donation-inventory/internal/domain/donation"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm driver for the configured database.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN()), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	}
	return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
}

func OpenGorm(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	dial, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	level := logger.Warn
	if cfg.DBLogSQL {
		level = logger.Info
	}
	db, err := OpenGormWithDialector(dial, GormLogger(log, level))
	if err != nil {
		return nil, err
	}
	log.Info().Str("driver", cfg.DBDriver).Msg("gorm: connected")
	return db, nil
}

// GormLogger writes gorm's statement log as zerolog events. A missing row is
// reported to the caller as not-found and is not logged.
func GormLogger(log zerolog.Logger, level logger.LogLevel) logger.Interface {
	return logger.New(stdlog.New(log.With().Str("component", "gorm").Logger(), "", 0), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// OpenGormWithDialector opens, tunes the pool and pings. Without gl nothing is logged.
func OpenGormWithDialector(dial gorm.Dialector, gl ...logger.Interface) (*gorm.DB, error) {
	// we ping ourselves after the pool is tuned
	cfg := &gorm.Config{DisableAutomaticPing: true, Logger: logger.Discard}
	if len(gl) > 0 && gl[0] != nil {
		cfg.Logger = gl[0]
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if dial.Name() == "sqlite" {
		// one writer; avoids "database is locked" under concurrent requests
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(30)
		sqlDB.SetMaxIdleConns(10)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the donations table if it does not exist yet.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&donation.Donation{})
}
