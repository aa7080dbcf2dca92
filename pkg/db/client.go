package db

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mrtribble/brewlist/pkg/config"
	"github.com/mrtribble/brewlist/pkg/logger"
)

// Pinger is the read-side health dependency handed to the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Client struct {
	gorm *gorm.DB
	logg *logger.Logger
}

// New opens a MySQL-backed gorm handle. Connectivity is probed once for
// the logs, but an unreachable server is not an error here.
func New(ctx context.Context, dsn string, cfg config.DBConfig, logg *logger.Logger) (*Client, error) {
	if dsn == "" {
		return nil, fmt.Errorf("db: empty dsn")
	}

	// SkipInitializeWithVersion keeps Open from dialing the server, so a
	// database that is down at boot does not prevent construction. The
	// pool reconnects on its own once the server is reachable.
	dialector := mysql.New(mysql.Config{
		DSN:                       dsn,
		SkipInitializeWithVersion: true,
	})
	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrapping sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	c := &Client{gorm: gdb, logg: logg}
	if err := c.Ping(ctx); err != nil {
		// Unreachable is not misconfigured: the client stays usable and
		// requests surface dependency failures until the server is back.
		if logg != nil {
			ctx = logg.WithField(ctx, "error", err.Error())
			logg.Warn(ctx, "database unreachable at startup, continuing")
		}
	}
	return c, nil
}

// NewFromGorm wraps an already-open handle. Used by tests that run
// against sqlite instead of a live MySQL server.
func NewFromGorm(gdb *gorm.DB, logg *logger.Logger) *Client {
	return &Client{gorm: gdb, logg: logg}
}

func (c *Client) DB(ctx context.Context) *gorm.DB {
	return c.gorm.WithContext(ctx)
}

// SQL exposes the underlying connection pool for tooling (goose)
// that works against database/sql directly.
func (c *Client) SQL() (*sql.DB, error) {
	return c.gorm.DB()
}

func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (c *Client) Close() error {
	sqlDB, err := c.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Exec runs raw SQL outside the model layer, e.g. schema bootstrap DDL.
func (c *Client) Exec(ctx context.Context, sql string, args ...any) error {
	return c.gorm.WithContext(ctx).Exec(sql, args...).Error
}
