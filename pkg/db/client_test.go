package db

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mrtribble/brewlist/pkg/config"
	"github.com/mrtribble/brewlist/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.ErrorLevel})
}

func testConfig() config.DBConfig {
	return config.DBConfig{
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
		ConnMaxIdleTime: time.Minute,
	}
}

func TestNewRejectsEmptyDSN(t *testing.T) {
	_, err := New(context.Background(), "", testConfig(), testLogger(t))
	require.Error(t, err)
}

func TestNewUnreachableServerStillReturnsClient(t *testing.T) {
	// Port 1 refuses immediately; a down server must not discard the
	// client, only fail its pings until the server is back.
	c, err := New(context.Background(), "app:secret@tcp(127.0.0.1:1)/brewlist?parseTime=true", testConfig(), testLogger(t))
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Error(t, c.Ping(context.Background()))
}

func TestClientPingAndClose(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	c := NewFromGorm(gdb, testLogger(t))
	require.NoError(t, c.Ping(context.Background()))

	require.NoError(t, c.Exec(context.Background(), "CREATE TABLE ping_probe (id INTEGER PRIMARY KEY)"))
	require.NoError(t, c.Exec(context.Background(), "DROP TABLE ping_probe"))

	require.NoError(t, c.Close())
	require.Error(t, c.Ping(context.Background()))
}
