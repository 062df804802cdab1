package cmd

import (
	"bytes"
	"civilprotection-backend/dal"
	"civilprotection-backend/models"
	"civilprotection-backend/utils/logger"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "cp.db")
	t.Setenv("APP_NAME", "Civil Protection")
	t.Setenv("APP_VERSION", "9.9.9")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file:"+path+"?_foreign_keys=on")
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "Civil Protection 9.9.9\n", out)
}

func TestSeedCommand(t *testing.T) {
	path := setupEnv(t)

	_, err := run(t, "seed", "--dummy")
	require.NoError(t, err)
	// Seeding twice leaves the data alone
	_, err = run(t, "seed", "--dummy")
	require.NoError(t, err)

	cfg := &models.Config{DatabaseDriver: "sqlite", DatabaseURL: "file:" + path + "?_foreign_keys=on"}
	db, err := dal.NewDatabaseClient(cfg, logger.NewLoggerWithOutput("error", "json", io.Discard))
	require.NoError(t, err)
	defer db.Close()

	var volunteers, roles int64
	require.NoError(t, db.DB(context.Background()).Model(&models.Volunteer{}).Count(&volunteers).Error)
	require.NoError(t, db.DB(context.Background()).Model(&models.Role{}).Count(&roles).Error)
	assert.Equal(t, int64(4), volunteers)
	assert.Equal(t, int64(4), roles)

	_, err = run(t, "seed", "--reset")
	require.NoError(t, err)
	require.NoError(t, db.DB(context.Background()).Model(&models.Volunteer{}).Count(&volunteers).Error)
	assert.Zero(t, volunteers)
}

func TestInvalidConfigFails(t *testing.T) {
	setupEnv(t)
	t.Setenv("DATABASE_DRIVER", "mysql")

	_, err := run(t, "version")

	assert.Error(t, err)
}
