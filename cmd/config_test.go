package cmd_test

import (
	"log/slog"
	"testing"
	"time"

	"ordersheet/cmd"
	"ordersheet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("LOCK_TIMEOUT", "")

	config, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, cmd.DriverMemory, config.StorageDriver)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, 10*time.Second, config.LockTimeout)
	assert.Equal(t, "Orders", config.OrdersSheet)
	assert.Equal(t, "@every 5m", config.AuditSchedule)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("LOCK_TIMEOUT", "250ms")
	t.Setenv("DB_HOST", "db")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, cmd.DriverPostgres, config.StorageDriver)
	assert.Equal(t, 250*time.Millisecond, config.LockTimeout)
	assert.Contains(t, config.DSN(), "host=db ")
	assert.Equal(t, slog.LevelDebug, config.SlogLevel())
}

func TestLoadConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		want error
	}{
		{name: "bad timeout", env: map[string]string{"LOCK_TIMEOUT": "soon"}, want: errs.ErrValueIsInvalid},
		{name: "negative timeout", env: map[string]string{"LOCK_TIMEOUT": "-1s"}, want: errs.ErrValueIsOutOfRange},
		{name: "unknown driver", env: map[string]string{"STORAGE_DRIVER": "excel"}, want: errs.ErrValueIsInvalid},
		{name: "sheets without id", env: map[string]string{"STORAGE_DRIVER": "sheets", "SHEETS_SPREADSHEET_ID": ""}, want: errs.ErrValueIsRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := cmd.LoadConfig()

			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestConfig_SlogLevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, cmd.Config{LogLevel: "loud"}.SlogLevel())
}
