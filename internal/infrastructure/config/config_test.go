package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gaolamthuy-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "gaolamthuy", cfg.Database.DBName)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 200*time.Millisecond, cfg.Log.SlowQueryThreshold)
	assert.Equal(t, 30*time.Second, cfg.Print.RenderTimeout)
	assert.True(t, cfg.Print.Headless)
	assert.NotEmpty(t, cfg.Print.FontURL)
	assert.Equal(t, 10*time.Second, cfg.Webhook.Timeout)
	assert.Equal(t, 3, cfg.Webhook.MaxRetries)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GLT_DATABASE_HOST", "db.internal")
	t.Setenv("GLT_APP_PORT", "9090")
	t.Setenv("GLT_PRINT_HEADLESS", "false")
	t.Setenv("GLT_PRINT_CHROME_REMOTE_URL", "ws://chrome:9222")
	t.Setenv("GLT_PRINT_NO_SANDBOX", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.False(t, cfg.Print.Headless)
	assert.Equal(t, "ws://chrome:9222", cfg.Print.ChromeRemoteURL)
	assert.True(t, cfg.Print.NoSandbox)
}

func TestValidate_PoolSettings(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Database.MaxIdleConns = 50
	cfg.Database.MaxOpenConns = 10

	assert.Error(t, cfg.validate())
}

func TestValidate_ProductionRequirements(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.App.Env = "production"

	// missing password
	assert.Error(t, cfg.validate())

	cfg.Database.Password = "secret"
	// sslmode still disabled
	assert.Error(t, cfg.validate())

	cfg.Database.SSLMode = "require"
	require.NoError(t, cfg.validate())

	cfg.HTTP.CORSAllowOrigins = []string{"*"}
	assert.Error(t, cfg.validate())
}

func TestValidate_WebhookRequiresURLInProduction(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.App.Env = "production"
	cfg.Database.Password = "secret"
	cfg.Database.SSLMode = "require"
	cfg.Webhook.Enabled = true

	assert.Error(t, cfg.validate())

	cfg.Webhook.BaseURL = "https://n8n.gaolamthuy.vn/webhook"
	assert.NoError(t, cfg.validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "gaolamthuy",
		SSLMode:  "disable",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%2Fword")
	assert.Contains(t, dsn, "sslmode=disable")
}
