package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"BUYHIVE_APP_NAME":                os.Getenv("BUYHIVE_APP_NAME"),
		"BUYHIVE_APP_ENV":                 os.Getenv("BUYHIVE_APP_ENV"),
		"BUYHIVE_APP_PORT":                os.Getenv("BUYHIVE_APP_PORT"),
		"BUYHIVE_DATABASE_HOST":           os.Getenv("BUYHIVE_DATABASE_HOST"),
		"BUYHIVE_DATABASE_PORT":           os.Getenv("BUYHIVE_DATABASE_PORT"),
		"BUYHIVE_DATABASE_USER":           os.Getenv("BUYHIVE_DATABASE_USER"),
		"BUYHIVE_DATABASE_PASSWORD":       os.Getenv("BUYHIVE_DATABASE_PASSWORD"),
		"BUYHIVE_DATABASE_DBNAME":         os.Getenv("BUYHIVE_DATABASE_DBNAME"),
		"BUYHIVE_DATABASE_SSLMODE":        os.Getenv("BUYHIVE_DATABASE_SSLMODE"),
		"BUYHIVE_DATABASE_MAX_OPEN_CONNS": os.Getenv("BUYHIVE_DATABASE_MAX_OPEN_CONNS"),
		"BUYHIVE_DATABASE_MAX_IDLE_CONNS": os.Getenv("BUYHIVE_DATABASE_MAX_IDLE_CONNS"),
		"BUYHIVE_JWT_SECRET":              os.Getenv("BUYHIVE_JWT_SECRET"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "buyhive-marketplace", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "buyhive", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "mock", cfg.Payment.Provider)
		assert.Equal(t, 10, cfg.Catalog.LowStockThreshold)
	})

	t.Run("loads values from environment variables with BUYHIVE prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("BUYHIVE_APP_NAME", "test-app")
		os.Setenv("BUYHIVE_APP_PORT", "9000")
		os.Setenv("BUYHIVE_DATABASE_HOST", "testdb.local")
		os.Setenv("BUYHIVE_DATABASE_PORT", "5433")
		os.Setenv("BUYHIVE_DATABASE_USER", "testuser")
		os.Setenv("BUYHIVE_DATABASE_PASSWORD", "testpass")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("BUYHIVE_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("BUYHIVE_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"BUYHIVE_APP_ENV":           os.Getenv("BUYHIVE_APP_ENV"),
		"BUYHIVE_JWT_SECRET":        os.Getenv("BUYHIVE_JWT_SECRET"),
		"BUYHIVE_DATABASE_PASSWORD": os.Getenv("BUYHIVE_DATABASE_PASSWORD"),
		"BUYHIVE_DATABASE_SSLMODE":  os.Getenv("BUYHIVE_DATABASE_SSLMODE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("requires jwt.secret in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("BUYHIVE_APP_ENV", "production")
		os.Setenv("BUYHIVE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("BUYHIVE_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret is required in production")
	})

	t.Run("requires jwt.secret at least 32 characters in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("BUYHIVE_APP_ENV", "production")
		os.Setenv("BUYHIVE_JWT_SECRET", "short-secret")
		os.Setenv("BUYHIVE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("BUYHIVE_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("BUYHIVE_APP_ENV", "production")
		os.Setenv("BUYHIVE_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		os.Setenv("BUYHIVE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("BUYHIVE_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode cannot be 'disable' in production")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		os.Setenv("BUYHIVE_APP_ENV", "production")
		os.Setenv("BUYHIVE_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		os.Setenv("BUYHIVE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("BUYHIVE_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost")
		assert.Contains(t, dsn, "5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "pass%40word%23123")
	})
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{Host: "cache.local", Port: 6380}
	assert.Equal(t, "cache.local:6380", cfg.Addr())
}
