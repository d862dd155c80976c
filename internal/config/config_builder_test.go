package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// unsetEnv removes key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenIssuer:   "acquasitions",
			TokenDuration: time.Hour,
		},
		Server: Server{
			MetricsPath: "/metrics",
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.ErrorIs(t, err, ErrInvalidAppConfigs)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterConfigOverrides(t *testing.T) {
	override := &StructuredConfig{
		App:  App{TokenIssuer: "override"},
		Port: "9000",
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig(), override)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.App.TokenIssuer)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestBuild_ResolvesDefaultPort(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, ":3000", cfg.Server.Address())
	assert.Equal(t, "http://localhost:3000", cfg.Server.URL())
}

// ── resolvePort ───────────────────────────────────────────────────────────────

func TestResolvePort(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", DefaultPort},
		{"8080", 8080},
		{" 8081 ", 8081},
		{"abc", DefaultPort},
		{"0", DefaultPort},
		{"-1", DefaultPort},
		{"65536", DefaultPort},
		{"65535", 65535},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, resolvePort(tt.raw))
		})
	}
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }},
		{name: "metrics disabled", mutate: func(cfg *StructuredConfig) { cfg.Server.MetricsPath = "" }},
		{
			name:    "zero token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "relative metrics path",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.MetricsPath = "metrics" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "root metrics path",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.MetricsPath = "/" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_EmptyEnvironment(t *testing.T) {
	for _, key := range []string{
		"PORT", "CONFIG",
		"APP_TOKEN_SIGN_KEY", "APP_TOKEN_ISSUER", "APP_TOKEN_DURATION", "APP_LOG_LEVEL",
		"SERVER_REQUEST_TIMEOUT", "SERVER_READ_HEADER_TIMEOUT", "SERVER_METRICS_PATH",
		"STORAGE_DB_DATABASE_URI",
	} {
		unsetEnv(t, key)
	}

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Equal(t, "/metrics", cfg.Server.MetricsPath)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestGetStructuredConfig_EnvOnly(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "secret",
	})

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "acquasitions", cfg.App.TokenIssuer)
}

func TestGetStructuredConfig_UnparsablePortFallsBack(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "secret",
		"PORT":               "http",
	})

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
}

func TestGetStructuredConfig_JSONOverridesEnv(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"port": "4001",
		"app": map[string]any{
			"token_sign_key": "from-json",
		},
	})
	setEnvVars(t, map[string]string{
		"CONFIG":             path,
		"PORT":               "4000",
		"APP_TOKEN_SIGN_KEY": "from-env",
	})

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)
	assert.Equal(t, 4001, cfg.Server.Port)
	assert.Equal(t, "from-json", cfg.App.TokenSignKey)
	assert.Equal(t, path, cfg.JSONFilePath)
}

func TestGetStructuredConfig_MissingJSONFile(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG":             "/definitely/not/here.json",
		"APP_TOKEN_SIGN_KEY": "secret",
	})

	cfg, err := GetStructuredConfig()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}
