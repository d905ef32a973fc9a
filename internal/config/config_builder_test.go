// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// requiredConfig is the smallest layer that passes validation on top of
// the defaults.
func requiredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{TokenSignKey: "sign-key"},
		Storage: Storage{
			DB:    DB{DSN: "file.db"},
			Files: Files{UploadDir: "/tmp/uploads"},
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnlyFailValidation verifies that the defaults alone are
// not enough to start: sign key, DSN and upload directory have no default.
func TestBuild_DefaultsOnlyFailValidation(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayerWins verifies that non-zero fields of later layers
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterLayerWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		requiredConfig(),
		&StructuredConfig{App: App{TokenIssuer: "override"}, Auth: Auth{MaxLoginLength: 30}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultMinLoginLength, cfg.Auth.MinLoginLength)
	assert.Equal(t, 30, cfg.Auth.MaxLoginLength)
	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
}

// TestBuild_DefaultExtensions verifies the default allow-list.
func TestBuild_DefaultExtensions(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, requiredConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, []string{".txt", ".png", ".jpg", ".jpeg", ".gif"}, cfg.Storage.Files.AllowedExtensions)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

// TestBuild_ExtensionsReplacedAndNormalized verifies that a configured
// allow-list replaces the default one and is normalized.
func TestBuild_ExtensionsReplacedAndNormalized(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	override := requiredConfig()
	override.Storage.Files.AllowedExtensions = []string{"PDF", " .Txt ", ".pdf", ""}
	b.configs = append(b.configs, override)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, []string{".pdf", ".txt"}, cfg.Storage.Files.AllowedExtensions)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero token duration", mutate: func(c *StructuredConfig) { c.App.TokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "min login above max", mutate: func(c *StructuredConfig) { c.Auth.MinLoginLength = 20 }, wantErr: ErrInvalidAuthConfigs},
		{name: "zero min password", mutate: func(c *StructuredConfig) { c.Auth.MinPasswordLength = 0 }, wantErr: ErrInvalidAuthConfigs},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no upload dir", mutate: func(c *StructuredConfig) { c.Storage.Files.UploadDir = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no extensions", mutate: func(c *StructuredConfig) { c.Storage.Files.AllowedExtensions = nil }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			cfg.App.TokenSignKey = "sign-key"
			cfg.Storage.DB.DSN = "file.db"
			cfg.Storage.Files.UploadDir = "/tmp/uploads"
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

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":      "env-version",
		"APP_TOKEN_ISSUER": "env-issuer",
	})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

// TestWithEnv_InvalidValueSetsError verifies that a parse failure is
// recorded and no layer is appended.
func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "never"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsLayer(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-u", "/data"})

	require.Len(t, b.configs, 1)
	assert.Equal(t, "/data", b.configs[0].Storage.Files.UploadDir)
}

func TestWithFlags_InvalidSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathIsNoop verifies that no layer is added without a path.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_OverridesEarlierLayers verifies the full chain: the JSON file
// named by the env layer wins over env and defaults.
func TestWithJSON_OverridesEarlierLayers(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"token_duration": "2h"},
		"storage": map[string]any{"files": map[string]any{"upload_dir": "/json/uploads"}},
	})
	setEnvVars(t, map[string]string{
		"CONFIG":                   path,
		"APP_TOKEN_SIGN_KEY":       "env-key",
		"STORAGE_DB_DATABASE_URI":  "env.db",
		"STORAGE_FILES_UPLOAD_DIR": "/env/uploads",
	})

	cfg, err := newConfigBuilder().withDefaults().withEnv().withFlags(nil).withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "/json/uploads", cfg.Storage.Files.UploadDir)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
}

// TestWithJSON_MissingFileSetsError verifies that an unreadable file is
// reported by build.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	cfg, err := b.withJSON().build()
	assert.Nil(t, cfg)
	assert.Error(t, err)
}
