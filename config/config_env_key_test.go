package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"mongo": map[string]any{
			"uri": "",
		},
		"auth": map[string]any{
			"tokenTTL": "60m",
		},
		"rateLimit": map[string]any{
			"redis": map[string]any{
				"addr": "",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "RATELIMIT_REDIS_ADDR", want: "rateLimit.redis.addr"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, StorageMongo, cfg.Storage.Driver)
	assert.Equal(t, defaultMongoURI, cfg.Mongo.URI)
	assert.Equal(t, "Sapphire_db", cfg.Mongo.Database)
	assert.Equal(t, 60*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.Auth.OTPTTL)
	assert.Equal(t, "@every 10m", cfg.Cleanup.Schedule)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NoError(t, cfg.validate())
}

func TestValidate_RejectsPostgresWithoutSection(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Storage.Driver = StoragePostgres

	assert.Error(t, cfg.validate())

	cfg.Storage.Driver = "sqlite"
	assert.Error(t, cfg.validate())
}
