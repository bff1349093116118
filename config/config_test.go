package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_URL", "https://auth.example.org/")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.APIPort)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "storage", cfg.Storage.Backend)
	assert.Equal(t, "remote", cfg.Auth.Provider)
	assert.Equal(t, "https://auth.example.org", cfg.Auth.URL)
	assert.False(t, cfg.Auth.AllowSignUp)
	assert.Equal(t, []string{"Central", "Faculty", "Residence"}, cfg.Site.ExecutiveTiers)
}

func TestLoad_ExecutiveTiers(t *testing.T) {
	t.Setenv("AUTH_PROVIDER", "local")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("EXECUTIVE_TIERS", " Central, ,Hall ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Central", "Hall"}, cfg.Site.ExecutiveTiers)
}

func TestLoad_AllowSignUp(t *testing.T) {
	t.Setenv("AUTH_PROVIDER", "local")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("AUTH_ALLOW_SIGNUP", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Auth.AllowSignUp)
}

func TestLoad_PostgresDefaultPort(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("AUTH_PROVIDER", "local")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"DB_DRIVER": "oracle", "JWT_SECRET": "s", "AUTH_PROVIDER": "local"}},
		{"unknown backend", map[string]string{"ASSET_BACKEND": "ftp", "JWT_SECRET": "s", "AUTH_PROVIDER": "local"}},
		{"remote without url", map[string]string{"JWT_SECRET": "s"}},
		{"missing secret", map[string]string{"AUTH_PROVIDER": "local"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
