package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"bcryptCost":   12,
			"tokenTTL":     "168h",
			"cookieMaxAge": 86400,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "AUTH_COOKIEMAXAGE", want: "auth.cookieMaxAge"},
		{envKey: "AUTH_SECRET", want: "auth.secret"},
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

func TestAuthConfigDefaults(t *testing.T) {
	cfg := &AuthConfig{}
	cfg.applyDefaults()

	if cfg.Strategy != StrategyJWT {
		t.Fatalf("default strategy = %q, want %q", cfg.Strategy, StrategyJWT)
	}
	if cfg.BcryptCost != defaultBcryptCost {
		t.Fatalf("default bcrypt cost = %d, want %d", cfg.BcryptCost, defaultBcryptCost)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Fatalf("default token ttl = %s, want %s", cfg.TokenTTL, defaultTokenTTL)
	}
	if cfg.CookieMaxAge != defaultCookieMaxAge {
		t.Fatalf("default cookie max age = %d, want %d", cfg.CookieMaxAge, defaultCookieMaxAge)
	}
}

func TestValidateRejectsProductionWithoutSecret(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{}}
	cfg.Env.Env = "production"
	cfg.Auth.applyDefaults()

	if err := cfg.validate(); err == nil {
		t.Fatal("expected validation error for production without auth secret")
	}

	cfg.Auth.Secret = "a-real-secret"
	if err := cfg.validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateRejectsUnknownStrategy(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{Strategy: "redis"}}
	if err := cfg.validate(); err == nil {
		t.Fatal("expected validation error for unknown strategy")
	}
}
