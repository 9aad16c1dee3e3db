package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":  "disable",
			"userName": "bistro",
			"dbName":   "bistro",
		},
		"http": map[string]any{
			"port": 8080,
		},
		"env": map[string]any{
			"serviceName": "bistro",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_USERNAME", want: "postgres.userName"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "HTTP_PORT", want: "http.port"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
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

func TestPostgresDSN_Defaults(t *testing.T) {
	pg := &Postgres{
		Host:     "localhost",
		Port:     5432,
		UserName: "bistro",
		Password: "secret",
		DBName:   "bistro",
	}

	got := pg.DSN()
	want := "host=localhost user=bistro password=secret dbname=bistro port=5432 sslmode=disable TimeZone=UTC"
	if got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}
