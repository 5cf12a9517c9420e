package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() Config {
	cfg := Config{HTTP: HTTPConfig{Port: 8080}}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UsesDatabase() {
		t.Error("embedded source must not need a database")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.HTTP.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for port %d", port)
		}
	}
}

func TestValidate_Records(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"file without path", func(c *Config) { c.Records.Source = SourceFile }, "records.path is required"},
		{"file with path", func(c *Config) {
			c.Records.Source = SourceFile
			c.Records.Path = "records.yaml"
		}, ""},
		{"redis without addrs", func(c *Config) { c.Records.Source = SourceRedis }, "database.addrs is required"},
		{"redis with addrs", func(c *Config) {
			c.Records.Source = SourceRedis
			c.Database.Addrs = []string{"localhost:6379"}
		}, ""},
		{"unknown source", func(c *Config) { c.Records.Source = "s3" }, `records.source must be`},
		{"unknown driver", func(c *Config) { c.Database.Driver = "memcached" }, `database.driver must be`},
		{"nearby above max", func(c *Config) { c.Search.NearbyLimit = 100 }, "search.max_limit"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 10 || cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("http timeouts = %+v", cfg.HTTP)
	}
	if cfg.Records.Source != SourceEmbedded {
		t.Errorf("records.source = %q", cfg.Records.Source)
	}
	if cfg.Records.Key != "landsecure:snapshot" {
		t.Errorf("records.key = %q", cfg.Records.Key)
	}
	if cfg.Database.Driver != DriverValkey || cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.Search.NearbyLimit != 3 || cfg.Search.FeaturedLimit != 3 || cfg.Search.MaxLimit != 50 {
		t.Errorf("search = %+v", cfg.Search)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30},
		Records:  RecordsConfig{Source: SourceRedis, Key: "custom"},
		Database: DatabaseConfig{Driver: DriverRedis},
		Search:   SearchConfig{NearbyLimit: 5},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("read timeout overwritten: %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Records.Source != SourceRedis || cfg.Records.Key != "custom" {
		t.Errorf("records overwritten: %+v", cfg.Records)
	}
	if cfg.Database.Driver != DriverRedis {
		t.Errorf("driver overwritten: %q", cfg.Database.Driver)
	}
	if cfg.Search.NearbyLimit != 5 {
		t.Errorf("nearby limit overwritten: %d", cfg.Search.NearbyLimit)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("LANDSECURE_TEST_PORT", "9090")

	got := string(expandEnvVars([]byte("port: ${LANDSECURE_TEST_PORT}\nkey: ${LANDSECURE_UNSET_VAR:-fallback}\nempty: ${LANDSECURE_UNSET_VAR}")))
	want := "port: 9090\nkey: fallback\nempty: "
	if got != want {
		t.Errorf("expandEnvVars = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	t.Setenv("LANDSECURE_TEST_ADDR", "cache:6379")

	cfg, err := Parse([]byte(`
http:
  port: ${LANDSECURE_TEST_HTTP_PORT:-8080}
records:
  source: redis
database:
  driver: redis
  addrs: ["${LANDSECURE_TEST_ADDR}"]
auth:
  api_keys: [secret]
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("port = %d", cfg.HTTP.Port)
	}
	if len(cfg.Database.Addrs) != 1 || cfg.Database.Addrs[0] != "cache:6379" {
		t.Errorf("addrs = %v", cfg.Database.Addrs)
	}
	if !cfg.UsesDatabase() {
		t.Error("redis source should use the database")
	}
	if len(cfg.Auth.APIKeys) != 1 || cfg.Auth.APIKeys[0] != "secret" {
		t.Errorf("api keys = %v", cfg.Auth.APIKeys)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("http: [")); err == nil {
		t.Error("expected YAML error")
	}
	if _, err := Parse([]byte("http:\n  port: 0\n")); err == nil {
		t.Error("expected validation error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte("http:\n  port: 8081\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 8081 || cfg.Records.Source != SourceEmbedded {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_ShippedConfigs(t *testing.T) {
	for _, env := range []string{"local", "prod"} {
		t.Run(env, func(t *testing.T) {
			cfg, err := Load(env)
			if err != nil {
				t.Fatalf("Load(%s): %v", env, err)
			}
			if cfg.HTTP.Port == 0 {
				t.Error("port not set")
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if GetEnv() != "local" {
		t.Errorf("GetEnv() = %q, want local", GetEnv())
	}
	t.Setenv("ENV", "prod")
	if GetEnv() != "prod" {
		t.Errorf("GetEnv() = %q, want prod", GetEnv())
	}
}
