package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testConfig = `
database:
  host: localhost
  port: 5432
  user: postgres
  dbname: mindcare

server:
  port: 9000
  environment: production

logging:
  level: debug
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestReadConfig(t *testing.T) {
	dir := writeTestConfig(t)

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig() error: %v", err)
	}

	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "localhost")
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestReadConfigEnvOverride(t *testing.T) {
	dir := writeTestConfig(t)
	t.Setenv("MINDCARE_DATABASE_HOST", "db.override")

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig() error: %v", err)
	}

	if cfg.Database.Host != "db.override" {
		t.Errorf("Database.Host = %q, want env override %q", cfg.Database.Host, "db.override")
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port default = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.TimeoutSeconds != 30 {
		t.Errorf("Server.TimeoutSeconds default = %d, want 30", cfg.Server.TimeoutSeconds)
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("Server.Environment default = %q, want %q", cfg.Server.Environment, "development")
	}
	if cfg.Observability.ServiceName != "mindcare_backend" {
		t.Errorf("Observability.ServiceName default = %q, want %q", cfg.Observability.ServiceName, "mindcare_backend")
	}
}
