package database

import (
	"testing"
	"time"

	"github.com/mindcare/mindcare_backend/config"
)

func TestDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     5433,
		User:     "mindcare",
		Password: "secret",
		DBName:   "mindcare",
		SSLMode:  "require",
	}

	want := "host=db.internal port=5433 user=mindcare password=secret dbname=mindcare sslmode=require"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func TestConnMaxLifetime(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    time.Duration
	}{
		{name: "configured value", minutes: 30, want: 30 * time.Minute},
		{name: "zero falls back to default", minutes: 0, want: 5 * time.Minute},
		{name: "negative falls back to default", minutes: -1, want: 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{ConnMaxLifetimeMin: tt.minutes}
			if got := cfg.ConnMaxLifetime(); got != tt.want {
				t.Errorf("ConnMaxLifetime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromCentralConfig(t *testing.T) {
	central := config.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "postgres",
		DBName:   "mindcare",
		SSLMode:  "disable",
		Pool: config.DatabasePoolConfig{
			MaxOpenConns:       10,
			MaxIdleConns:       2,
			ConnMaxLifetimeMin: 15,
		},
		Migrations: config.DatabaseMigrationConfig{AutoMigrate: true},
	}

	got := FromCentralConfig(central)
	if got.Host != "localhost" || got.Port != 5432 {
		t.Errorf("host/port = %s:%d, want localhost:5432", got.Host, got.Port)
	}
	if got.MaxOpenConns != 10 || got.MaxIdleConns != 2 {
		t.Errorf("pool = %d/%d, want 10/2", got.MaxOpenConns, got.MaxIdleConns)
	}
	if !got.AutoMigrate {
		t.Error("AutoMigrate = false, want true")
	}
}
