package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/teds")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if !cfg.IsDev() || cfg.IsProduction() {
		t.Error("expected development mode by default")
	}
	if cfg.IngestWorkers != 8 {
		t.Errorf("IngestWorkers = %d, want 8", cfg.IngestWorkers)
	}
	if cfg.KafkaTopic != "teds.extracts.ingested" {
		t.Errorf("KafkaTopic = %q", cfg.KafkaTopic)
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}
}

func TestLoad_RequiresSigningKeyOutsideDev(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/teds")
	t.Setenv("ENV", "production")
	t.Setenv("AUTH_SIGNING_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without AUTH_SIGNING_KEY in production")
	}

	t.Setenv("AUTH_SIGNING_KEY", "secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("expected production mode")
	}
}

func TestLoad_SplitsBrokerList(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/teds")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[0] != "broker-1:9092" {
		t.Errorf("KafkaBrokers = %v", cfg.KafkaBrokers)
	}
}
