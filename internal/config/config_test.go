package config

import (
	"os"
	"testing"
)

func TestLoad_RequiresSnapshotFile(t *testing.T) {
	os.Unsetenv("SNAPSHOT_FILE")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error when SNAPSHOT_FILE is missing")
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Setenv("SNAPSHOT_FILE", "testdata/snapshot.json")
	defer os.Unsetenv("SNAPSHOT_FILE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.SnapshotFile != "testdata/snapshot.json" {
		t.Errorf("expected SNAPSHOT_FILE to be set, got %s", cfg.SnapshotFile)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.ClinicOpen != "08:00" || cfg.ClinicClose != "20:00" {
		t.Errorf("expected default clinic day 08:00-20:00, got %s-%s", cfg.ClinicOpen, cfg.ClinicClose)
	}
	if cfg.SlotMinutes != 60 {
		t.Errorf("expected default slot minutes 60, got %d", cfg.SlotMinutes)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("expected default timezone UTC, got %s", cfg.Timezone)
	}
}

func TestLoad_RejectsBadClinicWindow(t *testing.T) {
	os.Setenv("SNAPSHOT_FILE", "testdata/snapshot.json")
	os.Setenv("CLINIC_OPEN", "20:00")
	os.Setenv("CLINIC_CLOSE", "08:00")
	defer func() {
		os.Unsetenv("SNAPSHOT_FILE")
		os.Unsetenv("CLINIC_OPEN")
		os.Unsetenv("CLINIC_CLOSE")
	}()

	if _, err := Load(); err == nil {
		t.Fatal("expected error for inverted clinic window")
	}
}

func TestConfig_Catalog(t *testing.T) {
	c := &Config{ClinicOpen: "09:00", ClinicClose: "17:00", SlotMinutes: 30}
	catalog, err := c.Catalog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(catalog.Slots()); got != 16 {
		t.Errorf("expected 16 slots, got %d", got)
	}

	c.ClinicOpen = "not-a-time"
	if _, err := c.Catalog(); err == nil {
		t.Error("expected error for malformed open time")
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}
