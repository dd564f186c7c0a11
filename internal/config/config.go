package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cliniq/cliniq/internal/domain/calendar"
)

type Config struct {
	Port         string   `mapstructure:"PORT"`
	Env          string   `mapstructure:"ENV"`
	CORSOrigins  []string `mapstructure:"CORS_ORIGINS"`
	ClinicOpen   string   `mapstructure:"CLINIC_OPEN"`
	ClinicClose  string   `mapstructure:"CLINIC_CLOSE"`
	SlotMinutes  int      `mapstructure:"SLOT_MINUTES"`
	SnapshotFile string   `mapstructure:"SNAPSHOT_FILE"`
	Timezone     string   `mapstructure:"TIMEZONE"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("CLINIC_OPEN", "08:00")
	v.SetDefault("CLINIC_CLOSE", "20:00")
	v.SetDefault("SLOT_MINUTES", 60)
	v.SetDefault("TIMEZONE", "UTC")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("CLINIC_OPEN")
	v.BindEnv("CLINIC_CLOSE")
	v.BindEnv("SLOT_MINUTES")
	v.BindEnv("SNAPSHOT_FILE")
	v.BindEnv("TIMEZONE")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.SnapshotFile == "" {
		return nil, fmt.Errorf("SNAPSHOT_FILE is required")
	}
	if _, err := cfg.Catalog(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Catalog builds the display slot catalog from the configured clinic day
// window and slot granularity.
func (c *Config) Catalog() (calendar.Catalog, error) {
	open, err := calendar.ParseClock(c.ClinicOpen)
	if err != nil {
		return calendar.Catalog{}, fmt.Errorf("CLINIC_OPEN: %w", err)
	}
	close, err := calendar.ParseClock(c.ClinicClose)
	if err != nil {
		return calendar.Catalog{}, fmt.Errorf("CLINIC_CLOSE: %w", err)
	}
	return calendar.NewCatalog(open, close, c.SlotMinutes)
}
