package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Household HouseholdConfig
	MealDB    MealDBConfig
	Scorer    ScorerConfig
	Reporting ReportingConfig
	MongoDB   MongoDBConfig
	Sheets    SheetsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// HouseholdConfig seeds the roommate roster for a session.
type HouseholdConfig struct {
	Roommates []string
}

// MealDBConfig points at the meal-database recipe lookup service.
type MealDBConfig struct {
	BaseURL string
}

// ScorerConfig points at the recipe classifier model server and the label
// files used to decode its class indices.
type ScorerConfig struct {
	BaseURL           string
	CuisineLabelsPath string
	RecipeLabelsPath  string
}

// ReportingConfig holds scheduler-related settings for the expense digest.
type ReportingConfig struct {
	CronSchedule string
	Timezone     string
}

// MongoDBConfig holds settings for the optional report archive.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SheetsConfig holds settings for the optional Google Sheets ledger export.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Household: HouseholdConfig{
			Roommates: splitList(getenvWithDefault("HOUSEHOLD_ROOMMATES", "Bilbo,Frodo,Gandalf der Weise")),
		},
		MealDB: MealDBConfig{
			BaseURL: getenvWithDefault("MEALDB_BASE_URL", "https://www.themealdb.com/api/json/v1/1"),
		},
		Scorer: ScorerConfig{
			BaseURL:           os.Getenv("SCORER_BASE_URL"),
			CuisineLabelsPath: os.Getenv("SCORER_CUISINE_LABELS_PATH"),
			RecipeLabelsPath:  os.Getenv("SCORER_RECIPE_LABELS_PATH"),
		},
		Reporting: ReportingConfig{
			CronSchedule: getenvWithDefault("REPORT_CRON_SCHEDULE", "0 20 * * 0"),
			Timezone:     getenvWithDefault("TIMEZONE", "Europe/Zurich"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "waistless"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_LEDGER_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated. The
// scorer, mongo and sheets integrations are optional and only validated when
// switched on.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if len(c.Household.Roommates) == 0 {
		return errors.New("HOUSEHOLD_ROOMMATES must list at least one name")
	}

	if c.MealDB.BaseURL == "" {
		return errors.New("MEALDB_BASE_URL must not be empty")
	}

	if c.Scorer.BaseURL != "" {
		switch {
		case c.Scorer.CuisineLabelsPath == "":
			return errors.New("SCORER_CUISINE_LABELS_PATH must be provided when the scorer is enabled")
		case c.Scorer.RecipeLabelsPath == "":
			return errors.New("SCORER_RECIPE_LABELS_PATH must be provided when the scorer is enabled")
		}
	}

	if c.Reporting.CronSchedule == "" {
		return errors.New("REPORT_CRON_SCHEDULE must be provided")
	}

	if c.Reporting.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	if c.MongoDB.URI != "" && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided when MONGODB_URI is set")
	}

	if c.Sheets.SpreadsheetID != "" && c.Sheets.CredentialsPath == "" {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when the sheet export is enabled")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
