package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Spreadsheet source
	SheetSpreadsheetID   string
	SheetCredentialsFile string
	SheetCredentialsJSON string
	SheetIncomeRange     string
	SheetExpenseRange    string

	// Sync pipeline
	SyncAPIKey string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "ledgerdash"),
		DBPassword: getEnv("DB_PASSWORD", "ledgerdash"),
		DBName:     getEnv("DB_NAME", "ledgerdash"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Spreadsheet source
		SheetSpreadsheetID:   getEnv("SHEET_SPREADSHEET_ID", ""),
		SheetCredentialsFile: getEnv("SHEET_CREDENTIALS_FILE", ""),
		SheetCredentialsJSON: getEnv("SHEET_CREDENTIALS_JSON", ""),
		SheetIncomeRange:     getEnv("SHEET_INCOME_RANGE", "Income!A1:Z1000"),
		SheetExpenseRange:    getEnv("SHEET_EXPENSE_RANGE", "Expenses!A1:Z10000"),

		// Sync pipeline
		SyncAPIKey: getEnv("SYNC_API_KEY", ""),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
