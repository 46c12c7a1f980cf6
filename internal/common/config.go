package common

import (
	"os"
	"strconv"
	"time"

	"github.com/dhenenjay/orbital-insights/constants"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Survey   SurveyConfig
	Export   ExportConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN         string
	DialTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// SurveyConfig holds survey-analysis configuration
type SurveyConfig struct {
	MinTextLength int // free-text cells at or below this length are skipped
	DetailLimit   int // how many use cases get per-case support analysis
	TriggerLimit  int // how many use cases feed test-case generation
	TruncateAt    int // source-text truncation in generated records
	OutputPath    string
}

// ExportConfig holds imagery-export configuration
type ExportConfig struct {
	BaseURL         string
	Project         string
	CredentialsFile string
	Collection      string
	Folder          string
	FilenamePrefix  string
	ScaleMeters     int
	CRS             string
	MaxPixels       float64
	Timeout         time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:         getEnv("DB_URL", ""),
			DialTimeout: getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Survey: SurveyConfig{
			MinTextLength: getEnvAsInt("SURVEY_MIN_TEXT_LEN", 20),
			DetailLimit:   getEnvAsInt("SURVEY_DETAIL_LIMIT", 10),
			TriggerLimit:  getEnvAsInt("SURVEY_TRIGGER_LIMIT", 5),
			TruncateAt:    getEnvAsInt("SURVEY_TRUNCATE_AT", 100),
			OutputPath:    getEnv("SURVEY_OUTPUT", "user-test-cases.json"),
		},
		Export: ExportConfig{
			BaseURL:         getEnv("EE_BASE_URL", "https://earthengine.googleapis.com/v1"),
			Project:         getEnv("EE_PROJECT", ""),
			CredentialsFile: getEnv("EE_CREDENTIALS_FILE", ""),
			Collection:      getEnv("EE_COLLECTION", constants.Sentinel2Collection),
			Folder:          getEnv("EE_DRIVE_FOLDER", "EarthEngine_Exports"),
			FilenamePrefix:  getEnv("EE_FILENAME_PREFIX", "sf_bay_area_sentinel2_10m"),
			ScaleMeters:     getEnvAsInt("EE_SCALE_METERS", constants.ExportScaleMeters),
			CRS:             getEnv("EE_CRS", constants.ExportCRS),
			MaxPixels:       getEnvAsFloat64("EE_MAX_PIXELS", constants.ExportMaxPixels),
			Timeout:         getEnvAsDuration("EE_TIMEOUT", 45*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration for the daemon, which needs all
// surfaces wired. The CLIs validate only what they use.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Export.Project == "" {
		return NewAppError("CONFIG_ERROR", "EE_PROJECT is required", ErrInvalidInput)
	}
	return nil
}
