package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Catalog   CatalogConfig
	SMTP      SMTPConfig
	Sheet     SheetConfig
	Recommend RecommendConfig
	Report    ReportConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig points at the Postgres catalog. Enabled is false when no
// host is configured; the service then loads the catalog from the xlsx file
// instead.
type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type CatalogConfig struct {
	XLSXPath string
	Sheet    string
}

// SMTPConfig and SheetConfig carry externally injected transport credentials;
// nothing is ever hard-coded.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type SheetConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

type RecommendConfig struct {
	TopK     int
	Clusters int
}

type ReportConfig struct {
	FontPath string
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine; plain environment variables work for Docker/K8s.

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "465"))
	sheetTimeout, _ := strconv.Atoi(getEnv("SHEET_TIMEOUT_SECONDS", "10"))
	topK, _ := strconv.Atoi(getEnv("RECOMMEND_TOP_K", "3"))
	clusters, _ := strconv.Atoi(getEnv("RECOMMEND_CLUSTERS", "3"))

	dbHost := getEnv("DB_HOST", "")

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Enabled:  dbHost != "",
			Host:     dbHost,
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "formulab"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Catalog: CatalogConfig{
			XLSXPath: getEnv("CATALOG_XLSX_PATH", "더미처방100개.xlsx"),
			Sheet:    getEnv("CATALOG_SHEET", ""),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     smtpPort,
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		},
		Sheet: SheetConfig{
			WebhookURL: getEnv("SHEET_WEBHOOK_URL", ""),
			Timeout:    time.Duration(sheetTimeout) * time.Second,
		},
		Recommend: RecommendConfig{
			TopK:     topK,
			Clusters: clusters,
		},
		Report: ReportConfig{
			FontPath: getEnv("REPORT_FONT_PATH", ""),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
