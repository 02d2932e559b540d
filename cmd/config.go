package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"ordersheet/internal/core/domain/model/sheet"
	"ordersheet/internal/jobs"
	"ordersheet/internal/pkg/errs"
	"ordersheet/internal/pkg/lock"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSheets   = "sheets"
)

type Config struct {
	HTTPPort              string
	StorageDriver         string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	SheetsSpreadsheetID   string
	SheetsCredentialsFile string
	OrdersSheet           string
	ProductsSheet         string
	CouriersSheet         string
	LockTimeout           time.Duration
	AuditSchedule         string
	LogLevel              string
}

// LoadConfig reads the configuration from the environment, applying defaults.
func LoadConfig() (Config, error) {
	timeout, err := time.ParseDuration(getEnv("LOCK_TIMEOUT", lock.DefaultTimeout.String()))
	if err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("LOCK_TIMEOUT", err)
	}

	config := Config{
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		StorageDriver:         strings.ToLower(getEnv("STORAGE_DRIVER", DriverMemory)),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnv("DB_PORT", "5432"),
		DBUser:                getEnv("DB_USER", "postgres"),
		DBPassword:            getEnv("DB_PASSWORD", ""),
		DBName:                getEnv("DB_NAME", "ordersheet"),
		DBSslMode:             getEnv("DB_SSLMODE", "disable"),
		SheetsSpreadsheetID:   getEnv("SHEETS_SPREADSHEET_ID", ""),
		SheetsCredentialsFile: getEnv("SHEETS_CREDENTIALS_FILE", ""),
		OrdersSheet:           getEnv("ORDERS_SHEET", sheet.DefaultOrdersSheet),
		ProductsSheet:         getEnv("PRODUCTS_SHEET", sheet.DefaultProductsSheet),
		CouriersSheet:         getEnv("COURIERS_SHEET", sheet.DefaultCouriersSheet),
		LockTimeout:           timeout,
		AuditSchedule:         getEnv("AUDIT_SCHEDULE", jobs.DefaultAuditSchedule),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
	}

	if err = config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the settings the selected storage driver depends on.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case DriverMemory, DriverPostgres:
	case DriverSheets:
		if c.SheetsSpreadsheetID == "" {
			return errs.NewValueIsRequiredError("SHEETS_SPREADSHEET_ID")
		}
	default:
		return errs.NewValueIsInvalidErrorWithCause("STORAGE_DRIVER",
			fmt.Errorf("%q is not one of %s, %s, %s", c.StorageDriver, DriverMemory, DriverPostgres, DriverSheets))
	}

	if c.LockTimeout <= 0 {
		return errs.NewValueIsOutOfRangeError("LOCK_TIMEOUT", c.LockTimeout, "1ns", "any")
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel maps LOG_LEVEL onto a slog level; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
