package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Shift      ShiftConfig
	Attendance AttendanceConfig
	Cron       CronConfig
}

type DatabaseConfig struct {
	Driver       string
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	StoreTimeout time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	Timezone       string
	AllowedOrigins []string
}

// ShiftTimes are "HH:MM" boundaries of one shift.
type ShiftTimes struct {
	Start      string
	BreakStart string
	BreakEnd   string
	End        string
}

type ShiftConfig struct {
	Pagi  ShiftTimes
	Siang ShiftTimes
}

// AttendanceConfig holds the time-debt policy.
type AttendanceConfig struct {
	RequiredWorkMinutes   int
	BreakAllowanceMinutes int
	EnforceShiftEnd       bool
}

type CronConfig struct {
	AbsenceSchedule string
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

func Load() (*Config, error) {
	// A missing .env is fine: containers get their environment injected.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	storeTimeout, err := time.ParseDuration(getEnv("STORE_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_TIMEOUT: %w", err)
	}

	config.Database = DatabaseConfig{
		Driver:       getEnv("DB_DRIVER", DriverPostgres),
		Host:         getEnv("DB_HOST", "localhost"),
		Port:         dbPort,
		User:         getEnv("DB_USER", "postgres"),
		Password:     getEnv("DB_PASSWORD", ""),
		Name:         getEnv("DB_NAME", "timesheet"),
		SSLMode:      getEnv("DB_SSL_MODE", "disable"),
		StoreTimeout: storeTimeout,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "3002"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Timezone:       getEnv("APP_TIMEZONE", "Asia/Jakarta"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "*"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Shift tables: start,break,resume,end
	pagi, err := parseShiftTimes("SHIFT_PAGI", getEnv("SHIFT_PAGI", "09:00,13:00,14:00,17:00"))
	if err != nil {
		return nil, err
	}
	siang, err := parseShiftTimes("SHIFT_SIANG", getEnv("SHIFT_SIANG", "13:00,17:00,18:00,21:00"))
	if err != nil {
		return nil, err
	}
	config.Shift = ShiftConfig{Pagi: pagi, Siang: siang}

	// Time-debt policy
	requiredMinutes, err := strconv.Atoi(getEnv("ATTENDANCE_REQUIRED_MINUTES", "480"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_REQUIRED_MINUTES: %w", err)
	}
	breakAllowance, err := strconv.Atoi(getEnv("ATTENDANCE_BREAK_ALLOWANCE_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_BREAK_ALLOWANCE_MINUTES: %w", err)
	}
	enforceShiftEnd, err := strconv.ParseBool(getEnv("ATTENDANCE_ENFORCE_SHIFT_END", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_ENFORCE_SHIFT_END: %w", err)
	}
	config.Attendance = AttendanceConfig{
		RequiredWorkMinutes:   requiredMinutes,
		BreakAllowanceMinutes: breakAllowance,
		EnforceShiftEnd:       enforceShiftEnd,
	}

	config.Cron = CronConfig{
		AbsenceSchedule: getEnv("ABSENCE_CRON_SCHEDULE", "5 0 * * *"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	if c.Attendance.RequiredWorkMinutes <= 0 {
		return fmt.Errorf("ATTENDANCE_REQUIRED_MINUTES must be positive")
	}
	if c.Attendance.BreakAllowanceMinutes < 0 {
		return fmt.Errorf("ATTENDANCE_BREAK_ALLOWANCE_MINUTES must not be negative")
	}
	if c.Database.StoreTimeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location returns the business timezone used to decide calendar dates.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func parseShiftTimes(key, value string) (ShiftTimes, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return ShiftTimes{}, fmt.Errorf("invalid %s: want start,break,resume,end", key)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if _, err := time.Parse("15:04", parts[i]); err != nil {
			return ShiftTimes{}, fmt.Errorf("invalid %s: %w", key, err)
		}
	}
	return ShiftTimes{
		Start:      parts[0],
		BreakStart: parts[1],
		BreakEnd:   parts[2],
		End:        parts[3],
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	for i := range result {
		result[i] = strings.TrimSpace(result[i])
	}
	return result
}
