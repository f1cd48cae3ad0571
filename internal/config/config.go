package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret" env:"JWT_SECRET"`
		Issuer string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	// Collaborators holds the base URLs of the services this engine
	// reads batch configuration from.
	Collaborators struct {
		AcademicURL   string `yaml:"academic_url" env:"ACADEMIC_SERVICE_URL"`
		EvaluationURL string `yaml:"evaluation_url" env:"EVALUATION_SERVICE_URL"`
		IdentityURL   string `yaml:"identity_url" env:"IDENTITY_SERVICE_URL"`
		Timeout       string `yaml:"timeout" env:"COLLABORATOR_TIMEOUT"`
		Retries       int    `yaml:"retries" env:"COLLABORATOR_RETRIES"`
	} `yaml:"collaborators"`

	Grading struct {
		// MaxGradeLimit is the fallback cap applied when a minimum-grade
		// gate is violated and the course does not define its own.
		MaxGradeLimit float64 `yaml:"max_grade_limit" env:"GRADING_MAX_GRADE_LIMIT"`
		// MissingGradeTreatment selects how an absent item grade enters the
		// weighted formula: "zero" or "excludeFromWeightTotal".
		MissingGradeTreatment string `yaml:"missing_grade_treatment" env:"GRADING_MISSING_TREATMENT"`
	} `yaml:"grading"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// MissingGradeTreatment values
const (
	MissingGradeZero    = "zero"
	MissingGradeExclude = "excludeFromWeightTotal"
)

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional, env vars can carry everything
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "gradecore"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.JWT.Issuer = "gradecore.app"

	config.Collaborators.AcademicURL = "http://localhost:8081"
	config.Collaborators.EvaluationURL = "http://localhost:8082"
	config.Collaborators.IdentityURL = "http://localhost:8083"
	config.Collaborators.Timeout = "5s"
	config.Collaborators.Retries = 3

	config.Grading.MaxGradeLimit = 4
	config.Grading.MissingGradeTreatment = MissingGradeZero

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if config.Collaborators.AcademicURL == "" || config.Collaborators.EvaluationURL == "" || config.Collaborators.IdentityURL == "" {
		return fmt.Errorf("all collaborator service URLs are required")
	}

	if _, err := time.ParseDuration(config.Collaborators.Timeout); err != nil {
		return fmt.Errorf("invalid collaborator timeout format: %w", err)
	}

	switch config.Grading.MissingGradeTreatment {
	case MissingGradeZero, MissingGradeExclude:
	default:
		return fmt.Errorf("invalid missing grade treatment: %q", config.Grading.MissingGradeTreatment)
	}

	if config.Grading.MaxGradeLimit < 0 || config.Grading.MaxGradeLimit > 10 {
		return fmt.Errorf("max grade limit must be in [0,10]")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// CollaboratorTimeout returns the parsed per-call timeout for collaborator reads.
func (c *Config) CollaboratorTimeout() time.Duration {
	d, err := time.ParseDuration(c.Collaborators.Timeout)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	switch strings.ToLower(valueStr) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}

	return defaultValue
}
