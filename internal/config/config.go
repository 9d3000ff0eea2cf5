// Package config provides configuration management for the application.
// It supports YAML configuration files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sitesafe/sitesafe/pkg/logger"
)

// Default configuration values
const (
	defaultHost            = "0.0.0.0"
	defaultPort            = 8080
	defaultLogoTimeoutSecs = 5
	defaultMaxBodyBytes    = 2 << 20
	defaultOutputDir       = "./output"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Report  ReportConfig  `yaml:"report"`
	Logging logger.Config `yaml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	Debug       bool     `yaml:"debug"`
	CORSOrigins []string `yaml:"cors_origins"` // Allowed CORS origins whitelist
}

// ReportConfig holds PDF generation configuration
type ReportConfig struct {
	LogoTimeout  int    `yaml:"logo_timeout"`   // Logo download timeout in seconds
	MaxBodyBytes int64  `yaml:"max_body_bytes"` // Maximum accepted request body size
	OutputDir    string `yaml:"output_dir"`     // Directory for CLI-rendered documents
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:  defaultHost,
			Port:  defaultPort,
			Debug: false,
			CORSOrigins: []string{
				"http://localhost:8091",
			},
		},
		Report: ReportConfig{
			LogoTimeout:  defaultLogoTimeoutSecs,
			MaxBodyBytes: defaultMaxBodyBytes,
			OutputDir:    defaultOutputDir,
		},
		Logging: logger.Config{
			Level:      "info",
			Format:     "text",
			File:       "",
			MaxSize:    100,
			MaxAge:     7,
			MaxBackups: 5,
			Compress:   false,
		},
	}
}

// Load loads configuration from a YAML file with environment variable expansion
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	expanded := expandEnvVars(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Report.LogoTimeout <= 0 {
		return fmt.Errorf("invalid logo timeout %d", c.Report.LogoTimeout)
	}
	if c.Report.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid max body bytes %d", c.Report.MaxBodyBytes)
	}
	return nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with environment variable values
// Only matches ${VAR_NAME} format (not $VAR_NAME) to avoid conflicts with
// special characters in literal values
func expandEnvVars(content string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1]

		// Support default values: ${VAR_NAME:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]

		if value := os.Getenv(varName); value != "" {
			return value
		}

		if len(parts) > 1 {
			return parts[1]
		}

		return ""
	})
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
