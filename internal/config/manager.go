// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"locman/internal/types"
	"locman/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all configuration sections.
type Config struct {
	Server      types.ServerConfig      `json:"server"`
	CORS        types.CORSConfig        `json:"cors"`
	Performance types.PerformanceConfig `json:"performance"`
	Log         types.LogConfig         `json:"log"`
	Database    types.DatabaseConfig    `json:"database"`
	DebugMode   bool                    `json:"debug_mode"`
}

// Manager implements types.ConfigManager on top of environment variables.
type Manager struct {
	config *Config
}

// NewManager creates a configuration manager, loading .env when present.
func NewManager() (types.ConfigManager, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	manager := &Manager{}
	if err := manager.ReloadConfig(); err != nil {
		return nil, err
	}

	return manager, nil
}

// ReloadConfig re-reads the environment into the manager.
func (m *Manager) ReloadConfig() error {
	config := &Config{
		Server: types.ServerConfig{
			Port:                    utils.ParseInteger(utils.GetEnvOrDefault("PORT", "3001"), 3001),
			Host:                    utils.GetEnvOrDefault("HOST", "0.0.0.0"),
			ReadTimeout:             utils.ParseInteger(utils.GetEnvOrDefault("SERVER_READ_TIMEOUT", "60"), 60),
			WriteTimeout:            utils.ParseInteger(utils.GetEnvOrDefault("SERVER_WRITE_TIMEOUT", "60"), 60),
			IdleTimeout:             utils.ParseInteger(utils.GetEnvOrDefault("SERVER_IDLE_TIMEOUT", "120"), 120),
			GracefulShutdownTimeout: utils.ParseInteger(utils.GetEnvOrDefault("SERVER_GRACEFUL_SHUTDOWN_TIMEOUT", "10"), 10),
		},
		CORS: types.CORSConfig{
			Enabled:          utils.ParseBoolean(utils.GetEnvOrDefault("ENABLE_CORS", "true"), true),
			AllowedOrigins:   utils.SplitAndTrim(utils.GetEnvOrDefault("ALLOWED_ORIGINS", "*"), ","),
			AllowedMethods:   utils.SplitAndTrim(utils.GetEnvOrDefault("ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"), ","),
			AllowedHeaders:   utils.SplitAndTrim(utils.GetEnvOrDefault("ALLOWED_HEADERS", "*"), ","),
			AllowCredentials: utils.ParseBoolean(utils.GetEnvOrDefault("ALLOW_CREDENTIALS", "false"), false),
		},
		Performance: types.PerformanceConfig{
			MaxConcurrentRequests: utils.ParseInteger(utils.GetEnvOrDefault("MAX_CONCURRENT_REQUESTS", "100"), 100),
		},
		Log: types.LogConfig{
			Level:      utils.GetEnvOrDefault("LOG_LEVEL", "info"),
			Format:     utils.GetEnvOrDefault("LOG_FORMAT", "text"),
			EnableFile: utils.ParseBoolean(utils.GetEnvOrDefault("LOG_ENABLE_FILE", "false"), false),
			FilePath:   utils.GetEnvOrDefault("LOG_FILE_PATH", "./data/logs/app.log"),
		},
		Database: types.DatabaseConfig{
			DSN: utils.GetEnvOrDefault("DATABASE_DSN", "./data/locman.db"),
		},
		DebugMode: utils.ParseBoolean(utils.GetEnvOrDefault("DEBUG_MODE", "false"), false),
	}

	m.config = config
	return m.Validate()
}

// Validate checks the configuration for invalid values.
func (m *Manager) Validate() error {
	if m.config.Server.Port < 1 || m.config.Server.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got: %d", m.config.Server.Port)
	}
	if m.config.Performance.MaxConcurrentRequests < 1 {
		return fmt.Errorf("max concurrent requests cannot be less than 1, got: %d", m.config.Performance.MaxConcurrentRequests)
	}
	if m.config.Database.DSN == "" {
		return fmt.Errorf("DATABASE_DSN is required")
	}
	return nil
}

// GetEffectiveServerConfig returns server configuration.
func (m *Manager) GetEffectiveServerConfig() types.ServerConfig {
	return m.config.Server
}

// GetCORSConfig returns CORS configuration.
func (m *Manager) GetCORSConfig() types.CORSConfig {
	return m.config.CORS
}

// GetPerformanceConfig returns performance configuration.
func (m *Manager) GetPerformanceConfig() types.PerformanceConfig {
	return m.config.Performance
}

// GetLogConfig returns log configuration.
func (m *Manager) GetLogConfig() types.LogConfig {
	return m.config.Log
}

// GetDatabaseConfig returns database configuration.
func (m *Manager) GetDatabaseConfig() types.DatabaseConfig {
	return m.config.Database
}

// IsDebugMode reports whether debug-only endpoints are enabled.
func (m *Manager) IsDebugMode() bool {
	return m.config.DebugMode
}

// DisplayServerConfig logs the effective configuration at startup.
func (m *Manager) DisplayServerConfig() {
	server := m.config.Server
	logrus.Info("")
	logrus.Info("=== Server Configuration ===")
	logrus.Infof("  Listen address: %s:%d", server.Host, server.Port)
	logrus.Infof("  Read/Write timeout: %ds/%ds", server.ReadTimeout, server.WriteTimeout)
	logrus.Infof("  CORS enabled: %v", m.config.CORS.Enabled)
	logrus.Infof("  Max concurrent requests: %d", m.config.Performance.MaxConcurrentRequests)
	logrus.Infof("  Log level: %s", m.config.Log.Level)
	logrus.Info("")
}
