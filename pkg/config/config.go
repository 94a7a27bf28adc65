package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
)

// Config represents the application configuration shared by the dashboard
// and the analysis service.
type Config struct {
	Analyzer  AnalyzerConfig  `json:"analyzer"`
	Chat      ChatConfig      `json:"chat"`
	Server    ServerConfig    `json:"server"`
	StatusBar StatusBarConfig `json:"status_bar"`
	LogLevel  string          `json:"log_level" env:"VECTORPRIME_LOG_LEVEL"`
	LogFormat string          `json:"log_format" env:"VECTORPRIME_LOG_FORMAT"`
	LogFile   string          `json:"log_file" env:"VECTORPRIME_LOG_FILE"`
}

// AnalyzerConfig points the dashboard at the analysis service.
type AnalyzerConfig struct {
	Endpoint       string `json:"endpoint" env:"VECTORPRIME_ANALYZER_ENDPOINT"`
	TimeoutSeconds int    `json:"timeout_seconds" env:"VECTORPRIME_ANALYZER_TIMEOUT_SECONDS"`
}

// ChatConfig holds the assistant widget settings
type ChatConfig struct {
	ReplyDelayMS      int    `json:"reply_delay_ms" env:"VECTORPRIME_CHAT_REPLY_DELAY_MS"`
	BlockWhilePending bool   `json:"block_while_pending" env:"VECTORPRIME_CHAT_BLOCK_WHILE_PENDING"`
	Greeting          string `json:"greeting,omitempty"`
}

// ServerConfig configures vectorprime-analyzer.
type ServerConfig struct {
	ListenAddr      string   `json:"listen_addr" env:"VECTORPRIME_LISTEN_ADDR"`
	CatalogPath     string   `json:"catalog_path" env:"VECTORPRIME_CATALOG_PATH"`
	ThinkingDelayMS int      `json:"thinking_delay_ms" env:"VECTORPRIME_THINKING_DELAY_MS"`
	VolumeUnits     int      `json:"volume_units" env:"VECTORPRIME_VOLUME_UNITS"`
	MaxUploadMB     int      `json:"max_upload_mb" env:"VECTORPRIME_MAX_UPLOAD_MB"`
	CORSOrigins     []string `json:"cors_origins" env:"VECTORPRIME_CORS_ORIGINS" envSeparator:","`

	// CatalogReloadSeconds is how often the catalog file is checked for
	// changes. Zero disables reloading.
	CatalogReloadSeconds int `json:"catalog_reload_seconds" env:"VECTORPRIME_CATALOG_RELOAD_SECONDS"`
}

// StatusBarConfig holds status bar UI configuration
type StatusBarConfig struct {
	ShowGitBranch bool `json:"show_git_branch"`
}

// Default returns a configuration with default values
func Default() Config {
	return Config{
		Analyzer: AnalyzerConfig{
			Endpoint:       "http://localhost:8000/analyze-rfp",
			TimeoutSeconds: 30,
		},
		Chat: ChatConfig{
			ReplyDelayMS:      800,
			BlockWhilePending: false,
		},
		Server: ServerConfig{
			ListenAddr:      ":8000",
			CatalogPath:     "db.json",
			ThinkingDelayMS: 2500,
			VolumeUnits:     500,
			MaxUploadMB:     20,
			CORSOrigins:     []string{"*"},

			CatalogReloadSeconds: 30,
		},
		StatusBar: StatusBarConfig{
			ShowGitBranch: true,
		},
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// Load loads configuration from the specified path
// If the file doesn't exist, creates one with default values.
// Keys missing from an existing file keep their defaults.
func Load(configPath string) (Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return Config{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(configPath, cfg); err != nil {
				return Config{}, fmt.Errorf("failed to create default config: %w", err)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to the specified path
func Save(configPath string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ApplyEnv overrides fields from VECTORPRIME_* environment variables.
// Unset variables leave the current values alone.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}

// LoadWithEnv is Load followed by ApplyEnv and Validate.
func LoadWithEnv(configPath string) (Config, error) {
	cfg, err := Load(configPath)
	if err != nil {
		return Config{}, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	endpoint := strings.TrimSpace(c.Analyzer.Endpoint)
	if endpoint == "" {
		return fmt.Errorf("analyzer.endpoint is required")
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		return fmt.Errorf("analyzer.endpoint must be an http(s) URL, got: %s", endpoint)
	}

	if c.Analyzer.TimeoutSeconds <= 0 {
		return fmt.Errorf("analyzer.timeout_seconds must be positive, got: %d", c.Analyzer.TimeoutSeconds)
	}

	if c.Chat.ReplyDelayMS <= 0 {
		return fmt.Errorf("chat.reply_delay_ms must be positive, got: %d", c.Chat.ReplyDelayMS)
	}

	if strings.TrimSpace(c.Server.ListenAddr) == "" {
		return fmt.Errorf("server.listen_addr is required")
	}
	if c.Server.ThinkingDelayMS < 0 {
		return fmt.Errorf("server.thinking_delay_ms must not be negative, got: %d", c.Server.ThinkingDelayMS)
	}
	if c.Server.VolumeUnits <= 0 {
		return fmt.Errorf("server.volume_units must be positive, got: %d", c.Server.VolumeUnits)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server.max_upload_mb must be positive, got: %d", c.Server.MaxUploadMB)
	}
	if c.Server.CatalogReloadSeconds < 0 {
		return fmt.Errorf("server.catalog_reload_seconds must not be negative, got: %d", c.Server.CatalogReloadSeconds)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "", "json", "text", "console":
	default:
		return fmt.Errorf("unsupported log_format: %s", c.LogFormat)
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".vectorprime/config.json"
	}
	return filepath.Join(homeDir, ".vectorprime", "config.json")
}
