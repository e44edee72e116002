package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/complianceos"
	ConfigFileName    = "complianceos.yml"
)

// ValidLogFormats is the list of accepted log_format values
var ValidLogFormats = []string{"json", "console"}

// ComplianceConfig holds all server configuration settings
type ComplianceConfig struct {
	// BindAddress is the interface the HTTP server listens on
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the HTTP listen port
	Port int `yaml:"port" json:"port"`

	// LogLevel is the zap level name (debug, info, warn, error)
	LogLevel string `yaml:"log_level" json:"log_level"`

	// LogFormat is json or console
	LogFormat string `yaml:"log_format" json:"log_format"`

	// PolicyFile is a YAML file of default role grants
	PolicyFile string `yaml:"policy_file" json:"policy_file"`

	// DatabaseURL selects the Postgres store; empty keeps state in memory
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// AuditDatabaseURL persists audit events; empty disables persistence
	AuditDatabaseURL string `yaml:"audit_database_url" json:"audit_database_url"`

	// RedisURL selects the Redis notifier; empty keeps notifications in memory
	RedisURL string `yaml:"redis_url" json:"redis_url"`

	// AuditEnabled turns the audit trail on or off
	AuditEnabled *bool `yaml:"audit_enabled" json:"audit_enabled"`

	// NotificationTTL is how long a notification stays visible
	NotificationTTL time.Duration `yaml:"notification_ttl" json:"notification_ttl"`

	// AnalysisTickInterval is the time between smart-fill progress steps
	AnalysisTickInterval time.Duration `yaml:"analysis_tick_interval" json:"analysis_tick_interval"`

	// AnalysisCompletionDelay is the pause between 100% and review
	AnalysisCompletionDelay time.Duration `yaml:"analysis_completion_delay" json:"analysis_completion_delay"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *ComplianceConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *ComplianceConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() (*ComplianceConfig, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return cfg, nil
}

// newDefault returns a config with default values
func newDefault() *ComplianceConfig {
	enabled := true
	return &ComplianceConfig{
		BindAddress:             "127.0.0.1",
		Port:                    8080,
		LogLevel:                "info",
		LogFormat:               "json",
		AuditEnabled:            &enabled,
		NotificationTTL:         5 * time.Second,
		AnalysisTickInterval:    40 * time.Millisecond,
		AnalysisCompletionDelay: 500 * time.Millisecond,
		sources:                 make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*ComplianceConfig, error) {
	configPath := os.Getenv("COMPLY_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	return LoadFile(filepath.Join(configPath, ConfigFileName))
}

// LoadFile loads configuration from the named file, which may be absent,
// then applies the environment.
func LoadFile(path string) (*ComplianceConfig, error) {
	config := newDefault()
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}
	config.configFilePath = path

	if data, err := os.ReadFile(path); err == nil {
		var fileConfig ComplianceConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	if err := config.applyEnvConfig(); err != nil {
		return nil, err
	}
	return config, nil
}

func attributeNames() []string {
	return []string{
		"bind_address", "port", "log_level", "log_format", "policy_file",
		"database_url", "audit_database_url", "redis_url", "audit_enabled",
		"notification_ttl", "analysis_tick_interval", "analysis_completion_delay",
	}
}

func (c *ComplianceConfig) applyFileConfig(file *ComplianceConfig) {
	setString := func(name string, dst *string, v string) {
		if v != "" {
			*dst = v
			c.sources[name] = "file"
		}
	}
	setDuration := func(name string, dst *time.Duration, v time.Duration) {
		if v != 0 {
			*dst = v
			c.sources[name] = "file"
		}
	}

	setString("bind_address", &c.BindAddress, file.BindAddress)
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	setString("log_level", &c.LogLevel, file.LogLevel)
	setString("log_format", &c.LogFormat, file.LogFormat)
	setString("policy_file", &c.PolicyFile, file.PolicyFile)
	setString("database_url", &c.DatabaseURL, file.DatabaseURL)
	setString("audit_database_url", &c.AuditDatabaseURL, file.AuditDatabaseURL)
	setString("redis_url", &c.RedisURL, file.RedisURL)
	if file.AuditEnabled != nil {
		v := *file.AuditEnabled
		c.AuditEnabled = &v
		c.sources["audit_enabled"] = "file"
	}
	setDuration("notification_ttl", &c.NotificationTTL, file.NotificationTTL)
	setDuration("analysis_tick_interval", &c.AnalysisTickInterval, file.AnalysisTickInterval)
	setDuration("analysis_completion_delay", &c.AnalysisCompletionDelay, file.AnalysisCompletionDelay)
}

func (c *ComplianceConfig) applyEnvConfig() error {
	stringVars := map[string]*string{
		"COMPLY_BIND_ADDRESS":       &c.BindAddress,
		"COMPLY_LOG_LEVEL":          &c.LogLevel,
		"COMPLY_LOG_FORMAT":         &c.LogFormat,
		"COMPLY_POLICY_FILE":        &c.PolicyFile,
		"COMPLY_DATABASE_URL":       &c.DatabaseURL,
		"COMPLY_AUDIT_DATABASE_URL": &c.AuditDatabaseURL,
		"COMPLY_REDIS_URL":          &c.RedisURL,
	}
	for env, dst := range stringVars {
		if val := os.Getenv(env); val != "" {
			*dst = val
			c.sources[attributeFor(env)] = "environment"
		}
	}

	if val := os.Getenv("COMPLY_PORT"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid COMPLY_PORT %q: %w", val, err)
		}
		c.Port = i
		c.sources["port"] = "environment"
	}
	if val := os.Getenv("COMPLY_AUDIT_ENABLED"); val != "" {
		enabled := val == "true" || val == "1"
		c.AuditEnabled = &enabled
		c.sources["audit_enabled"] = "environment"
	}

	durations := map[string]*time.Duration{
		"COMPLY_NOTIFICATION_TTL":          &c.NotificationTTL,
		"COMPLY_ANALYSIS_TICK_INTERVAL":    &c.AnalysisTickInterval,
		"COMPLY_ANALYSIS_COMPLETION_DELAY": &c.AnalysisCompletionDelay,
	}
	for env, dst := range durations {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", env, val, err)
		}
		*dst = d
		c.sources[attributeFor(env)] = "environment"
	}
	return nil
}

// attributeFor maps COMPLY_FOO_BAR to foo_bar
func attributeFor(env string) string {
	return strings.ToLower(strings.TrimPrefix(env, "COMPLY_"))
}

// ConfigFilePath returns the path to the config file
func (c *ComplianceConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *ComplianceConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// IsAuditEnabled reports whether audit events are recorded
func (c *ComplianceConfig) IsAuditEnabled() bool {
	return c.AuditEnabled == nil || *c.AuditEnabled
}

// ListenAddress returns host:port for the HTTP server
func (c *ComplianceConfig) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.BindAddress, c.Port)
}

// Level parses LogLevel
func (c *ComplianceConfig) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// Validate validates the configuration
func (c *ComplianceConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}

	validFormat := false
	for _, f := range ValidLogFormats {
		if c.LogFormat == f {
			validFormat = true
		}
	}
	if !validFormat {
		return fmt.Errorf("invalid log_format: %s", c.LogFormat)
	}

	for name, raw := range map[string]string{
		"database_url":       c.DatabaseURL,
		"audit_database_url": c.AuditDatabaseURL,
		"redis_url":          c.RedisURL,
	} {
		if raw == "" {
			continue
		}
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" {
			return fmt.Errorf("invalid %s: %s", name, redact(raw))
		}
	}

	if c.NotificationTTL <= 0 {
		return fmt.Errorf("invalid notification_ttl: %s", c.NotificationTTL)
	}
	if c.AnalysisTickInterval <= 0 {
		return fmt.Errorf("invalid analysis_tick_interval: %s", c.AnalysisTickInterval)
	}
	if c.AnalysisCompletionDelay < 0 {
		return fmt.Errorf("invalid analysis_completion_delay: %s", c.AnalysisCompletionDelay)
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *ComplianceConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
		{Name: "log_format", Value: c.LogFormat, Source: c.Source("log_format")},
		{Name: "policy_file", Value: c.PolicyFile, Source: c.Source("policy_file")},
		{Name: "database_url", Value: redact(c.DatabaseURL), Source: c.Source("database_url")},
		{Name: "audit_database_url", Value: redact(c.AuditDatabaseURL), Source: c.Source("audit_database_url")},
		{Name: "redis_url", Value: redact(c.RedisURL), Source: c.Source("redis_url")},
		{Name: "audit_enabled", Value: strconv.FormatBool(c.IsAuditEnabled()), Source: c.Source("audit_enabled")},
		{Name: "notification_ttl", Value: c.NotificationTTL.String(), Source: c.Source("notification_ttl")},
		{Name: "analysis_tick_interval", Value: c.AnalysisTickInterval.String(), Source: c.Source("analysis_tick_interval")},
		{Name: "analysis_completion_delay", Value: c.AnalysisCompletionDelay.String(), Source: c.Source("analysis_completion_delay")},
	}
}

// FormatText returns a text representation of the configuration
func (c *ComplianceConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-30s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-30s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-30s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *ComplianceConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// redact hides the password of a connection URL
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
