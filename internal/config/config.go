package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/baguage/qualtrics-go/internal/constants"
	"github.com/baguage/qualtrics-go/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// User is the Qualtrics account name used for legacy API calls.
	User string `mapstructure:"user"`
	// Token is the API token issued in the Qualtrics account settings.
	Token string `mapstructure:"token"`
	// APIVersion is the legacy API version sent with every request.
	APIVersion string `mapstructure:"api_version"`
	// ControlPanelURL overrides the ControlPanel product endpoint.
	// Leave empty to use the default data center.
	ControlPanelURL string `mapstructure:"control_panel_url"`
	// ContactsURL overrides the Contacts product endpoint.
	ContactsURL string `mapstructure:"contacts_url"`
	// V3BaseURL overrides the v3 REST endpoint used by response exports.
	V3BaseURL string `mapstructure:"v3_url"`
	// OutputPath is the directory where downloaded export files are saved.
	OutputPath string `mapstructure:"output_path"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// MaxLogLength limits the size of request/response dumps in debug logs (e.g., "1MB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// RequestTimeout is the per-request HTTP timeout (e.g., "60s").
	RequestTimeout string `mapstructure:"request_timeout"`
	// ExportPollInterval is the pause between response-export progress polls.
	ExportPollInterval string `mapstructure:"export_poll_interval"`
	// ExportPollMaxAttempts caps the number of progress polls before giving up.
	ExportPollMaxAttempts int64 `mapstructure:"export_poll_max_attempts"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedMaxLogLength is the parsed maximum dump size in bytes.
	ParsedMaxLogLength uint64
	// ParsedRequestTimeout is the parsed HTTP timeout.
	ParsedRequestTimeout time.Duration
	// ParsedExportPollInterval is the parsed poll pause.
	ParsedExportPollInterval time.Duration
}

const (
	// DefaultControlPanelURL is the ControlPanel product endpoint (legacy API).
	DefaultControlPanelURL = "https://survey.qualtrics.com/WRAPI/ControlPanel/api.php"

	// DefaultContactsURL is the Contacts product endpoint (legacy API).
	DefaultContactsURL = "https://survey.qualtrics.com/WRAPI/Contacts/api.php"

	// DefaultV3BaseURL is the v3 REST endpoint used by response exports.
	DefaultV3BaseURL = "https://survey.qualtrics.com/API/v3"

	// DefaultAPIVersion is the legacy API version this library tracks.
	DefaultAPIVersion = "2.5"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".qualtrics.yaml"

	// DefaultMaxLogLength is the default maximum size (in bytes) for request/response dumps.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// DefaultExportPollMaxAttempts caps export progress polls when the
	// configuration carries no value.
	DefaultExportPollMaxAttempts = 60

	// envPrefix is the prefix for environment variables (QUALTRICS_USER, QUALTRICS_TOKEN).
	envPrefix = "QUALTRICS"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyUser indicates that the account name is missing.
	ErrEmptyUser = errors.New("user cannot be empty: set it in the config file or QUALTRICS_USER")
	// ErrEmptyToken indicates that the API token is missing.
	ErrEmptyToken = errors.New("token cannot be empty: set it in the config file or QUALTRICS_TOKEN")
	// ErrEmptyAPIVersion indicates that the legacy API version is missing.
	ErrEmptyAPIVersion = errors.New("api_version cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidPollInterval indicates that the export poll interval is invalid.
	ErrInvalidPollInterval = errors.New("export_poll_interval must be positive")
	// ErrInvalidPollAttempts indicates that the export poll attempt count is invalid.
	ErrInvalidPollAttempts = errors.New("export_poll_max_attempts must be a positive integer")
)

// LoadConfig loads configuration settings from a YAML file, falling back to
// environment variables for credentials. A missing default config file is not
// an error: credentials may come entirely from the environment.
func LoadConfig(configFilename string) (*Config, error) {
	usingDefault := configFilename == ""
	if usingDefault {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)
	viper.SetEnvPrefix(envPrefix)

	// Credentials are the only settings worth pulling from the environment.
	_ = viper.BindEnv("user")
	_ = viper.BindEnv("token")

	viper.SetDefault("api_version", DefaultAPIVersion)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("request_timeout", "60s")
	viper.SetDefault("export_poll_interval", "5s")
	viper.SetDefault("export_poll_max_attempts", 60)

	if err := viper.ReadInConfig(); err != nil {
		if !usingDefault || !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	var err error

	if strings.TrimSpace(cfg.User) == "" {
		return ErrEmptyUser
	}

	if strings.TrimSpace(cfg.Token) == "" {
		return ErrEmptyToken
	}

	if strings.TrimSpace(cfg.APIVersion) == "" {
		return ErrEmptyAPIVersion
	}

	if cfg.ControlPanelURL == "" {
		cfg.ControlPanelURL = DefaultControlPanelURL
	}

	if cfg.ContactsURL == "" {
		cfg.ContactsURL = DefaultContactsURL
	}

	if cfg.V3BaseURL == "" {
		cfg.V3BaseURL = DefaultV3BaseURL
	}

	for _, endpoint := range []string{cfg.ControlPanelURL, cfg.ContactsURL, cfg.V3BaseURL} {
		if _, err = url.Parse(endpoint); err != nil {
			return fmt.Errorf("invalid endpoint URL %q: %w", endpoint, err)
		}
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	maxLogLength := strings.TrimSpace(cfg.MaxLogLength)
	if maxLogLength == "" || maxLogLength == "0" {
		cfg.ParsedMaxLogLength = DefaultMaxLogLength
	} else {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	cfg.ParsedExportPollInterval, err = time.ParseDuration(cfg.ExportPollInterval)
	if err != nil {
		return fmt.Errorf("failed to parse export poll interval: %w", err)
	}

	if cfg.ParsedExportPollInterval <= 0 {
		return ErrInvalidPollInterval
	}

	if cfg.ExportPollMaxAttempts <= 0 {
		return ErrInvalidPollAttempts
	}

	return nil
}

// SaveCredentials stores the user and token in the config file while
// preserving the original format and key order.
func SaveCredentials(cfg *Config) error {
	configFile := getConfigFilePath()

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	updateValueInNode(&node, "user", cfg.User)
	updateValueInNode(&node, "token", cfg.Token)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile string, cfg *Config, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	viper.Set("user", cfg.User)
	viper.Set("token", cfg.Token)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateValueInNode updates a scalar value in the YAML node tree, adding the
// key if it is not present yet.
func updateValueInNode(node *yaml.Node, key, value string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == key {
			// Update the value while preserving style.
			valueNode.Value = value

			// Ensure it's quoted if it contains special characters.
			if valueNode.Style == 0 {
				valueNode.Style = yaml.DoubleQuotedStyle
			}

			return
		}
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Style: yaml.DoubleQuotedStyle},
	)
}
