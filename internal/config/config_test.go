package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestLoadConfig tests the LoadConfig function.
//
//nolint:paralleltest // Viper holds global state, so the cases must run sequentially.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name           string
		configFilename string
		configContent  string
		expectError    bool
		check          func(*testing.T, *Config)
	}{
		{
			name:           "valid config file",
			configFilename: "valid_config.yaml",
			configContent: `
user: "bob#university"
token: "test_token"
api_version: "2.5"
log_level: "debug"
max_log_length: "2MB"
request_timeout: "30s"
export_poll_interval: "2s"
export_poll_max_attempts: 10
`,
			expectError: false,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "bob#university", cfg.User)
				assert.Equal(t, "test_token", cfg.Token)
				assert.Equal(t, "2.5", cfg.APIVersion)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "2MB", cfg.MaxLogLength)
				assert.Equal(t, int64(10), cfg.ExportPollMaxAttempts)
			},
		},
		{
			name:           "defaults applied",
			configFilename: "minimal_config.yaml",
			configContent: `
user: "bob#university"
token: "test_token"
`,
			expectError: false,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, DefaultAPIVersion, cfg.APIVersion)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "5s", cfg.ExportPollInterval)
				assert.Equal(t, int64(60), cfg.ExportPollMaxAttempts)
			},
		},
		{
			name:           "non-existent explicit file",
			configFilename: "non_existent.yaml",
			expectError:    true,
		},
		{
			name:           "invalid yaml",
			configFilename: "invalid_config.yaml",
			configContent:  "user: [unclosed",
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, tt.configFilename)

			if tt.configContent != "" {
				err := os.WriteFile(configPath, []byte(tt.configContent), 0o600)
				require.NoError(t, err)
			}

			cfg, err := LoadConfig(configPath)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	validConfig := func() *Config {
		return &Config{
			User:                  "bob#university",
			Token:                 "test_token",
			APIVersion:            "2.5",
			LogLevel:              "info",
			RequestTimeout:        "60s",
			ExportPollInterval:    "5s",
			ExportPollMaxAttempts: 60,
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectedErr error
	}{
		{
			name:        "valid config",
			mutate:      func(_ *Config) {},
			expectedErr: nil,
		},
		{
			name:        "missing user",
			mutate:      func(cfg *Config) { cfg.User = "  " },
			expectedErr: ErrEmptyUser,
		},
		{
			name:        "missing token",
			mutate:      func(cfg *Config) { cfg.Token = "" },
			expectedErr: ErrEmptyToken,
		},
		{
			name:        "missing api version",
			mutate:      func(cfg *Config) { cfg.APIVersion = "" },
			expectedErr: ErrEmptyAPIVersion,
		},
		{
			name:        "unknown log level",
			mutate:      func(cfg *Config) { cfg.LogLevel = "verbose" },
			expectedErr: ErrUnknownLogLevel,
		},
		{
			name:        "negative request timeout",
			mutate:      func(cfg *Config) { cfg.RequestTimeout = "-5s" },
			expectedErr: ErrInvalidRequestTimeout,
		},
		{
			name:        "negative poll interval",
			mutate:      func(cfg *Config) { cfg.ExportPollInterval = "-1s" },
			expectedErr: ErrInvalidPollInterval,
		},
		{
			name:        "zero poll attempts",
			mutate:      func(cfg *Config) { cfg.ExportPollMaxAttempts = 0 },
			expectedErr: ErrInvalidPollAttempts,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)

				return
			}

			require.NoError(t, err)
		})
	}
}

// TestValidateConfigDerivedFields tests that validation fills derived fields.
func TestValidateConfigDerivedFields(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		User:                  "bob#university",
		Token:                 "test_token",
		APIVersion:            "2.5",
		LogLevel:              "debug",
		MaxLogLength:          "2MB",
		RequestTimeout:        "30s",
		ExportPollInterval:    "2s",
		ExportPollMaxAttempts: 10,
	}

	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, DefaultControlPanelURL, cfg.ControlPanelURL)
	assert.Equal(t, DefaultContactsURL, cfg.ContactsURL)
	assert.Equal(t, DefaultV3BaseURL, cfg.V3BaseURL)
	assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
	assert.Equal(t, uint64(2*1000*1000), cfg.ParsedMaxLogLength)
	assert.Equal(t, 30*time.Second, cfg.ParsedRequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.ParsedExportPollInterval)
}

// TestValidateConfigKeepsEndpointOverrides tests that explicit endpoint URLs survive validation.
func TestValidateConfigKeepsEndpointOverrides(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		User:                  "bob#university",
		Token:                 "test_token",
		APIVersion:            "2.5",
		ControlPanelURL:       "https://co1.qualtrics.com/WRAPI/ControlPanel/api.php",
		ContactsURL:           "https://co1.qualtrics.com/WRAPI/Contacts/api.php",
		V3BaseURL:             "https://co1.qualtrics.com/API/v3",
		LogLevel:              "info",
		RequestTimeout:        "60s",
		ExportPollInterval:    "5s",
		ExportPollMaxAttempts: 60,
	}

	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, "https://co1.qualtrics.com/WRAPI/ControlPanel/api.php", cfg.ControlPanelURL)
	assert.Equal(t, "https://co1.qualtrics.com/WRAPI/Contacts/api.php", cfg.ContactsURL)
	assert.Equal(t, "https://co1.qualtrics.com/API/v3", cfg.V3BaseURL)
}

// TestDefaultMaxLogLength tests the max log length fallback.
func TestDefaultMaxLogLength(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		User:                  "bob#university",
		Token:                 "test_token",
		APIVersion:            "2.5",
		LogLevel:              "info",
		RequestTimeout:        "60s",
		ExportPollInterval:    "5s",
		ExportPollMaxAttempts: 60,
	}

	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, uint64(DefaultMaxLogLength), cfg.ParsedMaxLogLength)
}
