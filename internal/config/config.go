// Package config loads and validates the PSA connection settings from
// Viper configuration and environment variables.
package config

import (
	"net/url"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/agentstation/contactsync/pkg/errors"
	"github.com/agentstation/contactsync/pkg/logging"
)

// Defaults applied when the corresponding setting is absent.
const (
	DefaultPageSize = 100
	DefaultWorkDir  = "snapshots"
)

// Config holds everything needed to talk to the PSA API and run the pipeline.
type Config struct {
	// Company is the identifier of the company whose configurations and
	// contacts are reconciled.
	Company string

	// Credentials for the member-keys Basic scheme.
	CompanyID  string
	PublicKey  string
	PrivateKey string

	// ClientID identifies this integration to the PSA (clientId header).
	ClientID string

	// BaseURL is the API root, e.g. https://api-na.myconnectwise.net/v4_6_release/apis/3.0
	BaseURL string

	// MediaType is the versioned Accept header value.
	MediaType string

	// PageSize is the number of records requested per page.
	PageSize int

	// WorkDir is the directory holding intermediate snapshot files.
	WorkDir string
}

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// Load builds a Config from Viper/environment and validates it.
// Validation failures are fatal: they happen before any network activity.
func Load() (*Config, error) {
	cfg := &Config{
		Company:    GetString("PSA_COMPANY"),
		CompanyID:  GetString("PSA_COMPANY_ID"),
		PublicKey:  GetString("PSA_PUBLIC_KEY"),
		PrivateKey: GetString("PSA_PRIVATE_KEY"),
		ClientID:   GetString("PSA_CLIENT_ID"),
		BaseURL:    GetString("PSA_BASE_URL"),
		MediaType:  GetString("PSA_MEDIA_TYPE"),
		PageSize:   viper.GetInt("PSA_PAGE_SIZE"),
		WorkDir:    GetString("PSA_WORK_DIR"),
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = DefaultWorkDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all required settings are present.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"PSA_COMPANY", c.Company},
		{"PSA_COMPANY_ID", c.CompanyID},
		{"PSA_PUBLIC_KEY", c.PublicKey},
		{"PSA_PRIVATE_KEY", c.PrivateKey},
		{"PSA_CLIENT_ID", c.ClientID},
		{"PSA_BASE_URL", c.BaseURL},
		{"PSA_MEDIA_TYPE", c.MediaType},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.NewConfigError("psa", r.name+" is required", errors.ErrCredentialsRequired)
		}
	}

	if _, err := url.Parse(c.BaseURL); err != nil {
		return errors.NewConfigError("psa", "PSA_BASE_URL is not a valid URL", err)
	}

	return nil
}

// WarnUnknownRegion logs a warning when the base URL's host is not one of
// the known regional hosts. This is advisory only: custom and local
// environments are still accepted.
func (c *Config) WarnUnknownRegion() {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return
	}

	if region, ok := KnownRegion(u.Hostname()); ok {
		logging.Debug().Str("region", region).Str("host", u.Hostname()).Msg("Base URL matches known region")
		return
	}

	logging.Warn().
		Str("host", u.Hostname()).
		Msg("Base URL does not match any known regional host; continuing anyway")
}
