// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/healthcareamerican/lifequote/pkg/constants"
)

// Configuration holds all configuration for lifequote.
type Configuration struct {
	CRM     CRMConfig     `yaml:"crm,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// CRMConfig holds the delivery client settings.
type CRMConfig struct {
	Endpoint      string        `yaml:"endpoint,omitempty"`      // lead submission URL
	APIKey        string        `yaml:"apiKey,omitempty"`        // optional bearer credential
	Timeout       time.Duration `yaml:"timeout,omitempty"`       // per-attempt bound
	RetryAttempts int           `yaml:"retryAttempts,omitempty"` // maximum attempts
	RetryDelay    time.Duration `yaml:"retryDelay,omitempty"`    // backoff base delay
}

// ServerConfig holds the HTTP listen settings for the quote API.
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables override file values.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (conf *Configuration) applyDefaults() {
	if conf.CRM.Endpoint == "" {
		conf.CRM.Endpoint = constants.DefaultCRMEndpoint
	}
	if conf.CRM.Timeout <= 0 {
		conf.CRM.Timeout = constants.DefaultCRMTimeout
	}
	if conf.CRM.RetryAttempts <= 0 {
		conf.CRM.RetryAttempts = constants.DefaultRetryAttempts
	}
	if conf.CRM.RetryDelay <= 0 {
		conf.CRM.RetryDelay = constants.DefaultRetryDelay
	}
	if conf.Server.Address == "" {
		conf.Server.Address = constants.DefaultServerAddress
	}
}

// ValidateConfiguration checks the loaded configuration and returns any
// warnings in a stable order. Warnings do not prevent startup.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.CRM.APIKey == "" {
		warnings = append(warnings, "crm.apiKey is not set; submissions will be sent without a bearer credential")
	}
	if conf.CRM.Timeout > time.Minute {
		warnings = append(warnings, fmt.Sprintf("crm.timeout of %s is unusually long", conf.CRM.Timeout))
	}
	if conf.CRM.RetryAttempts > 10 {
		warnings = append(warnings, fmt.Sprintf("crm.retryAttempts of %d is unusually high", conf.CRM.RetryAttempts))
	}

	return warnings
}
