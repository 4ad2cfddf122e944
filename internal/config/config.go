// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Supported locales for gig submissions and dashboard routes.
var Locales = []string{"nl", "en"}

// Config holds all configuration values for gigwizard.
type Config struct {
	APIBaseURL     string        `mapstructure:"api_base_url" yaml:"api_base_url"`
	APIToken       string        `mapstructure:"api_token" yaml:"api_token,omitempty"`
	Locale         string        `mapstructure:"locale" yaml:"locale"`
	CategoriesFile string        `mapstructure:"categories_file" yaml:"categories_file"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
	LogLevel       string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile        string        `mapstructure:"log_file" yaml:"log_file"`
	DevServerAddr  string        `mapstructure:"devserver_addr" yaml:"devserver_addr"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		APIBaseURL:     "http://localhost:8787",
		Locale:         "nl",
		CategoriesFile: "categories.yml",
		LogLevel:       "info",
		DevServerAddr:  ":8787",
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars (.env included) > project config > XDG global config > defaults
func Load() (*Config, error) {
	// A missing .env is normal
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("gigwizard")

	def := Default()
	v.SetDefault("api_base_url", def.APIBaseURL)
	v.SetDefault("api_token", "")
	v.SetDefault("locale", def.Locale)
	v.SetDefault("categories_file", def.CategoriesFile)
	v.SetDefault("request_timeout", time.Duration(0))
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("devserver_addr", def.DevServerAddr)

	v.SetEnvPrefix("GIGWIZARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{
		"api_base_url", "api_token", "locale", "categories_file",
		"request_timeout", "log_level", "log_file", "devserver_addr",
	} {
		if err := v.BindEnv(key, "GIGWIZARD_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url is required")
	}
	if !IsSupportedLocale(c.Locale) {
		return fmt.Errorf("unsupported locale %q (want one of %s)", c.Locale, strings.Join(Locales, ", "))
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout cannot be negative")
	}
	return nil
}

// IsSupportedLocale reports whether locale is one of Locales.
func IsSupportedLocale(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/gigwizard/gigwizard.yml or $XDG_CONFIG_HOME/gigwizard/gigwizard.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gigwizard", "gigwizard.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gigwizard", "gigwizard.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "gigwizard.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	// Tokens may be present, keep the file private
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
