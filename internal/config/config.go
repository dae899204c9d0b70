// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv
const (
	EnvPort     = "PORT"
	EnvDBPath   = "CONTACTS_DB_PATH"
	EnvAPIURL   = "CONTACTS_API_URL"
	EnvLogLevel = "CONTACTS_LOG_LEVEL"
)

// Config holds all contacts configuration.
type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	Client   Client   `yaml:"client"`
	Log      Log      `yaml:"log"`
}

// Server holds HTTP API settings.
type Server struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Database holds storage settings.
type Database struct {
	Path string `yaml:"path"` // file path, "~/" allowed, or ":memory:"
}

// Client holds settings for the terminal client.
type Client struct {
	APIURL  string        `yaml:"api_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Log holds logging settings.
type Log struct {
	Level string `yaml:"level"` // debug | info | warn | error
	File  string `yaml:"file"`  // used by the terminal UI, which owns the screen
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: Server{
			Port:            5000,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: Database{
			Path: "~/.contacts/contacts.db",
		},
		Client: Client{
			APIURL:  "http://localhost:5000",
			Timeout: 30 * time.Second,
		},
		Log: Log{
			Level: "info",
			File:  "~/.contacts/ui.log",
		},
	}
}

// DefaultPaths returns the config files read by LoadLayered, lowest
// priority first: the user config, then ./contacts.yaml.
func DefaultPaths() []string {
	paths := []string{}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "contacts", "config.yaml"))
	}
	return append(paths, "contacts.yaml")
}

// Addr returns the host:port the HTTP server listens on.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads a single YAML config file at path and returns a Config.
// If the file does not exist, defaults are returned without error.
func Load(path string) (*Config, error) {
	return LoadLayered(path)
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: server.shutdown_timeout must be positive, got %v", c.Server.ShutdownTimeout)
	}
	if c.Database.Path == "" {
		return errors.New("config: database.path cannot be empty")
	}
	if c.Client.APIURL == "" {
		return errors.New("config: client.api_url cannot be empty")
	}
	u, err := url.Parse(c.Client.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: client.api_url must be an http(s) URL, got %q", c.Client.APIURL)
	}
	if c.Client.Timeout <= 0 {
		return fmt.Errorf("config: client.timeout must be positive, got %v", c.Client.Timeout)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level %q: %w", c.Log.Level, err)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: PORT, CONTACTS_DB_PATH, CONTACTS_API_URL, CONTACTS_LOG_LEVEL.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvPort, v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.Client.APIURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Server   *rawServer   `yaml:"server"`
	Database *rawDatabase `yaml:"database"`
	Client   *rawClient   `yaml:"client"`
	Log      *rawLog      `yaml:"log"`
}

type rawServer struct {
	Host            *string        `yaml:"host"`
	Port            *int           `yaml:"port"`
	ShutdownTimeout *time.Duration `yaml:"shutdown_timeout"`
}

type rawDatabase struct {
	Path *string `yaml:"path"`
}

type rawClient struct {
	APIURL  *string        `yaml:"api_url"`
	Timeout *time.Duration `yaml:"timeout"`
}

type rawLog struct {
	Level *string `yaml:"level"`
	File  *string `yaml:"file"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Server != nil {
		setIfPresent(&c.Server.Host, layer.Server.Host)
		setIfPresent(&c.Server.Port, layer.Server.Port)
		setIfPresent(&c.Server.ShutdownTimeout, layer.Server.ShutdownTimeout)
	}
	if layer.Database != nil {
		setIfPresent(&c.Database.Path, layer.Database.Path)
	}
	if layer.Client != nil {
		setIfPresent(&c.Client.APIURL, layer.Client.APIURL)
		setIfPresent(&c.Client.Timeout, layer.Client.Timeout)
	}
	if layer.Log != nil {
		setIfPresent(&c.Log.Level, layer.Log.Level)
		setIfPresent(&c.Log.File, layer.Log.File)
	}
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
