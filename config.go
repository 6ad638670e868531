package flixgraph

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when no config file exists in dir or any
// parent directory.
var ErrConfigNotFound = errors.New("config file not found")

// Config represents the .flixgraph.yaml configuration file.
type Config struct {
	// Connection settings for the Neo4j store.
	Connection ConnectionConfig `yaml:"connection" validate:"required"`

	// Recommendation engine settings.
	Recommend RecommendConfig `yaml:"recommend,omitempty"`
}

// ConnectionConfig holds connection settings for the graph store.
type ConnectionConfig struct {
	// Connection URI (e.g., "bolt://localhost:7687", "neo4j+s://host").
	URI string `yaml:"uri" validate:"required"`

	// Optional credentials (if not in URI).
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`

	// Target database; empty means the server default.
	Database string `yaml:"database,omitempty"`
}

// RecommendConfig holds settings for the recommendation engine.
type RecommendConfig struct {
	// Default result limit. Zero means the engine default.
	Limit int `yaml:"limit,omitempty" validate:"omitempty,gt=0"`

	// TTL for cached rankings. Zero disables caching.
	CacheTTL time.Duration `yaml:"cache_ttl,omitempty" validate:"omitempty,gt=0"`
}

// UnmarshalYAML accepts cache_ttl as a duration string ("30s", "5m").
func (r *RecommendConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Limit    int    `yaml:"limit"`
		CacheTTL string `yaml:"cache_ttl"`
	}

	err := value.Decode(&raw)
	if err != nil {
		return err
	}

	r.Limit = raw.Limit

	if raw.CacheTTL != "" {
		d, err := time.ParseDuration(raw.CacheTTL)
		if err != nil {
			return fmt.Errorf("parse cache_ttl: %w", err)
		}

		r.CacheTTL = d
	}

	return nil
}

// DefaultConfigNames are the filenames we search for.
var DefaultConfigNames = []string{".flixgraph.yaml", ".flixgraph.yml", "flixgraph.yaml", "flixgraph.yml"}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig finds and loads the nearest config file walking up from dir,
// then overlays NEO4J_* environment variables (a .env file in dir is loaded
// first, matching the original deployment layout). If no config file exists
// but the environment provides a URI, an env-only config is returned.
func LoadConfig(dir string) (*Config, error) {
	// Missing .env is fine; the process environment still applies.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	var cfg *Config

	path, err := FindConfig(dir)

	switch {
	case err == nil:
		cfg, err = LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, ErrConfigNotFound):
		cfg = &Config{}
	default:
		return nil, err
	}

	cfg.applyEnv()

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfig searches for a config file starting from dir and walking up.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for dir := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(dir, name)

			_, err := os.Stat(path)
			if err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}

		dir = parent
	}
}

// LoadConfigFile loads a config from a specific path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the config and wraps failures in ErrInvalidInput.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	return nil
}

// applyEnv overlays connection settings from the environment. Environment
// variables win over file values so deployments can keep credentials out of
// the config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("NEO4J_URI"); v != "" {
		c.Connection.URI = v
	}

	if v := os.Getenv("NEO4J_USERNAME"); v != "" {
		c.Connection.Username = v
	}

	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		c.Connection.Password = v
	}

	if v := os.Getenv("NEO4J_DATABASE"); v != "" {
		c.Connection.Database = v
	}
}
