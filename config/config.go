package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"dbcheck/internal/core/domain"

	"github.com/spf13/viper"
)

// URIEnvKey is the environment variable holding the connection URI.
const URIEnvKey = domain.URIEnvKey

// EnvPrefix prefixes every other environment variable: DBCHECK_LOG_LEVEL etc.
const EnvPrefix = "DBCHECK"

// DefaultEnvFiles are read from the working directory when no env file is
// given. Earlier files win over later ones.
var DefaultEnvFiles = []string{".env.local", ".env"}

// Config holds all dbcheck configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Report   ReportConfig   `mapstructure:"report"`
	Log      LogConfig      `mapstructure:"log"`

	// URISource names where the URI came from: "environment", an env file
	// path, "config file", or "" when unset.
	URISource string `mapstructure:"-"`
}

type DatabaseConfig struct {
	URI                    string        `mapstructure:"uri"`
	ConnectTimeout         time.Duration `mapstructure:"connect_timeout"`
	ServerSelectionTimeout time.Duration `mapstructure:"server_selection_timeout"`
}

type ReportConfig struct {
	Limit int  `mapstructure:"limit"` // databases listed before "... and N more"
	Sort  bool `mapstructure:"sort"`  // order by name before truncating
	Color bool `mapstructure:"color"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error, off
	Pretty bool   `mapstructure:"pretty"` // human-readable output
}

// Connection converts the loaded settings into the diagnostic input.
func (c *Config) Connection() domain.ConnectionConfig {
	return domain.ConnectionConfig{
		URI:                    strings.TrimSpace(c.Database.URI),
		ConnectTimeout:         c.Database.ConnectTimeout,
		ServerSelectionTimeout: c.Database.ServerSelectionTimeout,
		DisplayLimit:           c.Report.Limit,
		SortDatabases:          c.Report.Sort,
	}
}

// Options control where Load looks. Environ is the process environment
// snapshot; Load never reads os.Getenv itself.
type Options struct {
	ConfigFile string   // YAML file; empty searches dbcheck.yaml in Dir and Dir/config
	EnvFile    string   // KEY=VALUE file; empty tries DefaultEnvFiles in Dir
	Dir        string   // working directory, defaults to "."
	Environ    []string // usually os.Environ()
}

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"database.uri":                      URIEnvKey,
	"database.connect_timeout":          EnvPrefix + "_CONNECT_TIMEOUT",
	"database.server_selection_timeout": EnvPrefix + "_SERVER_SELECTION_TIMEOUT",
	"report.limit":                      EnvPrefix + "_DISPLAY_LIMIT",
	"report.sort":                       EnvPrefix + "_SORT",
	"report.color":                      EnvPrefix + "_COLOR",
	"log.level":                         EnvPrefix + "_LOG_LEVEL",
	"log.pretty":                        EnvPrefix + "_LOG_PRETTY",
}

// Load reads configuration from defaults, an optional YAML file, optional env
// files and the given process environment, in increasing precedence.
func Load(opts Options) (*Config, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	v := viper.New()

	// Defaults
	v.SetDefault("database.uri", "")
	v.SetDefault("database.connect_timeout", domain.DefaultConnectTimeout)
	v.SetDefault("database.server_selection_timeout", domain.DefaultServerSelectionTimeout)
	v.SetDefault("report.limit", domain.DefaultDisplayLimit)
	v.SetDefault("report.sort", false)
	v.SetDefault("report.color", true)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", false)

	// File config
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("dbcheck")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		v.AddConfigPath(filepath.Join(dir, "config"))
	}

	// Read config file (optional, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	uriSource := ""
	if v.InConfig("database.uri") && v.GetString("database.uri") != "" {
		uriSource = "config file"
	}

	// Env files, then the process environment on top.
	envFiles := DefaultEnvFiles
	if opts.EnvFile != "" {
		envFiles = []string{opts.EnvFile}
	}
	var fileVars []map[string]string
	for _, name := range envFiles {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, name)
		}
		vars, found, err := readEnvFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading env file %s: %w", path, err)
		}
		if !found {
			if opts.EnvFile != "" {
				return nil, fmt.Errorf("env file %s not found", path)
			}
			continue
		}
		if _, ok := vars[URIEnvKey]; ok && !hasURI(fileVars) {
			uriSource = name
		}
		fileVars = append(fileVars, vars)
	}

	process := ParseEnviron(opts.Environ)
	if process[URIEnvKey] != "" {
		uriSource = "environment"
	}

	env := mergeEnv(process, fileVars...)
	for key, name := range envBindings {
		if value, ok := env[name]; ok {
			v.Set(key, value)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if strings.TrimSpace(cfg.Database.URI) == "" {
		uriSource = ""
	}
	cfg.URISource = uriSource

	return &cfg, nil
}

func hasURI(files []map[string]string) bool {
	for _, vars := range files {
		if _, ok := vars[URIEnvKey]; ok {
			return true
		}
	}
	return false
}
