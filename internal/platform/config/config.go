package config

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix = "CRIADORLP"

	defaultPort          = "8080"
	defaultReadTimeout   = 15 * time.Second
	defaultWriteTimeout  = 30 * time.Second
	defaultIdleTimeout   = 120 * time.Second
	defaultEnvironment   = "local"
	defaultTemplatesDir  = "templates"
	defaultPublicDir     = "public"
	defaultStorePath     = "data/criadorlp.db"
	defaultSessionTTL    = 2 * time.Hour
	defaultExportDir     = "exports"
	defaultLogLevel      = "info"
	defaultExportSink    = SinkNone
	defaultExportOutline = true
)

// Export sinks.
const (
	SinkNone = "none"
	SinkDir  = "dir"
	SinkGCS  = "gcs"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server  ServerConfig
	App     AppConfig
	Store   StoreConfig
	Session SessionConfig
	Editor  EditorConfig
	Export  ExportConfig
	Log     LogConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// AppConfig holds environment and file locations.
type AppConfig struct {
	Env          string
	Dev          bool
	TemplatesDir string
	PublicDir    string
}

// StoreConfig points at the project database. ":memory:" keeps it in RAM.
type StoreConfig struct {
	Path string
}

// SessionConfig holds the cookie keys. Empty keys are generated at startup in local mode.
type SessionConfig struct {
	HashKey  string
	BlockKey string
}

type EditorConfig struct {
	SessionTTL time.Duration
}

// ExportConfig selects where packaged archives are kept.
type ExportConfig struct {
	Sink    string
	Dir     string
	Bucket  string
	Outline bool
	// Endpoint points the GCS client at an emulator and disables authentication.
	Endpoint        string
	CredentialsFile string
}

type LogConfig struct {
	Level string
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	configFile   string
	envMap       map[string]string
	useSystemEnv bool
}

// WithConfigFile reads a YAML file before applying environment overrides.
func WithConfigFile(path string) Option {
	return func(o *loaderOptions) {
		o.configFile = strings.TrimSpace(path)
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

var defaults = map[string]any{
	"server.port":          defaultPort,
	"server.read_timeout":  defaultReadTimeout,
	"server.write_timeout": defaultWriteTimeout,
	"server.idle_timeout":  defaultIdleTimeout,
	"app.env":              defaultEnvironment,
	"app.dev":              false,
	"app.templates_dir":    defaultTemplatesDir,
	"app.public_dir":       defaultPublicDir,
	"store.path":           defaultStorePath,
	"session.hash_key":     "",
	"session.block_key":    "",
	"editor.session_ttl":   defaultSessionTTL,
	"export.sink":          defaultExportSink,
	"export.dir":           defaultExportDir,
	"export.bucket":        "",
	"export.outline":       defaultExportOutline,
	"export.endpoint":      "",
	"export.credentials":   "",
	"log.level":            defaultLogLevel,
}

// EnvName is the environment variable read for key, e.g. CRIADORLP_SERVER_PORT.
func EnvName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Load assembles the configuration from defaults, an optional YAML file and environment
// variables, in increasing order of precedence.
func Load(ctx context.Context, opts ...Option) (Config, error) {
	if err := ctx.Err(); err != nil {
		return Config{}, err
	}
	options := loaderOptions{useSystemEnv: true}
	for _, opt := range opts {
		opt(&options)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if options.configFile != "" {
		v.SetConfigFile(options.configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", options.configFile, err)
		}
	}

	if options.useSystemEnv {
		for key := range defaults {
			names := []string{EnvName(key)}
			if key == "log.level" {
				names = append(names, "LOG_LEVEL")
			}
			if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
				return Config{}, fmt.Errorf("config: bind %s: %w", key, err)
			}
		}
	}
	for key := range defaults {
		if value, ok := options.envMap[EnvName(key)]; ok && value != "" {
			v.Set(key, value)
		}
	}

	duration := func(key string) time.Duration {
		d, err := parseDuration(v.Get(key))
		if err != nil {
			return 0
		}
		return d
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         strings.TrimSpace(v.GetString("server.port")),
			ReadTimeout:  duration("server.read_timeout"),
			WriteTimeout: duration("server.write_timeout"),
			IdleTimeout:  duration("server.idle_timeout"),
		},
		App: AppConfig{
			Env:          strings.ToLower(strings.TrimSpace(v.GetString("app.env"))),
			Dev:          v.GetBool("app.dev"),
			TemplatesDir: strings.TrimSpace(v.GetString("app.templates_dir")),
			PublicDir:    strings.TrimSpace(v.GetString("app.public_dir")),
		},
		Store: StoreConfig{
			Path: strings.TrimSpace(v.GetString("store.path")),
		},
		Session: SessionConfig{
			HashKey:  v.GetString("session.hash_key"),
			BlockKey: v.GetString("session.block_key"),
		},
		Editor: EditorConfig{
			SessionTTL: duration("editor.session_ttl"),
		},
		Export: ExportConfig{
			Sink:    strings.ToLower(strings.TrimSpace(v.GetString("export.sink"))),
			Dir:     strings.TrimSpace(v.GetString("export.dir")),
			Bucket:  strings.TrimSpace(v.GetString("export.bucket")),
			Outline: v.GetBool("export.outline"),

			Endpoint:        strings.TrimSpace(v.GetString("export.endpoint")),
			CredentialsFile: strings.TrimSpace(v.GetString("export.credentials")),
		},
		Log: LogConfig{
			Level: strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsLocal reports whether the app runs on a developer machine.
func (c Config) IsLocal() bool {
	return c.App.Env == "" || c.App.Env == defaultEnvironment
}

func parseDuration(raw any) (time.Duration, error) {
	switch val := raw.(type) {
	case time.Duration:
		return val, nil
	case int:
		return time.Duration(val) * time.Second, nil
	case string:
		val = strings.TrimSpace(val)
		if n, err := strconv.Atoi(val); err == nil {
			return time.Duration(n) * time.Second, nil
		}
		return time.ParseDuration(val)
	}
	return 0, errors.New("unsupported duration")
}

func validateConfig(cfg Config) error {
	var missing []string

	if port, err := strconv.Atoi(cfg.Server.Port); err != nil || port <= 0 || port > 65535 {
		missing = append(missing, "Server.Port")
	}
	if cfg.Server.ReadTimeout <= 0 {
		missing = append(missing, "Server.ReadTimeout")
	}
	if cfg.Server.WriteTimeout <= 0 {
		missing = append(missing, "Server.WriteTimeout")
	}
	if cfg.Server.IdleTimeout <= 0 {
		missing = append(missing, "Server.IdleTimeout")
	}
	if cfg.App.TemplatesDir == "" {
		missing = append(missing, "App.TemplatesDir")
	}
	if cfg.App.PublicDir == "" {
		missing = append(missing, "App.PublicDir")
	}
	if cfg.Store.Path == "" {
		missing = append(missing, "Store.Path")
	}
	if !cfg.IsLocal() && len(cfg.Session.HashKey) < 32 {
		missing = append(missing, "Session.HashKey")
	}
	if n := len(cfg.Session.BlockKey); n != 0 && n != 16 && n != 24 && n != 32 {
		missing = append(missing, "Session.BlockKey")
	}
	if cfg.Editor.SessionTTL <= 0 {
		missing = append(missing, "Editor.SessionTTL")
	}
	switch cfg.Export.Sink {
	case SinkNone:
	case SinkDir:
		if cfg.Export.Dir == "" {
			missing = append(missing, "Export.Dir")
		}
	case SinkGCS:
		if cfg.Export.Bucket == "" {
			missing = append(missing, "Export.Bucket")
		}
	default:
		missing = append(missing, "Export.Sink")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		missing = append(missing, "Log.Level")
	}

	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}
