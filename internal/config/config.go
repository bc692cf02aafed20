// Package config resolves runtime configuration from an optional YAML file, then
// CALLSTATE_* environment variables, then defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Store  StoreConfig  `yaml:"store"`
	Launch LaunchConfig `yaml:"launch"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type StoreConfig struct {
	ThrottleWindow      time.Duration `yaml:"throttle_window"`
	ParticipantCoalesce time.Duration `yaml:"participant_coalesce"`
	JournalCapacity     int           `yaml:"journal_capacity"`
}

// LaunchConfig seeds the composite for the session the server hosts.
type LaunchConfig struct {
	DisplayName             string   `yaml:"display_name"`
	Title                   string   `yaml:"title"`
	Subtitle                string   `yaml:"subtitle"`
	SkipSetup               bool     `yaml:"skip_setup"`
	MicrophoneOn            bool     `yaml:"microphone_on"`
	CameraPermissionGranted bool     `yaml:"camera_permission_granted"`
	AudioPermissionGranted  bool     `yaml:"audio_permission_granted"`
	HiddenButtons           []string `yaml:"hidden_buttons"`
	DisabledButtons         []string `yaml:"disabled_buttons"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
		Store: StoreConfig{
			ThrottleWindow:      500 * time.Millisecond,
			ParticipantCoalesce: 1250 * time.Millisecond,
			JournalCapacity:     256,
		},
	}
}

// Load reads path when it is not empty, falling back to CALLSTATE_CONFIG.
func Load(path string) (Config, error) {
	cfg := Default()

	path = firstNonEmpty(path, os.Getenv("CALLSTATE_CONFIG"))
	if path != "" {
		if err := readFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Addr = envOrDefault("CALLSTATE_ADDR", cfg.Server.Addr)
	cfg.Server.ShutdownTimeout = envOrDefaultMillis("CALLSTATE_SHUTDOWN_TIMEOUT_MS", cfg.Server.ShutdownTimeout)

	cfg.Log.Level = envOrDefault("CALLSTATE_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Pretty = envOrDefaultBool("CALLSTATE_LOG_PRETTY", cfg.Log.Pretty)

	cfg.Store.ThrottleWindow = envOrDefaultMillis("CALLSTATE_THROTTLE_WINDOW_MS", cfg.Store.ThrottleWindow)
	cfg.Store.ParticipantCoalesce = envOrDefaultMillis("CALLSTATE_PARTICIPANT_COALESCE_MS", cfg.Store.ParticipantCoalesce)
	cfg.Store.JournalCapacity = envOrDefaultInt("CALLSTATE_JOURNAL_CAPACITY", cfg.Store.JournalCapacity)

	cfg.Launch.DisplayName = envOrDefault("CALLSTATE_DISPLAY_NAME", cfg.Launch.DisplayName)
	cfg.Launch.SkipSetup = envOrDefaultBool("CALLSTATE_SKIP_SETUP", cfg.Launch.SkipSetup)
	cfg.Launch.MicrophoneOn = envOrDefaultBool("CALLSTATE_MICROPHONE_ON", cfg.Launch.MicrophoneOn)
	cfg.Launch.HiddenButtons = envOrDefaultList("CALLSTATE_HIDDEN_BUTTONS", cfg.Launch.HiddenButtons)
	cfg.Launch.DisabledButtons = envOrDefaultList("CALLSTATE_DISABLED_BUTTONS", cfg.Launch.DisabledButtons)
}

// Validate checks ranges and fills zero values with defaults.
func (c *Config) Validate() error {
	def := Default()

	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = def.Server.Addr
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	if c.Store.ThrottleWindow < 0 {
		return fmt.Errorf("%w: throttle window %s is negative", ErrInvalid, c.Store.ThrottleWindow)
	}
	if c.Store.ParticipantCoalesce < 0 {
		return fmt.Errorf("%w: participant coalesce %s is negative", ErrInvalid, c.Store.ParticipantCoalesce)
	}
	if c.Store.JournalCapacity <= 0 {
		c.Store.JournalCapacity = def.Store.JournalCapacity
	}

	known := domain.ButtonIDs()
	for _, id := range slices.Concat(c.Launch.HiddenButtons, c.Launch.DisabledButtons) {
		if !slices.Contains(known, domain.ButtonID(id)) {
			return fmt.Errorf("%w: unknown button %q", ErrInvalid, id)
		}
	}
	return nil
}

// LogLevel returns the parsed level. Validate has already rejected bad values.
func (c Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func buttonIDs(ids []string) []domain.ButtonID {
	out := make([]domain.ButtonID, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.ButtonID(id))
	}
	return out
}

func (l LaunchConfig) Hidden() []domain.ButtonID   { return buttonIDs(l.HiddenButtons) }
func (l LaunchConfig) Disabled() []domain.ButtonID { return buttonIDs(l.DisabledButtons) }

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func envOrDefault(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrDefaultInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDefaultMillis(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return fallback
	}
	return time.Duration(parsed) * time.Millisecond
}

func envOrDefaultBool(key string, fallback bool) bool {
	value := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func envOrDefaultList(key string, fallback []string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
