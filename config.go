package brailletypo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	defaults "github.com/Paranoid-AF/brailletypo/default"
)

// Config represents the user's configuration.
type Config struct {
	Version  int            `json:"version"`
	Spelling SpellingConfig `json:"spelling"`
	Session  SessionConfig  `json:"session"`
	Features FeatureConfig  `json:"features"`
}

// SpellingConfig holds settings for the spell checker.
type SpellingConfig struct {
	// DictionaryPath points at a TOML dictionary. Empty uses the embedded one.
	DictionaryPath  string `json:"dictionary_path,omitempty"`
	MaxCandidates   int    `json:"max_candidates,omitempty"`
	CacheTTLMinutes int    `json:"cache_ttl_minutes,omitempty"`
}

// SessionConfig holds settings for daemon-side correction sessions.
type SessionConfig struct {
	IdleTimeoutMinutes int `json:"idle_timeout_minutes,omitempty"`
}

// FeatureConfig holds experimental Braille keyboard toggles. Nil means enabled.
type FeatureConfig struct {
	HoldAndSwipeGesture       *bool `json:"hold_and_swipe_gesture,omitempty"`
	SelectCurrentToStartOrEnd *bool `json:"select_current_to_start_or_end,omitempty"`
}

// ConfigDir returns the config directory path.
// Resolution order: $BRAILLETYPO_CONFIG_DIR > $XDG_CONFIG_HOME/brailletypo > ~/.config/brailletypo
func ConfigDir() string {
	if dir := os.Getenv("BRAILLETYPO_CONFIG_DIR"); dir != "" {
		return dir
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "brailletypo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("/tmp", "brailletypo-config")
	}
	return filepath.Join(home, ".config", "brailletypo")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// DefaultConfig returns the default configuration from the embedded default_config.json.
func DefaultConfig() *Config {
	var cfg Config
	if err := json.Unmarshal(defaults.DefaultConfigJSON, &cfg); err != nil {
		panic("brailletypo: invalid embedded default_config.json: " + err.Error())
	}
	return &cfg
}

// LoadConfig loads config from disk or returns defaults if not found.
func LoadConfig() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if cfg.Version == 0 {
		cfg.Version = defaults.Version
	}
	if cfg.Spelling.MaxCandidates == 0 {
		cfg.Spelling.MaxCandidates = defaults.Spelling.MaxCandidates
	}
	if cfg.Spelling.CacheTTLMinutes == 0 {
		cfg.Spelling.CacheTTLMinutes = defaults.Spelling.CacheTTLMinutes
	}
	if cfg.Session.IdleTimeoutMinutes == 0 {
		cfg.Session.IdleTimeoutMinutes = defaults.Session.IdleTimeoutMinutes
	}
	if cfg.Features.HoldAndSwipeGesture == nil {
		cfg.Features.HoldAndSwipeGesture = defaults.Features.HoldAndSwipeGesture
	}
	if cfg.Features.SelectCurrentToStartOrEnd == nil {
		cfg.Features.SelectCurrentToStartOrEnd = defaults.Features.SelectCurrentToStartOrEnd
	}

	return &cfg, nil
}

// ValidateConfig checks configuration for potential issues and returns warnings.
func ValidateConfig(cfg *Config) []string {
	var warnings []string
	if cfg == nil {
		return warnings
	}
	if path := ResolveDictionaryPath(cfg); path != "" {
		if _, err := os.Stat(path); err != nil {
			warnings = append(warnings, "dictionary_path "+path+" is not readable; the embedded dictionary will be used")
		}
	}
	if cfg.Spelling.MaxCandidates < 0 {
		warnings = append(warnings, "max_candidates is negative; the default will be used")
	}
	if cfg.Session.IdleTimeoutMinutes < 0 {
		warnings = append(warnings, "idle_timeout_minutes is negative; the default will be used")
	}
	return warnings
}

// ResolveDictionaryPath returns the dictionary file path.
// Priority: $BRAILLETYPO_DICTIONARY env > config value.
func ResolveDictionaryPath(cfg *Config) string {
	if path := os.Getenv("BRAILLETYPO_DICTIONARY"); path != "" {
		return path
	}
	if cfg != nil {
		return cfg.Spelling.DictionaryPath
	}
	return ""
}

// ResolveMaxCandidates returns the candidate limit per misspelling.
// Priority: $BRAILLETYPO_MAX_CANDIDATES env > config value.
func ResolveMaxCandidates(cfg *Config) int {
	if v := os.Getenv("BRAILLETYPO_MAX_CANDIDATES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	if cfg != nil {
		return cfg.Spelling.MaxCandidates
	}
	return 0
}

// CacheTTL returns how long spelling lookups are memoised.
func CacheTTL(cfg *Config) time.Duration {
	if cfg == nil || cfg.Spelling.CacheTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(cfg.Spelling.CacheTTLMinutes) * time.Minute
}

// SessionIdleTimeout returns how long an untouched session survives.
func SessionIdleTimeout(cfg *Config) time.Duration {
	if cfg == nil || cfg.Session.IdleTimeoutMinutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(cfg.Session.IdleTimeoutMinutes) * time.Minute
}
