package config

import (
	"fmt"
	"strings"
)

// Config is the on-disk skill configuration (YAML or JSON).
type Config struct {
	Skill   SkillConfig   `json:"skill"`
	Logging LoggingConfig `json:"logging,omitempty"`
	Dialog  DialogConfig  `json:"dialog,omitempty"`
}

// SkillConfig identifies the skill towards the dispatcher. ID is the only
// required field in the whole file.
type SkillConfig struct {
	ID      string `json:"id"`
	Version string `json:"version,omitempty"`

	// Locales the skill answers in, e.g. ["de", "en"]. Empty means "any".
	Locales []string `json:"locales,omitempty"`
}

// LoggingConfig mirrors pkg/logx.Config plus the dispatch warn throttle.
type LoggingConfig struct {
	Level   string `json:"level,omitempty"`
	Console *bool  `json:"console,omitempty"`

	File FileConfig `json:"file,omitempty"`

	// WarnRatePerSec throttles repeated dispatch warnings (unknown intent,
	// invalid task). Zero picks the default.
	WarnRatePerSec int `json:"warn_rate_per_sec,omitempty"`
}

type FileConfig struct {
	Enabled bool   `json:"enabled,omitempty"`
	Path    string `json:"path,omitempty"`
}

// DialogConfig tunes dialog behavior.
type DialogConfig struct {
	// MaxReprompts bounds how often an ASK response re-asks before falling
	// back to its stop text. 0 means unlimited.
	MaxReprompts int `json:"max_reprompts,omitempty"`
}

const (
	defaultLogLevel       = "INFO"
	defaultWarnRatePerSec = 5
)

// ApplyDefaults fills omitted fields in place.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Console == nil {
		on := true
		c.Logging.Console = &on
	}
	if c.Logging.WarnRatePerSec <= 0 {
		c.Logging.WarnRatePerSec = defaultWarnRatePerSec
	}
}

// Validate rejects configs the SDK cannot run with. Called on initial load
// and before committing a hot reload.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Skill.ID) == "" {
		return fmt.Errorf("skill.id: required")
	}
	for i, loc := range c.Skill.Locales {
		if strings.TrimSpace(loc) == "" {
			return fmt.Errorf("skill.locales[%d]: empty locale", i)
		}
	}
	if c.Dialog.MaxReprompts < 0 {
		return fmt.Errorf("dialog.max_reprompts: must be >= 0")
	}
	if c.Logging.WarnRatePerSec < 0 {
		return fmt.Errorf("logging.warn_rate_per_sec: must be >= 0")
	}
	return nil
}
