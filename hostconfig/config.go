package hostconfig

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/c360/cardkit/errors"
)

// ShowCardMode controls how a host presents the card revealed by a
// ShowCard action.
type ShowCardMode string

const (
	// ShowCardInline reveals the nested card in place, under the button.
	ShowCardInline ShowCardMode = "inline"
	// ShowCardPopup reveals the nested card in a host popup surface.
	ShowCardPopup ShowCardMode = "popup"
)

// Config holds the host-level options consulted during validation,
// rendering, and action dispatch. All fields are read-only from the
// library's perspective; hosts set them before parse/render.
//
// The zero value is not usable; construct with Default() and adjust.
type Config struct {
	// SupportedVersion is the highest card schema version the host
	// renders, as a "<major>.<minor>" string. Cards declaring a higher
	// minVersion short-circuit to fallback text.
	SupportedVersion string `json:"supportedVersion" yaml:"supported_version"`

	// SupportsInteractivity enables inputs and actions. When false,
	// validation flags any interactive content.
	SupportsInteractivity bool `json:"supportsInteractivity" yaml:"supports_interactivity"`

	// SupportedElementTypes is an allow-list of element type tags.
	// Empty means all registered types are allowed.
	SupportedElementTypes []string `json:"supportedElementTypes" yaml:"supported_element_types"`

	// SupportedActionTypes is an allow-list of action type tags.
	// Empty means all registered types are allowed.
	SupportedActionTypes []string `json:"supportedActionTypes" yaml:"supported_action_types"`

	// MaxActions caps the number of actions in any one action collection.
	// Zero or negative means unlimited.
	MaxActions int `json:"maxActions" yaml:"max_actions"`

	// DefaultTextColor is the host's default text color as a #RRGGBB hex
	// string, handed to renderers for unstyled text.
	DefaultTextColor string `json:"defaultTextColor" yaml:"default_text_color"`

	// ShowCardActionMode selects inline or popup presentation for
	// revealed cards.
	ShowCardActionMode ShowCardMode `json:"showCardActionMode" yaml:"show_card_action_mode"`
}

// Default returns the baseline host configuration: version 1.0,
// interactivity on, no allow-list restrictions, five actions per
// collection, inline show-card presentation.
func Default() *Config {
	return &Config{
		SupportedVersion:      "1.0",
		SupportsInteractivity: true,
		MaxActions:            5,
		DefaultTextColor:      "#FF000000",
		ShowCardActionMode:    ShowCardInline,
	}
}

// Validate checks the configuration for internal consistency.
// It implements the Validatable contract used by the loaders.
func (c *Config) Validate() error {
	if c.SupportedVersion == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate", "supported version check")
	}

	switch c.ShowCardActionMode {
	case ShowCardInline, ShowCardPopup, "":
	default:
		return errors.WrapInvalid(
			fmt.Errorf("unknown show-card mode %q", c.ShowCardActionMode),
			"Config", "Validate", "show-card mode check")
	}

	for _, tag := range c.SupportedElementTypes {
		if tag == "" {
			return errors.WrapInvalid(errors.ErrEmptyTag, "Config", "Validate", "element allow-list check")
		}
	}
	for _, tag := range c.SupportedActionTypes {
		if tag == "" {
			return errors.WrapInvalid(errors.ErrEmptyTag, "Config", "Validate", "action allow-list check")
		}
	}

	return nil
}

// ElementAllowed reports whether an element type tag passes the host
// allow-list. An empty allow-list admits every registered type.
func (c *Config) ElementAllowed(tag string) bool {
	return allowed(c.SupportedElementTypes, tag)
}

// ActionAllowed reports whether an action type tag passes the host
// allow-list. An empty allow-list admits every registered type.
func (c *Config) ActionAllowed(tag string) bool {
	return allowed(c.SupportedActionTypes, tag)
}

func allowed(list []string, tag string) bool {
	if len(list) == 0 {
		return true
	}
	for _, t := range list {
		if t == tag {
			return true
		}
	}
	return false
}

// LoadJSON parses host configuration from JSON, starting from defaults
// so absent fields keep their baseline values.
func LoadJSON(data []byte) (*Config, error) {
	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapInvalid(err, "Config", "LoadJSON", "JSON unmarshaling")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "Config", "LoadJSON", "config validation")
	}

	return cfg, nil
}

// LoadYAML parses host configuration from YAML, starting from defaults
// so absent fields keep their baseline values.
func LoadYAML(data []byte) (*Config, error) {
	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapInvalid(err, "Config", "LoadYAML", "YAML unmarshaling")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "Config", "LoadYAML", "config validation")
	}

	return cfg, nil
}

// LogValue lets Config participate in structured logging without
// dumping allow-lists at every call site.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("supported_version", c.SupportedVersion),
		slog.Bool("interactivity", c.SupportsInteractivity),
		slog.Int("max_actions", c.MaxActions),
		slog.String("show_card_mode", string(c.ShowCardActionMode)),
	)
}
