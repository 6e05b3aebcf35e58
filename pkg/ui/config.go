package ui

import (
	"fmt"

	"github.com/macropower/shelf/pkg/keys"
)

// Config contains TUI-specific configuration.
type Config struct {
	// KeyBinds overrides the default key bindings.
	KeyBinds *KeyBinds `json:"keybinds,omitempty" jsonschema:"title=Key Binds"`
	// Theme is a chroma style name, or one of "auto", "light" or "dark".
	Theme string `json:"theme,omitempty" jsonschema:"title=Theme"`
}

var DefaultConfig = NewConfig()

func NewConfig() *Config {
	c := &Config{}
	c.EnsureDefaults()

	return c
}

func (c *Config) EnsureDefaults() {
	if c.Theme == "" {
		c.Theme = "auto"
	}

	if c.KeyBinds == nil {
		c.KeyBinds = &KeyBinds{}
	}

	c.KeyBinds.EnsureDefaults()
}

func (c *Config) Validate() error {
	err := keys.ValidateBinds(c.KeyBinds.GetKeyBinds()...)
	if err != nil {
		return fmt.Errorf("keybinds: %w", err)
	}

	return nil
}
