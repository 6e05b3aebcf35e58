package catalog

import (
	"fmt"

	"github.com/macropower/shelf/pkg/record"
)

// Config contains catalog configuration.
type Config struct {
	// DefaultSort is the initial sort order, as a comma separated list of
	// field names with an optional "-" suffix for descending order.
	DefaultSort string `json:"defaultSort,omitempty" jsonschema:"title=Default Sort"`
	// SavePath is the file suggested when saving.
	SavePath string `json:"savePath,omitempty" jsonschema:"title=Save Path"`
}

var DefaultConfig = NewConfig()

func NewConfig() *Config {
	c := &Config{}
	c.EnsureDefaults()

	return c
}

func (c *Config) EnsureDefaults() {
	if c.DefaultSort == "" {
		c.DefaultSort = record.KeyTitle.String()
	}
	if c.SavePath == "" {
		c.SavePath = "shelf.txt"
	}
}

func (c *Config) Validate() error {
	_, err := record.ParseOrders(c.DefaultSort)
	if err != nil {
		return fmt.Errorf("defaultSort: %w", err)
	}

	return nil
}

// Orders returns the parsed [Config.DefaultSort].
func (c *Config) Orders() []record.Order {
	orders, err := record.ParseOrders(c.DefaultSort)
	if err != nil {
		return []record.Order{{Key: record.KeyTitle}}
	}

	return orders
}
