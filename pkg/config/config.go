package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/invopop/jsonschema"

	"github.com/macropower/shelf/pkg/catalog"
	"github.com/macropower/shelf/pkg/schema"
	"github.com/macropower/shelf/pkg/ui"
	"github.com/macropower/shelf/pkg/yaml"
)

const (
	APIVersion = "shelf.jacobcolvin.com/v1beta1"
	Kind       = "Configuration"

	// SchemaFile is the name of the JSON schema written next to the
	// configuration file.
	SchemaFile = "config.v1beta1.json"
	SchemaURL  = "https://shelf.jacobcolvin.com/" + SchemaFile

	cmdDir = "shelf"
)

var (
	ValidAPIVersions = []string{APIVersion}
	ValidKinds       = []string{Kind}

	ErrPathIsDirectory  = errors.New("path is a directory")
	ErrUnknownFileState = errors.New("unknown file state")

	SchemaJSON       = schema.NewGenerator(&Config{}, SchemaURL).MustGenerate()
	DefaultValidator = yaml.MustNewValidator(SchemaURL, SchemaJSON)
)

//nolint:recvcheck // Must satisfy the jsonschema interface.
type Config struct {
	// UI configures the terminal interface.
	UI *ui.Config `json:"ui,omitempty" jsonschema:"title=UI"`
	// Catalog configures sorting and saving.
	Catalog *catalog.Config `json:"catalog,omitempty" jsonschema:"title=Catalog"`
	// APIVersion specifies the API version for this configuration.
	APIVersion string `json:"apiVersion" jsonschema:"title=API Version"`
	// Kind defines the type of configuration.
	Kind string `json:"kind" jsonschema:"title=Kind"`
}

func NewConfig() *Config {
	c := &Config{
		APIVersion: APIVersion,
		Kind:       Kind,
	}
	c.EnsureDefaults()

	return c
}

func (c *Config) EnsureDefaults() {
	if c.UI == nil {
		c.UI = ui.NewConfig()
	} else {
		c.UI.EnsureDefaults()
	}

	if c.Catalog == nil {
		c.Catalog = catalog.NewConfig()
	} else {
		c.Catalog.EnsureDefaults()
	}
}

// Validate runs the checks that the JSON schema cannot express.
func (c *Config) Validate() error {
	err := c.UI.Validate()
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	err = c.Catalog.Validate()
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	return nil
}

// JSONSchemaExtend restricts apiVersion and kind to the supported values.
func (c Config) JSONSchemaExtend(jss *jsonschema.Schema) {
	restrictToConsts(jss, "apiVersion", "API Version", ValidAPIVersions)
	restrictToConsts(jss, "kind", "Kind", ValidKinds)
}

func restrictToConsts(jss *jsonschema.Schema, prop, title string, values []string) {
	ps, ok := jss.Properties.Get(prop)
	if !ok {
		panic(fmt.Sprintf("property %q not found in schema", prop))
	}

	for _, v := range values {
		ps.OneOf = append(ps.OneOf, &jsonschema.Schema{Type: "string", Const: v, Title: title})
	}

	jss.Properties.Set(prop, ps)
}

func (c *Config) MarshalYAML() ([]byte, error) {
	b, err := yaml.Marshal(*c)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}

	return b, nil
}

// WriteDefaultConfig writes the default configuration to path, and its JSON
// schema to [SchemaFile] in the same directory. An existing configuration is
// kept unless force is set, in which case it is renamed to
// "<name>.<unix nanos>.old" first.
func WriteDefaultConfig(path string, force bool) error {
	exists, err := regularFileExists(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)

	err = os.MkdirAll(dir, 0o700)
	if err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	if exists && force {
		err = backup(path)
		if err != nil {
			return err
		}

		exists = false
	}

	if exists {
		slog.Debug("keep existing configuration", slog.String("path", path))
	} else {
		slog.Info("write default configuration", slog.String("path", path))

		b, err := NewConfig().MarshalYAML()
		if err != nil {
			return err
		}

		err = os.WriteFile(path, b, 0o600)
		if err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
	}

	err = os.WriteFile(filepath.Join(dir, SchemaFile), SchemaJSON, 0o600)
	if err != nil {
		return fmt.Errorf("write schema file: %w", err)
	}

	return nil
}

func regularFileExists(path string) (bool, error) {
	fi, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("stat %s: %w", path, err)
	case fi.IsDir():
		return false, fmt.Errorf("%s: %w", path, ErrPathIsDirectory)
	case !fi.Mode().IsRegular():
		return false, fmt.Errorf("%s: %w", path, ErrUnknownFileState)
	}

	return true, nil
}

func backup(path string) error {
	dst := fmt.Sprintf("%s.%d.old", path, time.Now().UnixNano())
	slog.Info("back up existing configuration", slog.String("path", dst))

	err := os.Rename(path, dst)
	if err != nil {
		return fmt.Errorf("back up config file: %w", err)
	}

	return nil
}

// GetPath returns the configuration path: $XDG_CONFIG_HOME/shelf/config.yaml,
// falling back to ~/.config and finally the temp directory.
func GetPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			base = os.TempDir()
			slog.Warn("cannot determine config directory, using temp directory",
				slog.String("path", base),
				slog.Any("error", err),
			)
		} else {
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, cmdDir, "config.yaml")
}
