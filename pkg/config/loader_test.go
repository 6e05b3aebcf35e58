package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/shelf/pkg/config"
	"github.com/macropower/shelf/pkg/record"
	"github.com/macropower/shelf/pkg/yaml"
)

func TestNewLoaderFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	valid := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(valid, []byte("apiVersion: "+config.APIVersion+"\nkind: Configuration\n"), 0o600))

	tcs := map[string]struct {
		wantIs error
		path   string
	}{
		"regular file": {path: valid},
		"missing":      {path: filepath.Join(dir, "missing.yaml"), wantIs: fs.ErrNotExist},
		"directory":    {path: dir, wantIs: config.ErrPathIsDirectory},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cl, err := config.NewLoaderFromFile(tc.path)
			if tc.wantIs != nil {
				require.ErrorIs(t, err, tc.wantIs)
				assert.Nil(t, cl)

				return
			}

			require.NoError(t, err)

			c, err := cl.Load()
			require.NoError(t, err)
			assert.Equal(t, config.Kind, c.Kind)
		})
	}
}

func TestLoader_WithoutValidator(t *testing.T) {
	t.Parallel()

	// Unknown fields only fail schema validation.
	input := []byte("apiVersion: " + config.APIVersion + "\nkind: Configuration\ncolour: red\n")

	require.Error(t, config.NewLoaderFromBytes(input).Validate())
	require.NoError(t, config.NewLoaderFromBytes(input, config.WithValidator(nil)).Validate())
}

func TestLoader_Validate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		errMsg  string
		wantErr bool
	}{
		"minimal": {
			input: `apiVersion: shelf.jacobcolvin.com/v1beta1
kind: Configuration
`,
		},
		"full": {
			input: `apiVersion: shelf.jacobcolvin.com/v1beta1
kind: Configuration
ui:
  theme: dracula
  keybinds:
    add:
      description: new record
      keys:
        - code: n
catalog:
  defaultSort: genre,year-
  savePath: books.txt
`,
		},
		"invalid yaml": {
			input: `apiVersion: shelf.jacobcolvin.com/v1beta1
kind: [Configuration
`,
			wantErr: true,
		},
		"wrong api version": {
			input: `apiVersion: example.com/v1
kind: Configuration
`,
			errMsg:  "apiVersion",
			wantErr: true,
		},
		"unknown field": {
			input: `apiVersion: shelf.jacobcolvin.com/v1beta1
kind: Configuration
catalog:
  sortBy: title
`,
			errMsg:  "sortBy",
			wantErr: true,
		},
		"missing kind": {
			input: `apiVersion: shelf.jacobcolvin.com/v1beta1
`,
			errMsg:  "kind",
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := config.NewLoaderFromBytes([]byte(tc.input)).Validate()
			if !tc.wantErr {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)

			var yamlErr *yaml.Error
			require.ErrorAs(t, err, &yamlErr)

			if tc.errMsg != "" {
				assert.Contains(t, err.Error(), tc.errMsg)
			}
		})
	}
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input      string
		wantOrders []record.Order
		wantTheme  string
		wantPath   string
		wantErr    bool
	}{
		"defaults": {
			input: `apiVersion: shelf.jacobcolvin.com/v1beta1
kind: Configuration
`,
			wantOrders: []record.Order{{Key: record.KeyTitle}},
			wantTheme:  "auto",
			wantPath:   "shelf.txt",
		},
		"custom": {
			input: `apiVersion: shelf.jacobcolvin.com/v1beta1
kind: Configuration
ui:
  theme: dark
catalog:
  defaultSort: genre,year-
  savePath: books.txt
`,
			wantOrders: []record.Order{{Key: record.KeyGenre}, {Key: record.KeyYear, Descending: true}},
			wantTheme:  "dark",
			wantPath:   "books.txt",
		},
		"invalid sort": {
			input: `apiVersion: shelf.jacobcolvin.com/v1beta1
kind: Configuration
catalog:
  defaultSort: publisher
`,
			wantErr: true,
		},
		"duplicate key binding": {
			input: `apiVersion: shelf.jacobcolvin.com/v1beta1
kind: Configuration
ui:
  keybinds:
    add:
      description: add
      keys:
        - code: s
`,
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c, err := config.NewLoaderFromBytes([]byte(tc.input)).Load()
			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, c)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantOrders, c.Catalog.Orders())
			assert.Equal(t, tc.wantTheme, c.UI.Theme)
			assert.Equal(t, tc.wantPath, c.Catalog.SavePath)
		})
	}
}
