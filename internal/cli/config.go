package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/macropower/shelf/pkg/catalog"
	"github.com/macropower/shelf/pkg/config"
	"github.com/macropower/shelf/pkg/record"
)

func configPath(ra *RootArgs) string {
	if ra.ConfigPath != "" {
		return ra.ConfigPath
	}

	return config.GetPath()
}

// loadConfig reads the configuration at path. A missing file yields the
// default configuration.
func loadConfig(path string, colored bool) (*config.Config, error) {
	cl, err := config.NewLoaderFromFile(path, config.WithColoredErrors(colored))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no config file, using defaults", slog.String("path", path))
		} else {
			slog.Warn("could not read config, using defaults", slog.Any("err", err))
		}

		return config.NewConfig(), nil
	}

	err = cl.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	cfg, err := cl.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return cfg, nil
}

// resolveOrders parses orders, falling back to the configured default sort.
func resolveOrders(orders string, cfg *config.Config) ([]record.Order, error) {
	if orders == "" {
		return cfg.Catalog.Orders(), nil
	}

	parsed, err := record.ParseOrders(orders)
	if err != nil {
		return nil, fmt.Errorf("sort: %w", err)
	}

	return parsed, nil
}

// readRecords loads a seed file. The path "-" reads from in.
func readRecords(in io.Reader, path string) ([]record.Record, error) {
	if path == "-" {
		rs, err := catalog.Decode(in)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return rs, nil
	}

	rs, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return rs, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in an int.
}
