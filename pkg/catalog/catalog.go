package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/macropower/shelf/pkg/record"
	"github.com/macropower/shelf/pkg/sorter"
)

// Catalog is the ordered collection of records for a session.
type Catalog struct {
	records []record.Record
	mu      sync.RWMutex
}

type Opt func(c *Catalog)

// WithRecords seeds the catalog with the given records, in order.
func WithRecords(rs ...record.Record) Opt {
	return func(c *Catalog) {
		c.records = append(c.records, rs...)
	}
}

func New(opts ...Opt) *Catalog {
	c := &Catalog{}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Add validates the input and appends the resulting record. When the input is
// invalid the catalog is left unchanged and the error from
// [record.Input.Parse] is returned.
func (c *Catalog) Add(in record.Input) (record.Record, error) {
	r, err := in.Parse()
	if err != nil {
		return record.Record{}, fmt.Errorf("add record: %w", err)
	}

	c.Append(r)

	return r, nil
}

// Append adds records that are already known to be valid.
func (c *Catalog) Append(rs ...record.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = append(c.records, rs...)
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.records)
}

// Records returns a copy of the records in insertion order.
func (c *Catalog) Records() []record.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.records)
}

// Sorted returns the records ordered by the given orders. The catalog itself
// keeps its insertion order. [ErrEmptyCollection] is returned if there is
// nothing to sort.
func (c *Catalog) Sorted(orders ...record.Order) ([]record.Record, error) {
	snapshot := c.Records()
	if len(snapshot) == 0 {
		return nil, fmt.Errorf("sort: %w", ErrEmptyCollection)
	}

	return sorter.SortBy(snapshot, orders...), nil
}

// WriteTo writes one line per record in insertion order. It implements
// [io.WriterTo].
func (c *Catalog) WriteTo(w io.Writer) (int64, error) {
	return WriteLines(w, c.Records())
}

// Save writes the catalog to path, replacing any existing file.
// [ErrEmptyCollection] is returned without touching the file system when the
// catalog is empty. I/O failures are returned as a [*SaveError].
func (c *Catalog) Save(path string) (int64, error) {
	if c.Len() == 0 {
		return 0, fmt.Errorf("save: %w", ErrEmptyCollection)
	}

	f, err := os.Create(path) //nolint:gosec // G304: Path is chosen by the user.
	if err != nil {
		return 0, &SaveError{Path: path, Err: err}
	}

	n, err := c.WriteTo(f)
	if err != nil {
		_ = f.Close()

		return n, &SaveError{Path: path, Err: err}
	}

	err = f.Close()
	if err != nil {
		return n, &SaveError{Path: path, Err: err}
	}

	return n, nil
}

// Lines returns the canonical representation of each record.
func Lines(rs []record.Record) []string {
	lines := make([]string, 0, len(rs))
	for _, r := range rs {
		lines = append(lines, r.String())
	}

	return lines
}

// WriteLines writes the canonical representation of each record followed by
// a newline.
func WriteLines(w io.Writer, rs []record.Record) (int64, error) {
	bw := bufio.NewWriter(w)

	var total int64

	for _, r := range rs {
		n, err := fmt.Fprintln(bw, r.String())
		total += int64(n)

		if err != nil {
			return total, fmt.Errorf("write record: %w", err)
		}
	}

	err := bw.Flush()
	if err != nil {
		return total, fmt.Errorf("flush: %w", err)
	}

	return total, nil
}
