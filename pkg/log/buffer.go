package log

import (
	"fmt"
	"io"
	"sync"
)

// Buffer keeps the most recent log entries in memory. It is used while the
// TUI owns the terminal, and flushed to stderr once the program exits.
//
// Each call to [Buffer.Write] is one entry. When the buffer holds its limit,
// the oldest entry is discarded.
type Buffer struct {
	entries [][]byte
	limit   int
	dropped int
	mu      sync.Mutex
}

// NewBuffer creates a [Buffer] holding up to limit entries. A limit of zero
// or less uses 100.
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = 100
	}

	return &Buffer{
		entries: make([][]byte, 0, limit),
		limit:   limit,
	}
}

// Write implements [io.Writer]. The data is copied.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == b.limit {
		copy(b.entries, b.entries[1:])
		b.entries = b.entries[:len(b.entries)-1]
		b.dropped++
	}

	b.entries = append(b.entries, append([]byte(nil), p...))

	return len(p), nil
}

// Len returns the number of entries held.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.entries)
}

// Limit returns the maximum number of entries.
func (b *Buffer) Limit() int {
	return b.limit
}

// Dropped returns the number of entries discarded to make room.
func (b *Buffer) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.dropped
}

// WriteTo writes all entries, oldest first, and empties the buffer. It
// implements [io.WriterTo].
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	b.mu.Lock()
	entries := b.entries
	b.entries = make([][]byte, 0, b.limit)
	b.dropped = 0
	b.mu.Unlock()

	var total int64

	for _, entry := range entries {
		n, err := w.Write(entry)
		total += int64(n)

		if err != nil {
			return total, fmt.Errorf("write entry: %w", err)
		}
	}

	return total, nil
}
