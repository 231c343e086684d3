// Package record reads and appends the flat project data file backing a
// business plan. The file is a sequence of `KEY: value` lines mixed with
// free text; completion runs are appended as dated blocks and never
// rewrite earlier content, so the same key may occur multiple times.
// The most recent occurrence is authoritative.
package record

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kdambrauskas/plancheck/internal/errors"
)

// Record is an ordered key/value view of a project data file.
// Keys keep first-seen order; duplicate keys take the latest value.
type Record struct {
	keys   []string
	values map[string]string
}

// New returns an empty record.
func New() *Record {
	return &Record{values: make(map[string]string)}
}

// Set stores a value, preserving first-seen key order.
// A later Set for an existing key overwrites the value in place.
func (r *Record) Set(key, value string) {
	if _, seen := r.values[key]; !seen {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the current value for key and whether the key exists.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key exists with a non-empty value.
func (r *Record) Has(key string) bool {
	v, ok := r.values[key]
	return ok && strings.TrimSpace(v) != ""
}

// Keys returns all keys in first-seen order.
func (r *Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of distinct keys.
func (r *Record) Len() int {
	return len(r.keys)
}

// Context renders the record as `KEY: value` lines, truncated to at most
// maxLen bytes. Used as prompt context for the generation collaborator.
func (r *Record) Context(maxLen int) string {
	var sb strings.Builder
	for _, k := range r.keys {
		line := fmt.Sprintf("%s: %s\n", k, r.values[k])
		if maxLen > 0 && sb.Len()+len(line) > maxLen {
			break
		}
		sb.WriteString(line)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Load reads and parses the data file at path.
// A missing or unreadable file is an IO-category error.
func Load(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError(
			fmt.Sprintf("cannot read data file %s", path), err,
			"check that the file exists and is readable",
		)
	}
	defer f.Close()

	rec := New()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		rec.Set(key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIOError(
			fmt.Sprintf("error reading data file %s", path), err,
		)
	}
	return rec, nil
}

// parseLine extracts a field assignment from one line.
// A field line is `KEY: value` where KEY is a single token of letters,
// digits, underscores, or ampersands. Anything else (prose, completion
// block headers, `Completion Date:` bookkeeping lines) is skipped.
func parseLine(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	if key == "" || !isFieldKey(key) {
		return "", "", false
	}
	return key, strings.TrimSpace(line[idx+1:]), true
}

func isFieldKey(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '&':
		default:
			return false
		}
	}
	return true
}
