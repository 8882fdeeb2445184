// Package linkresult reads the JSON dump written by the bill/operation
// linker when a konnector runs with LINK_RESULTS_FILENAME set.
package linkresult

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/konnector-tools/billgraph/internal/model"
)

// ErrMissingField is returned when a record lacks a required field.
var ErrMissingField = errors.New("missing required field")

// Load reads and decodes a link results file. The file is read fully and
// closed before decoding starts.
func Load(path string) ([]model.LinkRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading link results: %w", err)
	}
	records, err := Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing link results %s: %w", path, err)
	}
	return records, nil
}

// Read decodes a link results object. Records are returned in document
// order; a key repeated in the document keeps its first position and its
// last value.
func Read(r io.Reader) ([]model.LinkRecord, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading JSON: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	var records []model.LinkRecord
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading JSON: %w", err)
		}
		key, _ := tok.(string)

		var raw rawRecord
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("record %q: %w", key, err)
		}
		rec, err := raw.record(key)
		if err != nil {
			return nil, err
		}

		if i, ok := index[key]; ok {
			records[i] = rec
			continue
		}
		index[key] = len(records)
		records = append(records, rec)
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after link results object")
	}

	return records, nil
}

// SortByBillDate returns a copy of records in ascending order of the raw
// bill date. Records with equal dates keep their relative order.
func SortByBillDate(records []model.LinkRecord) []model.LinkRecord {
	sorted := make([]model.LinkRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Bill.Date < sorted[j].Bill.Date
	})
	return sorted
}
