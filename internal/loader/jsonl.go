// Package loader reads reservation records from a line-delimited JSON file.
// It is a thin ingestion wrapper: it parses rows into raw column/value maps
// and leaves all validation to the reservation package.
package loader

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// ReadFile parses the JSONL file at path into raw records. Each non-empty
// line must be a JSON object; string values are taken as-is and numeric
// values are stringified, everything else is rejected. Parse failures are
// reported with their 1-based line number so the operator can fix the file.
func ReadFile(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reservations file: %w", err)
	}
	defer f.Close()

	var records []map[string]string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		rec, err := parseLine(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read reservations file: %w", err)
	}
	return records, nil
}

func parseLine(raw []byte) (map[string]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("invalid JSON object: %w", err)
	}
	rec := make(map[string]string, len(obj))
	for k, v := range obj {
		switch val := v.(type) {
		case string:
			rec[k] = val
		case json.Number:
			rec[k] = val.String()
		case bool:
			rec[k] = strconv.FormatBool(val)
		case nil:
			// leave absent so schema validation flags the column
		default:
			return nil, fmt.Errorf("column %q: unsupported value type", k)
		}
	}
	return rec, nil
}
