// Package dataset loads candidate QA records and source-context passages.
package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/banglastudy/dataqc/internal/models"
)

// maxLineBytes bounds a single NDJSON line; generated answers are long but
// not megabytes long.
const maxLineBytes = 4 * 1024 * 1024

// ReadResult is the outcome of reading an NDJSON stream. Malformed lines are
// counted, never fatal — a corrupt line must not abort a whole analysis.
type ReadResult struct {
	Records     []models.Record
	ParseErrors int
	// SentinelsSkipped counts "__type": "metadata" control lines, which
	// upstream generators emit and downstream consumers must ignore.
	SentinelsSkipped int
}

// rawRecord mirrors the historical line format. "context" is an accepted
// alias for "source_text"; both may be absent.
type rawRecord struct {
	Type       string         `json:"__type"`
	Question   *string        `json:"question"`
	Answer     *string        `json:"answer"`
	SourceText string         `json:"source_text"`
	Context    string         `json:"context"`
	Metadata   map[string]any `json:"metadata"`
}

// ReadNDJSON reads newline-delimited JSON records. Blank lines are ignored,
// metadata sentinel lines are skipped and counted, and unparseable lines are
// counted as parse errors. Only a failure of the underlying reader is
// returned as an error.
func ReadNDJSON(r io.Reader) (*ReadResult, error) {
	result := &ReadResult{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var raw rawRecord
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			result.ParseErrors++
			continue
		}
		if raw.Type == "metadata" {
			result.SentinelsSkipped++
			continue
		}
		// question and answer must be present, though they may be empty
		if raw.Question == nil || raw.Answer == nil {
			result.ParseErrors++
			continue
		}

		source := raw.SourceText
		if source == "" {
			source = raw.Context
		}
		result.Records = append(result.Records, models.Record{
			Question:   *raw.Question,
			Answer:     *raw.Answer,
			SourceText: source,
			Metadata:   raw.Metadata,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ndjson: reading stream: %w", err)
	}
	return result, nil
}

// LoadFile reads an NDJSON dataset from disk.
func LoadFile(path string) (*ReadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ndjson: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	res, err := ReadNDJSON(f)
	if err != nil {
		return nil, fmt.Errorf("ndjson: %s: %w", path, err)
	}
	return res, nil
}
