package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"magazine-cms/pkg/logger"
	"magazine-cms/pkg/models"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// ParseResult carries the parsed rows plus how many records were dropped
// because their field count did not match the header.
type ParseResult struct {
	Header  []string
	Rows    []models.Row
	Dropped int
}

// ParseCSV reads a header row followed by records. Quoted cells may hold
// commas, doubled quotes and newlines. Input that a strict RFC 4180 reader
// rejects for stray quotes is rescanned with scanRecords.
func ParseCSV(r io.Reader) (ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ParseResult{}, fmt.Errorf("read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	records, err := readRecords(data)
	if isQuoteError(err) {
		records, err = scanRecords(string(data)), nil
	}
	if err != nil {
		return ParseResult{}, fmt.Errorf("read records: %w", err)
	}
	if len(records) == 0 {
		return ParseResult{}, nil
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	res := ParseResult{Header: header}
	for _, record := range records[1:] {
		if len(record) != len(header) {
			res.Dropped++
			continue
		}
		row := make(models.Row, len(header))
		for i, name := range header {
			row[name] = record[i]
		}
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}

func readRecords(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func isQuoteError(err error) bool {
	var perr *csv.ParseError
	if !errors.As(err, &perr) {
		return false
	}
	return errors.Is(perr.Err, csv.ErrBareQuote) || errors.Is(perr.Err, csv.ErrQuote)
}

// scanRecords splits s in one forward pass. A quote toggles the quoted
// state wherever it appears, and a doubled quote inside quotes is a literal
// quote. Commas and newlines only separate outside quotes. Blank lines are
// skipped and a final record without a newline is kept.
func scanRecords(s string) [][]string {
	var (
		records  [][]string
		record   []string
		field    strings.Builder
		inQuotes bool
	)
	endRecord := func() {
		record = append(record, field.String())
		field.Reset()
		if len(record) > 1 || record[0] != "" {
			records = append(records, record)
		}
		record = nil
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(s) && s[i+1] == '"' {
				field.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == '\r' && i+1 < len(s) && s[i+1] == '\n':
			// CRLF collapses to LF, as encoding/csv does.
		case c == ',' && !inQuotes:
			record = append(record, field.String())
			field.Reset()
		case c == '\n' && !inQuotes:
			endRecord()
		default:
			field.WriteByte(c)
		}
	}
	if field.Len() > 0 || len(record) > 0 {
		endRecord()
	}
	return records
}

// LoadCSV parses the file at path. Failures are logged and produce an
// empty result.
func LoadCSV(path string, log logger.Logger) []models.Row {
	res, err := ParseCSVFile(path)
	if err != nil {
		log.Error("Failed to load CSV", logger.String("path", path), logger.Error(err))
		return []models.Row{}
	}
	if res.Dropped > 0 {
		log.Warn("Dropped malformed CSV rows",
			logger.String("path", path),
			logger.Int("dropped", res.Dropped),
		)
	}
	if res.Rows == nil {
		return []models.Row{}
	}
	return res.Rows
}

// ParseCSVFile parses the file at path and, unlike LoadCSV, returns any
// read or parse error to the caller.
func ParseCSVFile(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, err
	}
	defer f.Close()

	res, err := ParseCSV(f)
	if err != nil {
		return ParseResult{}, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}
