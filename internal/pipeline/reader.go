package pipeline

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
)

// recordSource streams one source file as delimited records. AddressBase
// extracts are ISO 8859-1, not UTF-8, so every byte is decoded through the
// charmap before the CSV split.
type recordSource struct {
	f      *os.File
	reader *csv.Reader
	line   int
}

func openRecordSource(path string) (*recordSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(bufio.NewReaderSize(f, 64*1024)))
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	return &recordSource{f: f, reader: reader}, nil
}

// Next returns the fields of the next record and its line number. Malformed
// lines surface as *csv.ParseError; the source stays usable, so callers can
// count the line as an error and keep reading.
func (s *recordSource) Next() (fields []string, line int, err error) {
	record, err := s.reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, s.line, io.EOF
	}

	s.line++
	if err != nil {
		return nil, s.line, err
	}

	return record, s.line, nil
}

func (s *recordSource) Close() error {
	return s.f.Close()
}
