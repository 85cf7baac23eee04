package simlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Sink receives trial records. The header is written once, before any
// records; Append is bulk by design — runners buffer a whole run and flush
// it in one call.
type Sink interface {
	WriteHeader(header []string) error
	Append(records []Record) error
}

// --- MemorySink: buffers records in memory for tests and aggregation ---

type MemorySink struct {
	header  []string
	records []Record
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) WriteHeader(header []string) error {
	if s.header != nil {
		return fmt.Errorf("header already written")
	}
	s.header = append([]string(nil), header...)
	return nil
}

func (s *MemorySink) Append(records []Record) error {
	s.records = append(s.records, records...)
	return nil
}

func (s *MemorySink) Header() []string {
	return s.header
}

func (s *MemorySink) Records() []Record {
	return s.records
}

// --- CSVSink: appends rows to a CSV writer ---

type CSVSink struct {
	w           *csv.Writer
	closer      io.Closer
	wroteHeader bool
}

// NewCSVSink wraps an io.Writer in a CSV sink.
func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w)}
}

// CreateCSVFile creates (truncating) a CSV log file at path.
func CreateCSVFile(path string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}
	return &CSVSink{w: csv.NewWriter(f), closer: f}, nil
}

func (s *CSVSink) WriteHeader(header []string) error {
	if s.wroteHeader {
		return fmt.Errorf("header already written")
	}
	s.wroteHeader = true
	return s.w.Write(header)
}

func (s *CSVSink) Append(records []Record) error {
	for _, r := range records {
		if err := s.w.Write(r.Row()); err != nil {
			return err
		}
	}
	s.w.Flush()
	return s.w.Error()
}

// Close flushes buffered rows and closes the underlying file, if any.
func (s *CSVSink) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return err
	}
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
