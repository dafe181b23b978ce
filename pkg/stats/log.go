package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/multierr"
)

// Header is the first row of the CSV export.
var Header = []string{"generation", "live_cells", "entropy"}

// Log is an append-only sequence of records in generation order.
type Log struct {
	records []Record
}

// Append adds a record to the end of the log.
func (l *Log) Append(r Record) { l.records = append(l.records, r) }

// Len returns the number of records.
func (l *Log) Len() int { return len(l.records) }

// Records returns a copy of the recorded entries.
func (l *Log) Records() []Record { return append([]Record(nil), l.records...) }

// Last returns the most recent record, if any.
func (l *Log) Last() (Record, bool) {
	if len(l.records) == 0 {
		return Record{}, false
	}
	return l.records[len(l.records)-1], true
}

// WriteCSV writes the header followed by one row per record.
func (l *Log) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write stats header: %w", err)
	}
	for _, r := range l.records {
		row := []string{
			strconv.Itoa(r.Generation),
			strconv.Itoa(r.LiveCells),
			strconv.FormatFloat(r.Entropy, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write stats row %d: %w", r.Generation, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveFile writes the CSV export to path, replacing any existing file.
func (l *Log) SaveFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create stats file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return l.WriteCSV(f)
}
