package collector

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"SignalScope/internal/model"
)

// CSVFetcher reads bars from a local CSV file with columns
// time,open,high,low,close,volume. The time column accepts RFC 3339 or a
// plain 2006-01-02 date; a header row is skipped automatically.
type CSVFetcher struct {
	Path string
}

func NewCSVFetcher(path string) *CSVFetcher { return &CSVFetcher{Path: path} }

func (f *CSVFetcher) Name() string { return "csv" }

// FetchBars reads the whole file and returns the trailing limit bars.
// The symbol argument is ignored: a CSV file holds a single instrument.
func (f *CSVFetcher) FetchBars(_ string, limit int) ([]model.Bar, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 6
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	bars := make([]model.Bar, 0, len(records))
	for i, rec := range records {
		bar, err := parseRecord(rec)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("csv line %d: %w", i+1, err)
		}
		bars = append(bars, bar)
	}

	if limit > 0 && len(bars) > limit {
		bars = bars[len(bars)-limit:]
	}
	return bars, nil
}

func parseRecord(rec []string) (model.Bar, error) {
	t, err := parseTime(rec[0])
	if err != nil {
		return model.Bar{}, err
	}
	vals := make([]float64, 5)
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseFloat(rec[i+1], 64)
		if err != nil {
			return model.Bar{}, fmt.Errorf("field %d: %w", i+2, err)
		}
		vals[i] = v
	}
	return model.Bar{
		Time:   t,
		Open:   vals[0],
		High:   vals[1],
		Low:    vals[2],
		Close:  vals[3],
		Volume: vals[4],
	}, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}
