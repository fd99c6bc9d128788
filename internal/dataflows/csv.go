package dataflows

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// CSVManager persists daily bars as CSV files under
// {basePath}/csv/market/{symbol}/bars.csv so fetched history can be
// inspected or reused offline.
type CSVManager struct {
	basePath string
}

func NewCSVManager(basePath string) *CSVManager {
	return &CSVManager{
		basePath: basePath,
	}
}

func (c *CSVManager) barsPath(symbol string) string {
	return filepath.Join(c.basePath, "csv", "market", symbol, "bars.csv")
}

// WriteBars writes the bars for a symbol, sorted by date, overwriting any
// previous export.
func (c *CSVManager) WriteBars(symbol string, bars []*Bar) error {
	path := c.barsPath(symbol)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create CSV directory: %w", err)
	}

	sorted := make([]*Bar, len(bars))
	copy(sorted, bars)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"date", "open", "high", "low", "close", "volume"}); err != nil {
		return err
	}

	for _, bar := range sorted {
		record := []string{
			bar.Date.Format("2006-01-02"),
			bar.Open.String(),
			bar.High.String(),
			bar.Low.String(),
			bar.Close.String(),
			strconv.FormatInt(bar.Volume, 10),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

// ReadBars loads a previous export for a symbol.
func (c *CSVManager) ReadBars(symbol string) ([]*Bar, error) {
	file, err := os.Open(c.barsPath(symbol))
	if err != nil {
		return nil, fmt.Errorf("no CSV export for %s: %w", symbol, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV for %s: %w", symbol, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV export for %s is empty", symbol)
	}

	bars := make([]*Bar, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != 6 {
			return nil, fmt.Errorf("malformed CSV row for %s: %v", symbol, record)
		}

		date, err := time.Parse("2006-01-02", record[0])
		if err != nil {
			return nil, fmt.Errorf("bad date %q in CSV for %s", record[0], symbol)
		}

		bar := &Bar{Symbol: symbol, Date: date, Timestamp: date}
		if bar.Open, err = decimal.NewFromString(record[1]); err != nil {
			return nil, err
		}
		if bar.High, err = decimal.NewFromString(record[2]); err != nil {
			return nil, err
		}
		if bar.Low, err = decimal.NewFromString(record[3]); err != nil {
			return nil, err
		}
		if bar.Close, err = decimal.NewFromString(record[4]); err != nil {
			return nil, err
		}
		if bar.Volume, err = strconv.ParseInt(record[5], 10, 64); err != nil {
			return nil, err
		}
		bars = append(bars, bar)
	}

	return bars, nil
}
