package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/drakos74/free-mri/internal/math"
)

// ParseErr is returned when a csv record can not be read as numbers.
var ParseErr = errors.New("could not parse")

// ReadMatrix reads a numeric csv.
// A first row without any numeric field is treated as a header and skipped.
func ReadMatrix(r io.Reader) ([][]float64, error) {
	records, err := read(r)
	if err != nil {
		return nil, err
	}
	m := make([][]float64, len(records))
	for i, record := range records {
		row, err := parse(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		m[i] = row
	}
	return m, nil
}

// ReadLabelled reads a numeric csv, where the last column holds the integer class label.
func ReadLabelled(r io.Reader) ([][]float64, []int, error) {
	records, err := read(r)
	if err != nil {
		return nil, nil, err
	}
	x := make([][]float64, len(records))
	labels := make([]float64, len(records))
	for i, record := range records {
		if len(record) < 2 {
			return nil, nil, fmt.Errorf("row %d has no features: %w", i, ParseErr)
		}
		last := len(record) - 1
		row, err := parse(record[:last])
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i, err)
		}
		label, err := strconv.ParseFloat(strings.TrimSpace(record[last]), 64)
		if err != nil || label != float64(int(label)) {
			return nil, nil, fmt.Errorf("row %d: label '%s' is not an integer: %w", i, record[last], ParseErr)
		}
		x[i] = row
		labels[i] = label
	}
	return x, math.ToInt(labels), nil
}

// WriteMatrix writes the matrix as csv, with full float precision.
func WriteMatrix(w io.Writer, m [][]float64) error {
	writer := csv.NewWriter(w)
	for _, row := range m {
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("could not write record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadFile reads the csv file at the given path.
func ReadFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open '%s': %w", path, err)
	}
	defer f.Close()
	return ReadMatrix(f)
}

// ReadLabelledFile reads the labelled csv file at the given path.
func ReadLabelledFile(path string) ([][]float64, []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open '%s': %w", path, err)
	}
	defer f.Close()
	return ReadLabelled(f)
}

// WriteFile writes the matrix to a csv file at the given path.
func WriteFile(path string, m [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create '%s': %w", path, err)
	}
	defer f.Close()
	return WriteMatrix(f, m)
}

func read(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read csv: %s: %w", err.Error(), ParseErr)
	}
	if len(records) > 0 && header(records[0]) {
		records = records[1:]
	}
	return records, nil
}

// header reports whether none of the fields is a number.
func header(record []string) bool {
	for _, s := range record {
		if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return false
		}
	}
	return true
}

func parse(record []string) ([]float64, error) {
	row := make([]float64, len(record))
	for j, s := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: '%s': %w", j, s, ParseErr)
		}
		row[j] = v
	}
	return row, nil
}
