// Package travelmatrix defines a portable on-disk format for the n x n
// travel-time matrix consumed by gomea.Instance.
//
// Two encodings are supported: a small tagged binary format (magic +
// version + dimension header, then row-major float64s) and CSV. Neither
// format implements caching or invalidation policy — that remains an
// out-of-scope collaborator; this package only defines and
// (de)serializes the wire contract.
package travelmatrix

import (
	"bufio"
	"encoding/binary"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// magic identifies the binary travel-matrix format.
const magic uint32 = 0x474d5458 // "GMTX"

const binaryFormatVersion uint32 = 1

// Store writes m (an n x n matrix) to path in the binary format.
func Store(path string, m [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("travelmatrix: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	n := len(m)
	header := []uint32{magic, binaryFormatVersion, uint32(n)}
	for _, h := range header {
		if err := binary.Write(w, binary.LittleEndian, h); err != nil {
			return fmt.Errorf("travelmatrix: write header: %w", err)
		}
	}
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("travelmatrix: row %d has %d columns, want %d", i, len(row), n)
		}
		for _, v := range row {
			if err := binary.Write(w, binary.LittleEndian, v); err != nil {
				return fmt.Errorf("travelmatrix: write row %d: %w", i, err)
			}
		}
	}
	return w.Flush()
}

// Load reads a travel matrix previously written by Store.
func Load(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("travelmatrix: open %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var gotMagic, version, n uint32
	for _, dst := range []*uint32{&gotMagic, &version, &n} {
		if err := binary.Read(r, binary.LittleEndian, dst); err != nil {
			return nil, fmt.Errorf("travelmatrix: read header: %w", err)
		}
	}
	if gotMagic != magic {
		return nil, fmt.Errorf("travelmatrix: bad magic %x, not a travel-matrix file", gotMagic)
	}
	if version != binaryFormatVersion {
		return nil, fmt.Errorf("travelmatrix: unsupported format version %d", version)
	}

	m := make([][]float64, n)
	for i := range m {
		row := make([]float64, n)
		for j := range row {
			if err := binary.Read(r, binary.LittleEndian, &row[j]); err != nil {
				if err == io.EOF || err == io.ErrUnexpectedEOF {
					return nil, fmt.Errorf("travelmatrix: truncated file, expected %d x %d entries", n, n)
				}
				return nil, fmt.Errorf("travelmatrix: read entry (%d,%d): %w", i, j, err)
			}
		}
		m[i] = row
	}
	return m, nil
}

// StoreCSV writes m in plain CSV form, one row per line.
func StoreCSV(path string, m [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("travelmatrix: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, row := range m {
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("travelmatrix: write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// LoadCSV reads a travel matrix written by StoreCSV.
func LoadCSV(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("travelmatrix: open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("travelmatrix: parse csv: %w", err)
	}
	m := make([][]float64, len(records))
	for i, record := range records {
		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("travelmatrix: parse entry (%d,%d): %w", i, j, err)
			}
			row[j] = v
		}
		m[i] = row
	}
	return m, nil
}
