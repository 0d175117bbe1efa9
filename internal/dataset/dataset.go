// seehuhn.de/go/ringchart - multi-ring doughnut charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package dataset reads ring chart data from JSON, YAML and XLSX files.
//
// JSON and YAML documents are a list of rings, each ring a list of
// datapoints with the keys value, label, color and highlight.  In XLSX
// workbooks every non-empty sheet is one ring, in sheet order.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/ringchart"
)

// Format identifies a dataset file format.
type Format int

// Supported formats.
const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
	FormatXLSX
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatXLSX:
		return "xlsx"
	default:
		return "unknown"
	}
}

// ErrFormat is returned for files whose format cannot be determined.
var ErrFormat = errors.New("unknown dataset format")

// FormatOf determines the format from the file name extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".xlsx":
		return FormatXLSX
	default:
		return FormatUnknown
	}
}

// Load reads the rings stored in the named file.
func Load(path string) ([][]ringchart.Datapoint, error) {
	format := FormatOf(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%s: %w", path, ErrFormat)
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	rings, err := Decode(fd, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rings, nil
}

// Decode reads rings in the given format from r.
func Decode(r io.Reader, format Format) ([][]ringchart.Datapoint, error) {
	var rings [][]ringchart.Datapoint
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&rings); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&rings); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case FormatXLSX:
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		rings, err = readWorkbook(f)
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrFormat
	}
	return rings, nil
}

// Encode writes rings to w as JSON or YAML.
func Encode(w io.Writer, format Format, rings [][]ringchart.Datapoint) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rings)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rings); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("cannot encode %s: %w", format, ErrFormat)
	}
}

// column names recognised in a header row
var columns = []string{"value", "label", "color", "highlight"}

func readWorkbook(f *excelize.File) ([][]ringchart.Datapoint, error) {
	var rings [][]ringchart.Datapoint
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
		ring, err := readSheet(rows)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
		if len(ring) > 0 {
			rings = append(rings, ring)
		}
	}
	return rings, nil
}

// readSheet converts the rows of one sheet into a ring.  If the first row
// names a "value" column it is used as the header; otherwise the columns
// are value, label, color and highlight in that order.
func readSheet(rows [][]string) ([]ringchart.Datapoint, error) {
	index := map[string]int{}
	for i, name := range columns {
		index[name] = i
	}
	first := 1 // spreadsheet row number of rows[0]
	if len(rows) > 0 && hasHeader(rows[0]) {
		index = map[string]int{}
		for i, cell := range rows[0] {
			index[strings.ToLower(strings.TrimSpace(cell))] = i
		}
		rows = rows[1:]
		first++
	}

	cell := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var ring []ringchart.Datapoint
	for n, row := range rows {
		raw := cell(row, "value")
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: value %q: %w", n+first, raw, ringchart.ErrInvalidInput)
		}
		ring = append(ring, ringchart.Datapoint{
			Value:     value,
			Label:     cell(row, "label"),
			Color:     cell(row, "color"),
			Highlight: cell(row, "highlight"),
		})
	}
	return ring, nil
}

func hasHeader(row []string) bool {
	for _, cell := range row {
		if strings.EqualFold(strings.TrimSpace(cell), "value") {
			return true
		}
	}
	return false
}
