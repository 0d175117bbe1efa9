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

package dataset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"seehuhn.de/go/ringchart"
)

var sample = [][]ringchart.Datapoint{
	{
		{Value: 300, Color: "#F7464A", Label: "Red"},
		{Value: 50, Color: "#46BFBD", Highlight: "#5AD3D1", Label: "Green"},
	},
	{
		{Value: 100, Label: "Yellow"},
	},
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFormatOf(t *testing.T) {
	cases := map[string]Format{
		"a.json":       FormatJSON,
		"b.YAML":       FormatYAML,
		"c.yml":        FormatYAML,
		"dir/d.xlsx":   FormatXLSX,
		"e.csv":        FormatUnknown,
		"no-extension": FormatUnknown,
	}
	for name, want := range cases {
		if got := FormatOf(name); got != want {
			t.Errorf("FormatOf(%q) = %s, want %s", name, got, want)
		}
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "data.json", `[
  [
    {"value": 300, "color": "#F7464A", "label": "Red"},
    {"value": 50, "color": "#46BFBD", "highlight": "#5AD3D1", "label": "Green"}
  ],
  [{"value": 100, "label": "Yellow"}]
]`)
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(sample, got); d != "" {
		t.Errorf("unexpected data (-want +got):\n%s", d)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "data.yaml", `
- - value: 300
    color: "#F7464A"
    label: Red
  - value: 50
    color: "#46BFBD"
    highlight: "#5AD3D1"
    label: Green
- - value: 100
    label: Yellow
`)
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(sample, got); d != "" {
		t.Errorf("unexpected data (-want +got):\n%s", d)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	path := writeFile(t, "empty.yml", "")
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d rings, want 0", len(got))
	}
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	// first sheet with a header row in non-default column order
	f.SetCellValue("Sheet1", "A1", "Label")
	f.SetCellValue("Sheet1", "B1", "Value")
	f.SetCellValue("Sheet1", "C1", "Color")
	f.SetCellValue("Sheet1", "D1", "Highlight")
	f.SetCellValue("Sheet1", "A2", "Red")
	f.SetCellValue("Sheet1", "B2", 300)
	f.SetCellValue("Sheet1", "C2", "#F7464A")
	f.SetCellValue("Sheet1", "A3", "Green")
	f.SetCellValue("Sheet1", "B3", 50)
	f.SetCellValue("Sheet1", "C3", "#46BFBD")
	f.SetCellValue("Sheet1", "D3", "#5AD3D1")

	// an empty sheet is skipped
	if _, err := f.NewSheet("Empty"); err != nil {
		t.Fatal(err)
	}

	// second ring without header
	if _, err := f.NewSheet("Outer"); err != nil {
		t.Fatal(err)
	}
	f.SetCellValue("Outer", "A1", 100)
	f.SetCellValue("Outer", "B1", "Yellow")

	path := filepath.Join(t.TempDir(), "data.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(sample, got); d != "" {
		t.Errorf("unexpected data (-want +got):\n%s", d)
	}
}

func TestLoadXLSXBadValue(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "lots")
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ringchart.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
	if err == nil || !strings.Contains(err.Error(), "row 1:") {
		t.Errorf("error %v does not name row 1", err)
	}
}

func TestLoadXLSXBadValueAfterHeader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "Value")
	f.SetCellValue("Sheet1", "A2", 5)
	f.SetCellValue("Sheet1", "A3", "lots")
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ringchart.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
	if !strings.Contains(err.Error(), "row 3:") {
		t.Errorf("error %v does not name row 3", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(writeFile(t, "data.csv", "1,2,3")); !errors.Is(err, ErrFormat) {
		t.Errorf("csv: got %v, want ErrFormat", err)
	}

	path := writeFile(t, "broken.json", "[[{")
	_, err := Load(path)
	if err == nil {
		t.Fatal("broken JSON accepted")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the file", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
}

func TestEncode(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		buf := &bytes.Buffer{}
		if err := Encode(buf, format, sample); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		got, err := Decode(buf, format)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if d := cmp.Diff(sample, got); d != "" {
			t.Errorf("%s: unexpected data (-want +got):\n%s", format, d)
		}
	}

	if err := Encode(&bytes.Buffer{}, FormatXLSX, sample); !errors.Is(err, ErrFormat) {
		t.Errorf("xlsx: got %v, want ErrFormat", err)
	}
}
