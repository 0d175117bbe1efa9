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

// Command export writes the data of all example charts to JSON files,
// one file per case.  The files can be passed to "ringchart render --data".
// Run from the module root directory.
package main

import (
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/ringchart/internal/dataset"
	"seehuhn.de/go/ringchart/testcases"
)

const outDir = "testdata/cases"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(filepath.Join(outDir, name+".json"), tc); err != nil {
				panic(err)
			}
		}
	}
}

func export(fname string, tc testcases.Case) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := dataset.Encode(f, dataset.FormatJSON, tc.Data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
