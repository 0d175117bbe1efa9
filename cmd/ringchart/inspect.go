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

package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seehuhn.de/go/ringchart"
	"seehuhn.de/go/ringchart/internal/dataset"
	"seehuhn.de/go/ringchart/testcases"
)

var hitCmd = &cobra.Command{
	Use:   "hit X,Y",
	Short: "List the segments under a point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parsePoint(args[0])
		if err != nil {
			return err
		}
		chart, err := newQuietChart(cmd)
		if err != nil {
			return err
		}

		segs := chart.SegmentsAt(p.X, p.Y)
		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			type hit struct {
				Ring    int     `json:"ring"`
				Index   int     `json:"index"`
				Label   string  `json:"label,omitempty"`
				Value   float64 `json:"value"`
				Tooltip string  `json:"tooltip"`
			}
			hits := []hit{}
			for _, seg := range segs {
				ring, at, _ := chart.Locate(seg)
				hits = append(hits, hit{ring, at, seg.Label, seg.Value, chart.TooltipText(seg)})
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(hits)
		}

		if len(segs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no segment")
			return nil
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "RING\tINDEX\tLABEL\tVALUE\tTOOLTIP")
		for _, seg := range segs {
			ring, at, _ := chart.Locate(seg)
			fmt.Fprintf(tw, "%d\t%d\t%s\t%g\t%s\n", ring, at, seg.Label, seg.Value, chart.TooltipText(seg))
		}
		return tw.Flush()
	},
}

func init() {
	addInputFlags(hitCmd)
	hitCmd.Flags().Bool("json", false, "print the result as JSON")
}

var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Print the chart legend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		chart, err := newQuietChart(cmd)
		if err != nil {
			return err
		}
		legend, err := chart.Legend()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), legend)
		return nil
	},
}

func init() {
	addInputFlags(legendCmd)
}

// newQuietChart builds a chart which is laid out but never painted.
func newQuietChart(cmd *cobra.Command) (*ringchart.Chart, error) {
	in, err := loadInput(cmd)
	if err != nil {
		return nil, err
	}
	in.Options.Animation = false
	return ringchart.New(in.Width, in.Height, in.Data, in.Options, ringchart.Host{})
}

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List the built-in example charts",
	Long: `List the built-in example charts.  With --export, the data of the
named case is written to a JSON or YAML file instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fname, _ := cmd.Flags().GetString("export"); fname != "" {
			name, _ := cmd.Flags().GetString("case")
			return exportCase(name, fname)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tRINGS\tSIZE")
		for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
			for _, tc := range testcases.All[category] {
				fmt.Fprintf(tw, "%s_%s\t%d\t%dx%d\n", category, tc.Name, len(tc.Data), tc.Width, tc.Height)
			}
		}
		return tw.Flush()
	},
}

func init() {
	casesCmd.Flags().String("case", "", "case to export")
	casesCmd.Flags().String("export", "", "write the case data to this .json or .yaml file")
	casesCmd.MarkFlagsRequiredTogether("case", "export")
}

func exportCase(name, fname string) error {
	tc, ok := testcases.Find(name)
	if !ok {
		return fmt.Errorf("unknown case %q", name)
	}
	format := dataset.FormatOf(fname)
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := dataset.Encode(f, format, tc.Data); err != nil {
		f.Close()
		os.Remove(fname)
		return fmt.Errorf("%s: %w", fname, err)
	}
	return f.Close()
}
