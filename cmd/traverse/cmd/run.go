// Copyright © 2022 surveyio.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/surveyio/traverse/common"
	"github.com/surveyio/traverse/pkg/spatialref"
	"github.com/surveyio/traverse/pkg/traverse"
	osutils "github.com/surveyio/traverse/utils/os"
	strutils "github.com/surveyio/traverse/utils/strings"
)

type runArgs struct {
	input        string
	outputDir    string
	outputName   string
	spatialRef   string
	delimiter    string
	showProgress bool
}

var longRunCmdDescription = `run reads an ordered list of (Distance, Azimuth, Notes) measurements from a
delimited text file, walks them from the starting coordinate found in the
first data row, and writes the resulting points into a shapefile dataset.
A traverse_log.txt with the run's progress and per-record errors is written
into the output directory, replacing the previous run's log.

Records with a missing or non-numeric Distance or Azimuth are skipped and
reported; the traverse continues from the last valid position.`

var exampleForRunCmd = `
convert a survey file using the defaults (traverse_output.shp, EPSG:4326):
	traverse run -i parsed_data.csv -o /data/gis/workspace

name the dataset and use a projected spatial reference:
	traverse run -i parsed_data.csv -o /data/gis/workspace --name plot42 --sref 32610

use a semicolon separated export with a progress bar:
	traverse run -i export.csv -o out --delimiter ';' --progress
`

func NewRunCmd() *cobra.Command {
	opts := runArgs{}
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "convert a survey traverse file into a point dataset",
		Long:    longRunCmdDescription,
		Example: exampleForRunCmd,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, &opts)

			delim := []rune(opts.delimiter)
			if len(delim) != 1 {
				return fmt.Errorf("delimiter must be a single character, got %q", opts.delimiter)
			}

			result, err := traverse.CreatePoints(traverse.RunOptions{
				InputCSV:     opts.input,
				OutputDir:    opts.outputDir,
				OutputName:   opts.outputName,
				SpatialRef:   opts.spatialRef,
				Delimiter:    delim[0],
				ShowProgress: opts.showProgress,
			})
			if err != nil {
				return err
			}

			if skipped := result.SkippedErrors(); skipped != nil {
				logrus.Warnf("skipped %d record(s): %v", len(result.Skipped), skipped)
			}

			// the dataset on disk is the durable signal, trust it over our own
			// bookkeeping
			if !osutils.IsFileExist(result.OutputPath) {
				return fmt.Errorf("failed to create traverse dataset, check %s for details", common.RunLogFileName)
			}

			logrus.Infof("traverse complete: created %d points", len(result.Points))
			fmt.Fprintln(common.StdOut, result.OutputPath)
			return nil
		},
	}

	runCmd.Flags().StringVarP(&opts.input, "input", "i", "", "path to the delimited traverse measurement file")
	runCmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "directory the dataset and run log are written to")
	runCmd.Flags().StringVar(&opts.outputName, "name", common.DefaultOutputName, "name of the output dataset")
	runCmd.Flags().StringVar(&opts.spatialRef, "sref", common.DefaultSpatialRef, "spatial reference: EPSG code, .prj file or WKT string")
	runCmd.Flags().StringVar(&opts.delimiter, "delimiter", common.DefaultDelimiter, "field delimiter of the input file")
	runCmd.Flags().BoolVar(&opts.showProgress, "progress", false, "show a progress bar while writing points")

	if err := runCmd.MarkFlagRequired("input"); err != nil {
		logrus.Errorf("failed to mark input flag as required: %v", err)
	}
	if err := runCmd.MarkFlagRequired("output-dir"); err != nil {
		logrus.Errorf("failed to mark output-dir flag as required: %v", err)
	}

	err := runCmd.RegisterFlagCompletionFunc("sref", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return strutils.ContainPartial(spatialref.WellKnownCodes(), toComplete), cobra.ShellCompDirectiveDefault
	})
	if err != nil {
		logrus.Errorf("failed to provide completion for sref flag, err: %v", err)
	}

	return runCmd
}

// applyConfigDefaults lets $HOME/.traverse.json and TRAVERSE_* environment
// variables supply run defaults; explicit flags win.
func applyConfigDefaults(cmd *cobra.Command, opts *runArgs) {
	if !cmd.Flags().Changed("name") && viper.IsSet("output-name") {
		opts.outputName = viper.GetString("output-name")
	}
	if !cmd.Flags().Changed("sref") && viper.IsSet("sref") {
		opts.spatialRef = viper.GetString("sref")
	}
	if !cmd.Flags().Changed("delimiter") && viper.IsSet("delimiter") {
		opts.delimiter = viper.GetString("delimiter")
	}
}
