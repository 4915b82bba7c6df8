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

package test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/surveyio/traverse/pkg/shapefile"
	"github.com/surveyio/traverse/pkg/traverse"
	"github.com/surveyio/traverse/test/testhelper"
)

var _ = Describe("traverse run", func() {
	var workDir string

	BeforeEach(func() {
		workDir = testhelper.CreateTempDir()
	})
	AfterEach(func() {
		testhelper.RemoveTempDir(workDir)
	})

	Context("with a valid survey file", func() {
		It("creates the dataset, sidecars and run log", func() {
			input := testhelper.WriteSurveyCSV(workDir, "survey.csv",
				"Longitude,Latitude,Distance,Azimuth,Notes\n"+
					"-122.6789,45.5678,0.05,90,first leg\n"+
					",,0.075,180,second leg\n")
			outDir := filepath.Join(workDir, "out")

			result, err := traverse.CreatePoints(traverse.RunOptions{
				InputCSV:  input,
				OutputDir: outDir,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.OutputPath).To(Equal(filepath.Join(outDir, "traverse_output.shp")))

			for _, f := range shapefile.DatasetFiles(result.OutputPath) {
				Expect(testhelper.FileExists(f)).To(BeTrue(), f)
			}

			records, wkt, err := shapefile.Read(result.OutputPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(3))
			Expect(wkt).To(ContainSubstring("GCS_WGS_1984"))
			Expect(records[0].Notes).To(Equal("Starting Point"))
			Expect(records[1].X).To(BeNumerically("~", -122.6289, 1e-4))
			Expect(records[2].Y).To(BeNumerically("~", 45.4928, 1e-4))

			log := testhelper.ReadRunLog(outDir)
			Expect(log).To(ContainSubstring("Starting point: -122.6789, 45.5678"))
			Expect(log).To(ContainSubstring("Successfully completed traverse"))
		})

		It("round-trips through a second run into the same directory", func() {
			input := testhelper.WriteSurveyCSV(workDir, "survey.csv",
				"Longitude,Latitude,Distance,Azimuth\n0,0,10,45\n")
			outDir := filepath.Join(workDir, "out")

			for i := 0; i < 2; i++ {
				result, err := traverse.CreatePoints(traverse.RunOptions{
					InputCSV:  input,
					OutputDir: outDir,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(testhelper.FileExists(result.OutputPath)).To(BeTrue())
			}

			records, _, err := shapefile.Read(filepath.Join(outDir, "traverse_output.shp"))
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
		})
	})

	Context("with bad records in the file", func() {
		It("skips them, reports them and finishes the traverse", func() {
			input := testhelper.WriteSurveyCSV(workDir, "survey.csv",
				"Longitude,Latitude,Distance,Azimuth\n"+
					"10,20,5,0\n"+
					",,oops,90\n"+
					",,5,90\n")
			outDir := filepath.Join(workDir, "out")

			result, err := traverse.CreatePoints(traverse.RunOptions{
				InputCSV:  input,
				OutputDir: outDir,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Skipped).To(HaveLen(1))
			Expect(result.SkippedErrors()).To(HaveOccurred())
			Expect(result.Points).To(HaveLen(3))

			log := testhelper.ReadRunLog(outDir)
			Expect(log).To(ContainSubstring("ERROR: Error at point 3:"))
		})
	})

	Context("with an empty input file", func() {
		It("creates no dataset and logs a fatal entry", func() {
			input := testhelper.WriteSurveyCSV(workDir, "empty.csv", "")
			outDir := filepath.Join(workDir, "out")

			_, err := traverse.CreatePoints(traverse.RunOptions{
				InputCSV:  input,
				OutputDir: outDir,
			})
			Expect(err).To(HaveOccurred())

			Expect(testhelper.FileExists(filepath.Join(outDir, "traverse_output.shp"))).To(BeFalse())
			log := testhelper.ReadRunLog(outDir)
			Expect(log).To(ContainSubstring("ERROR:"))
		})
	})

	Context("with a custom spatial reference", func() {
		It("writes the matching projection sidecar", func() {
			input := testhelper.WriteSurveyCSV(workDir, "survey.csv",
				"Longitude,Latitude,Distance,Azimuth\n500000,4200000,100,0\n")
			outDir := filepath.Join(workDir, "out")

			result, err := traverse.CreatePoints(traverse.RunOptions{
				InputCSV:   input,
				OutputDir:  outDir,
				OutputName: "utm_plot.shp",
				SpatialRef: "32610",
			})
			Expect(err).NotTo(HaveOccurred())

			_, wkt, err := shapefile.Read(result.OutputPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(wkt).To(ContainSubstring("WGS_1984_UTM_Zone_10N"))
		})
	})
})
