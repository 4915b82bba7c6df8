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

// Package spatialref resolves a user-supplied spatial reference into the ESRI
// WKT written to the dataset's .prj sidecar.
package spatialref

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	osutils "github.com/surveyio/traverse/utils/os"
)

// wellKnown maps the EPSG codes survey crews actually hand us. Anything else
// has to come in as a .prj file or a literal WKT string.
var wellKnown = map[string]string{
	// WGS 84, the default for GPS-collected traverses.
	"4326": `GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137.0,298.257223563]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]]`,
	// NAD 83 geographic.
	"4269": `GEOGCS["GCS_North_American_1983",DATUM["D_North_American_1983",SPHEROID["GRS_1980",6378137.0,298.257222101]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]]`,
	// NAD 27 geographic, still common on older control sheets.
	"4267": `GEOGCS["GCS_North_American_1927",DATUM["D_North_American_1927",SPHEROID["Clarke_1866",6378206.4,294.9786982]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]]`,
	// Web Mercator.
	"3857": `PROJCS["WGS_1984_Web_Mercator_Auxiliary_Sphere",GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137.0,298.257223563]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]],PROJECTION["Mercator_Auxiliary_Sphere"],PARAMETER["False_Easting",0.0],PARAMETER["False_Northing",0.0],PARAMETER["Central_Meridian",0.0],PARAMETER["Standard_Parallel_1",0.0],PARAMETER["Auxiliary_Sphere_Type",0.0],UNIT["Meter",1.0]]`,
	// Oregon State Plane North (ft).
	"2913": `PROJCS["NAD_1983_HARN_StatePlane_Oregon_North_FIPS_3601_Feet_Intl",GEOGCS["GCS_North_American_1983_HARN",DATUM["D_North_American_1983_HARN",SPHEROID["GRS_1980",6378137.0,298.257222101]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]],PROJECTION["Lambert_Conformal_Conic"],PARAMETER["False_Easting",8202099.737532808],PARAMETER["False_Northing",0.0],PARAMETER["Central_Meridian",-120.5],PARAMETER["Standard_Parallel_1",44.33333333333334],PARAMETER["Standard_Parallel_2",46.0],PARAMETER["Latitude_Of_Origin",43.66666666666666],UNIT["Foot",0.3048]]`,
	// UTM zone 10N on WGS 84.
	"32610": `PROJCS["WGS_1984_UTM_Zone_10N",GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137.0,298.257223563]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]],PROJECTION["Transverse_Mercator"],PARAMETER["False_Easting",500000.0],PARAMETER["False_Northing",0.0],PARAMETER["Central_Meridian",-123.0],PARAMETER["Scale_Factor",0.9996],PARAMETER["Latitude_Of_Origin",0.0],UNIT["Meter",1.0]]`,
	// UTM zone 10N on NAD 83.
	"26910": `PROJCS["NAD_1983_UTM_Zone_10N",GEOGCS["GCS_North_American_1983",DATUM["D_North_American_1983",SPHEROID["GRS_1980",6378137.0,298.257222101]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]],PROJECTION["Transverse_Mercator"],PARAMETER["False_Easting",500000.0],PARAMETER["False_Northing",0.0],PARAMETER["Central_Meridian",-123.0],PARAMETER["Scale_Factor",0.9996],PARAMETER["Latitude_Of_Origin",0.0],UNIT["Meter",1.0]]`,
}

// Resolve turns ref into WKT. ref may be a well-known EPSG code, a path to an
// existing .prj file whose contents are used verbatim, or a literal WKT
// string.
func Resolve(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("spatial reference is empty")
	}

	if wkt, ok := wellKnown[ref]; ok {
		return wkt, nil
	}

	if IsWKT(ref) {
		return ref, nil
	}

	if strings.HasSuffix(ref, ".prj") {
		if !osutils.IsFileExist(ref) {
			return "", errors.Errorf("projection file %s does not exist", ref)
		}
		content, err := osutils.NewFileReader(ref).ReadAll()
		if err != nil {
			return "", errors.Wrapf(err, "failed to read projection file %s", ref)
		}
		wkt := strings.TrimSpace(string(content))
		if !IsWKT(wkt) {
			return "", errors.Errorf("projection file %s does not contain WKT", ref)
		}
		return wkt, nil
	}

	return "", errors.Errorf("unknown spatial reference %q: expected one of %v, a .prj file or a WKT string", ref, WellKnownCodes())
}

// IsWKT reports whether s looks like an ESRI WKT definition.
func IsWKT(s string) bool {
	return strings.HasPrefix(s, "GEOGCS[") || strings.HasPrefix(s, "PROJCS[")
}

// WellKnownCodes lists the built-in EPSG codes in stable order, for flag
// completion and error messages.
func WellKnownCodes() []string {
	codes := make([]string, 0, len(wellKnown))
	for code := range wellKnown {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
