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

package logger

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLogger_Print(t *testing.T) {
	if err := Init(LogOptions{
		LogToFile:    false,
		Verbose:      true,
		DisableColor: false,
	}); err != nil {
		panic(fmt.Sprintf("failed to init logger: %v\n", err))
	}

	logrus.Info("start to test log")
	logrus.Debugf("processed %d of %d points", 9, 10)
	logrus.Warnf("skipped record at line %d", 4)
}
