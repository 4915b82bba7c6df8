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
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type LogOptions struct {
	// OutputPath is the tool log directory, default is `$HOME/.traverse/log`.
	OutputPath string
	// Verbose if true will set debug log mode.
	Verbose bool
	// DisableColor if true will disable outputting colors.
	DisableColor bool
	// HideLogTime drops the timestamp prefix from console lines.
	HideLogTime bool
	// HideLogPath drops the file:line prefix from console lines.
	HideLogPath          bool
	RemoteLoggerURL      string
	RemoteLoggerTaskName string
	// LogToFile flag represents whether to write log to disk, default is false.
	LogToFile bool
}

func Init(options LogOptions) error {
	if options.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	logrus.SetReportCaller(true)

	logrus.SetFormatter(&Formatter{
		DisableColor: options.DisableColor,
		HideLogTime:  options.HideLogTime,
		HideLogPath:  options.HideLogPath,
	})

	if options.LogToFile {
		fh, err := NewFileHook(options.OutputPath)
		if err != nil {
			return errors.Errorf("failed to init log file hook: %v", err)
		}
		logrus.AddHook(fh)
	}

	if options.RemoteLoggerURL != "" {
		rl, err := NewRemoteLogHook(options.RemoteLoggerURL, options.RemoteLoggerTaskName)
		if err != nil {
			return errors.Errorf("failed to init log remote hook: %v", err)
		}
		logrus.AddHook(rl)
	}

	return nil
}
