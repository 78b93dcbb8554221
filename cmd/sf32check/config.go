// Copyright 2025 go-softfloat Authors
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

package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Environment variables that supply flag defaults.
const (
	envWorkers  = "SF32CHECK_WORKERS"
	envLogLevel = "SF32CHECK_LOG_LEVEL"
)

// workersEnv returns the worker count set by SF32CHECK_WORKERS. It returns
// 0, meaning one worker per CPU, when the variable is unset or not a
// positive integer.
func workersEnv() int {
	val := os.Getenv(envWorkers)
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// logLevelEnv returns the log level name set by SF32CHECK_LOG_LEVEL. A
// boolean value is accepted as well: true selects debug and false info.
func logLevelEnv() string {
	val := os.Getenv(envLogLevel)
	if val == "" {
		return "info"
	}
	if b, err := strconv.ParseBool(val); err == nil {
		if b {
			return "debug"
		}
		return "info"
	}
	return val
}

// parseLogLevel maps a level name to its slog level.
func parseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.Newf("unknown log level %q (want trace, debug, info, warn or error)", name)
}
