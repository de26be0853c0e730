// Copyright 2025 pixfx Authors
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
	"fmt"
	"log/slog"
	"strings"
)

const logLevelEnvVar = "PIXFX_LOG_LEVEL"

// Config is read from the environment once at start-up.
type Config struct {
	LogEnabled bool
	LogLevel   slog.Level
}

// loadConfig reads the configuration through getenv. On a malformed value it
// returns the defaults together with the error.
func loadConfig(getenv func(string) string) (Config, error) {
	var cfg Config

	val := strings.TrimSpace(getenv(logLevelEnvVar))
	switch strings.ToLower(val) {
	case "", "off", "none":
		return cfg, nil
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(val)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", logLevelEnvVar, err)
	}
	cfg.LogEnabled = true
	return cfg, nil
}
