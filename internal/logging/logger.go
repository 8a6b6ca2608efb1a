// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// EnvJSONLog switches the logger to the JSON formatter when set to "1".
const EnvJSONLog = "HELMBRIDGE_JSON_LOG"

var levels = map[string]pterm.LogLevel{
	"trace": pterm.LogLevelTrace,
	"debug": pterm.LogLevelDebug,
	"info":  pterm.LogLevelInfo,
	"warn":  pterm.LogLevelWarn,
	"error": pterm.LogLevelError,
}

// ParseLevel maps a level name to a pterm level. Unknown names yield warn.
func ParseLevel(name string) pterm.LogLevel {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(name))]; ok {
		return l
	}
	return pterm.LogLevelWarn
}

// NewLogger returns a structured logger writing to w at the named level.
func NewLogger(level string, w io.Writer) *pterm.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := pterm.DefaultLogger.WithLevel(ParseLevel(level)).WithWriter(w)
	if os.Getenv(EnvJSONLog) == "1" {
		logger = logger.WithFormatter(pterm.LogFormatterJSON)
	}
	return logger
}

// Discard returns a logger that prints nothing.
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled).WithWriter(io.Discard)
}
