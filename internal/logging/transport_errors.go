// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"strings"

	"github.com/pterm/pterm"
)

// TransportErrorType represents the category of a bridge transport failure
type TransportErrorType int

const (
	TransportErrorUnknown TransportErrorType = iota
	TransportErrorNetwork
	TransportErrorAuth
	TransportErrorTimeout
	TransportErrorUnavailable
	TransportErrorMissingBinary
)

// ParseTransportError categorizes a failure message reported by the bridge.
// Messages that do not look like transport failures are TransportErrorUnknown.
func ParseTransportError(errMsg string) TransportErrorType {
	lower := strings.ToLower(errMsg)

	if strings.Contains(lower, "executable file not found") ||
		(strings.Contains(lower, "no such file or directory") && strings.Contains(lower, "helm")) {
		return TransportErrorMissingBinary
	}
	if strings.Contains(lower, "rst_stream") || strings.Contains(lower, "connection reset") || strings.Contains(lower, "connection refused") {
		return TransportErrorNetwork
	}
	if strings.HasPrefix(lower, "unavailable:") {
		return TransportErrorUnavailable
	}
	if strings.HasPrefix(lower, "deadlineexceeded:") || strings.Contains(lower, "context deadline exceeded") {
		return TransportErrorTimeout
	}
	if strings.HasPrefix(lower, "unauthenticated:") || strings.HasPrefix(lower, "permissiondenied:") {
		return TransportErrorAuth
	}

	return TransportErrorUnknown
}

// TransportHint returns a one-line suggestion for a transport failure, or ""
// when the message is not recognised as one.
func TransportHint(errMsg string) string {
	switch ParseTransportError(errMsg) {
	case TransportErrorMissingBinary:
		return "Install helm or point --helm-binary at it"
	case TransportErrorNetwork, TransportErrorUnavailable:
		return "Check that the bridge server is running and --address is correct"
	case TransportErrorTimeout:
		return "The bridge did not answer in time; retry or raise --timeout"
	case TransportErrorAuth:
		return "The bridge rejected the token; check HELMBRIDGE_TOKEN or the saved bridge token"
	default:
		return ""
	}
}

// FormatTransportError formats a failure message with a styled hint when it
// is recognised as a transport failure.
func FormatTransportError(errMsg string) string {
	hint := TransportHint(errMsg)
	if hint == "" {
		return Mask(errMsg)
	}

	var builder strings.Builder
	builder.WriteString(Mask(errMsg))
	builder.WriteString("\n")
	builder.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ " + hint))
	return builder.String()
}
