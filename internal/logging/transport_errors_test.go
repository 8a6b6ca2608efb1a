package logging

import (
	"strings"
	"testing"
)

func TestParseTransportError(t *testing.T) {
	tests := []struct {
		msg  string
		want TransportErrorType
	}{
		{`exec: "helm": executable file not found in $PATH`, TransportErrorMissingBinary},
		{"Unavailable: connection error: desc = \"transport: Error while dialing: dial tcp: connect: connection refused\"", TransportErrorNetwork},
		{"Unavailable: server shutting down", TransportErrorUnavailable},
		{"DeadlineExceeded: context deadline exceeded", TransportErrorTimeout},
		{"Unauthenticated: invalid bridge token", TransportErrorAuth},
		{"cannot re-use a name that is still in use", TransportErrorUnknown},
	}
	for _, tt := range tests {
		if got := ParseTransportError(tt.msg); got != tt.want {
			t.Errorf("ParseTransportError(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}

func TestFormatTransportError(t *testing.T) {
	plain := "INSTALLATION FAILED: chart not found"
	if got := FormatTransportError(plain); got != plain {
		t.Errorf("FormatTransportError(%q) = %q, want unchanged", plain, got)
	}

	got := FormatTransportError("Unauthenticated: invalid bridge token")
	if !strings.Contains(got, "HELMBRIDGE_TOKEN") {
		t.Errorf("FormatTransportError() = %q, want auth hint", got)
	}
}
