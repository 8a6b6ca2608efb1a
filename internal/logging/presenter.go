// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"fmt"
	"strings"

	helmerrors "helmbridge/cli/internal/errors"
)

// PresentError formats an error for user display with masking.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", context, Mask(err.Error()))
}

// Diagnostic returns the masked secondary payload of a failed operation, or
// "" when the failure carried none.
func Diagnostic(err error) string {
	var e *helmerrors.E
	if !errors.As(err, &e) || e.Response == nil {
		return ""
	}
	return Mask(strings.TrimSpace(*e.Response))
}
