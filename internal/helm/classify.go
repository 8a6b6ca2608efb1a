// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package helm

import (
	"helmbridge/cli/internal/errors"

	"github.com/pterm/pterm"
)

// classifyData turns a data-bearing response into a result. An empty error
// list is success and data is returned verbatim. Otherwise the first message
// becomes the error and data, when non-empty, its diagnostic payload.
func classifyData(logger *pterm.Logger, kind errors.Kind, errs []string, data string) (string, error) {
	if len(errs) == 0 {
		return data, nil
	}
	e := failure(logger, kind, errs)
	if data != "" {
		e.Response = &data
	}
	return "", e
}

// classifyEffect is classifyData for operations without a payload.
func classifyEffect(logger *pterm.Logger, kind errors.Kind, errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return failure(logger, kind, errs)
}

func failure(logger *pterm.Logger, kind errors.Kind, errs []string) *errors.E {
	if n := len(errs) - 1; n > 0 {
		logger.Debug("discarding additional bridge errors", logger.Args("kind", string(kind), "discarded", n))
	}
	return errors.New(kind, errs[0])
}
