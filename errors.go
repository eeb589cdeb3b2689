// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gauge

import (
	"errors"
	"strconv"
)

// ErrInvalidColor is wrapped by every color parse failure.
var ErrInvalidColor = errors.New("gauge: invalid hex color")

// ColorParseError is returned when a color string is not "#rgb" or "#rrggbb".
// Input holds the lower-cased string as it was received.
type ColorParseError struct {
	Input string
}

func (e *ColorParseError) Error() string {
	return "gauge: invalid hex color " + strconv.Quote(e.Input)
}

func (e *ColorParseError) Unwrap() error {
	return ErrInvalidColor
}
