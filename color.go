// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gauge

import (
	"strconv"
	"strings"
)

// RGB is an 8-bit-per-channel color. Channels are plain ints so that
// interpolation arithmetic can go negative before being packed.
type RGB struct {
	R, G, B int
}

// Hex returns the color as a padded "#rrggbb" string.
func (c RGB) Hex() string {
	return PadHex(RGBToHex(c.R, c.G, c.B))
}

// HexToRGB parses "#rgb" or "#rrggbb" (case-insensitive).
// The shorthand form is expanded by duplicating each nibble.
//
// On failure the returned error is a *ColorParseError holding the
// lower-cased input.
func HexToRGB(s string) (RGB, error) {
	lower := strings.ToLower(s)
	if !isHexColor(lower) {
		return RGB{}, &ColorParseError{Input: lower}
	}

	digits := lower[1:]
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}

	var ch [3]int
	for i := range ch {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, &ColorParseError{Input: lower}
		}
		ch[i] = int(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

// RGBToHex packs three channels as (r<<16)+(g<<8)+b and formats the result
// in lower-case hex. Leading zeros are not kept; use PadHex before handing
// the result to a Canvas.
func RGBToHex(r, g, b int) string {
	return strconv.FormatInt(int64((r<<16)+(g<<8)+b), 16)
}

// PadHex left-pads a packed hex value to six digits and adds the leading '#'.
func PadHex(hex string) string {
	if len(hex) < 6 {
		hex = strings.Repeat("0", 6-len(hex)) + hex
	}
	return "#" + hex
}
