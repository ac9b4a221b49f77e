package render

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// named colours follow the css/matplotlib palette
var namedColors = map[string]color.RGBA{
	"black":  {A: 0xff},
	"white":  {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"red":    {R: 0xff, A: 0xff},
	"green":  {G: 0x80, A: 0xff},
	"blue":   {B: 0xff, A: 0xff},
	"purple": {R: 0x80, B: 0x80, A: 0xff},
	"orange": {R: 0xff, G: 0xa5, A: 0xff},
	"gray":   {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"grey":   {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"brown":  {R: 0xa5, G: 0x2a, B: 0x2a, A: 0xff},
	"pink":   {R: 0xff, G: 0xc0, B: 0xcb, A: 0xff},
}

// ParseColor accepts a colour name or a #rrggbb hex value, empty means black
func ParseColor(value string) (color.RGBA, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return namedColors["black"], nil
	}
	if c, ok := namedColors[value]; ok {
		return c, nil
	}
	if !strings.HasPrefix(value, "#") || len(value) != 7 {
		return color.RGBA{}, errors.Errorf("unknown colour '%s'", value)
	}
	rgb, err := strconv.ParseUint(value[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "invalid colour '%s'", value)
	}
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}, nil
}
