package palettes

import (
	"encoding/hex"
	"strings"

	"github.com/nikmy/palettes/pkg/errors"
)

type RGB struct {
	R, G, B uint8
}

// ParseHex accepts "rrggbb" with or without a leading '#', in any case.
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(digits) != 6 {
		return RGB{}, errors.Errorf("%q is not a 6-digit hex colour", s)
	}

	raw, err := hex.DecodeString(digits)
	if err != nil {
		return RGB{}, errors.WrapFailf(err, "parse colour %q", s)
	}

	return RGB{R: raw[0], G: raw[1], B: raw[2]}, nil
}

func (c RGB) Hex() string {
	return "#" + hex.EncodeToString([]byte{c.R, c.G, c.B})
}

// Brightness is the perceived brightness in [0, 1], weighted as in the
// W3C colour contrast guideline.
func (c RGB) Brightness() float64 {
	return (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / (1000 * 255)
}

// IsLight tells whether dark text reads better than light text on c.
func (c RGB) IsLight() bool {
	return c.Brightness() > 0.5
}

func NormalizeHex(s string) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}
