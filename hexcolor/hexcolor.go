/*
Package hexcolor converts "RRGGBB" hex color codes into normalized four
component vectors suitable for pasting into shader source.
*/
package hexcolor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const digits = 6

var (
	errLength = errors.New("expected 6 hex digits")
	errDigit  = errors.New("invalid hex digit")
)

// ParseError records a color code that could not be parsed.
type ParseError struct {
	Code string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("hexcolor: parsing %q: %v", e.Code, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Vec4 is a color with each channel scaled to [0, 1].
type Vec4 struct {
	R, G, B, A float64
}

func (v Vec4) String() string {
	return fmt.Sprintf("vec4(%.5f, %.5f, %.5f, %.5f)", v.R, v.G, v.B, v.A)
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Parse converts code, six hex digits with an optional leading '#', into a
// Vec4. The code carries no alpha so A is always zero.
func Parse(code string) (Vec4, error) {
	s := strings.TrimPrefix(strings.TrimSpace(code), "#")

	if len(s) != digits {
		return Vec4{}, &ParseError{Code: code, Err: errLength}
	}
	if strings.IndexFunc(s, func(r rune) bool { return !isHex(r) }) >= 0 {
		return Vec4{}, &ParseError{Code: code, Err: errDigit}
	}

	c, err := colorful.Hex("#" + s)
	if err != nil {
		return Vec4{}, &ParseError{Code: code, Err: err}
	}

	return Vec4{R: c.R, G: c.G, B: c.B}, nil
}
