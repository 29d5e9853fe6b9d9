package hexcolor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tables := []struct {
		code string
		want string
	}{
		{"ffc0cb", "vec4(1.00000, 0.75294, 0.79608, 0.00000)"},
		{"#FFC0CB", "vec4(1.00000, 0.75294, 0.79608, 0.00000)"},
		{"000000", "vec4(0.00000, 0.00000, 0.00000, 0.00000)"},
		{"ffffff", "vec4(1.00000, 1.00000, 1.00000, 0.00000)"},
		{" 336699\n", "vec4(0.20000, 0.40000, 0.60000, 0.00000)"},
	}

	for _, table := range tables {
		t.Run(table.code, func(t *testing.T) {
			v, err := Parse(table.code)
			require.NoError(t, err)
			assert.Equal(t, table.want, v.String())
		})
	}
}

func TestParseChannels(t *testing.T) {
	v, err := Parse("ff8000")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v.R, 1e-9)
	assert.InDelta(t, 128.0/255.0, v.G, 1e-9)
	assert.InDelta(t, 0.0, v.B, 1e-9)
	assert.Equal(t, 0.0, v.A)
}

func TestParseError(t *testing.T) {
	tables := []struct {
		code string
		err  error
	}{
		{"", errLength},
		{"fff", errLength},
		{"1234567", errLength},
		{"zzzzzz", errDigit},
		{"12 345", errDigit},
		{"-12345", errDigit},
	}

	for _, table := range tables {
		t.Run(table.code, func(t *testing.T) {
			_, err := Parse(table.code)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, table.code, pe.Code)
			assert.True(t, errors.Is(err, table.err))
		})
	}
}
