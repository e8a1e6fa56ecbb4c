package numtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{"plain integer", "3500", 3500, true},
		{"comma separated", "28,000", 28000, true},
		{"multiple groups", "1,234,567", 1234567, true},
		{"surrounding whitespace", " 1,500 ", 1500, true},
		{"negative", "-500", -500, true},
		{"empty", "", 0, false},
		{"whitespace only", "  ", 0, false},
		{"trailing junk", "1,2x0", 0, false},
		{"decimal point", "1500.50", 0, false},
		{"pure text", "TBD", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "999", FormatAmount(999))
	assert.Equal(t, "1,000", FormatAmount(1000))
	assert.Equal(t, "28,000", FormatAmount(28000))
	assert.Equal(t, "1,234,567", FormatAmount(1234567))
	assert.Equal(t, "-41,500", FormatAmount(-41500))
}

func TestFormatAmount_RoundTripsParseAmount(t *testing.T) {
	for _, n := range []int{0, 7, 850, 3500, 28000, 1234567} {
		got, ok := ParseAmount(FormatAmount(n))
		assert.True(t, ok)
		assert.Equal(t, n, got)
	}
}
