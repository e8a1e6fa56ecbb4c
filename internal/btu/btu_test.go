package btu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name     string
		in       Input
		wantKcal float64
		wantKW   float64
	}{
		{
			name:     "base load only",
			in:       Input{AreaPing: 5},
			wantKcal: 3000,
			wantKW:   3.5,
		},
		{
			name:     "one condition",
			in:       Input{AreaPing: 5, TopFloor: true},
			wantKcal: 3600,
			wantKW:   4.2,
		},
		{
			name:     "two conditions compound",
			in:       Input{AreaPing: 5, TopFloor: true, WestFacing: true},
			wantKcal: 4320,
			wantKW:   5.0,
		},
		{
			name:     "all three conditions",
			in:       Input{AreaPing: 10, TopFloor: true, WestFacing: true, HeatSource: true},
			wantKcal: 10368,
			wantKW:   12.1,
		},
		{
			name: "zero area yields zero",
			in:   Input{AreaPing: 0, TopFloor: true},
		},
		{
			name: "negative area yields zero",
			in:   Input{AreaPing: -3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.in)
			assert.Equal(t, tt.wantKcal, got.KcalPerHour)
			assert.Equal(t, tt.wantKW, got.Kilowatts)
		})
	}
}
