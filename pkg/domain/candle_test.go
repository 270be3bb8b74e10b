package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolution(t *testing.T) {
	tests := []struct {
		input    Resolution
		valid    bool
		duration time.Duration
	}{
		{input: Resolution1m, valid: true, duration: time.Minute},
		{input: Resolution1h, valid: true, duration: time.Hour},
		{input: Resolution3h, valid: true, duration: 3 * time.Hour},
		{input: Resolution6h, valid: true, duration: 6 * time.Hour},
		{input: Resolution12h, valid: true, duration: 12 * time.Hour},
		{input: Resolution1d, valid: true, duration: 24 * time.Hour},
		{input: "5", valid: false, duration: 0},
		{input: "", valid: false, duration: 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.input.Valid())
			assert.Equal(t, tt.duration, tt.input.Duration())
		})
	}
}
