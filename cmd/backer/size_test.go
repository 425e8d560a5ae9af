package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize_Set(t *testing.T) {
	type tc struct {
		in      string
		w, h    float32
		wantErr string
	}

	tests := map[string]tc{
		"plain":      {in: "80x24", w: 80, h: 24},
		"upper":      {in: "320X240", w: 320, h: 240},
		"fraction":   {in: "10.5x2", w: 10.5, h: 2},
		"no x":       {in: "80", wantErr: "want WIDTHxHEIGHT"},
		"bad width":  {in: "ax24", wantErr: "bad width"},
		"bad height": {in: "80xb", wantErr: "bad height"},
		"zero":       {in: "0x10", wantErr: "dimensions must be positive"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var s size
			err := s.Set(tt.in)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Empty(t, s.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.w, s.Width)
			assert.Equal(t, tt.h, s.Height)
		})
	}
}

func TestSize_String(t *testing.T) {
	s := size{Width: 80, Height: 24, set: true}
	assert.Equal(t, "80x24", s.String())
}
