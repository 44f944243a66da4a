// ABOUTME: Tests for COLORFGBG background detection
// ABOUTME: Table of common terminal values

package termfix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarkBackground(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"15;0", true},
		{"0;15", false},
		{"12;default;8", true},
		{"0;default;7", false},
		{"garbage", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, darkBackground(tt.in), "COLORFGBG=%q", tt.in)
	}
}
