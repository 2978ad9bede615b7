package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareVersion(t *testing.T) {
	tests := []struct {
		a, b   string
		want   int
		wantOK bool
	}{
		{"2.46.1", "2.44", 1, true},
		{"2.44", "2.44.0", 0, true},
		{"4.12.5", "4.14", -1, true},
		{"2.50.0-beta", "2.50", 0, true},
		{"", "1.0", 0, false},
		{".1", "1.0", 0, false},
	}
	for _, tt := range tests {
		got, ok := compareVersion(tt.a, tt.b)
		assert.Equal(t, tt.wantOK, ok, "%s vs %s", tt.a, tt.b)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "%s vs %s", tt.a, tt.b)
		}
	}
}
