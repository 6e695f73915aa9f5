package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFraction(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"simple", "5/3", "5/3"},
		{"zero", "0/1", "0/1"},
		{"infinite", "1/0", "1/0"},
		{"big", "355/113", "355/113"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := parseFraction(tt.arg)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, f.String())
		})
	}
}

func TestParseFractionErrors(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"no slash", "53"},
		{"empty numerator", "/3"},
		{"not a number", "a/b"},
		{"negative", "-1/3"},
		{"reducible", "4/2"},
		{"reducible zero", "0/5"},
		{"reducible infinity", "5/0"},
		{"zero over zero", "0/0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFraction(tt.arg)
			assert.True(t, err != nil)
		})
	}
}
