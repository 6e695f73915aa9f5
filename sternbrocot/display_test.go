package sternbrocot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tr := newInt64Tree()

	assert.Equal(t, "5/3", tr.Fraction(5, 3).String())
	assert.Equal(t, "1/0", tr.OneOverZero().String())
	assert.Equal(t, "<null>", tr.NullFraction().String())
}

func TestSelfDisplay(t *testing.T) {
	tests := []struct {
		name string
		p, q int64
		want string
	}{
		{"5/3", 5, 3, "5/3 k=2 [1;1,2]"},
		{"1/1", 1, 1, "1/1 k=1 [0;1]"},
		{"2/1", 2, 1, "2/1 k=0 [2]"},
		{"0/1", 0, 1, "0/1 k=0 [0]"},
		{"1/0", 1, 0, "1/0 k=0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newInt64Tree()
			var sb strings.Builder
			require.NoError(t, tr.Fraction(tt.p, tt.q).SelfDisplay(&sb))
			assert.Equal(t, tt.want, sb.String())
		})
	}
}

func TestDrawTree(t *testing.T) {
	tr := newInt64Tree()
	var sb strings.Builder
	require.NoError(t, DrawTree(&sb, tr.OneOverOne(), 2))

	want := strings.Join([]string{
		"1/1",
		"  1/2",
		"    1/3",
		"    2/3",
		"  2/1",
		"    3/2",
		"    3/1",
		"",
	}, "\n")
	assert.Equal(t, want, sb.String())
}
