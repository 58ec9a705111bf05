package inflection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdinalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"rank 1 and 11 and 22 and 13", "rank 1st and 11th and 22nd and 13th"},
		{"1", "1st"},
		{"2 3 4", "2nd 3rd 4th"},
		{"12 111 112 113", "12th 111th 112th 113th"},
		{"21 32 43 100 101", "21st 32nd 43rd 100th 101st"},
		{"floor\t3", "floor\t3rd"},
		{"room42", "room42"},
		{"0", "0th"},
		{"no numbers", "no numbers"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Ordinalize(tt.input))
		})
	}
}

func TestOrdinalSuffix(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{0, "th"},
		{1, "st"},
		{2, "nd"},
		{3, "rd"},
		{4, "th"},
		{11, "th"},
		{12, "th"},
		{13, "th"},
		{21, "st"},
		{102, "nd"},
		{111, "th"},
		{-1, "st"},
		{-12, "th"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, OrdinalSuffix(tt.n), "n=%d", tt.n)
	}
}
