package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultDisplayTitle(t *testing.T) {
	assert.Equal(t, "Queen - Bohemian Rhapsody", Result{Artist: "Queen", Title: "Bohemian Rhapsody"}.DisplayTitle())
	assert.Equal(t, "Bohemian Rhapsody", Result{Title: "Bohemian Rhapsody"}.DisplayTitle())
}

func TestResultDescription(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		expected string
	}{
		{"CollectionAndYear", Result{Collection: "A Night at the Opera", ReleaseYear: 1975}, "A Night at the Opera (1975)"},
		{"CollectionOnly", Result{Collection: "A Night at the Opera"}, "A Night at the Opera"},
		{"YearOnly", Result{ReleaseYear: 1975}, "1975"},
		{"Empty", Result{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.Description())
		})
	}
}
