package tui

import (
	"strings"
	"testing"

	"github.com/studiowebux/birthdaycard/internal/card"
)

func TestNewNameStateDefaults(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{"no stored value", "", card.DefaultName},
		{"blank stored value", "   ", card.DefaultName},
		{"over-long stored value", strings.Repeat("x", 30), card.DefaultName},
		{"stored name", "Sam", "Sam"},
		{"stored name with spaces", "  Sam  ", "Sam"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewNameState(tt.stored)
			if s.Name() != tt.want {
				t.Errorf("NewNameState(%q).Name() = %q, want %q", tt.stored, s.Name(), tt.want)
			}
		})
	}
}

func TestNameStateSetName(t *testing.T) {
	s := NewNameState("")

	s.SetName("Alex")

	if s.Name() != "Alex" {
		t.Errorf("Expected 'Alex', got %q", s.Name())
	}
}
