package domain

import "testing"

func TestNormalizeStem(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple word", "fire", "fire"},
		{"uppercase", "FIRE", "fire"},
		{"surrounding whitespace", "  fly \n", "fly"},
		{"space becomes underscore", "fire fly", "fire_fly"},
		{"hyphen becomes underscore", "fire-fly", "fire_fly"},
		{"separator runs collapse", "fire -  fly", "fire_fly"},
		{"punctuation dropped", "don't!", "dont"},
		{"digits dropped", "route66", "route"},
		{"leading and trailing separators stripped", "-fire_", "fire"},
		{"empty", "   ", ""},
		{"only punctuation", "!?.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeStem(tt.input); got != tt.want {
				t.Errorf("NormalizeStem(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
