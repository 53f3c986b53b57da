package theme

import (
	"testing"

	"taskdeck/internal/persona"
)

func TestPersonaAccent(t *testing.T) {
	tests := []struct {
		name string
		p    persona.Personality
	}{
		{"introvert", persona.Introvert},
		{"extrovert", persona.Extrovert},
		{"ambivert", persona.Ambivert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if PersonaAccent(tt.p) == nil {
				t.Fatalf("PersonaAccent(%v) returned nil", tt.p)
			}
		})
	}

	if PersonaAccent(persona.Introvert) == PersonaAccent(persona.Extrovert) {
		t.Error("introvert and extrovert should have distinct accents")
	}
}
