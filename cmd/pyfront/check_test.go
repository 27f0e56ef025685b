package main

import "testing"

func TestEffectiveMaxDiagnostics(t *testing.T) {
	tests := []struct {
		name       string
		flagSet    bool
		flagValue  int
		configured int
		want       int
	}{
		{"unset flag keeps config", false, 100, 7, 7},
		{"set flag overrides config", true, 25, 7, 25},
		{"set zero flag keeps config", true, 0, 7, 7},
		{"unset flag keeps config default", false, 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := effectiveMaxDiagnostics(tt.flagSet, tt.flagValue, tt.configured)
			if got != tt.want {
				t.Errorf("effectiveMaxDiagnostics(%t, %d, %d) = %d, want %d",
					tt.flagSet, tt.flagValue, tt.configured, got, tt.want)
			}
		})
	}
}
