package agent

import "testing"

func TestParseVoiceDirective(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		wantText string
		wantUse  bool
	}{
		{"no marker", "hola", "hola", false},
		{"marker with text", "-voz hola", "hola", true},
		{"marker glued to text", "-vozdime algo", "dime algo", true},
		{"marker alone", "-voz", "", true},
		{"marker not leading", "dime -voz algo", "dime -voz algo", false},
		{"leading space defeats marker", " -voz hola", " -voz hola", false},
		{"empty", "", "", false},
		{"non-voice input keeps its whitespace", "  hola  ", "  hola  ", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, use := ParseVoiceDirective(tc.raw)
			if text != tc.wantText || use != tc.wantUse {
				t.Fatalf("ParseVoiceDirective(%q) = (%q, %v), want (%q, %v)",
					tc.raw, text, use, tc.wantText, tc.wantUse)
			}
		})
	}
}
