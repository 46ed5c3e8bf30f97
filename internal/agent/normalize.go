package agent

import "strings"

// voiceMarker is the leading directive that asks for the answer to be
// synthesized as audio. It only counts at the very start of the input.
const voiceMarker = "-voz"

// ParseVoiceDirective reports whether raw starts with the voice marker
// and returns the input with the marker stripped and trimmed. Inputs
// without the marker pass through untouched.
func ParseVoiceDirective(raw string) (string, bool) {
	if !strings.HasPrefix(raw, voiceMarker) {
		return raw, false
	}
	return strings.TrimSpace(strings.TrimPrefix(raw, voiceMarker)), true
}
