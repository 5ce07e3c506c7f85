package diff

// abbreviationThreshold is the character count above which a long
// single-line rendering is shortened.
const abbreviationThreshold = 61

// abbreviationMargin is how many characters are kept at each end of
// an abbreviated rendering.
const abbreviationMargin = (abbreviationThreshold-1)/2 + 1

// Abbreviate shortens a long single-line rendering that contains an
// escaped newline to its first and last abbreviationMargin
// characters around an ellipsis. Multi-line renderings and
// renderings without an escaped newline are returned unchanged.
func Abbreviate(value string) string {
	if hasMultipleLines(value) || !containsEscapedNewline(value) {
		return value
	}
	runes := []rune(value)
	if len(runes) <= abbreviationThreshold {
		return value
	}
	out := make([]rune, 0, 2*abbreviationMargin+1)
	out = append(out, runes[:abbreviationMargin]...)
	out = append(out, '…')
	out = append(out, runes[len(runes)-abbreviationMargin:]...)
	return string(out)
}

func hasMultipleLines(value string) bool {
	for _, r := range value {
		if r == '\n' {
			return true
		}
	}
	return false
}

func containsEscapedNewline(value string) bool {
	for i := 0; i+1 < len(value); i++ {
		if value[i] == '\\' && value[i+1] == 'n' {
			return true
		}
	}
	return false
}
