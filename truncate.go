package jam

const (
	// previewLimit caps error previews at 100 characters.
	previewLimit = 100

	// previewMarker is appended when a preview is truncated.
	previewMarker = "…"
)

// truncate caps s at limit characters, appending marker when content is
// dropped. The second result reports whether truncation occurred.
//
// Lengths are measured in runes rather than bytes so a preview never splits
// a multi-byte UTF-8 sequence near the limit.
func truncate(s string, limit int, marker string) (string, bool) {
	runes := []rune(s)
	if len(runes) <= limit {
		return s, false
	}
	cut := limit - len([]rune(marker))
	if cut < 0 {
		cut = 0
	}
	return string(runes[:cut]) + marker, true
}
