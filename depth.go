package jam

import "fmt"

// errDepthExceeded describes a nesting depth violation on either side of
// the codec.
func errDepthExceeded(maxDepth int) error {
	return fmt.Errorf("maximum nesting depth %d exceeded", maxDepth)
}

// depthExceeded reports whether the raw JSON text nests containers deeper
// than max. Neither the standard codec nor goccy/go-json expose a depth
// limit, so nesting is counted on the raw bytes before the codec runs.
// String contents, including escaped quotes, are skipped.
func depthExceeded(data []byte, maxDepth int) bool {
	depth := 0
	inString := false
	escaped := false
	for _, b := range data {
		if inString {
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == '"':
				inString = false
			}
			continue
		}
		switch b {
		case '"':
			inString = true
		case '[', '{':
			depth++
			if depth > maxDepth {
				return true
			}
		case ']', '}':
			depth--
		}
	}
	return false
}
