package jam

import (
	"strings"
	"testing"
)

func TestDepthExceeded(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  bool
	}{
		{name: "scalar", input: `42`, max: 1, want: false},
		{name: "flat object", input: `{"a":1}`, max: 1, want: false},
		{name: "flat object over zero", input: `{"a":1}`, max: 0, want: true},
		{name: "nested within limit", input: `[[1],[2]]`, max: 2, want: false},
		{name: "nested beyond limit", input: `[[[1]]]`, max: 2, want: true},
		{name: "siblings do not accumulate", input: `[[1],[2],[3]]`, max: 2, want: false},
		{name: "brackets inside strings ignored", input: `{"a":"[[[[["}`, max: 2, want: false},
		{name: "escaped quote inside string", input: `{"a":"\"[[[["}`, max: 2, want: false},
		{name: "mixed containers", input: `{"a":[{"b":[1]}]}`, max: 4, want: false},
		{name: "mixed containers beyond", input: `{"a":[{"b":[1]}]}`, max: 3, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := depthExceeded([]byte(tt.input), tt.max); got != tt.want {
				t.Errorf("depthExceeded(%q, %d) = %v, want %v", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

func TestDepthExceeded_DefaultLimit(t *testing.T) {
	within := strings.Repeat("[", DefaultMaxDepth) + strings.Repeat("]", DefaultMaxDepth)
	if depthExceeded([]byte(within), DefaultMaxDepth) {
		t.Error("nesting exactly at the default limit should pass")
	}

	beyond := strings.Repeat("[", DefaultMaxDepth+1) + strings.Repeat("]", DefaultMaxDepth+1)
	if !depthExceeded([]byte(beyond), DefaultMaxDepth) {
		t.Error("nesting beyond the default limit should be rejected")
	}
}
