package pipeline

import "testing"

func TestRewriteMath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "currency is untouched",
			input: "It costs $100 and $200 total",
			want:  "It costs $100 and $200 total",
		},
		{
			name:  "dollar followed by space is untouched",
			input: "Pay $ 5 or $ 6 now",
			want:  "Pay $ 5 or $ 6 now",
		},
		{
			name:  "inline expression",
			input: "The value is $x^2$ exactly",
			want:  "The value is [LATEX: x^2] exactly",
		},
		{
			name:  "single character expression",
			input: "let $y$ be",
			want:  "let [LATEX: y] be",
		},
		{
			name:  "block across lines",
			input: "Before\n$$\nE = mc^2\n$$\nAfter",
			want:  "Before\n[LATEX_BLOCK: E = mc^2]\nAfter",
		},
		{
			name:  "block before inline",
			input: "a $$x$$ b $y$",
			want:  "a [LATEX_BLOCK: x] b [LATEX: y]",
		},
		{
			name:  "inline does not cross lines",
			input: "start $x across\nline$ end",
			want:  "start $x across\nline$ end",
		},
		{
			name:  "two inline expressions",
			input: "$a$ and $b$",
			want:  "[LATEX: a] and [LATEX: b]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RewriteMath(tt.input); got != tt.want {
				t.Errorf("RewriteMath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
