package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()
	md := strings.Join([]string{
		"# Heading",
		"",
		"| a | b |",
		"|---|---|",
		"| 1 | 2 |",
		"",
		InteractivePlaceholder(1),
		"",
		"```go",
		"func main() {}",
		"```",
	}, "\n")

	got, err := conv.ToHTML(context.Background(), md, "Cats & Dogs")
	if err != nil {
		t.Fatalf("ToHTML() unexpected error: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Cats &amp; Dogs</title>",
		`<h1 id="heading">Heading</h1>`,
		"<table>",
		InteractivePlaceholder(1),
		`style="`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, `class="chroma"`) {
		t.Errorf("code block should use inline styles, got classes:\n%s", got)
	}
}

func TestGoldmarkConverter_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, "# x", "t")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}
