package pipeline

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for replacement application.
var (
	ErrReplacementBounds       = errors.New("replacement outside text bounds")
	ErrOverlappingReplacements = errors.New("overlapping replacements")
)

// Replacement overwrites Text[Start:End] of the original text.
// Offsets are bytes in the pre-replacement coordinate space.
type Replacement struct {
	Start int
	End   int
	Text  string
}

// Apply splices all replacements into text in one pass.
// Replacements are applied from the last one in the document to the first,
// so no splice shifts the offsets of a replacement not yet applied.
// The input slice is not modified.
func Apply(text string, replacements []Replacement) (string, error) {
	if len(replacements) == 0 {
		return text, nil
	}

	sorted := make([]Replacement, len(replacements))
	copy(sorted, replacements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start > sorted[j].Start
	})

	for i, r := range sorted {
		if r.Start < 0 || r.End > len(text) || r.Start > r.End {
			return "", fmt.Errorf("%w: [%d:%d] in text of length %d", ErrReplacementBounds, r.Start, r.End, len(text))
		}
		if i > 0 && r.End > sorted[i-1].Start {
			return "", fmt.Errorf("%w: [%d:%d] and [%d:%d]",
				ErrOverlappingReplacements, r.Start, r.End, sorted[i-1].Start, sorted[i-1].End)
		}
	}

	out := text
	for _, r := range sorted {
		out = out[:r.Start] + r.Text + out[r.End:]
	}
	return out, nil
}
