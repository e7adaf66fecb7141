package pipeline

import (
	"errors"
	"testing"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		text         string
		replacements []Replacement
		want         string
		wantErr      error
	}{
		{
			name: "no replacements",
			text: "unchanged",
			want: "unchanged",
		},
		{
			name: "spans of different sizes keep original offsets",
			text: "AAA|BB|C",
			replacements: []Replacement{
				{Start: 0, End: 3, Text: "x"},
				{Start: 4, End: 6, Text: "yyyy"},
			},
			want: "x|yyyy|C",
		},
		{
			name: "order of input does not matter",
			text: "AAA|BB|C",
			replacements: []Replacement{
				{Start: 4, End: 6, Text: "yyyy"},
				{Start: 0, End: 3, Text: "x"},
			},
			want: "x|yyyy|C",
		},
		{
			name:         "adjacent spans",
			text:         "abcd",
			replacements: []Replacement{{Start: 0, End: 2, Text: "1"}, {Start: 2, End: 4, Text: "2"}},
			want:         "12",
		},
		{
			name:         "overlapping spans",
			text:         "abcdef",
			replacements: []Replacement{{Start: 0, End: 3}, {Start: 2, End: 5}},
			wantErr:      ErrOverlappingReplacements,
		},
		{
			name:         "end past text",
			text:         "abc",
			replacements: []Replacement{{Start: 1, End: 9}},
			wantErr:      ErrReplacementBounds,
		},
		{
			name:         "negative start",
			text:         "abc",
			replacements: []Replacement{{Start: -1, End: 1}},
			wantErr:      ErrReplacementBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Apply(tt.text, tt.replacements)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Apply() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Apply() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApply_DoesNotReorderInput(t *testing.T) {
	t.Parallel()

	reps := []Replacement{{Start: 0, End: 1, Text: "a"}, {Start: 2, End: 3, Text: "b"}}
	if _, err := Apply("xyz", reps); err != nil {
		t.Fatalf("Apply() unexpected error: %v", err)
	}
	if reps[0].Start != 0 || reps[1].Start != 2 {
		t.Errorf("input slice was reordered: %+v", reps)
	}
}
