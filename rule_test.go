package docsweep_test

import (
	"testing"

	"github.com/fwojciec/docsweep"
	"github.com/stretchr/testify/assert"
)

func TestDefaultRules_PhraseRewrites(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "not just with lowercase second clause",
			line: "It's not just speed, it's also safety.",
			want: "It includes speed and safety.",
		},
		{
			name: "not just with capitalized second clause",
			line: "It's not just speed, It's also safety.",
			want: "It includes speed and safety.",
		},
		{
			name: "not about discards the first clause",
			line: "It's not about features, it's about reliability!",
			want: "It is about reliability!",
		},
		{
			name: "curly apostrophes",
			line: "It’s not just speed, it’s also safety.",
			want: "It includes speed and safety.",
		},
		{
			name: "question mark terminator is kept",
			line: "It's not about size, it's about fit?",
			want: "It is about fit?",
		},
		{
			name: "no terminator extends to end of line",
			line: "It's not just speed, it's also safety",
			want: "It includes speed and safety",
		},
		{
			name: "captured groups are trimmed",
			line: "It's not just  speed , it's also  safety .",
			want: "It includes speed and safety.",
		},
		{
			name: "surrounding text survives",
			line: "Remember: It's not about features, it's about reliability. Truly.",
			want: "Remember: It is about reliability. Truly.",
		},
		{
			name: "case-insensitive match",
			line: "it's not just SPEED, IT'S ALSO safety.",
			want: "It includes SPEED and safety.",
		},
		{
			name: "multiple matches in one line",
			line: "It's not just a, it's also b. It's not just c, it's also d.",
			want: "It includes a and b. It includes c and d.",
		},
		{
			name: "semicolon stops the first capture",
			line: "It's not just speed; broken, it's also safety.",
			want: "It's not just speed; broken, it's also safety.",
		},
		{
			name: "non-matching line unchanged",
			line: "Plain sentence with nothing to rewrite.",
			want: "Plain sentence with nothing to rewrite.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.line
			for _, rule := range docsweep.DefaultRules() {
				got = rule.Apply(got)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultRules_SequentialApplication(t *testing.T) {
	t.Parallel()

	// Later rules see the output of earlier ones.
	line := "It's not just X, it's also this: it's not about A, it's about B."

	got := line
	for _, rule := range docsweep.DefaultRules() {
		got = rule.Apply(got)
	}

	assert.Equal(t, "It includes X and this: It is about B.", got)
}
