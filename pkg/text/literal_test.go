package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral_Contains(t *testing.T) {
	tests := []struct {
		name            string
		literal         string
		caseInsensitive bool
		line            string
		want            bool
	}{
		{name: "plain_match", literal: "keep", line: "please keep me", want: true},
		{name: "plain_miss", literal: "keep", line: "drop me", want: false},
		{name: "case_sensitive_miss", literal: "KEEP", line: "keep", want: false},
		{name: "case_insensitive_hit", literal: "#KEEP", caseInsensitive: true, line: "line #keep", want: true},
		{name: "dot_is_literal", literal: "a.b", line: "axb", want: false},
		{name: "dot_matches_dot", literal: "a.b", line: "xa.bx", want: true},
		{name: "empty_matches_everything", literal: "", line: "anything", want: true},
		{name: "empty_matches_empty", literal: "", line: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLiteral(tt.literal, tt.caseInsensitive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.Contains(tt.line))
		})
	}
}

func TestLiteral_ReplaceFirst(t *testing.T) {
	tests := []struct {
		name            string
		old             string
		repl            string
		caseInsensitive bool
		line            string
		want            string
		wantHit         bool
	}{
		{
			name: "first_only", old: "World", repl: "Universe",
			line: "Hello World World", want: "Hello Universe World", wantHit: true,
		},
		{
			name: "no_match", old: "Goodbye", repl: "Hi",
			line: "Hello World", want: "Hello World",
		},
		{
			name: "case_insensitive_keeps_replacement_case", old: "old", repl: "New", caseInsensitive: true,
			line: "This Sentence Is Old", want: "This Sentence Is New", wantHit: true,
		},
		{
			name: "case_sensitive_skips_other_case", old: "old", repl: "new",
			line: "Old and old", want: "Old and new", wantHit: true,
		},
		{
			name: "dollar_in_replacement_is_literal", old: "x", repl: "$1${0}",
			line: "axb", want: "a$1${0}b", wantHit: true,
		},
		{
			name: "dot_in_old_ignore_case", old: "lin.", repl: "line.", caseInsensitive: true,
			line: "this is a lin.", want: "this is a line.", wantHit: true,
		},
		{
			name: "dot_does_not_match_other_rune", old: "a.b", repl: "X",
			line: "axb a.b", want: "axb X", wantHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := MustLiteral(tt.old, tt.caseInsensitive)
			got, hit := l.ReplaceFirst(tt.line, tt.repl)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantHit, hit)
		})
	}
}

// every character that means something to regexp must still match itself
func TestLiteral_Metacharacters(t *testing.T) {
	specials := []string{
		`.`, `*`, `+`, `?`, `(`, `)`, `[`, `]`, `{`, `}`, `^`, `$`, `|`, `\`,
		`/`, `:`, `_`, `~`, `<`, `>`, `=`, `"`, `!`, `-`, `#`, `\d`, `a|b`, `(?i)`,
	}

	for _, s := range specials {
		t.Run(s, func(t *testing.T) {
			l := MustLiteral(s, false)
			line := "pre" + s + "post"

			assert.True(t, l.Contains(line))
			got, hit := l.ReplaceFirst(line, "@")
			assert.True(t, hit)
			assert.Equal(t, "pre@post", got)
		})
	}
}

func TestLiteral_String(t *testing.T) {
	assert.Equal(t, "a.b", MustLiteral("a.b", true).String())
}
