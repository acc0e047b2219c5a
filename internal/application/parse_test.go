package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "json fence",
			input: "```json\n[{\"rank\":1}]\n```",
			want:  `[{"rank":1}]`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "no fence",
			input: "  [1,2,3]  ",
			want:  "[1,2,3]",
		},
		{
			name:  "windows line endings",
			input: "```json\r\n{}\r\n```",
			want:  "{}",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, CleanJSON(tc.input))
		})
	}
}

func TestParseProjectIdeasOrdersByRank(t *testing.T) {
	t.Parallel()

	raw := "```json\n" + `[
		{"rank":3,"title":"Gamma"},
		{"rank":1,"title":"Alpha"},
		{"rank":2,"title":"Beta"}
	]` + "\n```"

	ideas, err := ParseProjectIdeas(raw)
	require.NoError(t, err)
	require.Len(t, ideas, 3)
	assert.Equal(t, "Alpha", ideas[0].Title)
	assert.Equal(t, "Beta", ideas[1].Title)
	assert.Equal(t, "Gamma", ideas[2].Title)
}

func TestParseProjectIdeasRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := ParseProjectIdeas("the model apologizes and explains itself")
	assert.ErrorContains(t, err, "decode ranked projects")

	_, err = ParseProjectIdeas("[]")
	assert.ErrorContains(t, err, "no projects")
}
