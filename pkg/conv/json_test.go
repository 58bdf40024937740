package conv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain object",
			input: `{"landmark": "empac"}`,
			want:  `{"landmark": "empac"}`,
		},
		{
			name:  "fenced with language",
			input: "```json\n{\"landmark\": \"west_hall\"}\n```",
			want:  `{"landmark": "west_hall"}`,
		},
		{
			name:  "fenced without language",
			input: "```\n{\"landmark\": null}\n```",
			want:  `{"landmark": null}`,
		},
		{
			name:  "prose around object",
			input: `Sure! Here is the analysis: {"landmark": "empac"} Hope this helps.`,
			want:  `{"landmark": "empac"}`,
		},
		{
			name:  "truncated object",
			input: `{"landmark": "empac", "confidence": "hi`,
			want:  `{"landmark": "empac", "confidence": "hi`,
		},
		{
			name:    "no object",
			input:   "I cannot help with that.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoJSON)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_ValidPassesThrough(t *testing.T) {
	in := []byte(`{"a":1}`)
	out, err := Normalize(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestNormalize_RepairsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "trailing comma", input: `{"landmark": "empac",}`},
		{name: "single quotes", input: `{'landmark': 'empac'}`},
		{name: "missing closing brace", input: `{"landmark": "empac"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Normalize([]byte(tt.input))
			require.NoError(t, err)
			assert.True(t, json.Valid(out), "repaired output must be valid JSON: %s", out)

			var v struct {
				Landmark string `json:"landmark"`
			}
			require.NoError(t, json.Unmarshal(out, &v))
			assert.Equal(t, "empac", v.Landmark)
		})
	}
}
