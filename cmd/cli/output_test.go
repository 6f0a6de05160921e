package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/code-sage/internal/core"
)

func sampleReviews() []fileReview {
	return []fileReview{
		{
			File: "main.js",
			ReviewResult: core.ReviewResult{
				Summary:     "Looks fine.",
				Suggestions: []string{"- Use const", "- Add tests"},
			},
		},
		{
			File:         "empty.py",
			ReviewResult: *core.NewReviewResult(),
		},
	}
}

func TestWriteReviews_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReviews(&buf, formatJSON, sampleReviews()))

	assert.JSONEq(t, `[
		{"file":"main.js","summary":"Looks fine.","suggestions":["- Use const","- Add tests"]},
		{"file":"empty.py","summary":"","suggestions":[]}
	]`, buf.String())

	var decoded []fileReview
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleReviews(), decoded)
}

func TestWriteReviews_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReviews(&buf, formatYAML, sampleReviews()))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "main.js", decoded[0]["file"])
	assert.Equal(t, "Looks fine.", decoded[0]["summary"])
	assert.Equal(t, []any{"- Use const", "- Add tests"}, decoded[0]["suggestions"])
}

func TestWriteReviews_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReviews(&buf, formatText, sampleReviews()))

	out := buf.String()
	assert.Contains(t, out, "main.js")
	assert.Contains(t, out, "Looks fine.")
	assert.Contains(t, out, "SUGGESTIONS (2)")
	assert.Contains(t, out, "Use const")
	assert.Contains(t, out, "empty.py")
	assert.Contains(t, out, "No suggestions.")
}

func TestWriteReviews_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, writeReviews(&buf, "xml", sampleReviews()))
	assert.False(t, validFormat("xml"))
	assert.True(t, validFormat(formatYAML))
}
