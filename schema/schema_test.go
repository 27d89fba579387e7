package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWellFormedCard(t *testing.T) {
	issues, err := Validate([]byte(`{
		"type": "AdaptiveCard",
		"minVersion": "1.0",
		"body": [
			{"type": "TextBlock", "text": "hello", "horizontalAlignment": "center"}
		],
		"actions": [
			{"type": "Action.OpenUrl", "title": "go", "url": "https://example.com"}
		]
	}`))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestValidateStructuralProblems(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"wrong root type", `{"type": "NotACard"}`},
		{"missing root type", `{"body": []}`},
		{"malformed minVersion", `{"type": "AdaptiveCard", "minVersion": "one.zero"}`},
		{"body not an array", `{"type": "AdaptiveCard", "body": {}}`},
		{"element missing type", `{"type": "AdaptiveCard", "body": [{"text": "hi"}]}`},
		{"bad alignment value", `{"type": "AdaptiveCard", "body": [{"type": "TextBlock", "horizontalAlignment": "top"}]}`},
		{"header entry not an object", `{"type": "AdaptiveCard", "actions": [{"type": "Action.Http", "headers": [7]}]}`},
		{"header value not a string", `{"type": "AdaptiveCard", "actions": [{"type": "Action.Http", "headers": {"X": 1}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, err := Validate([]byte(tt.doc))
			require.NoError(t, err)
			assert.NotEmpty(t, issues)
		})
	}
}

func TestValidateUnreadableInput(t *testing.T) {
	_, err := Validate([]byte(`{not json`))
	assert.Error(t, err)
}

func TestValidateIssueFields(t *testing.T) {
	issues, err := Validate([]byte(`{"type": "AdaptiveCard", "minVersion": "banana"}`))
	require.NoError(t, err)
	require.Len(t, issues, 1)

	assert.Equal(t, "minVersion", issues[0].Field)
	assert.NotEmpty(t, issues[0].Message)
}
