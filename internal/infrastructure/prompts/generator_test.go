package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"react-browser-agent/internal/application/port/output"
)

func testActions() []output.ActionInfo {
	return []output.ActionInfo{
		{Name: "navigate", Description: "Navigate to a URL", InputExample: `{"url": "https://example.com"}`},
		{Name: "click", Description: "Click on an element", InputExample: `{"selector": "button#submit"}`},
		{Name: "type", Description: "Type text into an element", InputExample: `{"selector": "input#search", "text": "search query"}`},
		{Name: "get_text", Description: "Get text from an element", InputExample: `{"selector": "h1"}`},
		{Name: "screenshot", Description: "Take a screenshot", InputExample: `{"path": "screenshot.png"}`},
	}
}

func TestGenerateSystemPrompt(t *testing.T) {
	prompt, err := GenerateSystemPrompt(testActions())
	require.NoError(t, err)

	assert.Contains(t, strings.ToLower(prompt), "browser automation agent")
	assert.Contains(t, prompt, "ReAct")
	assert.Contains(t, prompt, "Thought:")
	assert.Contains(t, prompt, "Action:")
	assert.Contains(t, prompt, "Action Input:")
	assert.Contains(t, prompt, "Final Answer:")
}

func TestGenerateSystemPrompt_ListsEveryAction(t *testing.T) {
	prompt, err := GenerateSystemPrompt(testActions())
	require.NoError(t, err)

	assert.Contains(t, prompt, "1. navigate - Navigate to a URL")
	assert.Contains(t, prompt, "5. screenshot - Take a screenshot")
	assert.Contains(t, prompt, `{"selector": "input#search", "text": "search query"}`)
	assert.Contains(t, prompt, "navigate, click, type, get_text, or screenshot")
}

func TestGenerateSystemPrompt_SingleAction(t *testing.T) {
	prompt, err := GenerateSystemPrompt([]output.ActionInfo{
		{Name: "navigate", Description: "Navigate to a URL", InputExample: `{"url": "x"}`},
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "The action to take: navigate]")
}
