package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscript_AppendPreservesOrder(t *testing.T) {
	transcript := NewTranscript()
	transcript.Append(RoleSystem, "sys")
	transcript.Append(RoleUser, "Task: t")
	transcript.Append(RoleAssistant, "Thought: ok")

	msgs := transcript.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Equal(t, RoleUser, msgs[1].Role)
	assert.Equal(t, RoleAssistant, msgs[2].Role)
}

func TestTranscript_MessagesReturnsCopy(t *testing.T) {
	transcript := NewTranscript()
	transcript.Append(RoleUser, "original")

	msgs := transcript.Messages()
	msgs[0].Content = "mutated"

	assert.Equal(t, "original", transcript.Messages()[0].Content)
}

func TestTranscript_AppendNeverMutatesEarlierEntries(t *testing.T) {
	transcript := NewTranscript()
	transcript.Append(RoleSystem, "sys")

	before := transcript.Messages()
	transcript.Append(RoleUser, "Observation: {}")
	after := transcript.Messages()

	require.Len(t, after, 2)
	assert.Equal(t, before[0], after[0])
}
