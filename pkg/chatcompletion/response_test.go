package chatcompletion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWith(choices ...VendorChoice) *ChatResponse {
	return &ChatResponse{
		provider: AzureOpenAI,
		raw:      &VendorResponse{Choices: choices},
	}
}

func TestSingleChoiceYieldsSingleMessage(t *testing.T) {
	resp := responseWith(VendorChoice{
		Message: &Message{Role: RoleAssistant, Content: "hello"},
	})

	msg, ok := resp.Message().Single()
	require.True(t, ok)
	assert.Equal(t, "hello", msg.Content)

	_, ok = resp.Message().Multiple()
	assert.False(t, ok, "one choice must not surface as a list of length 1")
}

func TestMultipleChoicesYieldOrderedMessages(t *testing.T) {
	resp := responseWith(
		VendorChoice{Index: 0, Message: &Message{Role: RoleAssistant, Content: "first"}},
		VendorChoice{Index: 1, Message: &Message{Role: RoleAssistant, Content: "second"}},
		VendorChoice{Index: 2, Message: &Message{Role: RoleAssistant, Content: "third"}},
	)

	msgs, ok := resp.Message().Multiple()
	require.True(t, ok)
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)
	assert.Equal(t, "third", msgs[2].Content)

	_, ok = resp.Message().Single()
	assert.False(t, ok)
}

func TestSingleFunctionCall(t *testing.T) {
	resp := responseWith(VendorChoice{
		Message: &Message{
			Role:         RoleAssistant,
			FunctionCall: &FunctionCall{Name: "lookup", Arguments: `{"q":"docs"}`},
		},
	})

	call, ok := resp.FunctionCall().Single()
	require.True(t, ok)
	require.NotNil(t, call)
	assert.Equal(t, "lookup", call.Name)
}

func TestSingleChoiceWithoutFunctionCallIsAbsent(t *testing.T) {
	resp := responseWith(VendorChoice{
		Message: &Message{Role: RoleAssistant, Content: "plain text"},
	})

	call, ok := resp.FunctionCall().Single()
	require.True(t, ok, "arity stays single even when the call is absent")
	assert.Nil(t, call)
}

func TestMultipleFunctionCallsPreserveNilEntriesPositionally(t *testing.T) {
	resp := responseWith(
		VendorChoice{Message: &Message{Role: RoleAssistant, FunctionCall: &FunctionCall{Name: "a"}}},
		VendorChoice{Message: &Message{Role: RoleAssistant, Content: "no call here"}},
		VendorChoice{Message: &Message{Role: RoleAssistant, FunctionCall: &FunctionCall{Name: "c"}}},
	)

	calls, ok := resp.FunctionCall().Multiple()
	require.True(t, ok)
	require.Len(t, calls, 3)
	assert.Equal(t, "a", calls[0].Name)
	assert.Nil(t, calls[1])
	assert.Equal(t, "c", calls[2].Name)

	_, ok = resp.FunctionCall().Single()
	assert.False(t, ok)
}
