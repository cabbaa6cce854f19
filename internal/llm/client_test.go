package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPrompt(t *testing.T) {
	history := []Turn{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello! how can I help?"},
		{Role: "user", Content: "what is Go?"},
	}

	want := "user: hi\nassistant: hello! how can I help?\nuser: what is Go?"
	assert.Equal(t, want, RenderPrompt(history))
}

func TestRenderPromptEmpty(t *testing.T) {
	assert.Equal(t, "", RenderPrompt(nil))
	assert.Equal(t, "user: ", RenderPrompt([]Turn{{Role: "user"}}))
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), "", "gemini-1.5-flash")
	assert.Error(t, err)
}
